package commands

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/guest-labels/guest-labels/config"
	"github.com/guest-labels/guest-labels/gdocs"
	"github.com/guest-labels/guest-labels/gsuite"
	"github.com/guest-labels/guest-labels/guests"
	"github.com/guest-labels/guest-labels/labels"
)

const APP = "guest-labels"

// Command is the interface implemented by all the guest-labels CLI commands.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(ctx context.Context, options *Options) error
}

// Options holds the global command line options.
type Options struct {
	Debug  bool
	Config string
}

var logger = zap.NewNop()

// NewLogger initialises the command logger, at DEBUG level if debug is set.
func NewLogger(debug bool) (*zap.Logger, error) {
	conf := zap.NewProductionConfig()
	conf.Encoding = "console"
	conf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	conf.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	conf.DisableStacktrace = true

	if debug {
		conf.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := conf.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger = l

	return l, nil
}

type command struct {
	workdir     string
	credentials string
	tokens      string
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.workdir, "workdir", c.workdir, "Directory for working files (configuration, tokens, etc)")
	flagset.StringVar(&c.credentials, "credentials", c.credentials, fmt.Sprintf("Path for the 'credentials.json' file. Defaults to %v", DEFAULT_CREDENTIALS))
	flagset.StringVar(&c.tokens, "tokens", c.tokens, "Directory for the OAuth2 tokens file. Defaults to <workdir>/.google")

	return flagset
}

// configure loads the configuration file, if it exists. The default file is
// <workdir>/guest-labels.yaml and a file set with --config must exist.
func (c *command) configure(options *Options) (*config.Config, error) {
	conf := config.NewConfig(filepath.Join(c.workdir, ".google"), DEFAULT_CREDENTIALS)

	file := strings.TrimSpace(options.Config)
	required := file != ""
	if !required {
		file = filepath.Join(c.workdir, fmt.Sprintf("%s.yaml", APP))
	}

	if err := conf.Load(file, required); err != nil {
		return nil, fmt.Errorf("could not load configuration (%w)", err)
	}

	if strings.TrimSpace(c.credentials) != "" {
		conf.Credentials = c.credentials
	}

	if strings.TrimSpace(c.tokens) != "" {
		conf.Tokens = c.tokens
	}

	if strings.TrimSpace(conf.Credentials) == "" {
		return nil, fmt.Errorf("--credentials is a required option")
	}

	debugf("configuration - spreadsheet:%v  credentials:%v  tokens:%v", conf.SpreadsheetID, conf.Credentials, conf.Tokens)

	return conf, nil
}

func (c *command) session(ctx context.Context, conf *config.Config) (*gsuite.Session, error) {
	return gsuite.NewSession(ctx, conf.Credentials, conf.Tokens)
}

func ranges(conf *config.Config) guests.Ranges {
	return guests.Ranges{
		Names:   strings.TrimSpace(conf.Ranges.Names),
		Streets: strings.TrimSpace(conf.Ranges.Streets),
		Cities:  strings.TrimSpace(conf.Ranges.Cities),
	}
}

func layout(conf *config.Config) labels.Layout {
	return labels.Layout{
		Width:    conf.PDF.Width * labels.MM,
		Height:   conf.PDF.Height * labels.MM,
		Margin:   conf.PDF.Margin,
		Indent:   conf.PDF.Indent,
		Top:      conf.PDF.Top,
		Spacing:  conf.PDF.Spacing,
		FontSize: conf.PDF.FontSize,
		Leading:  conf.PDF.Leading,
		Font:     conf.PDF.Font,
	}
}

func share(conf *config.Config) gdocs.Share {
	return gdocs.Share{
		Email: strings.TrimSpace(conf.Document.Share),
		Role:  conf.Document.Role,
	}
}

func helpOptions(flagset *flag.FlagSet) {
	count := 0
	flag.VisitAll(func(f *flag.Flag) {
		count++
	})

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	if count > 0 {
		fmt.Println()
		fmt.Println("  Options:")
		flag.VisitAll(func(f *flag.Flag) {
			fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
		})
	}
}

func debugf(format string, args ...any) {
	logger.Sugar().Debugf(format, args...)
}

func infof(format string, args ...any) {
	logger.Sugar().Infof(format, args...)
}

func warnf(format string, args ...any) {
	logger.Sugar().Warnf(format, args...)
}
