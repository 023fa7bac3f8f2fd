package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/guest-labels/guest-labels/config"
	"github.com/guest-labels/guest-labels/gsuite"
	"github.com/guest-labels/guest-labels/guests"
)

var ListCmd = List{
	command: command{
		workdir: DEFAULT_WORKDIR,
	},
}

// List prints the guests that would be printed as labels, as TSV.
type List struct {
	command
	file string
}

func (cmd *List) Name() string {
	return "list"
}

func (cmd *List) Description() string {
	return "Lists the guests with valid mailing addresses"
}

func (cmd *List) Usage() string {
	return "[--credentials <file>] [--file <file>]"
}

func (cmd *List) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] list [options]\n", APP)
	fmt.Println()
	fmt.Println("  Retrieves the guest list from the Google Sheets worksheet and writes the guests that")
	fmt.Println("  would be printed as labels to the console (or a file) in TSV format")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    guest-labels list --credentials "credentials.json" --file "guests.tsv"`)
	fmt.Println()
}

func (cmd *List) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("list")

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to the console")

	return flagset
}

func (cmd *List) Execute(ctx context.Context, options *Options) error {
	conf, err := cmd.configure(options)
	if err != nil {
		return err
	}

	session, err := cmd.session(ctx, conf)
	if err != nil {
		return err
	}

	if strings.TrimSpace(cmd.file) == "" {
		return cmd.exec(ctx, session, conf, os.Stdout)
	}

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	f, err := os.Create(cmd.file)
	if err != nil {
		return err
	}

	defer f.Close()

	if err := cmd.exec(ctx, session, conf, f); err != nil {
		return err
	}

	infof("retrieved guest list to file %s", cmd.file)

	return nil
}

func (cmd *List) exec(ctx context.Context, session *gsuite.Session, conf *config.Config, w io.Writer) error {
	recipients := guests.Get(ctx, session.Sheets, conf.SpreadsheetID, ranges(conf), logger)

	if err := guests.WriteTSV(w, recipients); err != nil {
		return fmt.Errorf("error writing TSV (%w)", err)
	}

	return nil
}
