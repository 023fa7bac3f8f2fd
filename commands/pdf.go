package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/guest-labels/guest-labels/config"
	"github.com/guest-labels/guest-labels/gsuite"
	"github.com/guest-labels/guest-labels/guests"
	"github.com/guest-labels/guest-labels/labels"
)

var PDFCmd = PDF{
	command: command{
		workdir: DEFAULT_WORKDIR,
	},
}

// PDF is the (default) command that prints the guest list as one label per page
// to a PDF file.
type PDF struct {
	command
	file string
	font string
}

func (cmd *PDF) Name() string {
	return "pdf"
}

func (cmd *PDF) Description() string {
	return "Creates a PDF file with a mailing label page for each guest"
}

func (cmd *PDF) Usage() string {
	return "[--credentials <file>] [--file <file>]"
}

func (cmd *PDF) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] pdf [options]\n", APP)
	fmt.Println()
	fmt.Println("  Retrieves the guest list from the Google Sheets worksheet and creates a PDF file")
	fmt.Println("  with one 188mm x 105mm label page per guest. Guests with incomplete or international")
	fmt.Println("  addresses are skipped.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    guest-labels pdf --credentials "credentials.json" --file "wedding.pdf"`)
	fmt.Println()
}

func (cmd *PDF) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("pdf")

	flagset.StringVar(&cmd.file, "file", cmd.file, "PDF file name. Defaults to 'letters.pdf'")
	flagset.StringVar(&cmd.font, "font", cmd.font, "TrueType font file. Defaults to Go Regular")

	return flagset
}

func (cmd *PDF) Execute(ctx context.Context, options *Options) error {
	conf, err := cmd.configure(options)
	if err != nil {
		return err
	}

	if strings.TrimSpace(cmd.file) != "" {
		conf.PDF.File = cmd.file
	}

	if strings.TrimSpace(cmd.font) != "" {
		conf.PDF.Font = cmd.font
	}

	if strings.TrimSpace(conf.PDF.File) == "" {
		return fmt.Errorf("--file is a required option")
	}

	session, err := cmd.session(ctx, conf)
	if err != nil {
		return err
	}

	_, err = cmd.exec(ctx, session, conf)

	return err
}

func (cmd *PDF) exec(ctx context.Context, session *gsuite.Session, conf *config.Config) (int, error) {
	recipients := guests.Get(ctx, session.Sheets, conf.SpreadsheetID, ranges(conf), logger)
	if len(recipients) == 0 {
		warnf("no labels to print, %v not created", conf.PDF.File)
		return 0, nil
	}

	debugf("retrieved %v guests", len(recipients))

	pages, err := labels.RenderFile(conf.PDF.File, recipients, layout(conf))
	if err != nil {
		return 0, fmt.Errorf("error creating PDF file %v (%w)", conf.PDF.File, err)
	}

	infof("created PDF file %v (%v labels)", conf.PDF.File, pages)

	return pages, nil
}
