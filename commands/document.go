package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/guest-labels/guest-labels/config"
	"github.com/guest-labels/guest-labels/gdocs"
	"github.com/guest-labels/guest-labels/gsuite"
	"github.com/guest-labels/guest-labels/guests"
)

var DocumentCmd = Document{
	command: command{
		workdir: DEFAULT_WORKDIR,
	},
}

// Document creates a Google Docs document with a label table per guest.
type Document struct {
	command
	title string
	share string
	role  string
}

func (cmd *Document) Name() string {
	return "doc"
}

func (cmd *Document) Description() string {
	return "Creates a Google Docs document with a mailing label table for each guest"
}

func (cmd *Document) Usage() string {
	return "[--credentials <file>] [--title <title>] --share <email>"
}

func (cmd *Document) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] doc [options]\n", APP)
	fmt.Println()
	fmt.Println("  Retrieves the guest list from the Google Sheets worksheet and creates a new Google Docs")
	fmt.Println("  document with a name/address/city table and a page break for each guest. The document is")
	fmt.Println("  shared with the --share account, which is required if not set in the configuration file.")
	fmt.Println()
	fmt.Println("  The Docs API does not support setting the page size, so set it manually (File > Page setup)")
	fmt.Println("  before printing.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    guest-labels doc --credentials "credentials.json" --title "Wedding Labels" --share "someone@example.com"`)
	fmt.Println()
}

func (cmd *Document) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("doc")

	flagset.StringVar(&cmd.title, "title", cmd.title, "Document title. Defaults to 'Guest Labels'")
	flagset.StringVar(&cmd.share, "share", cmd.share, "Email address of the account to share the document with")
	flagset.StringVar(&cmd.role, "role", cmd.role, "Access granted to the --share account (reader, commenter or writer). Defaults to 'writer'")

	return flagset
}

func (cmd *Document) Execute(ctx context.Context, options *Options) error {
	conf, err := cmd.configure(options)
	if err != nil {
		return err
	}

	if err := cmd.apply(conf); err != nil {
		return err
	}

	session, err := cmd.session(ctx, conf)
	if err != nil {
		return err
	}

	if id := cmd.exec(ctx, session, conf); id != "" {
		fmt.Printf("Document ID: %v\n", id)
		fmt.Printf("URL:         %v\n", gdocs.URL(id))
		fmt.Println()
		fmt.Println("Remember to set the page size (File > Page setup) before printing")
	}

	return nil
}

// apply updates the configuration from the command line options. The document is
// always shared, so a collaborator must be set in either the configuration or
// with --share.
func (cmd *Document) apply(conf *config.Config) error {
	if strings.TrimSpace(cmd.title) != "" {
		conf.Document.Title = cmd.title
	}

	if strings.TrimSpace(cmd.share) != "" {
		conf.Document.Share = cmd.share
	}

	if strings.TrimSpace(cmd.role) != "" {
		conf.Document.Role = cmd.role
		if err := conf.Validate(); err != nil {
			return err
		}
	}

	if strings.TrimSpace(conf.Document.Share) == "" {
		return fmt.Errorf("--share is a required option")
	}

	return nil
}

func (cmd *Document) exec(ctx context.Context, session *gsuite.Session, conf *config.Config) string {
	recipients := guests.Get(ctx, session.Sheets, conf.SpreadsheetID, ranges(conf), logger)

	debugf("retrieved %v guests", len(recipients))

	p := gdocs.Publisher{
		Docs:  session.Docs,
		Drive: session.Drive,
		Log:   logger,
	}

	return p.Publish(ctx, conf.Document.Title, recipients, share(conf))
}
