package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/guest-labels/guest-labels/gsuite"
)

var AuthoriseCmd = Authorise{
	command: command{
		workdir: DEFAULT_WORKDIR,
	},
}

type Authorise struct {
	command
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises guest-labels to access Google Sheets, Docs and Drive"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options] --credentials <file>\n", APP)
	fmt.Println()
	fmt.Println("  Authorises guest-labels to read the guest list worksheet and to create and share Google Docs")
	fmt.Println("  documents, using OAuth2 client credentials. The OAuth2 token is saved to the --tokens directory.")
	fmt.Println("  Service account credentials do not need to be authorised.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    guest-labels authorise --credentials "credentials.json"`)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	return cmd.flagset("authorise")
}

func (cmd *Authorise) Execute(ctx context.Context, options *Options) error {
	conf, err := cmd.configure(options)
	if err != nil {
		return err
	}

	if err := gsuite.Authorise(ctx, conf.Credentials, conf.Tokens, os.Stdin, os.Stdout, gsuite.Scopes...); err != nil {
		return fmt.Errorf("authorisation error (%w)", err)
	}

	infof("authorised %v", conf.Credentials)

	return nil
}
