package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/guest-labels/guest-labels/commands"
)

var cli = []commands.Command{
	&commands.PDFCmd,
	&commands.DocumentCmd,
	&commands.ListCmd,
	&commands.AuthoriseCmd,
	&commands.VersionCmd,
}

var options = commands.Options{
	Debug:  false,
	Config: "",
}

var help = commands.NewHelp(cli...)

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.StringVar(&options.Config, "config", options.Config, "Configuration file path")
	flag.Parse()

	logger, err := commands.NewLogger(options.Debug)
	if err != nil {
		fmt.Printf("\nError initialising logger: %v\n\n", err)
		os.Exit(1)
	}

	defer logger.Sync()

	cmd, err := commands.Parse(append(cli, help), flag.Args())
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	// ... no command runs the default 'pdf' command
	if cmd == nil {
		cmd = &commands.PDFCmd
	}

	ctx := context.Background()

	if err = cmd.Execute(ctx, &options); err != nil {
		logger.Fatal("ERROR", zap.Error(err))
	}
}
