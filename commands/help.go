package commands

import (
	"context"
	"flag"
	"fmt"
)

// Help is the 'help' command, which displays the command list or the help for a
// single command.
type Help struct {
	cli     []Command
	flagset *flag.FlagSet
}

// NewHelp returns a help command for the command list.
func NewHelp(cli ...Command) *Help {
	return &Help{
		cli:     cli,
		flagset: flag.NewFlagSet("help", flag.ExitOnError),
	}
}

func (h *Help) Name() string {
	return "help"
}

func (h *Help) Description() string {
	return "Displays the help for a command"
}

func (h *Help) Usage() string {
	return "<command>"
}

func (h *Help) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s help <command>\n", APP)
	fmt.Println()
	fmt.Println("  Displays the help for a command")
	fmt.Println()
}

func (h *Help) FlagSet() *flag.FlagSet {
	return h.flagset
}

func (h *Help) Execute(ctx context.Context, options *Options) error {
	args := h.flagset.Args()
	if len(args) > 0 {
		if cmd := find(h.cli, args[0]); cmd != nil {
			cmd.Help()
			return nil
		}

		return fmt.Errorf("invalid command '%v'", args[0])
	}

	h.usage()

	return nil
}

func (h *Help) usage() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] [command] [options]\n", APP)
	fmt.Println()
	fmt.Printf("  Without a command, %s creates a PDF file of mailing labels (see 'pdf').\n", APP)
	fmt.Println()
	fmt.Println("  Commands:")
	fmt.Println()

	for _, cmd := range h.cli {
		fmt.Printf("    %-10s %s\n", cmd.Name(), cmd.Description())
	}

	fmt.Printf("    %-10s %s\n", h.Name(), h.Description())
	fmt.Println()
	fmt.Println("  Options:")
	fmt.Println()

	flag.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-9s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
}

// Parse finds the command named by the first argument and parses the command
// flags. It returns nil if there are no arguments.
func Parse(cli []Command, args []string) (Command, error) {
	if len(args) == 0 {
		return nil, nil
	}

	cmd := find(cli, args[0])
	if cmd == nil {
		return nil, fmt.Errorf("invalid command '%v'", args[0])
	}

	flagset := cmd.FlagSet()
	if err := flagset.Parse(args[1:]); err != nil {
		return nil, err
	}

	return cmd, nil
}

func find(cli []Command, name string) Command {
	for _, cmd := range cli {
		if cmd.Name() == name {
			return cmd
		}
	}

	return nil
}
