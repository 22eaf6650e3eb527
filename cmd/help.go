/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/dexview/internal/colors"
	"github.com/spf13/cobra"
)

// helpOutputWriter is the writer used by PrintHelp. Can be changed for testing.
var helpOutputWriter io.Writer

// commandOrder is the order commands appear in the help text.
var commandOrder = []string{
	"browse",
	"list",
	"show",
	"favorites",
	"types",
	"status",
	"serve",
	"settings",
	"config",
	"help",
	"version",
}

// helpCmd represents the help command. It is assigned in init to break the
// initialization cycle helpCmd -> PrintHelp -> printHelp -> helpCmd.
var helpCmd *cobra.Command

func init() {
	helpCmd = &cobra.Command{
		Use:   "help [command]",
		Short: "Show this help message",
		Long:  `Show this help message.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				PrintHelp(cmd.Root())
				return nil
			}
			target, _, err := cmd.Root().Find(args)
			if err != nil || target == nil || target == cmd.Root() {
				PrintHelp(cmd.Root())
				return nil
			}
			printCommandHelp(target)
			return nil
		},
	}
	RootCmd.SetHelpCommand(helpCmd)
}

// PrintHelp prints the help information for the given root command.
func PrintHelp(cmd *cobra.Command) {
	w := helpOutputWriter
	if w == nil {
		w = cmd.OutOrStdout()
	}
	printHelp(cmd, w)
}

func printHelp(cmd *cobra.Command, w io.Writer) {
	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil && name == "help" {
			found = helpCmd
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %s%-16s%s %s%s%s", colors.Cyan, found.Name(), colors.Reset, colors.Green, found.Short, colors.Reset))
	}

	versionStr := cmd.Version
	if versionStr == "" {
		versionStr = "0.0.0"
	}

	headerColor := colors.Blue
	reset := colors.Reset
	helpText := fmt.Sprintf(`%sdexview v%s%s

%sBrowse the PokéAPI catalog from your terminal.%s

%sUSAGE:%s
    dexview [COMMAND] [OPTIONS]

    Without a command, dexview opens the browser on a terminal
    and prints the first page otherwise.

%sCOMMANDS:%s
%s

%sOPTIONS:%s
    --config <path>  Read configuration from path
    --debug          Enable debug output
    -q, --quiet      Suppress informational output
    -h, --help       Show help message
`, headerColor, versionStr, reset, colors.Cyan, reset, headerColor, reset, headerColor, reset, strings.Join(cmdLines, "\n"), headerColor, reset)
	fmt.Fprint(w, helpText)
}

// printCommandHelp prints the long description of a subcommand.
func printCommandHelp(cmd *cobra.Command) {
	w := helpOutputWriter
	if w == nil {
		w = cmd.OutOrStdout()
	}
	text := cmd.Long
	if text == "" {
		text = cmd.Short
	}
	fmt.Fprintln(w, text)
}
