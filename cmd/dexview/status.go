/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/dexview/cmd"
	"github.com/cristianoliveira/dexview/internal/status"
	"github.com/spf13/cobra"
)

const statusCommandLong = `Print a one-line favorites summary for shell prompts and status bars.

Nothing is printed when there are no favorites. Only local state is read,
so the command is safe to call from a prompt.

USAGE:
    dexview status [OPTIONS]

OPTIONS:
    --format <format>  compact (default from config), detailed, count-only
    --enabled <bool>   Set to false to print nothing (default: true)
    -h, --help         Show this help

EXAMPLES:
    # tmux status-right
    set -g status-right '#(dexview status --format detailed)'

    # Count only
    dexview status --format count-only`

// statusOutputWriter is the writer used by the status command. Can be changed for testing.
var statusOutputWriter io.Writer

// NewStatusCmd creates the status command with explicit dependencies.
func NewStatusCmd(client status.Client) *cobra.Command {
	if client == nil {
		panic("NewStatusCmd: client dependency cannot be nil")
	}

	var opts status.Options

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Print a favorites summary for status bars",
		Long:  statusCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := status.Render(client, opts)
			if err != nil {
				return err
			}
			if output == "" {
				return nil
			}
			w := statusOutputWriter
			if w == nil {
				w = cmd.OutOrStdout()
			}
			_, err = fmt.Fprintln(w, output)
			return err
		},
	}

	statusCmd.Flags().StringVar(&opts.Format, "format", "", "Output format: compact, detailed, count-only")
	statusCmd.Flags().BoolVar(&opts.Enabled, "enabled", true, "Print the summary")

	return statusCmd
}

// statusCmd represents the status command
var statusCmd = NewStatusCmd(deps)

func init() {
	cmd.RootCmd.AddCommand(statusCmd)
}
