/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"context"
	"io"

	"github.com/cristianoliveira/dexview/cmd"
	"github.com/spf13/cobra"
)

type showClient interface {
	ShowItem(ctx context.Context, idOrName, format string, w io.Writer) error
}

const showCommandLong = `Show the detail record of one creature.

USAGE:
    dexview show <id|name> [OPTIONS]

OPTIONS:
    --format <format>   Output format: text (default), json, yaml
    -h, --help          Show this help

EXAMPLES:
    dexview show 25
    dexview show pikachu --format yaml`

// NewShowCmd creates the show command with explicit dependencies.
func NewShowCmd(client showClient) *cobra.Command {
	if client == nil {
		panic("NewShowCmd: client dependency cannot be nil")
	}

	var format string

	showCmd := &cobra.Command{
		Use:   "show <id|name>",
		Short: "Show one creature's detail record",
		Long:  showCommandLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.ShowItem(cmd.Context(), args[0], format, cmd.OutOrStdout())
		},
	}

	showCmd.Flags().StringVar(&format, "format", "text", "Output format: text, json, yaml")

	return showCmd
}

// showCmd represents the show command
var showCmd = NewShowCmd(deps)

func init() {
	cmd.RootCmd.AddCommand(showCmd)
}
