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

type typesClient interface {
	ListTypes(ctx context.Context, counts bool, w io.Writer) error
}

const typesCommandLong = `List the type taxonomy.

USAGE:
    dexview types [OPTIONS]

OPTIONS:
    --counts    Also fetch how many creatures each type has in the remote catalog
    -h, --help  Show this help`

// NewTypesCmd creates the types command with explicit dependencies.
func NewTypesCmd(client typesClient) *cobra.Command {
	if client == nil {
		panic("NewTypesCmd: client dependency cannot be nil")
	}

	var counts bool

	typesCmd := &cobra.Command{
		Use:   "types",
		Short: "List the type taxonomy",
		Long:  typesCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.ListTypes(cmd.Context(), counts, cmd.OutOrStdout())
		},
	}

	typesCmd.Flags().BoolVar(&counts, "counts", false, "Fetch per-type membership counts")

	return typesCmd
}

// typesCmd represents the types command
var typesCmd = NewTypesCmd(deps)

func init() {
	cmd.RootCmd.AddCommand(typesCmd)
}
