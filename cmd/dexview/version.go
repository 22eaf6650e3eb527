/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/dexview/cmd"
	"github.com/spf13/cobra"
)

type versionClient interface {
	Version() string
}

// versionOutputWriter is the writer used by the version command. Can be changed for testing.
var versionOutputWriter io.Writer

// NewVersionCmd creates the version command with explicit dependencies.
func NewVersionCmd(client versionClient) *cobra.Command {
	if client == nil {
		panic("NewVersionCmd: client dependency cannot be nil")
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the current version of dexview.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := versionOutputWriter
			if w == nil {
				w = cmd.OutOrStdout()
			}
			_, err := fmt.Fprintf(w, "dexview version %s\n", client.Version())
			return err
		},
	}

	return versionCmd
}

// versionCmd represents the version command
var versionCmd = NewVersionCmd(deps)

func init() {
	cmd.RootCmd.AddCommand(versionCmd)
}
