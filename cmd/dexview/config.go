/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/cristianoliveira/dexview/cmd"
	"github.com/cristianoliveira/dexview/internal/colors"
	"github.com/cristianoliveira/dexview/internal/config"
	"github.com/spf13/cobra"
)

type configClient interface {
	Values() map[string]string
	WriteSample(path string) error
	DefaultPath() string
}

const configCommandLong = `Inspect or create the configuration file.

USAGE:
    dexview config <subcommand>

SUBCOMMANDS:
    show           Print every resolved setting
    init [path]    Write a sample config file (existing files are kept)

EXAMPLES:
    dexview config init
    DEXVIEW_PAGE_SIZE=10 dexview config show`

// configAdapter exposes the config package to the config command.
type configAdapter struct{}

func (configAdapter) Values() map[string]string     { return config.All() }
func (configAdapter) WriteSample(path string) error { return config.WriteSample(path) }

func (configAdapter) DefaultPath() string {
	if path := os.Getenv("DEXVIEW_CONFIG_PATH"); path != "" {
		return path
	}
	return config.DefaultPath()
}

// NewConfigCmd creates the config command with explicit dependencies.
func NewConfigCmd(client configClient) *cobra.Command {
	if client == nil {
		panic("NewConfigCmd: client dependency cannot be nil")
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
		Long:  configCommandLong,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print every resolved setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfig(cmd.OutOrStdout(), client.Values())
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write a sample config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := client.DefaultPath()
			if len(args) == 1 {
				path = args[0]
			}
			if err := client.WriteSample(path); err != nil {
				return err
			}
			colors.Success("Config file ready: " + path)
			return nil
		},
	})

	return configCmd
}

func printConfig(w io.Writer, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s = %s\n", k, values[k]); err != nil {
			return err
		}
	}
	return nil
}

// configCmd represents the config command
var configCmd = NewConfigCmd(configAdapter{})

func init() {
	cmd.RootCmd.AddCommand(configCmd)
}
