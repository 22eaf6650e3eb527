/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/cristianoliveira/dexview/internal/colors"
	"github.com/cristianoliveira/dexview/internal/config"
	"github.com/cristianoliveira/dexview/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
	quiet   bool
)

// RootCmd represents the base command when called without any subcommands.
// cmd/dexview attaches the subcommands and the default action.
var RootCmd = &cobra.Command{
	Use:           "dexview",
	Short:         "Browse the PokéAPI catalog from your terminal.",
	Long:          `Browse the PokéAPI catalog from your terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return Setup()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

// Setup loads configuration and applies the global flags. Flags win over
// the config file and the environment.
func Setup() error {
	if cfgFile != "" {
		if err := os.Setenv("DEXVIEW_CONFIG_PATH", cfgFile); err != nil {
			return err
		}
	}
	config.Load()

	if debug {
		config.Set("debug", "true")
		config.Set("logging_level", "debug")
	}
	if quiet {
		config.Set("quiet", "true")
	}
	colors.SetDebug(config.GetBool("debug", false))
	colors.SetQuiet(config.GetBool("quiet", false))

	if err := logging.InitGlobal(); err != nil {
		colors.Warning("file logging disabled: " + err.Error())
	}
	return nil
}

func init() {
	RootCmd.Version = Version()

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != cmd.Root() {
			printCommandHelp(cmd)
			return
		}
		PrintHelp(cmd)
	})

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/dexview/config.toml)")
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output and debug-level file logging")
	RootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
}
