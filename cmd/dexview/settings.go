/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"encoding/json"
	"fmt"

	"github.com/cristianoliveira/dexview/cmd"
	"github.com/cristianoliveira/dexview/internal/colors"
	"github.com/cristianoliveira/dexview/internal/settings"
	"github.com/spf13/cobra"
)

type settingsClient interface {
	Settings() (*settings.Manager, error)
}

const (
	settingsCommandLong = `Manage the saved browser settings.

The browser remembers its search query, selected type and favorites-only
toggle between sessions.

USAGE:
    dexview settings <subcommand>

SUBCOMMANDS:
    reset    Forget the saved settings
    show     Display the saved settings

EXAMPLES:
    # Reset settings with confirmation
    dexview settings reset

    # Reset settings without confirmation
    dexview settings reset --force

    # Show current settings
    dexview settings show`
	resetCommandLong = `Forget the saved browser settings.

USAGE:
    dexview settings reset [OPTIONS]

OPTIONS:
    --force    Reset without confirmation
    -h, --help Show this help`
)

// NewSettingsCmd creates the settings command with explicit dependencies.
func NewSettingsCmd(client settingsClient) *cobra.Command {
	if client == nil {
		panic("NewSettingsCmd: client dependency cannot be nil")
	}

	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage the saved browser settings",
		Long:  settingsCommandLong,
	}

	settingsCmd.AddCommand(newSettingsResetCmd(client))
	settingsCmd.AddCommand(newSettingsShowCmd(client))

	return settingsCmd
}

func newSettingsResetCmd(client settingsClient) *cobra.Command {
	var force bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved settings",
		Long:  resetCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirm(cmd.OutOrStdout(), "Reset browser settings to defaults?") {
				colors.Info("Operation cancelled")
				return nil
			}
			prefs, err := client.Settings()
			if err != nil {
				return err
			}
			if err := prefs.Reset(); err != nil {
				return fmt.Errorf("reset settings: %w", err)
			}
			colors.Success("Settings reset to defaults")
			return nil
		},
	}
	resetCmd.Flags().BoolVar(&force, "force", false, "Reset without confirmation")
	return resetCmd
}

func newSettingsShowCmd(client settingsClient) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the saved settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := client.Settings()
			if err != nil {
				return err
			}
			s, err := prefs.Load()
			if err != nil {
				colors.Warning(fmt.Sprintf("showing defaults: %v", err))
			}
			data, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal settings: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

// settingsCmd represents the settings command
var settingsCmd = NewSettingsCmd(deps)

func init() {
	cmd.RootCmd.AddCommand(settingsCmd)
}
