/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"fmt"
	"os"

	"github.com/cristianoliveira/dexview/cmd"
	"github.com/cristianoliveira/dexview/internal/app"
	"github.com/cristianoliveira/dexview/internal/colors"
	"github.com/cristianoliveira/dexview/internal/search"
	"github.com/cristianoliveira/dexview/internal/settings"
	tuiapp "github.com/cristianoliveira/dexview/internal/tui/app"
	"github.com/cristianoliveira/dexview/internal/tui/state"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type browseClient interface {
	Session() (*app.Session, error)
	Settings() (*settings.Manager, error)
	PageSize() int
	SearchProvider() search.Provider
}

const browseCommandLong = `Open the interactive catalog browser.

USAGE:
    dexview browse

KEY BINDINGS:
    up/down, j/k     Move the cursor
    left/right, h/l  Previous/next page (also p/n)
    /                Search by name
    t / T            Next/previous type
    f                Toggle favorites only
    space            Toggle favorite on the selected row
    enter            Open the detail panel
    esc              Close the detail panel or leave search
    r                Retry after a failed load
    ?                Toggle full help
    q, ctrl+c        Quit`

// NewBrowseCmd creates the browse command with explicit dependencies.
func NewBrowseCmd(client browseClient, runner tuiapp.ProgramRunner) *cobra.Command {
	if client == nil {
		panic("NewBrowseCmd: client dependency cannot be nil")
	}
	if runner == nil {
		panic("NewBrowseCmd: runner dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive catalog browser",
		Long:  browseCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, client, runner)
		},
	}
}

func runBrowse(cmd *cobra.Command, client browseClient, runner tuiapp.ProgramRunner) error {
	session, err := client.Session()
	if err != nil {
		return err
	}
	prefs, err := client.Settings()
	if err != nil {
		return err
	}

	browser := app.NewBrowser(client.PageSize(), client.SearchProvider())
	saved, err := prefs.Load()
	if err != nil {
		colors.Warning(fmt.Sprintf("ignoring saved browser settings: %v", err))
	}
	saved.Apply(browser)

	model := state.NewModel(cmd.Context(), session, state.Options{Browser: browser})
	if err := runner.Run(cmd.Context(), model); err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	if err := prefs.Save(settings.FromBrowser(model.Browser())); err != nil {
		colors.Warning(fmt.Sprintf("failed to save browser settings: %v", err))
	}
	return nil
}

// isTerminal reports whether stdout is attached to a terminal.
var isTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// runDefault opens the browser on a terminal and prints the first page otherwise.
func runDefault(browse, list *cobra.Command) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if isTerminal() {
			return browse.RunE(cmd, args)
		}
		return list.RunE(cmd, args)
	}
}

// browseCmd represents the browse command
var browseCmd = NewBrowseCmd(deps, tuiapp.NewDefaultProgramRunner())

func init() {
	cmd.RootCmd.AddCommand(browseCmd)
	cmd.RootCmd.RunE = runDefault(browseCmd, listCmd)
}
