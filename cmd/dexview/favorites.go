/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cristianoliveira/dexview/cmd"
	"github.com/cristianoliveira/dexview/internal/colors"
	"github.com/cristianoliveira/dexview/internal/format"
	"github.com/spf13/cobra"
)

type favoritesClient interface {
	ListFavorites(ctx context.Context, withNames bool, w io.Writer) error
	ToggleFavorite(ctx context.Context, arg string) (int, bool, error)
	ClearFavorites(ctx context.Context) error
}

const (
	favoritesCommandLong = `Manage favorites.

USAGE:
    dexview favorites <subcommand>

SUBCOMMANDS:
    list            Print the favorite ids
    toggle <id>     Add or remove one creature
    clear           Remove every favorite

EXAMPLES:
    # List favorites with their names
    dexview favorites list --names

    # Toggle by id or by name
    dexview favorites toggle 25
    dexview favorites toggle pikachu`
	clearCommandLong = `Remove every favorite.

USAGE:
    dexview favorites clear [OPTIONS]

OPTIONS:
    --force    Clear without confirmation
    -h, --help Show this help`
)

// confirmInput is read when clear asks for confirmation. Can be changed for testing.
var confirmInput io.Reader = os.Stdin

// NewFavoritesCmd creates the favorites command with explicit dependencies.
func NewFavoritesCmd(client favoritesClient) *cobra.Command {
	if client == nil {
		panic("NewFavoritesCmd: client dependency cannot be nil")
	}

	favoritesCmd := &cobra.Command{
		Use:   "favorites",
		Short: "List, toggle or clear favorites",
		Long:  favoritesCommandLong,
	}

	favoritesCmd.AddCommand(newFavoritesListCmd(client))
	favoritesCmd.AddCommand(newFavoritesToggleCmd(client))
	favoritesCmd.AddCommand(newFavoritesClearCmd(client))

	return favoritesCmd
}

func newFavoritesListCmd(client favoritesClient) *cobra.Command {
	var withNames bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the favorite ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.ListFavorites(cmd.Context(), withNames, cmd.OutOrStdout())
		},
	}
	listCmd.Flags().BoolVar(&withNames, "names", false, "Resolve names through the catalog")
	return listCmd
}

func newFavoritesToggleCmd(client favoritesClient) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id|name>",
		Short: "Add or remove one creature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, added, err := client.ToggleFavorite(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if added {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites\n", format.ItemNumber(id))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites\n", format.ItemNumber(id))
			}
			return nil
		},
	}
}

func newFavoritesClearCmd(client favoritesClient) *cobra.Command {
	var force bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every favorite",
		Long:  clearCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirm(cmd.OutOrStdout(), "Remove every favorite?") {
				colors.Info("Operation cancelled")
				return nil
			}
			if err := client.ClearFavorites(cmd.Context()); err != nil {
				return err
			}
			colors.Success("Favorites cleared")
			return nil
		},
	}
	clearCmd.Flags().BoolVar(&force, "force", false, "Clear without confirmation")
	return clearCmd
}

// confirm asks a yes/no question on w and reads the answer from confirmInput.
func confirm(w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s [y/N] ", question)
	answer, err := bufio.NewReader(confirmInput).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// favoritesCmd represents the favorites command
var favoritesCmd = NewFavoritesCmd(deps)

func init() {
	cmd.RootCmd.AddCommand(favoritesCmd)
}
