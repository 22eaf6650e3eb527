/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"context"
	"io"

	"github.com/cristianoliveira/dexview/cmd"
	"github.com/cristianoliveira/dexview/internal/app"
	"github.com/cristianoliveira/dexview/internal/search"
	"github.com/spf13/cobra"
)

type listClient interface {
	ListItems(ctx context.Context, opts app.ListOptions, w io.Writer) error
}

const listCommandLong = `Print one page of the catalog.

USAGE:
    dexview list [OPTIONS]

OPTIONS:
    --search <query>      Keep creatures whose name matches query
    --search-mode <mode>  Match mode: substring (default), token, regex
    --type <type>         Keep creatures of one type ("all" disables the filter)
    --favorites           Keep favorites only
    --page <n>            Page to print, clamped to the available range
    --page-size <n>       Rows per page (default from config)
    --format <format>     Output format: simple (default), table, json
    --template <tmpl>     Render each row with a preset or {{variable}} template
    -h, --help            Show this help

EXAMPLES:
    # Fire types whose name contains "char"
    dexview list --search char --type fire

    # Third page as JSON
    dexview list --page 3 --format json

    # Ids of every favorite, one per line
    dexview list --favorites --page-size 2000 --template ids

    # Custom row layout
    dexview list --template "{{number}};{{name}};{{types}}"

TEMPLATE PRESETS:
    names, ids, csv, markdown, starred

TEMPLATE VARIABLES:
    {{id}} {{number}} {{position}} {{name}} {{display-name}}
    {{types}} {{type-count}} {{image}} {{favorite}} {{star}}`

// listOutputWriter is the writer used by the list command. Can be changed for testing.
var listOutputWriter io.Writer

// NewListCmd creates the list command with explicit dependencies.
func NewListCmd(client listClient) *cobra.Command {
	if client == nil {
		panic("NewListCmd: client dependency cannot be nil")
	}

	var opts app.ListOptions
	var searchMode string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the catalog",
		Long:  listCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if searchMode != "" {
				opts.SearchProvider = search.New(searchMode)
			}
			w := listOutputWriter
			if w == nil {
				w = cmd.OutOrStdout()
			}
			return client.ListItems(cmd.Context(), opts, w)
		},
	}

	listCmd.Flags().StringVar(&opts.Search, "search", "", "Keep creatures whose name matches query")
	listCmd.Flags().StringVar(&searchMode, "search-mode", "", "Match mode: substring, token, regex")
	listCmd.Flags().StringVar(&opts.Type, "type", "", "Keep creatures of one type")
	listCmd.Flags().BoolVar(&opts.FavoritesOnly, "favorites", false, "Keep favorites only")
	listCmd.Flags().IntVar(&opts.Page, "page", 1, "Page to print")
	listCmd.Flags().IntVar(&opts.PageSize, "page-size", 0, "Rows per page")
	listCmd.Flags().StringVar(&opts.Format, "format", "simple", "Output format: simple, table, json")
	listCmd.Flags().StringVar(&opts.Template, "template", "", "Preset name or {{variable}} row template")

	return listCmd
}

// listCmd represents the list command
var listCmd = NewListCmd(deps)

func init() {
	cmd.RootCmd.AddCommand(listCmd)
}
