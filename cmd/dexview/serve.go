/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cristianoliveira/dexview/cmd"
	"github.com/cristianoliveira/dexview/internal/app"
	"github.com/cristianoliveira/dexview/internal/colors"
	"github.com/cristianoliveira/dexview/internal/config"
	"github.com/cristianoliveira/dexview/internal/logging"
	"github.com/cristianoliveira/dexview/internal/search"
	"github.com/cristianoliveira/dexview/internal/server"
	"github.com/spf13/cobra"
)

type serveClient interface {
	Session() (*app.Session, error)
	PageSize() int
	SearchProvider() search.Provider
}

const (
	serveCommandLong = `Serve the catalog as a local JSON API.

USAGE:
    dexview serve [OPTIONS]

OPTIONS:
    --addr <host:port>  Listen address (default from config, 127.0.0.1:8765)
    -h, --help          Show this help

ENDPOINTS:
    GET  /api/items?q=&type=&favorites=&page=
    GET  /api/items/{id}
    GET  /api/types
    GET  /api/favorites
    POST /api/favorites/{id}/toggle
    GET  /healthz`

	shutdownTimeout = 5 * time.Second
)

// NewServeCmd creates the serve command with explicit dependencies.
func NewServeCmd(client serveClient) *cobra.Command {
	if client == nil {
		panic("NewServeCmd: client dependency cannot be nil")
	}

	var addr string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local JSON API",
		Long:  serveCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = config.Get("serve_addr", config.DefaultServeAddr)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, client, addr)
		},
	}

	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address")

	return serveCmd
}

// runServe loads the catalog in the background and serves until ctx is done.
// Requests made before the load completes see the loading state.
func runServe(ctx context.Context, client serveClient, addr string) error {
	session, err := client.Session()
	if err != nil {
		return err
	}

	go func() {
		if err := session.Start(ctx); err != nil {
			colors.Error(fmt.Sprintf("catalog load failed: %v", err))
			logging.Error("catalog load failed", "error", err.Error())
			return
		}
		colors.Info(fmt.Sprintf("catalog loaded: %d creatures", len(session.Items())))
	}()

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(session, server.Options{PageSize: client.PageSize(), Provider: client.SearchProvider()}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		colors.Info(fmt.Sprintf("dexview API listening on http://%s", addr))
		logging.Info("server started", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("serve: shutdown: %w", err)
	}
	logging.Info("server stopped", "addr", addr)
	return nil
}

// serveCmd represents the serve command
var serveCmd = NewServeCmd(deps)

func init() {
	cmd.RootCmd.AddCommand(serveCmd)
}
