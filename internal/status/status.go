/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/

// Package status renders a one-line favorites summary for shell prompts and
// terminal status bars. It reads local state only and never contacts the
// remote service.
package status

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/dexview/internal/domain"
)

// Formats accepted by Render.
const (
	FormatCompact   = "compact"
	FormatDetailed  = "detailed"
	FormatCountOnly = "count-only"
)

const favoriteIcon = "★"

// Options holds parameters for the status line.
type Options struct {
	Format  string // "compact", "detailed", "count-only"
	Enabled bool   // true to enable output
}

// Snapshot is the local state the status line is built from.
type Snapshot struct {
	Favorites     int
	Query         string
	Type          string
	FavoritesOnly bool
}

// Client defines the interface for status line operations.
type Client interface {
	Snapshot() (Snapshot, error)
	GetConfigString(key, defaultValue string) string
}

// Render builds the status line. Disabled output and an empty favorites set
// both yield an empty string.
func Render(client Client, opts Options) (string, error) {
	if !opts.Enabled {
		return "", nil
	}

	snap, err := client.Snapshot()
	if err != nil {
		return "", err
	}
	if snap.Favorites == 0 {
		return "", nil
	}

	format := opts.Format
	if format == "" {
		format = client.GetConfigString("status_format", FormatCompact)
	}

	switch format {
	case FormatCompact:
		return colorize(client, fmt.Sprintf("%s %d", favoriteIcon, snap.Favorites)), nil
	case FormatDetailed:
		return colorize(client, formatDetailed(snap)), nil
	case FormatCountOnly:
		return fmt.Sprintf("%d", snap.Favorites), nil
	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}
}

// formatDetailed appends the saved browser filters to the favorites count.
func formatDetailed(snap Snapshot) string {
	parts := []string{fmt.Sprintf("%s %d", favoriteIcon, snap.Favorites)}
	if snap.Type != "" && snap.Type != domain.AllTypes {
		parts = append(parts, "type:"+snap.Type)
	}
	if snap.Query != "" {
		parts = append(parts, fmt.Sprintf("q:%q", snap.Query))
	}
	if snap.FavoritesOnly {
		parts = append(parts, "fav-only")
	}
	return strings.Join(parts, " ")
}

// colorize wraps s in a tmux style sequence when status_color is set.
func colorize(client Client, s string) string {
	color := strings.TrimSpace(client.GetConfigString("status_color", ""))
	if color == "" {
		return s
	}
	return fmt.Sprintf("#[fg=%s]%s#[default]", color, s)
}
