package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/dexview/internal/colors"
	"github.com/cristianoliveira/dexview/internal/domain"
)

// TableConfig holds configuration for table formatting.
type TableConfig struct {
	// ShowHeaders determines whether to show column headers.
	ShowHeaders bool

	// HeaderColor is the color to use for headers.
	HeaderColor string

	// ColumnWidths defines the width for each column.
	ColumnWidths map[string]int

	// ColumnAlignments defines the alignment for each column (left, right, center).
	ColumnAlignments map[string]string
}

// DefaultTableConfig returns a default table configuration.
func DefaultTableConfig() *TableConfig {
	return &TableConfig{
		ShowHeaders: true,
		HeaderColor: colors.Blue,
		ColumnWidths: map[string]int{
			"FAV":   3,
			"ID":    5,
			"NAME":  16,
			"TYPES": 20,
			"IMAGE": 10,
		},
		ColumnAlignments: map[string]string{
			"FAV": "center",
			"ID":  "right",
		},
	}
}

// TableColumn represents a column in a table.
type TableColumn struct {
	// Name is the column name displayed in the header.
	Name string

	// Width is the column width in characters.
	Width int

	// Alignment is the text alignment (left, right, center).
	Alignment string

	// Extractor extracts the value from an item.
	Extractor func(item domain.Item, favorites domain.Favorites) string
}

func defaultColumns(config *TableConfig) []TableColumn {
	column := func(name string, extract func(domain.Item, domain.Favorites) string) TableColumn {
		return TableColumn{
			Name:      name,
			Width:     config.ColumnWidths[name],
			Alignment: config.ColumnAlignments[name],
			Extractor: extract,
		}
	}
	return []TableColumn{
		column("FAV", func(item domain.Item, favs domain.Favorites) string {
			if favs.Contains(item.ID) {
				return favoriteMark
			}
			return ""
		}),
		column("ID", func(item domain.Item, _ domain.Favorites) string {
			return fmt.Sprintf("%d", item.ID)
		}),
		column("NAME", func(item domain.Item, _ domain.Favorites) string {
			return DisplayName(item.Name)
		}),
		column("TYPES", func(item domain.Item, _ domain.Favorites) string {
			return strings.Join(item.Types, ",")
		}),
		column("IMAGE", func(item domain.Item, _ domain.Favorites) string {
			if item.Image == "" {
				return "no"
			}
			return "yes"
		}),
	}
}

// WithColumns replaces the table columns.
func (f *TableFormatter) WithColumns(columns ...TableColumn) *TableFormatter {
	f.columns = columns
	return f
}

func (f *TableFormatter) writeHeader(writer io.Writer) error {
	cells := make([]string, 0, len(f.columns))
	for _, col := range f.columns {
		cells = append(cells, formatString(col.Name, col.Width, col.Alignment))
	}
	_, err := fmt.Fprintf(writer, "%s%s%s\n", f.config.HeaderColor, strings.Join(cells, "  "), colors.Reset)
	return err
}

func (f *TableFormatter) writeSeparator(writer io.Writer) error {
	cells := make([]string, 0, len(f.columns))
	for _, col := range f.columns {
		cells = append(cells, makeSeparator(col.Width))
	}
	_, err := fmt.Fprintf(writer, "%s%s%s\n", f.config.HeaderColor, strings.Join(cells, "  "), colors.Reset)
	return err
}

func (f *TableFormatter) writeRow(item domain.Item, favorites domain.Favorites, writer io.Writer) error {
	cells := make([]string, 0, len(f.columns))
	for _, col := range f.columns {
		value := col.Extractor(item, favorites)
		if col.Alignment == "" || col.Alignment == "left" {
			cells = append(cells, truncateString(value, col.Width))
		} else {
			cells = append(cells, formatString(value, col.Width, col.Alignment))
		}
	}
	_, err := fmt.Fprintln(writer, strings.TrimRight(strings.Join(cells, "  "), " "))
	return err
}

// Helper functions

// formatString formats a string with the specified width and alignment.
func formatString(s string, width int, alignment string) string {
	if len(s) >= width {
		return s[:width]
	}

	switch alignment {
	case "right":
		return strings.Repeat(" ", width-len(s)) + s
	case "center":
		left := (width - len(s)) / 2
		right := width - len(s) - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default: // left
		return s + strings.Repeat(" ", width-len(s))
	}
}

// truncateString truncates a string to the specified width, adding "..." if truncated.
func truncateString(s string, width int) string {
	if len(s) <= width {
		return s + strings.Repeat(" ", width-len(s))
	}
	if width < 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

// makeSeparator creates a separator line of the specified width.
func makeSeparator(width int) string {
	return strings.Repeat("-", width)
}
