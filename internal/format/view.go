package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/dexview/internal/colors"
	"github.com/cristianoliveira/dexview/internal/domain"
)

const favoriteMark = "*"

// SimpleFormatter formats items one per line.
type SimpleFormatter struct{}

// NewSimpleFormatter creates a new SimpleFormatter.
func NewSimpleFormatter() *SimpleFormatter {
	return &SimpleFormatter{}
}

// FormatView formats a view in simple format.
func (f *SimpleFormatter) FormatView(view domain.View, favorites domain.Favorites, writer io.Writer) error {
	if len(view.Items) == 0 {
		_, err := fmt.Fprintf(writer, "%s%s%s\n", colors.Blue, EmptyMessage(view.Empty), colors.Reset)
		return err
	}
	favorites = favoritesOrEmpty(favorites)
	for _, item := range view.Items {
		mark := " "
		if favorites.Contains(item.ID) {
			mark = favoriteMark
		}
		_, err := fmt.Fprintf(writer, "%s %-5s %-16s %s\n", mark, ItemNumber(item.ID), DisplayName(item.Name), strings.Join(item.Types, ", "))
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(writer, RangeSummary(view))
	return err
}

// TableFormatter formats items in a table with headers.
type TableFormatter struct {
	config  *TableConfig
	columns []TableColumn
}

// NewTableFormatter creates a new TableFormatter with the default columns.
func NewTableFormatter() *TableFormatter {
	config := DefaultTableConfig()
	return &TableFormatter{config: config, columns: defaultColumns(config)}
}

// FormatView formats a view as a table.
func (f *TableFormatter) FormatView(view domain.View, favorites domain.Favorites, writer io.Writer) error {
	if len(view.Items) == 0 {
		_, err := fmt.Fprintf(writer, "%s%s%s\n", colors.Blue, EmptyMessage(view.Empty), colors.Reset)
		return err
	}
	favorites = favoritesOrEmpty(favorites)
	if f.config.ShowHeaders {
		if err := f.writeHeader(writer); err != nil {
			return err
		}
		if err := f.writeSeparator(writer); err != nil {
			return err
		}
	}
	for _, item := range view.Items {
		if err := f.writeRow(item, favorites, writer); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(writer, RangeSummary(view))
	return err
}

// JSONFormatter formats the whole view as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonItem struct {
	domain.Item
	Favorite bool `json:"favorite"`
}

type jsonView struct {
	domain.View
	Items []jsonItem `json:"items"`
}

// FormatView formats a view as indented JSON, annotating favorites.
func (f *JSONFormatter) FormatView(view domain.View, favorites domain.Favorites, writer io.Writer) error {
	favorites = favoritesOrEmpty(favorites)
	out := jsonView{View: view, Items: make([]jsonItem, 0, len(view.Items))}
	for _, item := range view.Items {
		out.Items = append(out.Items, jsonItem{Item: item, Favorite: favorites.Contains(item.ID)})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal view to JSON: %w", err)
	}
	if _, err := writer.Write(data); err != nil {
		return err
	}
	_, err = fmt.Fprintln(writer)
	return err
}
