package app

import (
	"context"
	"fmt"
	"io"

	"github.com/cristianoliveira/dexview/internal/format"
	"github.com/cristianoliveira/dexview/internal/formatter"
	"github.com/cristianoliveira/dexview/internal/search"
)

// ListOptions holds the filter and output parameters for listing items.
type ListOptions struct {
	Search         string
	Type           string
	FavoritesOnly  bool
	Page           int
	PageSize       int
	Format         string
	// Template is a preset name or a {{variable}} template. It takes
	// precedence over Format.
	Template       string
	SearchProvider search.Provider
}

// ListUseCase prints one filtered page of the catalog.
type ListUseCase struct {
	session *Session
}

// NewListUseCase creates a new list use-case.
func NewListUseCase(session *Session) *ListUseCase {
	if session == nil {
		panic("NewListUseCase: session dependency cannot be nil")
	}
	return &ListUseCase{session: session}
}

// Execute loads the session and writes the requested page to w.
func (u *ListUseCase) Execute(ctx context.Context, opts ListOptions, w io.Writer) error {
	formatName := opts.Format
	if formatName == "" {
		formatName = string(format.FormatterTypeSimple)
	}
	if opts.Template == "" && !format.IsValidFormat(formatName) {
		return fmt.Errorf("list: unknown format: %s", formatName)
	}
	if opts.Template != "" {
		if _, err := formatter.Resolve(opts.Template); err != nil {
			return fmt.Errorf("list: %w", err)
		}
	}

	if err := u.session.Start(ctx); err != nil {
		return fmt.Errorf("list: %w", err)
	}

	browser := NewBrowser(opts.PageSize, opts.SearchProvider)
	browser.SetQuery(opts.Search)
	browser.SetType(opts.Type)
	browser.SetFavoritesOnly(opts.FavoritesOnly)
	browser.SetPage(opts.Page)

	view := u.session.View(browser)
	if opts.Template != "" {
		return formatter.RenderView(view, u.session.Favorites().Snapshot(), opts.Template, w)
	}
	return format.NewFormatter(format.FormatterType(formatName)).FormatView(view, u.session.Favorites().Snapshot(), w)
}
