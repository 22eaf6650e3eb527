package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cristianoliveira/dexview/internal/colors"
	"github.com/cristianoliveira/dexview/internal/format"
)

// FavoritesUseCase lists, toggles and clears favorites.
type FavoritesUseCase struct {
	session *Session
}

// NewFavoritesUseCase creates a favorites use-case.
func NewFavoritesUseCase(session *Session) *FavoritesUseCase {
	if session == nil {
		panic("NewFavoritesUseCase: session dependency cannot be nil")
	}
	return &FavoritesUseCase{session: session}
}

// List prints the favorite ids, resolved to names when withNames is set.
func (u *FavoritesUseCase) List(ctx context.Context, withNames bool, w io.Writer) error {
	_ = u.session.LoadFavorites()
	ids := u.session.Favorites().IDs()
	if len(ids) == 0 {
		_, err := fmt.Fprintf(w, "%s%s%s\n", colors.Blue, "No favorites yet", colors.Reset)
		return err
	}

	if withNames {
		if err := u.session.LoadCatalog(ctx); err != nil {
			return fmt.Errorf("favorites: %w", err)
		}
	}
	for _, id := range ids {
		line := format.ItemNumber(id)
		if withNames {
			if item, ok := u.session.Find(strconv.Itoa(id)); ok {
				line += "  " + format.DisplayName(item.Name)
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Toggle flips the favorite state of the creature identified by arg, which
// may be a numeric id or a name resolved through the remote service.
func (u *FavoritesUseCase) Toggle(ctx context.Context, arg string) (int, bool, error) {
	_ = u.session.LoadFavorites()

	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		detail, derr := u.session.DetailFor(ctx, arg)
		if derr != nil {
			return 0, false, fmt.Errorf("favorites: resolve %q: %w", arg, derr)
		}
		id = detail.ID
	}
	if id <= 0 {
		return 0, false, fmt.Errorf("favorites: invalid id %q", arg)
	}

	added, err := u.session.ToggleFavorite(id)
	if err != nil {
		return id, added, fmt.Errorf("favorites: %w", err)
	}
	return id, added, nil
}

// Clear removes every favorite.
func (u *FavoritesUseCase) Clear(ctx context.Context) error {
	_ = u.session.LoadFavorites()
	if err := u.session.ClearFavorites(ctx); err != nil {
		return fmt.Errorf("favorites: %w", err)
	}
	return nil
}
