package app

import (
	"context"
	"fmt"
	"io"

	"github.com/cristianoliveira/dexview/internal/format"
)

// ShowUseCase prints one detail record.
type ShowUseCase struct {
	session *Session
}

// NewShowUseCase creates a show use-case.
func NewShowUseCase(session *Session) *ShowUseCase {
	if session == nil {
		panic("NewShowUseCase: session dependency cannot be nil")
	}
	return &ShowUseCase{session: session}
}

// Execute fetches the detail for idOrName without loading the whole catalog
// and writes it in formatName.
func (u *ShowUseCase) Execute(ctx context.Context, idOrName, formatName string, w io.Writer) error {
	detailFormat := format.DetailFormat(formatName)
	switch detailFormat {
	case "", format.DetailFormatText, format.DetailFormatJSON, format.DetailFormatYAML:
	default:
		return fmt.Errorf("show: unknown format: %s", formatName)
	}

	// favorites only decorate the output
	_ = u.session.LoadFavorites()
	detail, err := u.session.DetailFor(ctx, idOrName)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	rec := format.NewDetailRecord(detail, u.session.Favorites().Contains(detail.ID))
	return format.WriteDetail(rec, detailFormat, w)
}
