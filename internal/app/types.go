package app

import (
	"context"
	"fmt"
	"io"

	"github.com/sourcegraph/conc/pool"
)

// TypeCount pairs a type with its remote membership count.
type TypeCount struct {
	Name  string
	Count int
}

// TypesUseCase prints the type taxonomy.
type TypesUseCase struct {
	session *Session
}

// NewTypesUseCase creates a types use-case.
func NewTypesUseCase(session *Session) *TypesUseCase {
	if session == nil {
		panic("NewTypesUseCase: session dependency cannot be nil")
	}
	return &TypesUseCase{session: session}
}

// maxCountRequests caps concurrent membership requests.
const maxCountRequests = 8

// Execute writes every type name, with remote membership counts when counts is set.
func (u *TypesUseCase) Execute(ctx context.Context, counts bool, w io.Writer) error {
	refs, err := u.session.Client().ListTypes(ctx)
	if err != nil {
		return fmt.Errorf("types: %w", err)
	}
	if !counts {
		for _, ref := range refs {
			if _, err := fmt.Fprintln(w, ref.Name); err != nil {
				return err
			}
		}
		return nil
	}

	results := make([]TypeCount, len(refs))
	p := pool.New().WithMaxGoroutines(maxCountRequests).WithErrors().WithContext(ctx)
	for i, ref := range refs {
		p.Go(func(ctx context.Context) error {
			members, err := u.session.Client().ListItemsByType(ctx, ref.Name)
			if err != nil {
				return err
			}
			results[i] = TypeCount{Name: ref.Name, Count: len(members)}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return fmt.Errorf("types: %w", err)
	}
	for _, tc := range results {
		if _, err := fmt.Fprintf(w, "%-10s %d\n", tc.Name, tc.Count); err != nil {
			return err
		}
	}
	return nil
}
