package person

import (
	"context"
	"iter"

	"github.com/rosterkit/roster/internal/types"
)

type Repository interface {
	Create(ctx context.Context, p *Person) error
	GetByID(ctx context.Context, id string) (*Person, error)
	// List returns the records matching the filter in insertion order,
	// evaluated against the clock carried in the context.
	List(ctx context.Context, filter *types.PersonFilter) ([]*Person, error)
	// All yields every record in insertion order without materializing.
	All(ctx context.Context) iter.Seq[*Person]
	Count(ctx context.Context, filter *types.PersonFilter) (int, error)
}
