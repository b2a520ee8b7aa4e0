// Package memory holds the in-memory repository implementations. The roster
// keeps its records in process memory; insertion order is the only ordering
// queries rely on.
package memory

import (
	"context"
	"iter"
	"sync"

	"github.com/rosterkit/roster/internal/clock"
	"github.com/rosterkit/roster/internal/domain/person"
	ierr "github.com/rosterkit/roster/internal/errors"
	"github.com/rosterkit/roster/internal/types"
)

// PersonStore is an order-preserving in-memory implementation of the person
// repository.
type PersonStore struct {
	mu     sync.RWMutex
	people []*person.Person
	byID   map[string]*person.Person
}

func NewPersonStore() *PersonStore {
	return &PersonStore{
		byID: make(map[string]*person.Person),
	}
}

// NewPersonRepository returns the store as the domain repository interface.
func NewPersonRepository() person.Repository {
	return NewPersonStore()
}

func (s *PersonStore) Create(ctx context.Context, p *person.Person) error {
	if p == nil {
		return ierr.NewError("person cannot be nil").
			WithHint("A person record is required").
			Mark(ierr.ErrValidation)
	}
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[p.ID]; exists {
		return ierr.NewError("person already exists").
			WithHintf("A person with id %s already exists", p.ID).
			Mark(ierr.ErrAlreadyExists)
	}

	s.people = append(s.people, p)
	s.byID[p.ID] = p
	return nil
}

func (s *PersonStore) GetByID(ctx context.Context, id string) (*person.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.byID[id]
	if !exists {
		return nil, ierr.NewError("person not found").
			WithHintf("No person with id %s", id).
			Mark(ierr.ErrNotFound)
	}
	return p, nil
}

func (s *PersonStore) List(ctx context.Context, filter *types.PersonFilter) ([]*person.Person, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	now := clock.FromContext(ctx).Now()
	result := person.FilterSlice(s.people, filter, now)

	if filter != nil && !filter.IsUnlimited() && len(result) > filter.GetLimit() {
		result = result[:filter.GetLimit()]
	}
	return result, nil
}

func (s *PersonStore) All(ctx context.Context) iter.Seq[*person.Person] {
	return func(yield func(*person.Person) bool) {
		s.mu.RLock()
		snapshot := make([]*person.Person, len(s.people))
		copy(snapshot, s.people)
		s.mu.RUnlock()

		for _, p := range snapshot {
			if !yield(p) {
				return
			}
		}
	}
}

func (s *PersonStore) Count(ctx context.Context, filter *types.PersonFilter) (int, error) {
	people, err := s.List(ctx, filter)
	if err != nil {
		return 0, err
	}
	return len(people), nil
}
