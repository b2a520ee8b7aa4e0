package person

import (
	"iter"
	"time"

	"github.com/samber/lo"

	"github.com/rosterkit/roster/internal/types"
)

// Matches reports whether the record satisfies the filter at the given
// reference time. A nil filter matches everything. Records with an absent
// flag set never match a network condition.
func (p *Person) Matches(filter *types.PersonFilter, now time.Time) bool {
	if filter == nil {
		return true
	}

	if p.Status != filter.GetStatus() {
		return false
	}

	if filter.MinAgeOver != nil && p.AgeAt(now) <= *filter.MinAgeOver {
		return false
	}

	if filter.Networks != nil && !p.HasNetwork(*filter.Networks) {
		return false
	}

	if len(filter.Genders) > 0 && !lo.Contains(filter.Genders, p.Gender) {
		return false
	}

	return true
}

// Filter lazily yields the records matching the filter, preserving the
// relative order of the input. Elements past the point where the consumer
// stops are never evaluated.
func Filter(people iter.Seq[*Person], filter *types.PersonFilter, now time.Time) iter.Seq[*Person] {
	return func(yield func(*Person) bool) {
		for p := range people {
			if !p.Matches(filter, now) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// FilterSlice is the eager counterpart of Filter: a single pass building a
// materialized result. Observably equivalent to draining Filter.
func FilterSlice(people []*Person, filter *types.PersonFilter, now time.Time) []*Person {
	return lo.Filter(people, func(p *Person, _ int) bool {
		return p.Matches(filter, now)
	})
}
