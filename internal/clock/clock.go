// Package clock provides an injectable time source so that age computation
// and default timestamps stay deterministic in tests.
package clock

import (
	"context"
	"time"
)

// Clock is the time source consumed by the record model and queries.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// System returns the wall-clock time source.
func System() Clock {
	return systemClock{}
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// Fixed returns a clock frozen at the given instant.
func Fixed(now time.Time) Clock {
	return fixedClock{now: now.UTC()}
}

type contextKey struct{}

// Into stores a clock in the context for downstream consumers.
func Into(ctx context.Context, c Clock) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the clock stored in the context, falling back to the
// system clock when none is set.
func FromContext(ctx context.Context) Clock {
	if c, ok := ctx.Value(contextKey{}).(Clock); ok {
		return c
	}
	return System()
}
