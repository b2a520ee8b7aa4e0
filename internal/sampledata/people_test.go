package sampledata_test

import (
	"context"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterkit/roster/internal/clock"
	"github.com/rosterkit/roster/internal/config"
	"github.com/rosterkit/roster/internal/domain/person"
	"github.com/rosterkit/roster/internal/logger"
	"github.com/rosterkit/roster/internal/repository/memory"
	"github.com/rosterkit/roster/internal/sampledata"
	"github.com/rosterkit/roster/internal/service"
	"github.com/rosterkit/roster/internal/types"
)

func TestSeedPeople(t *testing.T) {
	referenceNow := time.Date(2018, time.December, 20, 0, 0, 0, 0, time.UTC)
	ctx := clock.Into(context.Background(), clock.Fixed(referenceNow))

	log, err := logger.NewLogger(config.GetDefaultConfig())
	require.NoError(t, err)

	svc := service.NewPersonService(service.ServiceParams{
		Logger:     log,
		Config:     config.GetDefaultConfig(),
		PersonRepo: memory.NewPersonStore(),
	})

	people, err := sampledata.SeedPeople(ctx, svc)
	require.NoError(t, err)
	require.Len(t, people, 8)

	// The documented query over the documented roster.
	matches, err := svc.OlderWithNetwork(ctx, 35, types.NetworkTwitter)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Mr. Tony Spencer",
		"Mr. Matt Damon",
		"Mr. Chris Pine",
		"Sir Elton John",
	}, lo.Map(matches, func(p *person.Person, _ int) string { return p.FullName() }))
}
