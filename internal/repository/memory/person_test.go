package memory

import (
	"context"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterkit/roster/internal/clock"
	"github.com/rosterkit/roster/internal/domain/person"
	ierr "github.com/rosterkit/roster/internal/errors"
	"github.com/rosterkit/roster/internal/types"
)

var testNow = time.Date(2018, time.December, 20, 0, 0, 0, 0, time.UTC)

func testCtx() context.Context {
	return clock.Into(context.Background(), clock.Fixed(testNow))
}

func seedPerson(t *testing.T, store *PersonStore, given string, birthYear int, networks *types.SocialNetworks) *person.Person {
	t.Helper()
	ctx := testCtx()
	p, err := person.New(ctx, types.GenderFemale)
	require.NoError(t, err)
	p.SetName(ctx, given, "Tester")
	p.SetBirthDate(ctx, time.Date(birthYear, time.March, 3, 0, 0, 0, 0, time.UTC))
	if networks != nil {
		require.NoError(t, p.AddNetworks(ctx, *networks))
	}
	require.NoError(t, store.Create(ctx, p))
	return p
}

func TestPersonStore_CreateAndGet(t *testing.T) {
	store := NewPersonStore()
	p := seedPerson(t, store, "Tony", 1972, lo.ToPtr(types.NetworkTwitter))

	got, err := store.GetByID(testCtx(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	_, err = store.GetByID(testCtx(), "pers_missing")
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))
}

func TestPersonStore_CreateDuplicate(t *testing.T) {
	store := NewPersonStore()
	p := seedPerson(t, store, "Tony", 1972, nil)

	err := store.Create(testCtx(), p)
	require.Error(t, err)
	assert.True(t, ierr.IsAlreadyExists(err))
}

func TestPersonStore_CreateNil(t *testing.T) {
	store := NewPersonStore()
	err := store.Create(testCtx(), nil)
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestPersonStore_ListPreservesInsertionOrder(t *testing.T) {
	store := NewPersonStore()
	for _, name := range []string{"A", "B", "C", "D"} {
		seedPerson(t, store, name, 1970, lo.ToPtr(types.NetworkTwitter))
	}

	people, err := store.List(testCtx(), types.NewNoLimitPersonFilter())
	require.NoError(t, err)

	names := lo.Map(people, func(p *person.Person, _ int) string { return p.GivenName })
	assert.Equal(t, []string{"A", "B", "C", "D"}, names)
}

func TestPersonStore_ListAppliesFilterAndLimit(t *testing.T) {
	store := NewPersonStore()
	seedPerson(t, store, "Old1", 1960, lo.ToPtr(types.NetworkTwitter))
	seedPerson(t, store, "Young", 1999, lo.ToPtr(types.NetworkTwitter))
	seedPerson(t, store, "Old2", 1955, lo.ToPtr(types.NetworkTwitter))
	seedPerson(t, store, "Old3", 1950, lo.ToPtr(types.NetworkTwitter))

	filter := types.NewNoLimitPersonFilter()
	filter.MinAgeOver = lo.ToPtr(35)
	filter.Networks = lo.ToPtr(types.NetworkTwitter)

	people, err := store.List(testCtx(), filter)
	require.NoError(t, err)
	assert.Len(t, people, 3)

	filter.Limit = lo.ToPtr(2)
	people, err = store.List(testCtx(), filter)
	require.NoError(t, err)
	assert.Len(t, people, 2)
	assert.Equal(t, "Old1", people[0].GivenName)

	count, err := store.Count(testCtx(), filter)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPersonStore_ListEmpty(t *testing.T) {
	store := NewPersonStore()
	people, err := store.List(testCtx(), types.NewNoLimitPersonFilter())
	require.NoError(t, err)
	assert.Empty(t, people)
}

func TestPersonStore_All(t *testing.T) {
	store := NewPersonStore()
	seedPerson(t, store, "A", 1970, nil)
	seedPerson(t, store, "B", 1980, nil)

	var names []string
	for p := range store.All(testCtx()) {
		names = append(names, p.GivenName)
	}
	assert.Equal(t, []string{"A", "B"}, names)
}
