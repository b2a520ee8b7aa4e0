package render

import (
	"context"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterkit/roster/internal/clock"
	"github.com/rosterkit/roster/internal/domain/person"
	"github.com/rosterkit/roster/internal/types"
)

var testNow = time.Date(2018, time.December, 20, 0, 0, 0, 0, time.UTC)

func testPerson(t *testing.T) *person.Person {
	t.Helper()
	ctx := clock.Into(context.Background(), clock.Fixed(testNow))
	p, err := person.New(ctx, types.GenderMale)
	require.NoError(t, err)
	p.SetTitle(ctx, "Mister")
	p.SetName(ctx, "Tony", "Spencer")
	p.SetBirthDate(ctx, time.Date(1972, time.May, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, p.AddNetworks(ctx, types.NetworkTwitter|types.NetworkFacebook))
	return p
}

func TestComma(t *testing.T) {
	got := Comma(testPerson(t), testNow)

	assert.Contains(t, got, "full_name=Mr. Tony Spencer")
	assert.Contains(t, got, "age=46")
	assert.Contains(t, got, "networks=twitter|facebook")
	// One line, comma-joined.
	assert.NotContains(t, got, "\n")
	assert.True(t, strings.Index(got, "id=") < strings.Index(got, "age="),
		"attributes must keep declaration order")
}

func TestLines(t *testing.T) {
	got := Lines(testPerson(t), testNow)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 13)
	assert.Contains(t, lines[1], "display_id: "+types.SHORT_ID_PREFIX_PERSON)
	assert.True(t, strings.HasPrefix(lines[0], "id: "))
	assert.Contains(t, lines, "full_name: Mr. Tony Spencer")
	assert.Contains(t, lines, "birth_date: 1972-05-14")
}

func TestJSON(t *testing.T) {
	got, err := JSON(testPerson(t), testNow)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, jsoniter.UnmarshalFromString(got, &decoded))
	assert.Equal(t, "Mr. Tony Spencer", decoded["full_name"])
	assert.Equal(t, "male", decoded["gender"])
	assert.EqualValues(t, 46, decoded["age"])

	// The stream writer preserves declaration order; "id" comes first.
	assert.True(t, strings.HasPrefix(got, `{"id":`))
}
