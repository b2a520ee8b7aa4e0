// Package sampledata seeds the documented sample roster used by the demo
// binary and the service tests.
package sampledata

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/rosterkit/roster/internal/domain/person"
	"github.com/rosterkit/roster/internal/service"
	"github.com/rosterkit/roster/internal/types"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// samplePeople is the fixed sequence of eight documented records, in the
// order queries must preserve.
var samplePeople = []service.CreatePersonRequest{
	{
		Title:      "Mister",
		GivenName:  "Tony",
		FamilyName: "Spencer",
		Gender:     types.GenderMale,
		BirthDate:  date(1972, time.May, 14),
		Networks:   lo.ToPtr(types.NetworkTwitter | types.NetworkFacebook),
	},
	{
		Title:      "Ms.",
		GivenName:  "Emily",
		FamilyName: "Blunt",
		Gender:     types.GenderFemale,
		BirthDate:  date(1983, time.February, 23),
		Networks:   lo.ToPtr(types.NetworkTwitter),
	},
	{
		Title:      "Mr.",
		GivenName:  "Matt",
		FamilyName: "Damon",
		Gender:     types.GenderMale,
		BirthDate:  date(1970, time.October, 8),
		Networks:   lo.ToPtr(types.NetworkTwitter),
	},
	{
		Title:      "Mr.",
		GivenName:  "Mark",
		FamilyName: "Webber",
		Gender:     types.GenderMale,
		BirthDate:  date(1976, time.August, 27),
		Networks:   lo.ToPtr(types.NetworkFacebook),
	},
	{
		Title:      "Mr.",
		GivenName:  "Chris",
		FamilyName: "Pine",
		Gender:     types.GenderMale,
		BirthDate:  date(1980, time.August, 26),
		Networks:   lo.ToPtr(types.NetworkTwitter | types.NetworkInstagram),
	},
	{
		Title:      "Sir",
		GivenName:  "Elton",
		FamilyName: "John",
		Gender:     types.GenderMale,
		BirthDate:  date(1947, time.March, 25),
		Networks:   lo.ToPtr(types.NetworkAll),
	},
	{
		Title:      "Ms.",
		GivenName:  "Taylor",
		FamilyName: "Swift",
		Gender:     types.GenderFemale,
		BirthDate:  date(1989, time.December, 13),
		Networks:   lo.ToPtr(types.NetworkTwitter | types.NetworkInstagram),
	},
	{
		// No networks ever recorded: the absent flag set case.
		Title:      "Mr.",
		GivenName:  "Bill",
		FamilyName: "Murray",
		Gender:     types.GenderMale,
		BirthDate:  date(1950, time.September, 21),
	},
}

// SeedPeople creates the eight sample records through the service create
// path and returns them in insertion order.
func SeedPeople(ctx context.Context, svc service.PersonService) ([]*person.Person, error) {
	people := make([]*person.Person, 0, len(samplePeople))
	for _, req := range samplePeople {
		p, err := svc.CreatePerson(ctx, req)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, nil
}
