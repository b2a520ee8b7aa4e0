package types

import (
	"testing"
	"time"
)

func TestAgeAt(t *testing.T) {
	tests := []struct {
		name      string
		birthDate time.Time
		now       time.Time
		want      int
	}{
		{
			name:      "birthday already passed this year",
			birthDate: time.Date(1986, time.April, 22, 0, 0, 0, 0, time.UTC),
			now:       time.Date(2018, time.December, 20, 0, 0, 0, 0, time.UTC),
			want:      32,
		},
		{
			name:      "birthday not yet reached this year",
			birthDate: time.Date(1986, time.April, 22, 0, 0, 0, 0, time.UTC),
			now:       time.Date(2018, time.February, 1, 0, 0, 0, 0, time.UTC),
			want:      31,
		},
		{
			name:      "same day of year counts as reached",
			birthDate: time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC),
			now:       time.Date(2020, time.June, 15, 0, 0, 0, 0, time.UTC),
			want:      30,
		},
		{
			name:      "day before the birthday",
			birthDate: time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC),
			now:       time.Date(2020, time.June, 14, 0, 0, 0, 0, time.UTC),
			want:      29,
		},
		{
			// March 1 in a leap year has day-of-year 61, one past the
			// non-leap 60, so the comparison still passes.
			name:      "leap year reference date",
			birthDate: time.Date(1985, time.March, 1, 0, 0, 0, 0, time.UTC),
			now:       time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC),
			want:      35,
		},
		{
			// Born March 1 of a leap year (day-of-year 61); on the same
			// calendar day of a non-leap year (day-of-year 60) the
			// documented rule has not reached the birthday yet. This is
			// the known leap-year imperfection, preserved on purpose.
			name:      "leap year birth date quirk",
			birthDate: time.Date(2000, time.March, 1, 0, 0, 0, 0, time.UTC),
			now:       time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC),
			want:      22,
		},
		{
			name:      "birth year equals reference year",
			birthDate: time.Date(2018, time.January, 10, 0, 0, 0, 0, time.UTC),
			now:       time.Date(2018, time.December, 20, 0, 0, 0, 0, time.UTC),
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AgeAt(tt.birthDate, tt.now)
			if got != tt.want {
				t.Errorf("AgeAt(%s, %s) = %d, want %d",
					tt.birthDate.Format(time.DateOnly), tt.now.Format(time.DateOnly), got, tt.want)
			}
		})
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(1986, time.April, 22, 18, 45, 12, 999, time.FixedZone("IST", 5*60*60))
	got := DateOnly(in)
	want := time.Date(1986, time.April, 22, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOnly(%v) = %v, want %v", in, got, want)
	}
}
