package types

import (
	"github.com/samber/lo"

	ierr "github.com/rosterkit/roster/internal/errors"
)

// Gender is the closed gender classification of a person record.
type Gender string

const (
	GenderUnspecified Gender = ""
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderOther       Gender = "other"
)

func (g Gender) String() string {
	if g == GenderUnspecified {
		return "unspecified"
	}
	return string(g)
}

func (g Gender) Validate() error {
	allowed := []Gender{
		GenderMale,
		GenderFemale,
		GenderOther,
	}
	if !lo.Contains(allowed, g) {
		return ierr.NewError("invalid gender").
			WithHintf("Gender must be one of male, female or other, got %q", string(g)).
			Mark(ierr.ErrValidation)
	}
	return nil
}
