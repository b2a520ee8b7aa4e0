package person

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/samber/lo"

	ierr "github.com/rosterkit/roster/internal/errors"
	"github.com/rosterkit/roster/internal/types"
)

// Person is a roster record: identity fields, a mandatory gender
// classification, an optional social network flag set and a birth date.
// Display name and age are derived on every read, never stored.
type Person struct {
	// ID is the unique identifier for the person
	ID string `json:"id"`

	// DisplayID is a short human-facing identifier, e.g. PR_XYZ12A8Q
	DisplayID string `json:"display_id"`

	// title is kept unexported so the normalized form is the only one
	// observable. Use Title and SetTitle.
	title string

	// GivenName is the person's first name
	GivenName string `json:"given_name"`

	// FamilyName is the person's last name
	FamilyName string `json:"family_name"`

	// Gender is the mandatory classification set at construction
	Gender types.Gender `json:"gender"`

	// Networks is the social network flag set. A nil pointer means no
	// flags were ever recorded, which is distinct from an empty set.
	Networks *types.SocialNetworks `json:"networks,omitempty"`

	// BirthDate is the date-only birth date used for age computation
	BirthDate time.Time `json:"birth_date"`

	types.BaseModel
}

// New constructs a person with the mandatory gender classification. All
// remaining fields are populated afterwards, builder style.
func New(ctx context.Context, gender types.Gender) (*Person, error) {
	if err := gender.Validate(); err != nil {
		return nil, err
	}
	return &Person{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PERSON),
		DisplayID: types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_PERSON),
		Gender:    gender,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}, nil
}

// misterPattern matches the literal substring "Mister" in any casing,
// including inside longer words. Word-boundary semantics are intentionally
// not applied.
var misterPattern = regexp.MustCompile(`(?i)mister`)

// NormalizeTitle replaces every occurrence of "Mister" with "Mr." and passes
// all other input through unchanged. Idempotent; empty input stays empty.
func NormalizeTitle(raw string) string {
	return misterPattern.ReplaceAllLiteralString(raw, "Mr.")
}

// Title returns the normalized title.
func (p *Person) Title() string {
	return p.title
}

// SetTitle assigns the title, normalizing it on write.
func (p *Person) SetTitle(ctx context.Context, raw string) {
	p.title = NormalizeTitle(raw)
	p.Touch(ctx)
}

// SetName assigns the given and family names.
func (p *Person) SetName(ctx context.Context, given, family string) {
	p.GivenName = given
	p.FamilyName = family
	p.Touch(ctx)
}

// SetBirthDate assigns the birth date, truncated to a date-only value.
func (p *Person) SetBirthDate(ctx context.Context, birthDate time.Time) {
	p.BirthDate = types.DateOnly(birthDate)
	p.Touch(ctx)
}

// FullName joins the normalized title, given name and family name with
// single spaces, skipping unset parts. Recomputed on every access.
func (p *Person) FullName() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{p.title, p.GivenName, p.FamilyName} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// AgeAt returns the person's age in whole years at the given reference time.
func (p *Person) AgeAt(now time.Time) int {
	return types.AgeAt(p.BirthDate, now)
}

// HasNetwork reports whether the flag set contains every bit of the given
// network value. An absent flag set answers false, never an error.
func (p *Person) HasNetwork(network types.SocialNetworks) bool {
	return lo.FromPtr(p.Networks).Has(network)
}

// AddNetworks unions the given flags into the set, creating it when absent.
// Bits outside the closed enumeration are rejected.
func (p *Person) AddNetworks(ctx context.Context, flags types.SocialNetworks) error {
	if err := flags.Validate(); err != nil {
		return err
	}
	if p.Networks == nil {
		p.Networks = lo.ToPtr(types.SocialNetworks(0))
	}
	*p.Networks = p.Networks.Union(flags)
	p.Touch(ctx)
	return nil
}

// RemoveNetworks subtracts the given flags from the set. A no-op when the
// set is absent.
func (p *Person) RemoveNetworks(ctx context.Context, flags types.SocialNetworks) error {
	if err := flags.Validate(); err != nil {
		return err
	}
	if p.Networks == nil {
		return nil
	}
	*p.Networks = p.Networks.Difference(flags)
	p.Touch(ctx)
	return nil
}

// Validate checks the record's classification attributes.
func (p *Person) Validate() error {
	if p == nil {
		return ierr.NewError("person is nil").
			WithHint("Person record is required").
			Mark(ierr.ErrValidation)
	}
	if err := p.Gender.Validate(); err != nil {
		return err
	}
	if p.Networks != nil {
		if err := p.Networks.Validate(); err != nil {
			return err
		}
	}
	return nil
}
