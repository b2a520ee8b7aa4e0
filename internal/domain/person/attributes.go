package person

import (
	"time"

	"github.com/samber/lo"
)

// Attribute is one named attribute of a record, exposed to display layers.
type Attribute struct {
	Name  string
	Value any
}

type attributeSpec struct {
	name  string
	value func(p *Person, now time.Time) any
}

// personAttributes is the statically declared (name, accessor) list used by
// formatters instead of runtime reflection. Built once, iterated at output
// time; the order here is the output order.
var personAttributes = []attributeSpec{
	{"id", func(p *Person, _ time.Time) any { return p.ID }},
	{"display_id", func(p *Person, _ time.Time) any { return p.DisplayID }},
	{"title", func(p *Person, _ time.Time) any { return p.title }},
	{"given_name", func(p *Person, _ time.Time) any { return p.GivenName }},
	{"family_name", func(p *Person, _ time.Time) any { return p.FamilyName }},
	{"full_name", func(p *Person, _ time.Time) any { return p.FullName() }},
	{"gender", func(p *Person, _ time.Time) any { return p.Gender.String() }},
	{"networks", func(p *Person, _ time.Time) any { return lo.FromPtr(p.Networks).String() }},
	{"birth_date", func(p *Person, _ time.Time) any { return p.BirthDate.Format(time.DateOnly) }},
	{"age", func(p *Person, now time.Time) any { return p.AgeAt(now) }},
	{"status", func(p *Person, _ time.Time) any { return p.Status.String() }},
	{"created_at", func(p *Person, _ time.Time) any { return p.CreatedAt.Format(time.RFC3339) }},
	{"updated_at", func(p *Person, _ time.Time) any { return p.UpdatedAt.Format(time.RFC3339) }},
}

// Attributes returns the record's named attribute values in declaration
// order. Derived attributes are computed against the given reference time.
func (p *Person) Attributes(now time.Time) []Attribute {
	attrs := make([]Attribute, 0, len(personAttributes))
	for _, s := range personAttributes {
		attrs = append(attrs, Attribute{Name: s.name, Value: s.value(p, now)})
	}
	return attrs
}
