// Package render implements the display projections consumed by the console
// sink: comma-joined, JSON-like and newline-delimited strings built from a
// record's named attribute pairs.
package render

import (
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"github.com/rosterkit/roster/internal/domain/person"
)

// Comma returns the record's attributes as a single comma-joined line.
func Comma(p *person.Person, now time.Time) string {
	parts := lo.Map(p.Attributes(now), func(a person.Attribute, _ int) string {
		return fmt.Sprintf("%s=%v", a.Name, a.Value)
	})
	return strings.Join(parts, ", ")
}

// Lines returns one "name: value" line per attribute.
func Lines(p *person.Person, now time.Time) string {
	parts := lo.Map(p.Attributes(now), func(a person.Attribute, _ int) string {
		return fmt.Sprintf("%s: %v", a.Name, a.Value)
	})
	return strings.Join(parts, "\n")
}

// JSON returns a JSON object with the attributes in declaration order. The
// jsoniter stream API is used directly so the statically declared order
// survives, which map-based marshaling would not guarantee.
func JSON(p *person.Person, now time.Time) (string, error) {
	stream := jsoniter.ConfigDefault.BorrowStream(nil)
	defer jsoniter.ConfigDefault.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, attr := range p.Attributes(now) {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(attr.Name)
		stream.WriteVal(attr.Value)
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return "", stream.Error
	}
	return string(stream.Buffer()), nil
}
