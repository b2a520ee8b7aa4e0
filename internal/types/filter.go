package types

import (
	"github.com/samber/lo"

	"github.com/rosterkit/roster/internal/validator"
)

const (
	FILTER_DEFAULT_LIMIT  = 50
	FILTER_DEFAULT_STATUS = StatusActive
)

// BaseFilter defines common filtering capabilities
type BaseFilter interface {
	GetLimit() int
	GetStatus() Status
	Validate() error
	IsUnlimited() bool
}

// QueryFilter represents a generic query filter with optional fields
type QueryFilter struct {
	Limit  *int    `json:"limit,omitempty" validate:"omitempty,min=1,max=1000"`
	Status *Status `json:"status,omitempty"`
}

// NewDefaultQueryFilter defines default values for query filters
func NewDefaultQueryFilter() *QueryFilter {
	return &QueryFilter{
		Limit:  lo.ToPtr(FILTER_DEFAULT_LIMIT),
		Status: lo.ToPtr(FILTER_DEFAULT_STATUS),
	}
}

// NewNoLimitQueryFilter returns a filter that yields every matching record.
func NewNoLimitQueryFilter() *QueryFilter {
	return &QueryFilter{
		Status: lo.ToPtr(FILTER_DEFAULT_STATUS),
	}
}

func (f *QueryFilter) GetLimit() int {
	if f == nil || f.Limit == nil {
		return FILTER_DEFAULT_LIMIT
	}
	return *f.Limit
}

func (f *QueryFilter) GetStatus() Status {
	if f == nil || f.Status == nil {
		return FILTER_DEFAULT_STATUS
	}
	return *f.Status
}

func (f *QueryFilter) IsUnlimited() bool {
	return f != nil && f.Limit == nil
}

func (f *QueryFilter) Validate() error {
	if f == nil {
		return nil
	}
	return validator.ValidateRequest(f)
}

// PersonFilter represents filters for person queries.
type PersonFilter struct {
	*QueryFilter

	// MinAgeOver keeps only records strictly older than the given age,
	// evaluated against the query's reference time.
	MinAgeOver *int `json:"min_age_over,omitempty"`

	// Networks keeps only records whose flag set contains every given
	// network. Records with an absent flag set never match.
	Networks *SocialNetworks `json:"networks,omitempty"`

	// Genders keeps only records with one of the given classifications.
	Genders []Gender `json:"genders,omitempty"`
}

// NewPersonFilter creates a new PersonFilter with default values
func NewPersonFilter() *PersonFilter {
	return &PersonFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

// NewNoLimitPersonFilter creates a new PersonFilter with no pagination limits
func NewNoLimitPersonFilter() *PersonFilter {
	return &PersonFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

// Validate validates the person filter. MinAgeOver is intentionally
// unconstrained: negative or absurdly large thresholds simply match nothing
// special.
func (f *PersonFilter) Validate() error {
	if f == nil {
		return nil
	}

	if f.QueryFilter == nil {
		f.QueryFilter = NewDefaultQueryFilter()
	}
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}

	if f.Networks != nil {
		if err := f.Networks.Validate(); err != nil {
			return err
		}
	}

	for _, g := range f.Genders {
		if err := g.Validate(); err != nil {
			return err
		}
	}

	return nil
}
