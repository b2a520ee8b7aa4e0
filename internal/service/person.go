package service

import (
	"context"
	"iter"
	"time"

	"github.com/samber/lo"

	"github.com/rosterkit/roster/internal/clock"
	"github.com/rosterkit/roster/internal/domain/person"
	"github.com/rosterkit/roster/internal/types"
	"github.com/rosterkit/roster/internal/validator"
)

// CreatePersonRequest carries the attributes of a new roster record. Title
// normalization happens on write, inside the record model.
type CreatePersonRequest struct {
	Title      string                `json:"title"`
	GivenName  string                `json:"given_name" validate:"required"`
	FamilyName string                `json:"family_name" validate:"required"`
	Gender     types.Gender          `json:"gender" validate:"required"`
	BirthDate  time.Time             `json:"birth_date" validate:"required"`
	Networks   *types.SocialNetworks `json:"networks,omitempty"`
}

type PersonService interface {
	CreatePerson(ctx context.Context, req CreatePersonRequest) (*person.Person, error)
	GetPerson(ctx context.Context, id string) (*person.Person, error)
	ListPeople(ctx context.Context, filter *types.PersonFilter) ([]*person.Person, error)

	// OlderWithNetwork materializes every record strictly older than minAge
	// whose flag set contains the network, in insertion order.
	OlderWithNetwork(ctx context.Context, minAge int, network types.SocialNetworks) ([]*person.Person, error)

	// StreamOlderWithNetwork is the lazy form of OlderWithNetwork: matching
	// records are produced one at a time, and stopping early evaluates no
	// further elements.
	StreamOlderWithNetwork(ctx context.Context, minAge int, network types.SocialNetworks) (iter.Seq[*person.Person], error)
}

type personService struct {
	ServiceParams
}

func NewPersonService(params ServiceParams) PersonService {
	return &personService{
		ServiceParams: params,
	}
}

func (s *personService) CreatePerson(ctx context.Context, req CreatePersonRequest) (*person.Person, error) {
	if err := validator.ValidateRequest(req); err != nil {
		return nil, err
	}

	p, err := person.New(ctx, req.Gender)
	if err != nil {
		return nil, err
	}

	p.SetTitle(ctx, req.Title)
	p.SetName(ctx, req.GivenName, req.FamilyName)
	p.SetBirthDate(ctx, req.BirthDate)
	if req.Networks != nil {
		if err := p.AddNetworks(ctx, *req.Networks); err != nil {
			return nil, err
		}
	}

	if err := s.PersonRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.Logger.Debugw("created person",
		"request_id", types.GetRequestID(ctx),
		"person_id", p.ID,
		"full_name", p.FullName(),
	)
	return p, nil
}

func (s *personService) GetPerson(ctx context.Context, id string) (*person.Person, error) {
	return s.PersonRepo.GetByID(ctx, id)
}

func (s *personService) ListPeople(ctx context.Context, filter *types.PersonFilter) ([]*person.Person, error) {
	if filter == nil {
		filter = types.NewPersonFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.PersonRepo.List(ctx, filter)
}

func (s *personService) OlderWithNetwork(ctx context.Context, minAge int, network types.SocialNetworks) ([]*person.Person, error) {
	filter, err := s.olderWithNetworkFilter(minAge, network)
	if err != nil {
		return nil, err
	}
	return s.PersonRepo.List(ctx, filter)
}

func (s *personService) StreamOlderWithNetwork(ctx context.Context, minAge int, network types.SocialNetworks) (iter.Seq[*person.Person], error) {
	filter, err := s.olderWithNetworkFilter(minAge, network)
	if err != nil {
		return nil, err
	}
	now := clock.FromContext(ctx).Now()
	return person.Filter(s.PersonRepo.All(ctx), filter, now), nil
}

func (s *personService) olderWithNetworkFilter(minAge int, network types.SocialNetworks) (*types.PersonFilter, error) {
	if err := network.Validate(); err != nil {
		return nil, err
	}
	filter := types.NewNoLimitPersonFilter()
	filter.MinAgeOver = lo.ToPtr(minAge)
	filter.Networks = lo.ToPtr(network)
	return filter, nil
}
