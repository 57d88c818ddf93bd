package places

import (
	"context"
	"fmt"

	"transferbook/pkg/logger"
	"transferbook/pkg/model"
)

// Resolver turns a picked candidate into a Place, adding coordinates when
// the provider has details for it.
type Resolver struct {
	provider Provider
	log      *logger.Logger
}

func NewResolver(provider Provider, log *logger.Logger) *Resolver {
	return &Resolver{provider: provider, log: log}
}

// Resolve never fails: without details the place is returned without
// coordinates.
func (r *Resolver) Resolve(ctx context.Context, c model.Candidate) *model.Place {
	details, err := r.provider.PlaceDetails(ctx, c.PlaceID)
	if err != nil {
		r.log.Warn("Place details lookup failed, continuing without coordinates",
			"place_id", c.PlaceID,
			"error", err,
		)
		return model.PlaceFromCandidate(c, nil)
	}
	if details == nil {
		return model.PlaceFromCandidate(c, nil)
	}
	return model.PlaceFromCandidate(c, details.Coordinates)
}

// ResolveID builds a Place from a bare place id. Unlike Resolve it needs the
// details to fill in the display text.
func (r *Resolver) ResolveID(ctx context.Context, placeID string) (*model.Place, error) {
	details, err := r.provider.PlaceDetails(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, fmt.Errorf("%w: %s", ErrPlaceNotFound, placeID)
	}

	description := details.Address
	if description == "" {
		description = details.Name
	}
	return &model.Place{
		PlaceID:       placeID,
		Description:   description,
		MainText:      details.Name,
		SecondaryText: details.Address,
		Coordinates:   details.Coordinates,
	}, nil
}
