package places

import (
	"context"
	"errors"

	"transferbook/pkg/model"
)

var (
	// ErrSuperseded is returned to a search that was replaced by a newer query
	// for the same key before its debounce delay elapsed.
	ErrSuperseded = errors.New("place search superseded by a newer query")

	ErrPlaceNotFound = errors.New("place not found")
	ErrLookupFailed  = errors.New("place lookup failed")
)

// Provider is an external place lookup service. PlaceDetails returns nil
// details with a nil error when the place has no details.
type Provider interface {
	SearchPlaces(ctx context.Context, query string) ([]model.Candidate, error)
	PlaceDetails(ctx context.Context, placeID string) (*model.PlaceDetails, error)
}
