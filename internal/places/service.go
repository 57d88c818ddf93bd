package places

import (
	"context"

	"transferbook/pkg/model"
)

type PlaceService interface {
	Search(ctx context.Context, key, query string) ([]model.Candidate, error)
	Resolve(ctx context.Context, placeID string) (*model.Place, error)
}

type placeService struct {
	debouncer *Debouncer
	resolver  *Resolver
}

func NewPlaceService(debouncer *Debouncer, resolver *Resolver) PlaceService {
	return &placeService{debouncer: debouncer, resolver: resolver}
}

func (s *placeService) Search(ctx context.Context, key, query string) ([]model.Candidate, error) {
	return s.debouncer.Search(ctx, key, query)
}

func (s *placeService) Resolve(ctx context.Context, placeID string) (*model.Place, error) {
	return s.resolver.ResolveID(ctx, placeID)
}
