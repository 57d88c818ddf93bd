package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"transferbook/internal/places"
	"transferbook/pkg/logger"
	"transferbook/pkg/model"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPlaceService struct {
	mock.Mock
}

func (m *mockPlaceService) Search(ctx context.Context, key, query string) ([]model.Candidate, error) {
	args := m.Called(ctx, key, query)
	candidates, _ := args.Get(0).([]model.Candidate)
	return candidates, args.Error(1)
}

func (m *mockPlaceService) Resolve(ctx context.Context, placeID string) (*model.Place, error) {
	args := m.Called(ctx, placeID)
	place, _ := args.Get(0).(*model.Place)
	return place, args.Error(1)
}

func serve(t *testing.T, svc places.PlaceService, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	router := httprouter.New()
	NewPlaceHandler(svc, logger.Discard()).RegisterRoutes(router)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSearch_UsesSessionKey(t *testing.T) {
	svc := new(mockPlaceService)
	svc.On("Search", mock.Anything, "s-1", "athens").
		Return([]model.Candidate{{PlaceID: "p1", Description: "Athens, Greece", MainText: "Athens"}}, nil)

	rec := serve(t, svc, httptest.NewRequest(http.MethodGet, "/api/v1/places/search?q=athens&session=s-1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data SearchResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data.Candidates, 1)
	assert.Equal(t, "p1", body.Data.Candidates[0].PlaceID)
	svc.AssertExpectations(t)
}

func TestSearch_FallsBackToClientAddress(t *testing.T) {
	svc := new(mockPlaceService)
	svc.On("Search", mock.Anything, "192.0.2.1", "at").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/places/search?q=at", nil)
	req.RemoteAddr = "192.0.2.1:4321"
	rec := serve(t, svc, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"candidates":[]`)
	svc.AssertExpectations(t)
}

func TestSearch_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"superseded", places.ErrSuperseded, http.StatusConflict},
		{"lookup failed", fmt.Errorf("%w: http status 500", places.ErrLookupFailed), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockPlaceService)
			svc.On("Search", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(t, svc, httptest.NewRequest(http.MethodGet, "/api/v1/places/search?q=athens&session=s", nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetByID(t *testing.T) {
	svc := new(mockPlaceService)
	svc.On("Resolve", mock.Anything, "p1").Return(&model.Place{
		PlaceID:     "p1",
		Description: "Athens International Airport",
		MainText:    "Athens International Airport",
		Coordinates: &model.Coordinates{Lat: 37.9364, Lng: 23.9445},
	}, nil)
	svc.On("Resolve", mock.Anything, "missing").Return(nil, fmt.Errorf("%w: missing", places.ErrPlaceNotFound))

	rec := serve(t, svc, httptest.NewRequest(http.MethodGet, "/api/v1/places/id/p1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"lat":37.9364`)

	rec = serve(t, svc, httptest.NewRequest(http.MethodGet, "/api/v1/places/id/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
