package places

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"transferbook/pkg/client"
	"transferbook/pkg/model"

	"golang.org/x/time/rate"
)

const DefaultGoogleBaseURL = "https://maps.googleapis.com"

type GoogleConfig struct {
	BaseURL  string
	APIKey   string
	Language string
	// Country restricts autocomplete to an ISO 3166-1 alpha-2 code, e.g. "gr".
	Country string
	// RequestsPerSecond throttles outbound calls; Burst allows short spikes.
	RequestsPerSecond float64
	Burst             int
	Timeout           time.Duration
}

// GoogleClient talks to the Places Autocomplete and Details JSON endpoints.
type GoogleClient struct {
	http    *client.HttpClient
	limiter *rate.Limiter
	cfg     GoogleConfig
}

func NewGoogleClient(cfg GoogleConfig) *GoogleClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultGoogleBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = client.DefaultTimeout
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &GoogleClient{
		http:    client.NewHttpClientWithTimeout(strings.TrimRight(baseURL, "/"), timeout),
		limiter: rate.NewLimiter(limit, burst),
		cfg:     cfg,
	}
}

const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
	statusNotFound    = "NOT_FOUND"
)

type autocompleteResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Predictions  []struct {
		PlaceID              string `json:"place_id"`
		Description          string `json:"description"`
		StructuredFormatting struct {
			MainText      string `json:"main_text"`
			SecondaryText string `json:"secondary_text"`
		} `json:"structured_formatting"`
	} `json:"predictions"`
}

type detailsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Result       struct {
		Name             string `json:"name"`
		FormattedAddress string `json:"formatted_address"`
		Geometry         *struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
}

func (g *GoogleClient) SearchPlaces(ctx context.Context, query string) ([]model.Candidate, error) {
	q := url.Values{}
	q.Set("input", query)
	q.Set("key", g.cfg.APIKey)
	if g.cfg.Language != "" {
		q.Set("language", g.cfg.Language)
	}
	if g.cfg.Country != "" {
		q.Set("components", "country:"+strings.ToLower(g.cfg.Country))
	}

	var body autocompleteResponse
	if err := g.get(ctx, "/maps/api/place/autocomplete/json?"+q.Encode(), &body); err != nil {
		return nil, err
	}

	switch body.Status {
	case statusOK:
	case statusZeroResults:
		return []model.Candidate{}, nil
	default:
		return nil, fmt.Errorf("%w: autocomplete status %s: %s", ErrLookupFailed, body.Status, body.ErrorMessage)
	}

	candidates := make([]model.Candidate, 0, len(body.Predictions))
	for _, p := range body.Predictions {
		candidates = append(candidates, model.Candidate{
			PlaceID:       p.PlaceID,
			Description:   p.Description,
			MainText:      p.StructuredFormatting.MainText,
			SecondaryText: p.StructuredFormatting.SecondaryText,
		})
	}
	return candidates, nil
}

func (g *GoogleClient) PlaceDetails(ctx context.Context, placeID string) (*model.PlaceDetails, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", "name,formatted_address,geometry")
	q.Set("key", g.cfg.APIKey)
	if g.cfg.Language != "" {
		q.Set("language", g.cfg.Language)
	}

	var body detailsResponse
	if err := g.get(ctx, "/maps/api/place/details/json?"+q.Encode(), &body); err != nil {
		return nil, err
	}

	switch body.Status {
	case statusOK:
	case statusZeroResults, statusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: details status %s: %s", ErrLookupFailed, body.Status, body.ErrorMessage)
	}

	details := &model.PlaceDetails{
		Name:    body.Result.Name,
		Address: body.Result.FormattedAddress,
	}
	if body.Result.Geometry != nil {
		details.Coordinates = &model.Coordinates{
			Lat: body.Result.Geometry.Location.Lat,
			Lng: body.Result.Geometry.Location.Lng,
		}
	}
	return details, nil
}

func (g *GoogleClient) get(ctx context.Context, path string, target any) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}

	resp, err := g.http.GET(ctx, path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: http status %d", ErrLookupFailed, resp.StatusCode)
	}
	if err := resp.DecodeJSON(target); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrLookupFailed, err)
	}
	return nil
}
