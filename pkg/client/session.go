package client

import (
	"context"
	"net/url"

	"transferbook/pkg/model"
)

// SessionClient drives the booking wizard API over HTTP.
type SessionClient struct {
	httpClient *HttpClient
}

func NewSessionClient(baseUrl string) *SessionClient {
	return &SessionClient{
		httpClient: NewHttpClient(baseUrl),
	}
}

type CreateSessionBody struct {
	SelectedTour string `json:"selectedTour,omitempty"`
	Language     string `json:"language,omitempty"`
}

func (c *SessionClient) Create(ctx context.Context, body CreateSessionBody) (*Response, error) {
	return c.httpClient.POST(ctx, "/api/v1/sessions", body)
}

func (c *SessionClient) Get(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.GET(ctx, sessionPath(id))
}

func (c *SessionClient) Update(ctx context.Context, id string, update model.FormUpdate) (*Response, error) {
	return c.httpClient.PATCH(ctx, sessionPath(id), update)
}

func (c *SessionClient) Next(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.POST(ctx, sessionPath(id)+"/next", nil)
}

func (c *SessionClient) Prev(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.POST(ctx, sessionPath(id)+"/prev", nil)
}

func (c *SessionClient) Reset(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.POST(ctx, sessionPath(id)+"/reset", nil)
}

func (c *SessionClient) Submit(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.POST(ctx, sessionPath(id)+"/submit", nil)
}

func (c *SessionClient) Delete(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.DELETE(ctx, sessionPath(id))
}

func sessionPath(id string) string {
	return "/api/v1/sessions/id/" + url.PathEscape(id)
}
