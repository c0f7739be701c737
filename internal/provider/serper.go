package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/oharris/trip-planner/internal/domain"
)

// defaultSerperURL is the Serper.dev search endpoint. Serper has no Go SDK,
// so the client speaks its JSON API directly.
const defaultSerperURL = "https://google.serper.dev/search"

// serperRequest is the minimal request shape for the Serper search endpoint.
type serperRequest struct {
	Query string `json:"q"`
}

// serperResponse is the minimal response shape: only the organic results are
// consumed, and of those only title and link.
type serperResponse struct {
	Organic []struct {
		Title string `json:"title"`
		Link  string `json:"link"`
	} `json:"organic"`
}

// SerperClient queries the Serper.dev web search API.
// Like LLMClient it performs no retries and wraps every failure in
// domain.ErrProvider.
type SerperClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// SerperOption customizes a SerperClient.
type SerperOption func(*SerperClient)

// WithSerperEndpoint overrides the search endpoint URL. Tests point this at
// an httptest server.
func WithSerperEndpoint(url string) SerperOption {
	return func(c *SerperClient) { c.endpoint = url }
}

// WithSerperHTTPClient overrides the underlying HTTP client.
func WithSerperHTTPClient(hc *http.Client) SerperOption {
	return func(c *SerperClient) { c.httpClient = hc }
}

// NewSerperClient constructs a SerperClient authenticating with apiKey.
func NewSerperClient(apiKey string, opts ...SerperOption) *SerperClient {
	c := &SerperClient{
		apiKey:     apiKey,
		endpoint:   defaultSerperURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchWeb runs a search query and returns the organic results in ranked
// order. Missing titles default to "No title" and missing links to the empty
// string. The result may be empty; truncation to the consumer's limit is the
// caller's concern, not the client's.
func (c *SerperClient) SearchWeb(ctx context.Context, query string) ([]domain.Link, error) {
	body, err := json.Marshal(serperRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal search request: %v", domain.ErrProvider, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: create search request: %v", domain.ErrProvider, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: search request: %v", domain.ErrProvider, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, fmt.Errorf("%w: search returned status %d: %s", domain.ErrProvider, res.StatusCode, string(buf))
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read search response: %v", domain.ErrProvider, err)
	}

	var payload serperResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode search response: %v", domain.ErrProvider, err)
	}

	links := make([]domain.Link, 0, len(payload.Organic))
	for _, r := range payload.Organic {
		title := r.Title
		if title == "" {
			title = "No title"
		}
		links = append(links, domain.Link{Title: title, URL: r.Link})
	}
	return links, nil
}
