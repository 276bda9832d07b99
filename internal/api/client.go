// Package api talks to the remote collection endpoint.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pokebrowse/internal/domain"
	"pokebrowse/internal/query"
)

// Client lists one page of the collection for a descriptor
type Client interface {
	List(ctx context.Context, d query.Descriptor) (domain.Page, error)
}

// HTTPClient is the Client backed by GET /api/<collection>
type HTTPClient struct {
	baseURL    string
	collection string
	http       *http.Client
}

// Option configures an HTTPClient
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.http = hc
	}
}

// WithTimeout sets a per-request timeout. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.http = &http.Client{Transport: c.http.Transport, Timeout: d}
		}
	}
}

// NewHTTPClient creates a client for baseURL (e.g. http://localhost:5000)
// and the named collection (e.g. pokemons)
func NewHTTPClient(baseURL, collection string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		collection: strings.Trim(collection, "/"),
		http:       &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the collection address without a query string
func (c *HTTPClient) Endpoint() string {
	return fmt.Sprintf("%s/api/%s", c.baseURL, c.collection)
}

// URL returns the full request address for a descriptor
func (c *HTTPClient) URL(d query.Descriptor) string {
	return c.Endpoint() + "?" + d.Encode()
}

// listResponse mirrors the response envelope. Pointers distinguish a missing
// key from a zero value.
type listResponse struct {
	Data       *[]domain.Pokemon `json:"data"`
	TotalPages *int              `json:"total_pages"`
}

// List fetches the page described by d
func (c *HTTPClient) List(ctx context.Context, d query.Descriptor) (domain.Page, error) {
	url := c.URL(d)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Page{}, &TransportError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Page{}, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.Page{}, &StatusError{URL: url, Code: resp.StatusCode}
	}

	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Page{}, &DecodeError{URL: url, Err: err}
	}
	if body.Data == nil {
		return domain.Page{}, &DecodeError{URL: url, Err: errors.New("missing data")}
	}
	if body.TotalPages == nil {
		return domain.Page{}, &DecodeError{URL: url, Err: errors.New("missing total_pages")}
	}

	return domain.Page{
		Data:       *body.Data,
		TotalPages: *body.TotalPages,
	}, nil
}
