// Package pokeapi is a thin read-only client for the PokéAPI REST service.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cristianoliveira/dexview/internal/config"
	dexerrors "github.com/cristianoliveira/dexview/internal/errors"
	"github.com/cristianoliveira/dexview/internal/version"
)

// Client is the read-only surface of the remote catalog service.
type Client interface {
	ListItems(ctx context.Context, limit, offset int) ([]ListEntry, error)
	GetItemDetail(ctx context.Context, idOrName string) (Detail, error)
	ListTypes(ctx context.Context) ([]TypeRef, error)
	ListItemsByType(ctx context.Context, typeName string) ([]ListEntry, error)
}

// maxErrorBody bounds how much of a failed response is kept for the error.
const maxErrorBody = 512

// HTTPClient implements Client over net/http. It performs no retries and no caching.
type HTTPClient struct {
	baseURL   string
	http      *http.Client
	userAgent string

	timeout    time.Duration
	hasTimeout bool
}

var _ Client = (*HTTPClient)(nil)

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds every request. Zero disables the timeout. It applies to
// a copy of the underlying *http.Client regardless of option order.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.timeout = d
		c.hasTimeout = true
	}
}

// NewHTTPClient creates a client rooted at baseURL (for example "https://pokeapi.co/api/v2").
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{},
		userAgent: "dexview/" + version.Version,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.hasTimeout {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c
}

// NewFromConfig creates a client from api_base_url and request_timeout.
func NewFromConfig() *HTTPClient {
	baseURL := config.Get("api_base_url", config.DefaultAPIBaseURL)
	timeout := config.GetInt("request_timeout", config.DefaultRequestTimeout)
	return NewHTTPClient(baseURL, WithTimeout(time.Duration(timeout)*time.Second))
}

// ListItems returns one page of the creature list, passing limit and offset through.
func (c *HTTPClient) ListItems(ctx context.Context, limit, offset int) ([]ListEntry, error) {
	q := url.Values{}
	q.Set("limit", fmt.Sprint(limit))
	q.Set("offset", fmt.Sprint(offset))

	var resp listResponse
	if err := c.get(ctx, "list items", "/pokemon?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		return []ListEntry{}, nil
	}
	return resp.Results, nil
}

// GetItemDetail returns the detail record for a numeric id or a name.
func (c *HTTPClient) GetItemDetail(ctx context.Context, idOrName string) (Detail, error) {
	var resp detailResponse
	path := "/pokemon/" + url.PathEscape(strings.ToLower(strings.TrimSpace(idOrName)))
	if err := c.get(ctx, "get item detail", path, &resp); err != nil {
		return Detail{}, err
	}
	return resp.toDetail(), nil
}

// ListTypes returns the type taxonomy.
func (c *HTTPClient) ListTypes(ctx context.Context) ([]TypeRef, error) {
	var resp listResponse
	if err := c.get(ctx, "list types", "/type", &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		return []TypeRef{}, nil
	}
	return resp.Results, nil
}

// ListItemsByType returns every creature that has typeName.
func (c *HTTPClient) ListItemsByType(ctx context.Context, typeName string) ([]ListEntry, error) {
	var resp typeResponse
	if err := c.get(ctx, "list items by type", "/type/"+url.PathEscape(typeName), &resp); err != nil {
		return nil, err
	}
	entries := make([]ListEntry, 0, len(resp.Pokemon))
	for _, p := range resp.Pokemon {
		entries = append(entries, p.Pokemon)
	}
	return entries, nil
}

func (c *HTTPClient) get(ctx context.Context, op, path string, target any) error {
	fullURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return &dexerrors.TransportError{Op: op, URL: fullURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &dexerrors.TransportError{Op: op, URL: fullURL, Err: err}
	}
	return decodeResponse(op, fullURL, resp, target)
}

// decodeResponse decodes a JSON body into target, turning any non-2xx status
// into a TransportError.
func decodeResponse(op, fullURL string, resp *http.Response, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &dexerrors.TransportError{
			Op:         op,
			URL:        fullURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return &dexerrors.TransportError{Op: op, URL: fullURL, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
