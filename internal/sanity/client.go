// Package sanity is a read-only client for the Sanity HTTP query API.
package sanity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/technomonkey-7/ugc-portfolio/internal/cache"
)

const (
	DefaultAPIVersion = "2024-01-01"
	DefaultDataset    = "production"
)

var ErrMissingProjectID = errors.New("sanity: project id is required")

// QueryError is returned when the store answers with a non-2xx status.
type QueryError struct {
	StatusCode  int
	Type        string
	Description string
}

func (e *QueryError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("sanity: query failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("sanity: query failed with status %d: %s", e.StatusCode, e.Description)
}

type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
	Timeout    time.Duration
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	cache      *cache.Cache
}

type Option func(*Client)

// WithBaseURL points the client at a different host, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithCache serves successful results from c until they expire.
func WithCache(ch *cache.Cache) Option {
	return func(c *Client) {
		c.cache = ch
	}
}

func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, ErrMissingProjectID
	}
	if cfg.Dataset == "" {
		cfg.Dataset = DefaultDataset
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}

	host := "api.sanity.io"
	if cfg.UseCDN {
		host = "apicdn.sanity.io"
	}

	c := &Client{
		baseURL:    fmt.Sprintf("https://%s.%s", cfg.ProjectID, host),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.baseURL = fmt.Sprintf("%s/v%s/data/query/%s", c.baseURL, strings.TrimPrefix(cfg.APIVersion, "v"), url.PathEscape(cfg.Dataset))

	return c, nil
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

type errorResponse struct {
	Error struct {
		Type        string `json:"type"`
		Description string `json:"description"`
	} `json:"error"`
}

// Fetch runs a GROQ query and decodes its result into out. A null result leaves
// out untouched.
func (c *Client) Fetch(ctx context.Context, query string, out any) error {
	if payload, ok := c.cache.Get(query); ok {
		if err := decodeResult(payload, out); err == nil {
			return nil
		}
		c.cache.Invalidate(query)
	}

	payload, err := c.do(ctx, query)
	if err != nil {
		return err
	}
	if err := decodeResult(payload, out); err != nil {
		return fmt.Errorf("sanity: decode result: %w", err)
	}

	c.cache.Set(query, payload)
	return nil
}

func (c *Client) do(ctx context.Context, query string) ([]byte, error) {
	endpoint := c.baseURL + "?" + url.Values{"query": {query}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("sanity: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sanity: request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("sanity: read response: %w", err)
	}

	slog.Debug("Content store query",
		slog.String("query", query),
		slog.Int("status", resp.StatusCode),
		slog.Duration("took", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		qe := &QueryError{StatusCode: resp.StatusCode}
		var er errorResponse
		if json.Unmarshal(body, &er) == nil {
			qe.Type = er.Error.Type
			qe.Description = er.Error.Description
		}
		return nil, qe
	}

	var qr queryResponse
	if err := json.Unmarshal(body, &qr); err != nil {
		return nil, fmt.Errorf("sanity: parse response: %w", err)
	}
	return qr.Result, nil
}

func decodeResult(payload []byte, out any) error {
	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		return nil
	}
	return json.Unmarshal(payload, out)
}
