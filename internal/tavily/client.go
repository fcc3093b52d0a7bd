// Package tavily implements the HTTP client for the Tavily web search and
// extraction API.
package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"mcp-tavily/internal/config"
	"mcp-tavily/pkg/logging"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.tavily.com"

const defaultTimeout = 30 * time.Second

// charsPerToken is the estimation factor used when trimming context to a
// token budget, matching the API vendor's own heuristic.
const charsPerToken = 4

// contextMaxResults caps how many search hits feed a context assembly.
const contextMaxResults = 5

// Client talks to the Tavily API. All methods are safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *retryablehttp.Client
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithBaseURL points the client at a different API endpoint. Used by tests
// and by deployments behind a proxy.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithRetryMax sets how many times a failed request is retried. Zero means
// a single attempt.
func WithRetryMax(n int) Option {
	return func(c *Client) {
		c.http.RetryMax = n
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.HTTPClient.Timeout = d
	}
}

// NewClient creates an API client authenticated with the given key.
func NewClient(apiKey string, opts ...Option) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 0
	rc.Logger = logging.NewLeveled("TavilyHTTP")
	rc.HTTPClient.Timeout = defaultTimeout

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		http:    rc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromConfig builds a client from loaded configuration. The base
// URL override only applies when the configuration actually sets one.
func NewClientFromConfig(cfg config.Config) *Client {
	opts := []Option{
		WithTimeout(time.Duration(cfg.Client.TimeoutSeconds) * time.Second),
		WithRetryMax(cfg.Client.RetryMax),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, WithBaseURL(cfg.BaseURL))
	}
	return NewClient(cfg.APIKey, opts...)
}

// Search runs a web search and returns the raw result list.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	payload := searchPayload{
		Query:          req.Query,
		MaxResults:     req.MaxResults,
		IncludeDomains: req.IncludeDomains,
		ExcludeDomains: req.ExcludeDomains,
	}

	var out SearchResponse
	if err := c.post(ctx, "/search", payload, &out); err != nil {
		return nil, err
	}
	logging.Debug("TavilyClient", "Search for %q returned %d results", req.Query, len(out.Results))
	return &out, nil
}

// Answer runs a question-answering search and returns the single synthesized
// answer string. An advanced-depth search produces the source set the answer
// is generated from.
func (c *Client) Answer(ctx context.Context, query string) (string, error) {
	payload := searchPayload{
		Query:         query,
		SearchDepth:   "advanced",
		IncludeAnswer: true,
	}

	var out SearchResponse
	if err := c.post(ctx, "/search", payload, &out); err != nil {
		return "", err
	}
	return out.Answer, nil
}

// SearchContext runs a search and assembles the hits into a JSON document of
// {url, content} sources sized to the given token budget. Sources are taken
// in relevance order and accumulation stops before the estimated character
// budget (maxTokens * 4) would be exceeded.
func (c *Client) SearchContext(ctx context.Context, query string, maxTokens int) (string, error) {
	resp, err := c.Search(ctx, SearchRequest{Query: query, MaxResults: contextMaxResults})
	if err != nil {
		return "", err
	}

	type source struct {
		URL     string `json:"url"`
		Content string `json:"content"`
	}

	budget := maxTokens * charsPerToken
	sources := make([]source, 0, len(resp.Results))
	used := 0
	for _, r := range resp.Results {
		entry := source{URL: r.URL, Content: r.Content}
		encoded, err := json.Marshal(entry)
		if err != nil {
			return "", fmt.Errorf("failed to encode context source: %w", err)
		}
		if used+len(encoded) > budget {
			break
		}
		sources = append(sources, entry)
		used += len(encoded)
	}

	blob, err := json.Marshal(sources)
	if err != nil {
		return "", fmt.Errorf("failed to encode context: %w", err)
	}
	logging.Debug("TavilyClient", "Context for %q packed %d of %d sources (%d chars, budget %d)",
		query, len(sources), len(resp.Results), used, budget)
	return string(blob), nil
}

// Extract pulls raw page content for each URL.
func (c *Client) Extract(ctx context.Context, req ExtractRequest) (*ExtractResponse, error) {
	payload := extractPayload{
		URLs:          req.URLs,
		IncludeImages: req.IncludeImages,
	}

	var out ExtractResponse
	if err := c.post(ctx, "/extract", payload, &out); err != nil {
		return nil, err
	}
	logging.Debug("TavilyClient", "Extract returned %d results, %d failures",
		len(out.Results), len(out.FailedResults))
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return apiError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// apiError turns a non-2xx response into an error carrying whatever message
// the API put in the body. The API wraps messages either as {"error": "..."}
// or as {"detail": {"error": "..."}} depending on the endpoint.
func apiError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := strings.TrimSpace(string(data))

	var wire struct {
		Error  string `json:"error"`
		Detail any    `json:"detail"`
	}
	if err := json.Unmarshal(data, &wire); err == nil {
		switch {
		case wire.Error != "":
			msg = wire.Error
		default:
			switch detail := wire.Detail.(type) {
			case string:
				msg = detail
			case map[string]any:
				if s, ok := detail["error"].(string); ok {
					msg = s
				}
			}
		}
	}
	if msg == "" {
		msg = resp.Status
	}
	return fmt.Errorf("tavily API returned status %d: %s", resp.StatusCode, msg)
}
