package blogsearch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/blogscout/search-api/pkg/errors"
)

const (
	defaultBaseURL = "https://api.blogscout.io/v2"
	defaultTimeout = 10 * time.Second
	searchPath     = "search"
)

// DefaultUserAgent identifies this client on outbound requests unless
// the configuration supplies its own product string.
const DefaultUserAgent = "BlogScout/Go v.1.0"

// Client handles communication with the blog search API
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
	timeout    time.Duration
}

// Config holds configuration for the blog search client
type Config struct {
	APIKey    string
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// NewClient creates a new blog search API client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
		timeout:    cfg.Timeout,
	}
}

// Search executes a single query against the upstream API and returns the
// matched blog posts. Every failure surfaces as an *errors.AppError with
// one of the blog search error codes; nothing is swallowed.
func (c *Client) Search(ctx context.Context, query *Query) (*QueryResult, error) {
	if query == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidArgument, "query must not be nil")
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, searchPath, searchParams(query, c.apiKey).Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeRequestFailed, "creating request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, mapFailure(nil, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, mapFailure(nil, fmt.Errorf("reading response body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, mapFailure(body, fmt.Errorf("server returned status %d", resp.StatusCode))
	}

	// A 200 body can still carry an operationResult envelope; the mapper
	// sorts that out when the post stream fails to decode.
	stream, err := parsePostStream(body)
	if err != nil {
		return nil, mapFailure(body, err)
	}

	return newQueryResult(stream), nil
}

// SearchBlocking runs Search to completion under the configured timeout,
// for callers without a context of their own. It returns the identical
// typed error values as Search, with no extra wrapping.
func (c *Client) SearchBlocking(query *Query) (*QueryResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	return c.Search(ctx, query)
}
