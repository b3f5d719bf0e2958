package blogsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	apperrors "github.com/blogscout/search-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: serverURL,
		Timeout: 2 * time.Second,
	})
}

func TestSearchSuccess(t *testing.T) {
	var gotPath, gotUserAgent string
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUserAgent = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(sampleStream))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Search(context.Background(), &Query{Pattern: "spotify", Language: "en"})
	require.NoError(t, err)

	assert.Equal(t, "/search", gotPath)
	assert.Equal(t, DefaultUserAgent, gotUserAgent)
	assert.Equal(t, []string{"test-key"}, gotQuery["key"])
	assert.Equal(t, []string{"spotify"}, gotQuery["searchpattern"])
	assert.Equal(t, []string{"2"}, gotQuery["xmloutputversion"])
	assert.Equal(t, []string{"en"}, gotQuery["language"])

	// Two blog posts survive the filter, the news post does not
	require.Len(t, result.Posts, 2)
	assert.Equal(t, 3122, result.NumberOfMatchesTotal)
}

func TestSearchCustomUserAgent(t *testing.T) {
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(sampleStream))
	}))
	defer server.Close()

	client := NewClient(Config{
		APIKey:    "test-key",
		BaseURL:   server.URL,
		UserAgent: "MyCrawler/Go v.2.3",
	})

	_, err := client.Search(context.Background(), &Query{Pattern: "spotify"})
	require.NoError(t, err)
	assert.Equal(t, "MyCrawler/Go v.2.3", gotUserAgent)
}

func TestSearchNilQuery(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Search(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidArgument))
	assert.Equal(t, int32(0), calls.Load(), "no network call for nil query")
}

func TestSearchInvalidQueryMakesNoCall(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	for _, pattern := range []string{"", "   "} {
		_, err := client.Search(context.Background(), &Query{Pattern: pattern})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidQuery))
	}
	assert.Equal(t, int32(0), calls.Load(), "validation must fail before any network activity")
}

func TestSearchAPIErrorEnvelope(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected apperrors.ErrorCode
	}{
		{
			name:     "unknown api key",
			status:   http.StatusUnauthorized,
			body:     `<operationResult resultType="error">api key does not exist</operationResult>`,
			expected: apperrors.ErrCodeUnknownAPIKey,
		},
		{
			name:     "unauthorized api key",
			status:   http.StatusUnauthorized,
			body:     `<operationResult resultType="error">unauthorized api key</operationResult>`,
			expected: apperrors.ErrCodeUnauthorizedAPIKey,
		},
		{
			name:     "service unavailable",
			status:   http.StatusServiceUnavailable,
			body:     `<operationResult resultType="error">service unavailable</operationResult>`,
			expected: apperrors.ErrCodeServiceUnavailable,
		},
		{
			name:     "error envelope with 200 status",
			status:   http.StatusOK,
			body:     `<operationResult resultType="error">service unavailable</operationResult>`,
			expected: apperrors.ErrCodeServiceUnavailable,
		},
		{
			name:     "unknown error text",
			status:   http.StatusInternalServerError,
			body:     `<operationResult resultType="error">quota exceeded</operationResult>`,
			expected: apperrors.ErrCodeUnknownAPIError,
		},
		{
			name:     "empty body",
			status:   http.StatusBadGateway,
			body:     "",
			expected: apperrors.ErrCodeEmptyResponse,
		},
		{
			name:     "garbage body",
			status:   http.StatusBadGateway,
			body:     "<html>Bad Gateway",
			expected: apperrors.ErrCodeDeserialization,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			_, err := client.Search(context.Background(), &Query{Pattern: "spotify"})
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, tt.expected),
				"expected %s, got %v", tt.expected, err)
		})
	}
}

func TestSearchTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer server.Close()

	client := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 50 * time.Millisecond,
	})

	_, err := client.Search(context.Background(), &Query{Pattern: "spotify"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeRequestTimeout), "got %v", err)
}

func TestSearchContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := client.Search(ctx, &Query{Pattern: "spotify"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeRequestTimeout), "got %v", err)
}

func TestSearchBlockingMatchesSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`<operationResult resultType="error">api key does not exist</operationResult>`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, asyncErr := client.Search(context.Background(), &Query{Pattern: "spotify"})
	_, blockingErr := client.SearchBlocking(&Query{Pattern: "spotify"})

	require.Error(t, asyncErr)
	require.Error(t, blockingErr)

	// Same error kind either way, with no extra wrapping layer
	assert.Equal(t, apperrors.GetCode(asyncErr), apperrors.GetCode(blockingErr))
	var appErr *apperrors.AppError
	require.ErrorAs(t, blockingErr, &appErr)
	assert.Equal(t, blockingErr, error(appErr), "blocking variant must surface the AppError directly")
}

func TestSearchBlockingSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleStream))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.SearchBlocking(&Query{Pattern: "spotify"})
	require.NoError(t, err)
	assert.Len(t, result.Posts, 2)
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Config{APIKey: "k"})

	assert.Equal(t, defaultBaseURL, client.baseURL)
	assert.Equal(t, DefaultUserAgent, client.userAgent)
	assert.Equal(t, defaultTimeout, client.timeout)

	// Trailing slash is normalized away
	client = NewClient(Config{APIKey: "k", BaseURL: "https://example.com/api/"})
	assert.Equal(t, "https://example.com/api", client.baseURL)
}
