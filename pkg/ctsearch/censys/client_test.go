package censys_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"subenum/pkg/ctsearch/censys"
	"testing"
	"time"

	"subenum/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *censys.Client {
	return censys.New(&http.Client{Transport: fn}, "test-id", "test-secret")
}

func Test_parseRateLimit_rfc3339(t *testing.T) {
	h := http.Header{}
	resetAt := time.Date(2025, 1, 2, 3, 4, 5, 678900000, time.UTC)
	h.Set("X-Rate-Limit-Limit", "120")
	h.Set("X-Rate-Limit-Remaining", "80")
	h.Set("X-Rate-Limit-Reset", resetAt.Format(time.RFC3339Nano))

	rl := censys.ParseRateLimit(h)
	require.Equal(t, 120, rl.Limit)
	require.Equal(t, 80, rl.Remaining)
	require.True(t, rl.ResetAt.Equal(resetAt))
}

func Test_parseRateLimit_seconds(t *testing.T) {
	h := http.Header{}
	h.Set("X-Rate-Limit-Limit", "120")
	h.Set("X-Rate-Limit-Remaining", "0")
	h.Set("X-Rate-Limit-Reset", "30")

	before := time.Now().UTC()
	rl := censys.ParseRateLimit(h)
	require.Equal(t, 120, rl.Limit)
	require.Equal(t, 0, rl.Remaining)
	require.False(t, rl.ResetAt.Before(before.Add(29*time.Second)))
	require.False(t, rl.ResetAt.After(before.Add(31*time.Second)))
}

func Test_parseRateLimit_missing(t *testing.T) {
	rl := censys.ParseRateLimit(http.Header{})
	require.True(t, rl.ResetAt.IsZero())
	require.Zero(t, rl.Limit)
	require.Zero(t, rl.Remaining)
}

func TestClient_Search_success(t *testing.T) {
	//nolint: lll
	body := `{"code":200,"status":"OK","result":{"query":"names: example.com","total":2,"hits":[{"fingerprint_sha256":"aa11","names":["example.com","products.example.com"],"parsed":{"subject_dn":"CN=example.com"}},{"fingerprint_sha256":"bb22","names":["mail.example.com"],"parsed":{"subject_dn":"CN=mail.example.com"}}]}}`

	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "search.censys.io", r.URL.Host)
		require.Equal(t, "/api/v2/certificates/search", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		id, secret, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "test-id", id)
		require.Equal(t, "test-secret", secret)

		var req struct {
			Query   string `json:"q"`
			PerPage int    `json:"per_page"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "names: example.com", req.Query)
		require.Equal(t, 100, req.PerPage)

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	})

	records, _, err := c.Search(context.Background(), "example.com")
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "aa11", records[0].FingerprintSHA256)
	require.Equal(t, []string{"example.com", "products.example.com"}, records[0].Names)
	require.Equal(t, "CN=example.com", records[0].SubjectDN)
	require.Equal(t, []string{"mail.example.com"}, records[1].Names)
}

func TestClient_Search_emptyResult(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"code":200,"status":"OK","result":{"total":0,"hits":[]}}`)),
		}, nil
	})

	records, _, err := c.Search(context.Background(), "nomatches.invalid")
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestClient_Search_unauthorized(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusUnauthorized,
			Body:       io.NopCloser(strings.NewReader(`{"code":401,"status":"Unauthorized"}`)),
		}, nil
	})

	_, _, err := c.Search(context.Background(), "example.com")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnauthorized, "expected ErrUnauthorized kind: %v", err)
}

func TestClient_Search_rateLimited429(t *testing.T) {
	resetAt := time.Now().Add(5 * time.Minute).UTC()
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		h := http.Header{}
		h.Set("X-Rate-Limit-Limit", "250")
		h.Set("X-Rate-Limit-Remaining", "0")
		h.Set("X-Rate-Limit-Reset", resetAt.Format(time.RFC3339Nano))

		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Header:     h,
			Body:       io.NopCloser(strings.NewReader("quota exceeded")),
		}, nil
	})

	_, rl, err := c.Search(context.Background(), "example.com")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrRateLimited, "expected ErrRateLimited kind: %v", err)
	require.Equal(t, 250, rl.Limit)
	require.Equal(t, 0, rl.Remaining)
	require.True(t, rl.ResetAt.Equal(resetAt))
}

func TestClient_Search_non2xx(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("upstream bad")),
		}, nil
	})

	_, _, err := c.Search(context.Background(), "example.com")
	require.Error(t, err)
	require.Contains(t, err.Error(), "upstream bad")
	require.NotErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestClient_Search_transportError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, _, err := c.Search(context.Background(), "example.com")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable, "expected ErrUnavailable kind: %v", err)
}
