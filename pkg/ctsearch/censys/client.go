// Package censys provides a ctsearch.Client implementation backed by the
// Censys certificate search API.
package censys

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"subenum/pkg/ctsearch"
	"subenum/pkg/serrors"
	"time"
)

const (
	searchURL = "https://search.censys.io/api/v2/certificates/search"

	// perPage is the number of hits requested per search. 100 is the
	// provider's maximum page size.
	perPage = 100
)

// Client talks to the Censys search REST API and fulfills the
// ctsearch.Client interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the provider
	apiID      string       // apiID is the Censys API ID (basic auth username)
	apiSecret  string       // apiSecret is the Censys API secret (basic auth password)
}

// ParseRateLimit extracts rate-limit information from the HTTP response
// headers and converts it into a ctsearch.RateLimitStatus. The headers are
// optional; when the reset header is absent a zero status is returned so
// callers can tell "no information" apart from an exhausted budget.
func ParseRateLimit(h http.Header) ctsearch.RateLimitStatus {
	atoi := func(s string) int {
		if s == "" {
			return 0
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}

		return 0
	}

	resetStr := h.Get("X-Rate-Limit-Reset")
	if resetStr == "" {
		return ctsearch.RateLimitStatus{}
	}
	resetAt, err := time.Parse(time.RFC3339Nano, resetStr)
	if err != nil {
		// the reset instant may also arrive as seconds-until-reset
		if secs, convErr := strconv.Atoi(resetStr); convErr == nil {
			resetAt = time.Now().UTC().Add(time.Duration(secs) * time.Second)
		} else {
			return ctsearch.RateLimitStatus{}
		}
	}

	return ctsearch.RateLimitStatus{
		Limit:     atoi(h.Get("X-Rate-Limit-Limit")),
		Remaining: atoi(h.Get("X-Rate-Limit-Remaining")),
		ResetAt:   resetAt,
	}
}

// Search issues a single certificate search for the given domain. It sends
// exactly one request: no pagination, no retries. Provider failures are
// mapped to semantic kinds: invalid credentials to serrors.ErrUnauthorized,
// quota exhaustion to serrors.ErrRateLimited, and transport failures to
// serrors.ErrUnavailable.
func (c *Client) Search(ctx context.Context,
	domain string) ([]ctsearch.CertificateRecord, ctsearch.RateLimitStatus, error) {
	// https://search.censys.io/api#/certificates/searchCertificates
	type searchReq struct {
		Query   string `json:"q"`
		PerPage int    `json:"per_page"`
	}
	bodyBytes, err := json.Marshal(searchReq{Query: "names: " + domain, PerPage: perPage})
	if err != nil {
		return nil, ctsearch.RateLimitStatus{}, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		searchURL,
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return nil, ctsearch.RateLimitStatus{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.apiID, c.apiSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ctsearch.RateLimitStatus{}, serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl := ParseRateLimit(resp.Header)
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, rl, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, rl, serrors.With(serrors.ErrUnauthorized, "invalid censys credentials: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, rl, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, rl, fmt.Errorf("search failed: %s", strings.TrimSpace(string(b)))
	}

	// successful
	var searchResp struct {
		Result struct {
			Total int `json:"total"`
			Hits  []struct {
				FingerprintSHA256 string   `json:"fingerprint_sha256"`
				Names             []string `json:"names"`
				Parsed            struct {
					SubjectDN string `json:"subject_dn"`
				} `json:"parsed"`
			} `json:"hits"`
		} `json:"result"`
	}
	if err := json.Unmarshal(b, &searchResp); err != nil {
		return nil, rl, fmt.Errorf("could not decode response: %w", err)
	}

	records := make([]ctsearch.CertificateRecord, 0, len(searchResp.Result.Hits))
	for _, hit := range searchResp.Result.Hits {
		records = append(records, ctsearch.CertificateRecord{
			FingerprintSHA256: hit.FingerprintSHA256,
			Names:             hit.Names,
			SubjectDN:         hit.Parsed.SubjectDN,
		})
	}

	return records, rl, nil
}

// Ensure Client conforms to the ctsearch.Client interface at compile time.
var _ ctsearch.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and Censys API
// credentials to query the certificate search API.
func New(httpClient *http.Client, apiID, apiSecret string) *Client {
	return &Client{
		httpClient: httpClient,
		apiID:      apiID,
		apiSecret:  apiSecret,
	}
}
