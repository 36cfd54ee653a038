// Package ctsearch defines interfaces and data types used to query a hosted
// certificate-transparency search provider for certificates matching a domain.
package ctsearch

import (
	"context"
	"time"
)

// RateLimitStatus describes the current API rate-limit status reported by the
// underlying certificate-search provider. A zero ResetAt means the provider
// did not report rate-limit information for the request.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining indicates how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the rate-limit window resets.
}

// CertificateRecord is a single certificate returned by the provider. Names
// carries every hostname found in the certificate's subject common name and
// subject alternative name fields.
type CertificateRecord struct {
	// FingerprintSHA256 is the hex-encoded SHA-256 fingerprint of the certificate.
	FingerprintSHA256 string
	// Names lists the hostnames present in the certificate (CN + SANs).
	Names []string
	// SubjectDN is the certificate's subject distinguished name.
	SubjectDN string
}

// Client is the abstraction for certificate-transparency search providers.
// Implementations issue one search request per call and never paginate,
// retry, or cache; the provider's coarse rate limits make a single round
// trip per invocation the right granularity.
//
//go:generate mockgen -package mockctsearch -source=interface.go -destination=mock/mockctsearch.go *
type Client interface {
	// Search returns the certificate records matching the given domain,
	// along with the provider's rate-limit status for the request when
	// available. A search with zero matches returns an empty slice, not an
	// error.
	Search(ctx context.Context, domain string) ([]CertificateRecord, RateLimitStatus, error)
}
