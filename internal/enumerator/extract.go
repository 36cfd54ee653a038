package enumerator

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"subenum/pkg/ctsearch"
	"subenum/pkg/domain"
)

// NormalizeDomain returns a canonical, normalized representation of a domain
// name string.
//
// The normalization rules are intentionally strict and opinionated to help
// with domain de-duplication:
//   - Trim surrounding whitespace
//   - Strip a leading URL scheme ("https://example.com" becomes "example.com")
//   - Strip anything after the first "/" (paths are not part of a domain)
//   - Lower-case the whole name
//   - Remove a single trailing dot (DNS root label)
//
// If the result is empty, contains whitespace, or contains a wildcard label,
// an error is returned.
func NormalizeDomain(raw string) (string, error) {
	name := strings.TrimSpace(raw)

	// strip scheme if someone pasted a URL
	if idx := strings.Index(name, "://"); idx != -1 {
		name = name[idx+len("://"):]
	}
	// drop any path component
	if idx := strings.Index(name, "/"); idx != -1 {
		name = name[:idx]
	}

	name = strings.ToLower(name)
	name = strings.TrimSuffix(name, ".")

	if name == "" {
		return "", fmt.Errorf("empty domain")
	}
	if strings.ContainsAny(name, " \t") {
		return "", fmt.Errorf("domain contains whitespace: %q", raw)
	}
	if strings.Contains(name, "*") {
		return "", fmt.Errorf("domain contains a wildcard label: %q", raw)
	}

	return name, nil
}

// hostMatches reports whether candidate equals the registered domain or is a
// hostname underneath it. Matching is done on whole labels so
// "notexample.com" never matches "example.com".
func hostMatches(candidate, name string) bool {
	return candidate == name || strings.HasSuffix(candidate, "."+name)
}

// commonNameFromDN extracts the CN attribute value from a subject
// distinguished name string like "C=US, O=Acme, CN=www.example.com".
func commonNameFromDN(dn string) string {
	for _, part := range strings.Split(dn, ",") {
		part = strings.TrimSpace(part)
		if rest, ok := strings.CutPrefix(part, "CN="); ok {
			return rest
		}
	}

	return ""
}

// SubdomainsFromRecords collects every hostname under the given domain from
// the certificate records' name and subject fields. Hostnames are normalized
// to lower case without a trailing dot, wildcard entries are skipped, and the
// returned slice is de-duplicated and sorted. The domain itself is included
// when a certificate names it directly.
func SubdomainsFromRecords(name string, records []ctsearch.CertificateRecord) []string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		candidates := rec.Names
		if cn := commonNameFromDN(rec.SubjectDN); cn != "" {
			candidates = append(candidates, cn)
		}

		for _, candidate := range candidates {
			host := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(candidate)), ".")
			if host == "" || strings.Contains(host, "*") {
				continue
			}
			if !hostMatches(host, name) {
				continue
			}

			seen[host] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for host := range seen {
		out = append(out, host)
	}
	sort.Strings(out)

	return out
}

// Discover performs one synchronous subdomain discovery round trip: it
// normalizes the domain, issues a single certificate search against the
// provider, and distills the hits into a result. The provider's rate-limit
// status is returned alongside so callers can throttle follow-up requests.
func Discover(ctx context.Context,
	client ctsearch.Client,
	rawDomain string) (domain.EnumerationResult, ctsearch.RateLimitStatus, error) {
	name, err := NormalizeDomain(rawDomain)
	if err != nil {
		return domain.EnumerationResult{}, ctsearch.RateLimitStatus{},
			fmt.Errorf("invalid domain: %w", err)
	}

	records, rlStatus, err := client.Search(ctx, name)
	if err != nil {
		return domain.EnumerationResult{}, rlStatus, fmt.Errorf("could not search certificates: %w", err)
	}

	return domain.EnumerationResult{
		Subdomains:   SubdomainsFromRecords(name, records),
		Certificates: len(records),
	}, rlStatus, nil
}
