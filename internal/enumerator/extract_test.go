package enumerator_test

import (
	"context"
	"errors"
	"reflect"
	"subenum/internal/enumerator"
	"subenum/pkg/ctsearch"
	mockctsearch "subenum/pkg/ctsearch/mock"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestNormalizeDomain(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
		ok   bool
	}{
		{
			name: "lowercase",
			in:   "Example.COM",
			out:  "example.com",
			ok:   true,
		},
		{
			name: "trim surrounding whitespace",
			in:   "  example.com  ",
			out:  "example.com",
			ok:   true,
		},
		{
			name: "strip trailing dot",
			in:   "example.com.",
			out:  "example.com",
			ok:   true,
		},
		{
			name: "strip scheme",
			in:   "https://example.com",
			out:  "example.com",
			ok:   true,
		},
		{
			name: "strip scheme and path",
			in:   "https://Example.com/some/path",
			out:  "example.com",
			ok:   true,
		},
		{
			name: "empty",
			in:   "",
			ok:   false,
		},
		{
			name: "only a trailing dot",
			in:   ".",
			ok:   false,
		},
		{
			name: "inner whitespace",
			in:   "exa mple.com",
			ok:   false,
		},
		{
			name: "wildcard label",
			in:   "*.example.com",
			ok:   false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := enumerator.NormalizeDomain(tc.in)
			if tc.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tc.out {
					t.Fatalf("expected %q, got %q", tc.out, got)
				}
			} else if err == nil {
				t.Fatalf("expected error for %q, got %q", tc.in, got)
			}
		})
	}
}

func TestSubdomainsFromRecords(t *testing.T) {
	cases := []struct {
		name    string
		domain  string
		records []ctsearch.CertificateRecord
		out     []string
	}{
		{
			name:   "keeps matches, drops unrelated hosts",
			domain: "example.com",
			records: []ctsearch.CertificateRecord{
				{Names: []string{"products.example.com", "example.com", "unrelated.org"}},
			},
			out: []string{"example.com", "products.example.com"},
		},
		{
			name:   "dedupes across certificates and sorts",
			domain: "example.com",
			records: []ctsearch.CertificateRecord{
				{Names: []string{"www.example.com", "api.example.com"}},
				{Names: []string{"WWW.Example.com", "mail.example.com."}},
			},
			out: []string{"api.example.com", "mail.example.com", "www.example.com"},
		},
		{
			name:   "skips wildcard entries",
			domain: "example.com",
			records: []ctsearch.CertificateRecord{
				{Names: []string{"*.example.com", "shop.example.com"}},
			},
			out: []string{"shop.example.com"},
		},
		{
			name:   "no suffix match on partial labels",
			domain: "example.com",
			records: []ctsearch.CertificateRecord{
				{Names: []string{"notexample.com", "sub.notexample.com"}},
			},
			out: []string{},
		},
		{
			name:   "extracts CN from subject DN",
			domain: "example.com",
			records: []ctsearch.CertificateRecord{
				{SubjectDN: "C=US, O=Acme Inc, CN=secure.example.com"},
			},
			out: []string{"secure.example.com"},
		},
		{
			name:    "no records",
			domain:  "example.com",
			records: nil,
			out:     []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := enumerator.SubdomainsFromRecords(tc.domain, tc.records)
			if !reflect.DeepEqual(got, tc.out) {
				t.Fatalf("expected %v, got %v", tc.out, got)
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockctsearch.NewMockClient(ctrl)

	rl := ctsearch.RateLimitStatus{Limit: 10, Remaining: 9}
	client.EXPECT().Search(gomock.Any(), "example.com").Return([]ctsearch.CertificateRecord{
		{Names: []string{"a.example.com", "other.net"}},
		{Names: []string{"b.example.com"}},
	}, rl, nil)

	result, rlStatus, err := enumerator.Discover(context.Background(), client, "Example.com.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rlStatus != rl {
		t.Fatalf("expected rate limit status %+v, got %+v", rl, rlStatus)
	}
	if want := []string{"a.example.com", "b.example.com"}; !reflect.DeepEqual(result.Subdomains, want) {
		t.Fatalf("expected subdomains %v, got %v", want, result.Subdomains)
	}
	if result.Certificates != 2 {
		t.Fatalf("expected 2 certificates, got %d", result.Certificates)
	}
}

func TestDiscover_InvalidDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockctsearch.NewMockClient(ctrl)
	// no search expected

	_, _, err := enumerator.Discover(context.Background(), client, "*.example.com")
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestDiscover_SearchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockctsearch.NewMockClient(ctrl)

	rl := ctsearch.RateLimitStatus{Limit: 10}
	client.EXPECT().Search(gomock.Any(), "example.com").
		Return(nil, rl, errors.New("boom"))

	_, rlStatus, err := enumerator.Discover(context.Background(), client, "example.com")
	if err == nil {
		t.Fatalf("expected error")
	}
	// rate-limit status must survive the error path
	if rlStatus != rl {
		t.Fatalf("expected rate limit status %+v, got %+v", rl, rlStatus)
	}
}
