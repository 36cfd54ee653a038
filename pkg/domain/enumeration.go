package domain

import (
	"time"

	"github.com/google/uuid"
)

// EnumerationID uniquely identifies a subdomain enumeration.
// It wraps uuid.UUID to provide type safety at the domain layer.
type EnumerationID uuid.UUID

// EnumerationStatus represents the lifecycle state of an enumeration.
// It can be pending, completed, or failed.
type EnumerationStatus string

const (
	// EnumerationStatusPending indicates the enumeration has been enqueued but not processed yet.
	EnumerationStatusPending EnumerationStatus = "PENDING"
	// EnumerationStatusCompleted indicates the enumeration finished successfully and a result is available.
	EnumerationStatusCompleted EnumerationStatus = "COMPLETED"
	// EnumerationStatusFailed indicates the enumeration ended with an error; see LastError and Attempts.
	EnumerationStatusFailed EnumerationStatus = "FAILED"
)

// EnumerationResult holds the outcome of a subdomain enumeration: the
// deduplicated, sorted list of hostnames belonging to the queried domain and
// the number of certificate records the provider returned.
type EnumerationResult struct {
	// Subdomains are the discovered hostnames. Each entry is the queried
	// domain itself or ends with "." plus the queried domain.
	Subdomains []string `json:"subdomains,omitempty"`
	// Certificates is the number of certificate records examined.
	Certificates int `json:"certificates,omitempty"`
}

// Enumeration represents a single subdomain enumeration request and its
// current state. It tracks the target domain, status, result, error
// information, and timestamps.
type Enumeration struct {
	// ID is the unique identifier of the enumeration.
	ID EnumerationID `json:"id"`

	// Domain is the apex domain whose subdomains are being enumerated.
	Domain string `json:"domain"`
	// Status is the current lifecycle state of the enumeration.
	Status EnumerationStatus `json:"status"`
	// Result contains the latest known outcome of the enumeration.
	Result EnumerationResult `json:"result"`

	// Attempts is the number of times the system has tried to process this enumeration.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent error message, if any, encountered while processing.
	LastError string `json:"-"`

	// CreatedAt is the time when the enumeration request was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the enumeration was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the enumeration was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
