package storage

import (
	"context"
	"subenum/pkg/domain"
	"time"
)

// EnumerationUpdates describes a set of optional fields that can be applied to
// an existing enumeration during an update. Only non-nil fields will be updated.
type EnumerationUpdates struct {
	// Status is the new status to set for the enumeration.
	Status domain.EnumerationStatus
	// Result, when provided, replaces the stored enumeration result payload.
	Result *domain.EnumerationResult
	// LastError, when provided, sets the last error text. An empty string value
	// indicates the error should be cleared (set to NULL).
	LastError *string
	// MaxAttempts, when provided alongside a Failed status, ensures that status
	// is only updated to Failed if the current attempts after increment would
	// exceed this threshold. A value <= 0 disables this guard.
	MaxAttempts int
}

// EnumerationPage groups a page of enumerations together with an optional
// NextCursor used for pagination.
type EnumerationPage struct {
	// Enumerations contains the current page of records.
	Enumerations []domain.Enumeration
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// EnumerationStorage defines CRUD and query operations related to subdomain
// enumerations. Implementations should ensure idempotency and proper handling
// of soft-deletes where applicable.
type EnumerationStorage interface {
	// StoreEnumerations inserts one or more enumerations and returns the stored
	// rows as they exist in the database (including generated fields).
	StoreEnumerations(ctx context.Context, enums ...domain.Enumeration) ([]domain.Enumeration, error)
	// UpdatePendingEnumerationsByDomain updates all pending enumerations for the
	// given domain using the provided field set.
	// Notes:
	// - Attempts is incremented by 1 and updated_at is set automatically.
	// - If Status is Failed and MaxAttempts > 0, status is only set to Failed
	//   when the attempts after increment would exceed MaxAttempts; otherwise
	//   status remains unchanged (i.e., stays Pending).
	UpdatePendingEnumerationsByDomain(ctx context.Context, name string, updates EnumerationUpdates) error
	// PendingEnumerationCountByDomain returns the total number of pending
	// enumerations for the given domain. Soft-deleted records are excluded.
	PendingEnumerationCountByDomain(ctx context.Context, name string) (int64, error)
	// UpdateEnumerationByID updates a single enumeration identified by its ID and
	// returns the updated row. The update ignores soft-deleted rows and sets
	// updated_at automatically. Only provided fields are changed.
	UpdateEnumerationByID(ctx context.Context,
		ID domain.EnumerationID,
		updates EnumerationUpdates) (*domain.Enumeration, error)
	// DeleteEnumeration performs a soft delete for the given enumeration ID and
	// returns the deleted record, or nil if it was not found.
	DeleteEnumeration(ctx context.Context, ID domain.EnumerationID) (*domain.Enumeration, error)
	// Enumerations returns a page of enumerations created before the optional
	// cursor time, limited by the given limit. If name is non-empty, results are
	// filtered to the given domain; if status is non-empty, to the given status.
	Enumerations(ctx context.Context,
		name string,
		status domain.EnumerationStatus,
		cursor time.Time,
		limit uint) (EnumerationPage, error)
	// EnumerationByID fetches an enumeration by its ID, excluding soft-deleted
	// records. Returns nil when not found.
	EnumerationByID(ctx context.Context, ID domain.EnumerationID) (*domain.Enumeration, error)
	// LastCompletedEnumerationByDomain returns the most recent completed
	// enumeration for a given domain. Returns nil when none exists.
	LastCompletedEnumerationByDomain(ctx context.Context, name string) (*domain.Enumeration, error)
}
