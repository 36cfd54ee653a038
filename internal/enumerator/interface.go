package enumerator

import (
	"context"
	"subenum/pkg/ctsearch"
	"subenum/pkg/domain"
)

//go:generate mockgen -package mockenumerator -source=interface.go -destination=mock/mockenumerator.go *
type Enumerator interface {
	Enqueue(ctx context.Context, rawDomain string) (*domain.Enumeration, error)
	Enumerate(ctx context.Context, name string) (ctsearch.RateLimitStatus, error)
	Enumerations(ctx context.Context,
		name string,
		status domain.EnumerationStatus,
		cursor string,
		limit uint) ([]domain.Enumeration, string, error)
	Result(ctx context.Context, ID domain.EnumerationID) (*domain.Enumeration, error)
	Delete(ctx context.Context, ID domain.EnumerationID) error
}
