package enumerator

import (
	"context"
	"fmt"
	"subenum/internal/config"
	"subenum/pkg/ctsearch"
	"subenum/pkg/domain"
	"subenum/pkg/logger"
	"subenum/pkg/serrors"
	"subenum/pkg/storage"
	"time"

	"go.uber.org/zap"
)

// Options configure how enumeration jobs are enqueued and how results are
// cached. These settings are typically derived from application configuration.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when processing an enumeration job before marking it failed.
	MaxAttempts int
	// ResultCacheTTL is the duration during which a completed result makes new
	// enumeration requests for the same domain reuse that result instead of
	// enqueueing a duplicate job.
	ResultCacheTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:    cfg.Enumerator.MaxAttempts,
		ResultCacheTTL: cfg.Enumerator.ResultCacheTTL,
	}
}

// enumerator is the concrete implementation of the Enumerator interface.
// It coordinates persistence with the storage layer, job enqueueing, and the
// upstream certificate-search provider.
type enumerator struct {
	// options holds runtime configuration that affects enqueueing and caching.
	options Options
	// storage is the persistence layer used to store enumerations and manage jobs.
	storage storage.Storage
	// client is the certificate-transparency search provider.
	client ctsearch.Client
}

// Enqueue stores a new enumeration request for the given domain and attempts
// to enqueue a background job to process it. If a recent completed result
// exists for the same domain (within ResultCacheTTL), the new enumeration is
// immediately marked as completed with that result.
func (e enumerator) Enqueue(ctx context.Context, rawDomain string) (*domain.Enumeration, error) {
	var enum *domain.Enumeration
	name, err := NormalizeDomain(rawDomain)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid domain")
	}

	if err := e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreEnumerations(ctx, domain.Enumeration{
			Domain: name,
			Status: domain.EnumerationStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store enumeration: %w", err)
		}
		enum = &res[0]

		jobAdded, err := tx.AddJob(ctx, JobArgs{
			Domain:          name,
			maxAttempts:     e.options.MaxAttempts,
			uniqueJobPeriod: e.options.ResultCacheTTL,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		// if a job was not added, it means that another job already exists for this domain.
		// river unique jobs prevent having duplicate jobs for the same domain.
		if !jobAdded {
			// if the existing job is already completed, we should get its result from db
			// and update the new enumeration
			lastResult, err := tx.LastCompletedEnumerationByDomain(ctx, name)
			if err != nil {
				return fmt.Errorf("could not get last completed enumeration: %w", err)
			}

			if lastResult != nil {
				updated, err := tx.UpdateEnumerationByID(ctx, enum.ID, storage.EnumerationUpdates{
					Status: domain.EnumerationStatusCompleted,
					Result: &lastResult.Result,
				})
				if err != nil {
					return fmt.Errorf("could not update enumeration: %w", err)
				}
				enum = updated
			} // else: the job is in the queue and will be processed soon.
			// Job will automatically update all pending enumerations by domain upon completion.
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue domain: %w", err)
	}

	return enum, nil
}

// Enumerate performs the actual discovery for a domain with pending
// enumerations. It is called by the background worker. When no pending
// enumerations remain (for example because they were all deleted), a conflict
// error is returned so the caller can cancel the job. The upstream rate-limit
// status is always returned, including on failure, so callers can throttle.
func (e enumerator) Enumerate(ctx context.Context, name string) (ctsearch.RateLimitStatus, error) {
	count, err := e.storage.PendingEnumerationCountByDomain(ctx, name)
	if err != nil {
		return ctsearch.RateLimitStatus{}, fmt.Errorf("could not count pending enumerations: %w", err)
	}
	if count == 0 {
		return ctsearch.RateLimitStatus{}, serrors.With(serrors.ErrConflict,
			"no pending enumerations for domain")
	}

	result, rlStatus, err := Discover(ctx, e.client, name)
	if err != nil {
		lastError := err.Error()
		if uerr := e.storage.UpdatePendingEnumerationsByDomain(ctx, name, storage.EnumerationUpdates{
			Status:      domain.EnumerationStatusFailed,
			LastError:   &lastError,
			MaxAttempts: e.options.MaxAttempts,
		}); uerr != nil {
			logger.Error(ctx, "could not record enumeration failure", zap.Error(uerr))
		}

		return rlStatus, err
	}

	empty := ""
	if err := e.storage.UpdatePendingEnumerationsByDomain(ctx, name, storage.EnumerationUpdates{
		Status:    domain.EnumerationStatusCompleted,
		Result:    &result,
		LastError: &empty, // clear any error from previous attempts
	}); err != nil {
		return rlStatus, fmt.Errorf("could not complete pending enumerations: %w", err)
	}

	return rlStatus, nil
}

// Enumerations returns a page of enumerations filtered by optional domain and
// status. It supports cursor-based pagination using an RFC3339 timestamp
// string and returns the next cursor when more results are available.
func (e enumerator) Enumerations(ctx context.Context,
	name string,
	status domain.EnumerationStatus,
	cursor string,
	limit uint) ([]domain.Enumeration, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := e.storage.Enumerations(ctx, name, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get enumerations: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Enumerations, next, nil
}

// Result fetches a single enumeration by ID. It returns a not-found error
// when no matching enumeration exists.
func (e enumerator) Result(ctx context.Context, ID domain.EnumerationID) (*domain.Enumeration, error) {
	res, err := e.storage.EnumerationByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get enumeration result: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "enumeration not found")
	}

	return res, nil
}

// Delete removes an enumeration. If it does not exist, a not-found error is
// returned. Jobs are not cancelled here because other pending enumerations
// may still depend on the same domain job.
func (e enumerator) Delete(ctx context.Context, ID domain.EnumerationID) error {
	res, err := e.storage.DeleteEnumeration(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not delete enumeration: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "enumeration not found")
	}

	// we don't delete jobs from the queue here because there might be other
	// enumerations depending on the job. The job worker makes sure there are
	// still pending enumerations for the domain before processing.

	return nil
}

// New creates a new Enumerator instance backed by the provided storage and
// certificate-search client, configured with the given options.
func New(storage storage.Storage, client ctsearch.Client, options Options) Enumerator {
	return &enumerator{
		options: options,
		storage: storage,
		client:  client,
	}
}
