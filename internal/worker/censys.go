package worker

import (
	"context"
	"errors"
	"fmt"
	"subenum/internal/enumerator"
	"subenum/pkg/ctsearch"
	"subenum/pkg/logger"
	"subenum/pkg/serrors"
	"sync"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// CTSearchWorker is a River worker that enumerates subdomains using a provided
// enumerator.Enumerator implementation. It embeds River's WorkerDefaults to
// integrate with the job runtime and provides its own cooperative rate
// limiting. The rate limiting logic ensures that we never exceed the upstream
// search API's rate limits while still allowing maximal concurrency when
// budget remains.
//
// # Rate limiting overview
//
// The worker tracks the last known upstream rate-limit status (lastRLStatus)
// and the number of requests currently in flight (inFlightRequests). Before
// starting an enumeration, reserveRL is called to "reserve" a slot from the
// current budget. The effective remaining budget is computed as:
//
//	remaining := lastRLStatus.Remaining
//	if now > lastRLStatus.ResetAt { remaining = lastRLStatus.Limit }
//
// A request is allowed to start if remaining - inFlightRequests > 0. This
// allows multiple concurrent requests as long as they do not exceed the
// Remaining budget. When there is no budget left, reserveRL waits until
// either:
//   - the ResetAt time is reached (budget replenishes to Limit), or
//   - another in-flight request finishes and signals requestFinishedChan.
//
// After a request completes, requestFinished is called with the
// server-provided ctsearch.RateLimitStatus gathered from the response. It
// decrements the inFlightRequests counter, notifies any goroutines waiting in
// reserveRL by sending a message on requestFinishedChan (non-blocking), and
// updates lastRLStatus. The update strategy prefers the freshest ResetAt and
// the lowest Remaining to avoid optimistic races when multiple concurrent
// requests report slightly different views of the budget. If ResetAt changes,
// it is always adopted. Otherwise, Remaining is only replaced when it
// decreases, which is conservative and prevents overuse.
//
// Bootstrap behavior: At startup, before any API call has returned a
// rate-limit status, lastRLStatus is initialized to a synthetic status with
// Limit=1, Remaining=1, and a far-future ResetAt. This permits exactly one
// request to go through so we can obtain real rate-limit headers from the
// upstream API. Subsequent requests use actual data. Responses without
// rate-limit headers (zero ResetAt) never overwrite the current view.
//
// Concurrency safety: All rate-limit mutable state is guarded by mu. The
// requestFinishedChan is used as a wake-up signal for waiters without
// accumulating backpressure; send is non-blocking and dropped if no one is
// waiting.
//
// Error handling: If the enumeration returns a conflict (all pending rows for
// the domain are gone), the job is canceled. If the upstream indicates rate
// limiting, the job is snoozed until ResetAt (deferring retry). Other errors
// are logged and returned.
type CTSearchWorker struct {
	river.WorkerDefaults[enumerator.JobArgs]

	// enumerator performs the actual discovery and returns rate-limit status
	// from the upstream API alongside any error.
	enumerator enumerator.Enumerator
	// mu protects all fields below it: inFlightRequests and lastRLStatus.
	mu sync.Mutex
	// inFlightRequests counts how many enumerations are currently running. It is
	// used in conjunction with lastRLStatus.Remaining to decide if another
	// request may start.
	inFlightRequests int
	// lastRLStatus stores the most recent view of the upstream rate-limit
	// headers. It is updated after each request, preferring newer ResetAt and
	// lower Remaining to avoid optimistic races between concurrent requests.
	lastRLStatus *ctsearch.RateLimitStatus
	// requestFinishedChan is a non-buffered notification channel used to wake up
	// goroutines waiting in reserveRL when any in-flight request completes.
	requestFinishedChan chan struct{}
}

// NewCTSearchWorker constructs a CTSearchWorker using the provided
// enumerator. The returned worker enforces cooperative rate limiting across
// its concurrent jobs.
func NewCTSearchWorker(enum enumerator.Enumerator) *CTSearchWorker {
	return &CTSearchWorker{
		enumerator:          enum,
		requestFinishedChan: make(chan struct{}),
	}
}

// Work executes a single enumeration job while respecting rate limits.
// It reserves rate-limit budget, runs the discovery, updates the internal
// rate-limit state, and maps errors to appropriate River actions.
func (w *CTSearchWorker) Work(ctx context.Context, job *river.Job[enumerator.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("domain", job.Args.Domain))

	// try to reserve a rate limit slot
	if err := w.reserveRL(ctx); err != nil {
		logger.Error(ctx, "error reserving rate limit", zap.Error(err))

		return fmt.Errorf("could not reserve rate limit: %w", err)
	}

	rlStatus, err := w.enumerator.Enumerate(ctx, job.Args.Domain)
	w.requestFinished(ctx, rlStatus)
	if err != nil {
		if errors.Is(err, serrors.ErrConflict) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error enumerating domain", zap.Error(err))

		if errors.Is(err, serrors.ErrRateLimited) {
			dur := time.Until(rlStatus.ResetAt)
			if dur < 0 {
				dur = 0
			}

			return river.JobSnooze(dur) //nolint: wrapcheck
		}

		return fmt.Errorf("could not enumerate domain: %w", err)
	}

	logger.Info(ctx, "domain enumerated successfully")

	return nil
}

// requestFinished is called after every enumeration attempt. It decrements the
// in-flight counter, notifies any goroutines waiting to reserve rate limit,
// and updates the last known rate-limit status using a conservative merge
// strategy to avoid races between concurrent requests.
func (w *CTSearchWorker) requestFinished(ctx context.Context, newRLStatus ctsearch.RateLimitStatus) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.inFlightRequests > 0 {
		w.inFlightRequests--
	} else {
		// Defensive clamp: avoid negative values in case of unexpected sequencing.
		w.inFlightRequests = 0
	}

	// If other goroutines are blocked in reserveRL, try to wake exactly one without
	// blocking this goroutine. If no one is waiting, the signal is dropped.
	select {
	case w.requestFinishedChan <- struct{}{}:
	default:
	}

	// If the call didn't return any RL info, don't change our view.
	if newRLStatus.ResetAt.IsZero() {
		return
	}

	log := func() {
		logger.Debug(ctx, "received rate limit status",
			zap.Int("limit", newRLStatus.Limit),
			zap.Int("remaining", newRLStatus.Remaining),
			zap.Time("resetAt", newRLStatus.ResetAt),
			zap.Int("inFlight", w.inFlightRequests))
	}

	// First observation: adopt it unconditionally.
	if w.lastRLStatus == nil {
		w.lastRLStatus = &newRLStatus
		log()

		return
	}

	// If ResetAt changed, always adopt the new window.
	if !w.lastRLStatus.ResetAt.Equal(newRLStatus.ResetAt) {
		w.lastRLStatus = &newRLStatus
		log()

		return
	}

	// Otherwise prefer the lower Remaining to stay conservative under concurrency.
	if newRLStatus.Remaining < w.lastRLStatus.Remaining {
		w.lastRLStatus = &newRLStatus
		log()
	}
}

// reserveRL reserves one unit from the rate-limit budget or blocks until a
// unit becomes available. It implements the cooperative rate limiting
// described in the type-level comment:
//  1. On first use, initialize a synthetic RL state to allow a single probe
//     request to gather real headers.
//  2. Compute effective remaining budget; if we've passed ResetAt, Remaining
//     is treated as Limit.
//  3. If remaining - inFlightRequests > 0, increment inFlightRequests and
//     return.
//  4. Otherwise, wait until either ResetAt elapses or any in-flight request
//     completes (signaled via requestFinishedChan), then retry.
//
// If ctx is canceled while waiting, an error is returned.
func (w *CTSearchWorker) reserveRL(ctx context.Context) error {
	for {
		w.mu.Lock()

		if w.lastRLStatus == nil {
			// At startup allow one request to get feedback from the API.
			w.lastRLStatus = &ctsearch.RateLimitStatus{
				Limit:     1,
				Remaining: 1,
				// Far-future reset so the first reservation doesn't
				// unblock due to a timer; we'll replace this with real headers soon.
				ResetAt: time.Now().Add(365 * 24 * time.Hour),
			}
		}

		remaining := w.lastRLStatus.Remaining
		// If the reset time has passed, treat the full limit as remaining.
		if time.Now().UTC().After(w.lastRLStatus.ResetAt) {
			remaining = w.lastRLStatus.Limit
		}

		// If budget remains once we account for in-flight requests, reserve and go.
		if remaining-w.inFlightRequests > 0 {
			logger.Debug(ctx, "reserved rate limit slot",
				zap.Int("remaining", remaining),
				zap.Int("limit", w.lastRLStatus.Limit),
				zap.Time("resetAt", w.lastRLStatus.ResetAt),
				zap.Int("inFlight", w.inFlightRequests))
			w.inFlightRequests++
			w.mu.Unlock()

			return nil
		}

		// Otherwise, wait for either the reset time (if in the future) or for any
		// request to finish, then retry.
		resetAt := w.lastRLStatus.ResetAt
		w.mu.Unlock()

		logger.Debug(ctx, "waiting for rate limit slot",
			zap.Int("remaining", remaining),
			zap.Time("resetAt", resetAt),
			zap.Int("inFlight", w.inFlightRequests))

		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for rate limit: %w", ctx.Err())
		case <-w.requestFinishedChan:
			// loop to re-evaluate
			continue
		case <-time.After(time.Until(resetAt)):
			// Reset window elapsed; loop and try again.
			continue
		}
	}
}
