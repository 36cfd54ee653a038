package enumerator_test

import (
	"context"
	"errors"
	"subenum/internal/enumerator"
	"subenum/pkg/ctsearch"
	mockctsearch "subenum/pkg/ctsearch/mock"
	"subenum/pkg/domain"
	"subenum/pkg/serrors"
	"subenum/pkg/storage"
	mockstorage "subenum/pkg/storage/mock"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
)

const testDomain = "example.com"

func newTestEnumerator(t *testing.T) (*gomock.Controller,
	*mockstorage.MockStorage,
	*mockctsearch.MockClient,
	enumerator.Enumerator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	client := mockctsearch.NewMockClient(ctrl)
	e := enumerator.New(st, client, enumerator.Options{MaxAttempts: 3, ResultCacheTTL: time.Hour})

	return ctrl, st, client, e
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			// provide a tx mock that implements AllStorage
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestEnumerator_Enqueue_JobAdded(t *testing.T) {
	ctrl, st, _, e := newTestEnumerator(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		// Expect storing the enumeration
		tx.EXPECT().StoreEnumerations(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, enums ...domain.Enumeration) ([]domain.Enumeration, error) {
				if len(enums) != 1 {
					t.Fatalf("expected one enumeration input")
				}
				if enums[0].Domain != testDomain {
					t.Fatalf("expected normalized domain %q, got %q", testDomain, enums[0].Domain)
				}

				return enums, nil
			},
		)
		// Expect adding a job and report it was added
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	enum, err := e.Enqueue(context.Background(), "Example.COM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enum == nil {
		t.Fatalf("expected enumeration, got nil")
	}
	if enum.Domain != testDomain {
		t.Fatalf("expected domain %q got %q", testDomain, enum.Domain)
	}
	if enum.Status != domain.EnumerationStatusPending {
		t.Fatalf("expected status PENDING, got %s", enum.Status)
	}
}

func TestEnumerator_Enqueue_UsesLastCompletedResult(t *testing.T) {
	ctrl, st, _, e := newTestEnumerator(t)

	completed := domain.Enumeration{
		Result: domain.EnumerationResult{Subdomains: []string{"www." + testDomain}},
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreEnumerations(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, enums ...domain.Enumeration) ([]domain.Enumeration, error) {
				return enums, nil
			},
		)
		// Job not added (already exists)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		// There is a last completed enumeration for the domain
		tx.EXPECT().LastCompletedEnumerationByDomain(gomock.Any(), testDomain).Return(&completed, nil)
		// Update the newly created enumeration to completed with that result
		tx.EXPECT().UpdateEnumerationByID(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.EnumerationID, updates storage.EnumerationUpdates) (*domain.Enumeration, error) {
				if updates.Status != domain.EnumerationStatusCompleted || updates.Result == nil {
					t.Fatalf("expected completed update with result")
				}
				res := domain.Enumeration{
					Status: domain.EnumerationStatusCompleted,
					Result: *updates.Result,
				}

				return &res, nil
			},
		)
	})

	enum, err := e.Enqueue(context.Background(), testDomain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enum.Status != domain.EnumerationStatusCompleted {
		t.Fatalf("expected status COMPLETED, got %s", enum.Status)
	}
	if len(enum.Result.Subdomains) != 1 {
		t.Fatalf("expected cached result to be reused, got %+v", enum.Result)
	}
}

func TestEnumerator_Enqueue_PendingWhenJobExistsWithoutResult(t *testing.T) {
	ctrl, st, _, e := newTestEnumerator(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreEnumerations(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, enums ...domain.Enumeration) ([]domain.Enumeration, error) {
				return enums, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().LastCompletedEnumerationByDomain(gomock.Any(), testDomain).Return(nil, nil)
	})

	enum, err := e.Enqueue(context.Background(), testDomain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enum.Status != domain.EnumerationStatusPending {
		t.Fatalf("expected status PENDING, got %s", enum.Status)
	}
}

func TestEnumerator_Enqueue_InvalidDomain(t *testing.T) {
	_, st, _, e := newTestEnumerator(t)
	// No storage calls expected

	_, err := e.Enqueue(context.Background(), "*.example.com")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	// ensure no calls were made on storage
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(0)
}

func TestEnumerator_Enqueue_PropagatesErrors(t *testing.T) {
	ctrl, st, _, e := newTestEnumerator(t)

	// error from StoreEnumerations
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreEnumerations(gomock.Any(), gomock.Any()).Return(nil, errors.New("store err"))
	})
	if _, err := e.Enqueue(context.Background(), testDomain); err == nil {
		t.Fatalf("expected error from StoreEnumerations")
	}

	// error from AddJob
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreEnumerations(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, enums ...domain.Enumeration) ([]domain.Enumeration, error) {
				return enums, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("add err"))
	})
	if _, err := e.Enqueue(context.Background(), testDomain); err == nil {
		t.Fatalf("expected error from AddJob")
	}

	// error from LastCompletedEnumerationByDomain
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreEnumerations(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, enums ...domain.Enumeration) ([]domain.Enumeration, error) {
				return enums, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().LastCompletedEnumerationByDomain(gomock.Any(), testDomain).
			Return(nil, errors.New("last err"))
	})
	if _, err := e.Enqueue(context.Background(), testDomain); err == nil {
		t.Fatalf("expected error from LastCompletedEnumerationByDomain")
	}

	// error from UpdateEnumerationByID
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreEnumerations(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, enums ...domain.Enumeration) ([]domain.Enumeration, error) {
				return enums, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().LastCompletedEnumerationByDomain(gomock.Any(), testDomain).
			Return(&domain.Enumeration{}, nil)
		tx.EXPECT().UpdateEnumerationByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("update err"))
	})
	if _, err := e.Enqueue(context.Background(), testDomain); err == nil {
		t.Fatalf("expected error from UpdateEnumerationByID")
	}
}

func TestEnumerator_Enumerate_Success(t *testing.T) {
	_, st, client, e := newTestEnumerator(t)

	rl := ctsearch.RateLimitStatus{Limit: 10, Remaining: 9, ResetAt: time.Now().Add(time.Minute)}
	st.EXPECT().PendingEnumerationCountByDomain(gomock.Any(), testDomain).Return(int64(2), nil)
	client.EXPECT().Search(gomock.Any(), testDomain).Return([]ctsearch.CertificateRecord{
		{Names: []string{"www." + testDomain}},
	}, rl, nil)
	st.EXPECT().UpdatePendingEnumerationsByDomain(gomock.Any(), testDomain, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, updates storage.EnumerationUpdates) error {
			if updates.Status != domain.EnumerationStatusCompleted {
				t.Fatalf("expected COMPLETED update, got %s", updates.Status)
			}
			if updates.Result == nil || len(updates.Result.Subdomains) != 1 {
				t.Fatalf("expected result with one subdomain, got %+v", updates.Result)
			}
			if updates.LastError == nil || *updates.LastError != "" {
				t.Fatalf("expected last error to be cleared")
			}

			return nil
		},
	)

	rlStatus, err := e.Enumerate(context.Background(), testDomain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rlStatus != rl {
		t.Fatalf("expected rate limit status %+v, got %+v", rl, rlStatus)
	}
}

func TestEnumerator_Enumerate_ConflictWhenNoPending(t *testing.T) {
	_, st, _, e := newTestEnumerator(t)

	st.EXPECT().PendingEnumerationCountByDomain(gomock.Any(), testDomain).Return(int64(0), nil)

	_, err := e.Enumerate(context.Background(), testDomain)
	if err == nil || !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestEnumerator_Enumerate_MarksFailedOnSearchError(t *testing.T) {
	_, st, client, e := newTestEnumerator(t)

	rl := ctsearch.RateLimitStatus{Limit: 10}
	searchErr := serrors.With(serrors.ErrRateLimited, "slow down")
	st.EXPECT().PendingEnumerationCountByDomain(gomock.Any(), testDomain).Return(int64(1), nil)
	client.EXPECT().Search(gomock.Any(), testDomain).Return(nil, rl, searchErr)
	st.EXPECT().UpdatePendingEnumerationsByDomain(gomock.Any(), testDomain, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, updates storage.EnumerationUpdates) error {
			if updates.Status != domain.EnumerationStatusFailed {
				t.Fatalf("expected FAILED update, got %s", updates.Status)
			}
			if updates.LastError == nil || *updates.LastError == "" {
				t.Fatalf("expected last error to be recorded")
			}
			if updates.MaxAttempts != 3 {
				t.Fatalf("expected max attempts 3, got %d", updates.MaxAttempts)
			}

			return nil
		},
	)

	rlStatus, err := e.Enumerate(context.Background(), testDomain)
	// original error must propagate so the worker can map it
	if err == nil || !errors.Is(err, serrors.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if rlStatus != rl {
		t.Fatalf("expected rate limit status %+v, got %+v", rl, rlStatus)
	}
}

func TestEnumerator_Enumerations_SuccessAndPagination(t *testing.T) {
	_, st, _, e := newTestEnumerator(t)
	status := domain.EnumerationStatusPending
	cursorTime := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
	cursor := cursorTime.Format(time.RFC3339)

	page := storage.EnumerationPage{
		Enumerations: []domain.Enumeration{{Domain: testDomain}},
		NextCursor: func() *time.Time {
			t := cursorTime.Add(-time.Minute)

			return &t
		}(),
	}

	st.EXPECT().Enumerations(gomock.Any(), testDomain, status, cursorTime, uint(10)).Return(page, nil)

	enums, next, err := e.Enumerations(context.Background(), testDomain, status, cursor, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(enums) != 1 || enums[0].Domain != testDomain {
		t.Fatalf("unexpected enumerations: %+v", enums)
	}
	if next == "" {
		t.Fatalf("expected next cursor, got empty")
	}
}

func TestEnumerator_Enumerations_InvalidCursor(t *testing.T) {
	_, _, _, e := newTestEnumerator(t)
	_, _, err := e.Enumerations(context.Background(), testDomain, "", "not-a-time", 5)
	if err == nil || !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestEnumerator_Result(t *testing.T) {
	_, st, _, e := newTestEnumerator(t)
	id := domain.EnumerationID{}

	// found
	st.EXPECT().EnumerationByID(gomock.Any(), id).Return(&domain.Enumeration{Domain: testDomain}, nil)
	enum, err := e.Result(context.Background(), id)
	if err != nil || enum == nil || enum.Domain != testDomain {
		t.Fatalf("unexpected: enum=%+v err=%v", enum, err)
	}

	// not found
	st.EXPECT().EnumerationByID(gomock.Any(), id).Return(nil, nil)
	_, err = e.Result(context.Background(), id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// storage error
	st.EXPECT().EnumerationByID(gomock.Any(), id).Return(nil, errors.New("boom"))
	_, err = e.Result(context.Background(), id)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestEnumerator_Delete(t *testing.T) {
	_, st, _, e := newTestEnumerator(t)
	id := domain.EnumerationID{}

	// success
	st.EXPECT().DeleteEnumeration(gomock.Any(), id).Return(&domain.Enumeration{}, nil)
	if err := e.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// not found
	st.EXPECT().DeleteEnumeration(gomock.Any(), id).Return(nil, nil)
	err := e.Delete(context.Background(), id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// storage error
	st.EXPECT().DeleteEnumeration(gomock.Any(), id).Return(nil, errors.New("boom"))
	if err := e.Delete(context.Background(), id); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
