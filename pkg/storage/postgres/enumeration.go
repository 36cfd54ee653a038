package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"subenum/pkg/domain"
	"subenum/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	enumerationsTable = "enumerations"
)

func (p *PgSQL) StoreEnumerations(ctx context.Context,
	enums ...domain.Enumeration) ([]domain.Enumeration, error) {
	if len(enums) == 0 {
		return nil, nil
	}

	pgEnums, err := domainEnumsToPg(enums)
	if err != nil {
		return nil, err
	}

	var result []PgEnumeration
	if err := p.Builder.Insert(enumerationsTable).
		Rows(pgEnums).
		Returning(&PgEnumeration{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store enumerations into pg: %w", err)
	}

	return pgEnumsToDomain(result)
}

// updateRecord builds the goqu record shared by the update operations. It
// always bumps updated_at and applies only the provided optional fields.
func updateRecord(updates storage.EnumerationUpdates, incrementAttempts bool) (goqu.Record, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if incrementAttempts {
		rec["attempts"] = goqu.L("attempts + 1")
	}
	if updates.Status != "" {
		if updates.Status == domain.EnumerationStatusFailed && updates.MaxAttempts > 0 {
			// only fail for good once the attempt budget is spent
			rec["status"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE status END",
				updates.MaxAttempts, string(domain.EnumerationStatusFailed))
		} else {
			rec["status"] = string(updates.Status)
		}
	}
	if updates.Result != nil {
		b, err := json.Marshal(updates.Result)
		if err != nil {
			return nil, fmt.Errorf("could not marshal result: %w", err)
		}

		rec["result"] = b
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	return rec, nil
}

// UpdatePendingEnumerationsByDomain updates all pending enumerations for the
// given domain with the provided fields. Only non-nil fields from updates are
// set. Attempts is incremented by 1 and updated_at is set.
func (p *PgSQL) UpdatePendingEnumerationsByDomain(ctx context.Context,
	name string,
	updates storage.EnumerationUpdates) error {
	rec, err := updateRecord(updates, true)
	if err != nil {
		return err
	}

	_, err = p.Builder.Update(enumerationsTable).
		Set(rec).Where(
		goqu.I("domain").Eq(name),
		goqu.I("status").Eq(string(domain.EnumerationStatusPending)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update pending enumerations by domain in pg: %w", err)
	}

	return nil
}

// PendingEnumerationCountByDomain counts pending, non-deleted enumerations for
// the given domain.
func (p *PgSQL) PendingEnumerationCountByDomain(ctx context.Context, name string) (int64, error) {
	count, err := p.Builder.From(enumerationsTable).
		Where(
			goqu.I("domain").Eq(name),
			goqu.I("status").Eq(string(domain.EnumerationStatusPending)),
			goqu.I("deleted_at").IsNull(),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count pending enumerations in pg: %w", err)
	}

	return count, nil
}

// UpdateEnumerationByID updates a single enumeration identified by its ID and
// returns the updated row, or nil when no matching row exists. Soft-deleted
// rows are ignored and updated_at is set automatically.
func (p *PgSQL) UpdateEnumerationByID(ctx context.Context,
	id domain.EnumerationID,
	updates storage.EnumerationUpdates) (*domain.Enumeration, error) {
	rec, err := updateRecord(updates, false)
	if err != nil {
		return nil, err
	}

	var row PgEnumeration
	found, err := p.Builder.Update(enumerationsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgEnumeration{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update enumeration by id in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteEnumeration performs a soft delete by setting deleted_at timestamp
// for a given enumeration id, returning the deleted record.
func (p *PgSQL) DeleteEnumeration(ctx context.Context,
	id domain.EnumerationID) (*domain.Enumeration, error) {
	var row PgEnumeration
	found, err := p.Builder.Update(enumerationsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgEnumeration{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete enumeration in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// Enumerations returns a page of enumerations filtered by optional domain,
// status and cursor, limited by limit. Results are ordered by created_at
// DESC, id DESC. Returns the next cursor for pagination.
func (p *PgSQL) Enumerations(ctx context.Context,
	name string,
	status domain.EnumerationStatus,
	cursor time.Time,
	limit uint) (storage.EnumerationPage, error) {
	w := []goqu.Expression{
		goqu.I("deleted_at").IsNull(),
	}
	if name != "" {
		w = append(w, goqu.I("domain").Eq(name))
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(enumerationsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgEnumeration
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.EnumerationPage{}, fmt.Errorf("could not fetch enumerations from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	domainRows, err := pgEnumsToDomain(rows)
	if err != nil {
		return storage.EnumerationPage{}, err
	}

	return storage.EnumerationPage{
		Enumerations: domainRows,
		NextCursor:   nextCursor,
	}, nil
}

// EnumerationByID returns an enumeration by its ID, excluding soft-deleted rows.
func (p *PgSQL) EnumerationByID(ctx context.Context,
	id domain.EnumerationID) (*domain.Enumeration, error) {
	var row PgEnumeration
	found, err := p.Builder.From(enumerationsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch enumeration by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// LastCompletedEnumerationByDomain returns the most recent completed
// enumeration for the given domain, or nil when none exists.
func (p *PgSQL) LastCompletedEnumerationByDomain(ctx context.Context,
	name string) (*domain.Enumeration, error) {
	var row PgEnumeration
	found, err := p.Builder.From(enumerationsTable).
		Where(
			goqu.I("domain").Eq(name),
			goqu.I("status").Eq(string(domain.EnumerationStatusCompleted)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("updated_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch last completed enumeration: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
