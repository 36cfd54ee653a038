package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"subenum/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgEnumeration struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Domain string          `db:"domain"`
	Status string          `db:"status"`
	Result json.RawMessage `db:"result" goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgEnumeration) ToDomain() (*domain.Enumeration, error) {
	var result domain.EnumerationResult
	if err := json.Unmarshal(p.Result, &result); err != nil {
		return nil, fmt.Errorf("could not unmarshal enumeration result: %w", err)
	}

	return &domain.Enumeration{
		ID:        domain.EnumerationID(p.ID),
		Domain:    p.Domain,
		Status:    domain.EnumerationStatus(p.Status),
		Result:    result,
		Attempts:  p.Attempts,
		LastError: p.LastError.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}, nil
}

func (p *PgEnumeration) FromDomain(enum domain.Enumeration) error {
	result, err := json.Marshal(enum.Result)
	if err != nil {
		return fmt.Errorf("could not marshal enumeration result: %w", err)
	}

	*p = PgEnumeration{
		ID:       uuid.UUID(enum.ID),
		Domain:   enum.Domain,
		Status:   string(enum.Status),
		Result:   result,
		Attempts: enum.Attempts,
		LastError: sql.NullString{
			String: enum.LastError,
			Valid:  enum.LastError != "",
		},
		CreatedAt: enum.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  enum.UpdatedAt,
			Valid: !enum.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  enum.DeletedAt,
			Valid: !enum.DeletedAt.IsZero(),
		},
	}

	return nil
}

func domainEnumsToPg(enums []domain.Enumeration) ([]PgEnumeration, error) {
	out := make([]PgEnumeration, len(enums))
	for i := range out {
		if err := out[i].FromDomain(enums[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgEnumsToDomain(enums []PgEnumeration) ([]domain.Enumeration, error) {
	out := make([]domain.Enumeration, 0, len(enums))
	for _, enum := range enums {
		d, err := enum.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
