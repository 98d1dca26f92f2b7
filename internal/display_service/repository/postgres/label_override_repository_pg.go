package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dialware/golang_services/internal/display_service/domain"
)

// Querier is the slice of *pgxpool.Pool this repository needs. pgxmock
// implements it, which keeps the tests off a live database.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PgLabelOverrideRepository persists label overrides in the
// label_overrides table:
//
//	id uuid PK, locale text, label_key text, label_text text,
//	created_at timestamptz, updated_at timestamptz,
//	UNIQUE (locale, label_key)
type PgLabelOverrideRepository struct {
	db     Querier
	logger *slog.Logger
}

func NewPgLabelOverrideRepository(db Querier, logger *slog.Logger) domain.LabelOverrideRepository {
	return &PgLabelOverrideRepository{db: db, logger: logger.With("component", "label_override_repository_pg")}
}

// Upsert inserts the override or, when the (locale, label_key) pair already
// exists, replaces its text and updated_at while keeping the original row id.
func (r *PgLabelOverrideRepository) Upsert(ctx context.Context, o *domain.LabelOverride) error {
	query := `INSERT INTO label_overrides (id, locale, label_key, label_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (locale, label_key)
		DO UPDATE SET label_text = EXCLUDED.label_text, updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, query, o.ID, o.Locale, o.LabelKey, o.LabelText, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to upsert label override", "error", err, "locale", o.Locale, "label_key", o.LabelKey)
		return fmt.Errorf("upserting label override: %w", err)
	}
	r.logger.DebugContext(ctx, "Label override upserted", "locale", o.Locale, "label_key", o.LabelKey)
	return nil
}

// Delete removes one override row. Deleting an absent row fails with
// domain.ErrOverrideNotFound.
func (r *PgLabelOverrideRepository) Delete(ctx context.Context, locale string, key domain.LabelKey) error {
	query := `DELETE FROM label_overrides WHERE locale = $1 AND label_key = $2`

	tag, err := r.db.Exec(ctx, query, locale, key)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete label override", "error", err, "locale", locale, "label_key", key)
		return fmt.Errorf("deleting label override: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOverrideNotFound
	}
	r.logger.DebugContext(ctx, "Label override deleted", "locale", locale, "label_key", key)
	return nil
}

// ListAll returns every stored override ordered by locale then key, for the
// startup replay into the catalog.
func (r *PgLabelOverrideRepository) ListAll(ctx context.Context) ([]*domain.LabelOverride, error) {
	query := `SELECT id, locale, label_key, label_text, created_at, updated_at
		FROM label_overrides ORDER BY locale, label_key`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query label overrides", "error", err)
		return nil, fmt.Errorf("querying label overrides: %w", err)
	}
	defer rows.Close()

	var overrides []*domain.LabelOverride
	for rows.Next() {
		var o domain.LabelOverride
		if err := rows.Scan(&o.ID, &o.Locale, &o.LabelKey, &o.LabelText, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning label override: %w", err)
		}
		overrides = append(overrides, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating label overrides: %w", err)
	}
	return overrides, nil
}
