package repository

import (
	"context"
	"errors"
	"fmt"

	"bistro_boss/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func newID() string {
	return uuid.NewString()
}

// extraColumn never hands pgx a nil map, which would encode as SQL NULL
func extraColumn(e model.Extra) model.Extra {
	if e == nil {
		return model.Extra{}
	}
	return e
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// estimatedCount reads the planner's row estimate instead of scanning the table.
// A table that was never analyzed reports -1, which is clamped to zero.
func estimatedCount(ctx context.Context, db DB, table string) (int64, error) {
	var n int64
	sql := `SELECT GREATEST(reltuples, 0)::bigint FROM pg_class WHERE oid = to_regclass($1)`
	err := db.QueryRow(ctx, sql, table).Scan(&n)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to estimate %s count: %w", table, err)
	}
	return n, nil
}
