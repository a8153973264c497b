package repository

import (
	"context"
	"log/slog"

	"hotel-inventory/internal/infra"
	"hotel-inventory/internal/infra/db"
)

// execAffecting runs a single-row write and reports KindNotFound when no row matched.
func execAffecting(ctx context.Context, dbtx db.DBTX, logger *slog.Logger, msg string, sql string, args ...any) error {
	tag, err := dbtx.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapClassified(logger, msg, err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(logger, infra.KindNotFound, msg, nil)
	}
	return nil
}

// rowErr classifies a QueryRow().Scan error; pgx.ErrNoRows becomes KindNotFound.
func rowErr(logger *slog.Logger, msg string, err error) error {
	return infra.WrapClassified(logger, msg, err)
}
