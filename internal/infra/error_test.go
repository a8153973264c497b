//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"hotel-inventory/internal/infra"
	"hotel-inventory/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: infra.KindNotFound},
		{name: "unique", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "check", err: &pgconn.PgError{Code: "23514"}, want: infra.KindCheckViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "42P01"}, want: infra.KindDBFailure},
		{name: "plain error", err: errors.New("connection reset"), want: infra.KindDBFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, infra.Classify(tt.err))
		})
	}
}

func TestRepositoryErrorKinds(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		kind infra.RepositoryErrorKind
		is   error
	}{
		{infra.KindNotFound, errs.ErrNotFound},
		{infra.KindDuplicateKey, errs.ErrConflict},
		{infra.KindForeignKeyViolated, errs.ErrIntegrityViolation},
		{infra.KindCheckViolated, errs.ErrInvalidArgument},
		{infra.KindDBFailure, errs.ErrDatabaseOperationFailed},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := infra.WrapRepoErr(logger, tt.kind, "load booking", errors.New("driver"))

			assert.True(t, infra.IsKind(err, tt.kind))
			assert.ErrorIs(t, err, tt.is)
			assert.Contains(t, err.Error(), "load booking")
		})
	}

	wrapped := fmt.Errorf("usecase: %w", infra.WrapClassified(logger, "delete room", &pgconn.PgError{Code: "23503"}))
	assert.ErrorIs(t, wrapped, errs.ErrIntegrityViolation)
	assert.Equal(t, errs.ErrIntegrityViolation, errs.Kind(wrapped))
}
