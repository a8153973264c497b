//go:build unit

package uow

import (
	"testing"
	"time"

	"hotel-inventory/internal/pkg/config"
	"hotel-inventory/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pgconn.PgError{Code: pgErrCodeSerializationFailure}, true},
		{"deadlock", errs.Wrap(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}, "update booking"), true},
		{"marked commit failure", errs.Mark(&pgconn.PgError{Code: pgErrCodeSerializationFailure}, errTransactionCommit), true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain error", errs.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetryStopsAtLimit(t *testing.T) {
	err := &pgconn.PgError{Code: pgErrCodeDeadlockDetected}
	assert.True(t, shouldRetry(err, 0, 3))
	assert.True(t, shouldRetry(err, 2, 3))
	assert.False(t, shouldRetry(err, 3, 3))
}

func TestCalculateBackoffGrowsWithJitterBound(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := range 4 {
		want := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, want)
		assert.Less(t, got, want+want/5+time.Nanosecond)
	}
}

func TestNewPostgresUoWReadsRetryLimit(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.Booking.TxMaxRetries = 5
	u := NewPostgresUoW(nil, cfg).(*PostgresUoW)
	assert.Equal(t, 5, u.maxRetries)

	cfg.Booking.TxMaxRetries = -1
	u = NewPostgresUoW(nil, cfg).(*PostgresUoW)
	assert.Equal(t, 0, u.maxRetries)
}
