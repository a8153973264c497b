//go:build unit

package pgconv

import (
	"database/sql"
	"testing"
	"time"

	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateConversions(t *testing.T) {
	d := calendar.MustParseDate("2024-03-01")

	pd := DateToPgtype(d)
	require.True(t, pd.Valid)
	assert.True(t, DateFromPgtype(pd).Equal(d))

	assert.False(t, DateToPgtype(calendar.Date{}).Valid)
	assert.True(t, DateFromPgtype(pgtype.Date{}).IsZero())
	assert.Nil(t, DatePtrFromPgtype(pgtype.Date{}))
	assert.False(t, DatePtrToPgtype(nil).Valid)

	// a local-time DATE value still maps to the same calendar day
	local := pgtype.Date{Time: time.Date(2024, 3, 1, 0, 0, 0, 0, time.FixedZone("JST", 9*3600)), Valid: true}
	assert.Equal(t, "2024-03-01", DateFromPgtype(local).String())
}

func TestUUIDConversions(t *testing.T) {
	id := uuid.New()

	assert.Nil(t, UUIDPtrFromPgtype(pgtype.UUID{}))
	got := UUIDPtrFromPgtype(UUIDPtrToPgtype(&id))
	require.NotNil(t, got)
	assert.Equal(t, id, *got)

	arr := UUIDsToPgtype([]uuid.UUID{id, id})
	assert.Len(t, arr, 2)
	assert.True(t, arr[1].Valid)
}

func TestTimeConversions(t *testing.T) {
	assert.False(t, TimeToPgtype(time.Time{}).Valid)
	assert.Nil(t, TimePtrFromPgtype(pgtype.Timestamptz{}))

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	got := TimePtrFromPgtype(TimePtrToPgtype(&now))
	require.NotNil(t, got)
	assert.True(t, now.Equal(*got))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(errs.Wrap(sql.ErrNoRows, "lookup")))
	assert.False(t, IsNoRows(errs.New("boom")))
}
