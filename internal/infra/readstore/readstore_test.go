//go:build unit

package readstore

import (
	"context"
	"errors"
	"testing"

	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/infra"
	"hotel-inventory/internal/pkg/errs"
	"hotel-inventory/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	rows, _ := mockArgs.Get(0).(pgx.Rows)
	return rows, mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

type rowFunc func(dest ...any) error

func (f rowFunc) Scan(dest ...any) error { return f(dest...) }

func TestFindPropertyNotFound(t *testing.T) {
	dbtx := new(MockDBTX)
	dbtx.On("QueryRow", mock.Anything, findPropertySQL, mock.Anything).
		Return(rowFunc(func(...any) error { return pgx.ErrNoRows }))

	_, err := NewCatalogReadStore().FindProperty(context.Background(), dbtx, uuid.New())

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestCountRooms(t *testing.T) {
	dbtx := new(MockDBTX)
	dbtx.On("QueryRow", mock.Anything, countRoomsSQL, mock.Anything).
		Return(rowFunc(func(dest ...any) error {
			*(dest[0].(*int)) = 5
			*(dest[1].(*int)) = 4
			return nil
		}))

	got, err := NewDashboardReadStore().CountRooms(context.Background(), dbtx, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, queries.RoomCounts{Total: 5, Active: 4}, got)
}

func TestSumPaymentsDriverFailure(t *testing.T) {
	dbtx := new(MockDBTX)
	dbtx.On("QueryRow", mock.Anything, sumPaymentsSQL, mock.Anything).
		Return(rowFunc(func(...any) error { return assert.AnError }))

	_, err := NewDashboardReadStore().SumPayments(context.Background(), dbtx, uuid.New(),
		calendar.MustParseDate("2024-03-01"), calendar.MustParseDate("2024-04-01"))

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestListBookingsQueryError(t *testing.T) {
	dbtx := new(MockDBTX)
	dbtx.On("Query", mock.Anything, listBookingsFirstPageSQL, mock.Anything).Return(nil, assert.AnError)

	status := "confirmed"
	_, err := NewBookingReadStore().ListFirstPage(context.Background(), dbtx,
		queries.BookingFilters{PropertyID: uuid.New(), Status: &status}, 10)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrDatabaseOperationFailed))
	args := dbtx.Calls[0].Arguments.Get(2).([]interface{})
	assert.Len(t, args, 5)
	assert.Equal(t, 10, args[4])
}
