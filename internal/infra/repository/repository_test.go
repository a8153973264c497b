//go:build unit

package repository

import (
	"context"
	"errors"
	"testing"

	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/infra"
	"hotel-inventory/internal/pkg/errs"

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

func TestDeleteMissingRowIsNotFound(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		tag      string
		execErr  error
		wantKind infra.RepositoryErrorKind
		wantIs   error
	}{
		{
			name:     "no row matched",
			tag:      "DELETE 0",
			wantKind: infra.KindNotFound,
			wantIs:   errs.ErrNotFound,
		},
		{
			name:     "still referenced",
			execErr:  &pgconn.PgError{Code: "23503"},
			wantKind: infra.KindForeignKeyViolated,
			wantIs:   errs.ErrIntegrityViolation,
		},
		{
			name:     "driver failure",
			execErr:  assert.AnError,
			wantKind: infra.KindDBFailure,
			wantIs:   errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbtx := new(MockDBTX)
			dbtx.On("Exec", mock.Anything, deletePropertySQL, mock.Anything).
				Return(pgconn.NewCommandTag(tt.tag), tt.execErr)

			err := NewPropertyRepository(dbtx).Delete(context.Background(), id)

			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tt.wantKind))
			assert.True(t, errors.Is(err, tt.wantIs))
			dbtx.AssertExpectations(t)
		})
	}
}

func TestDeleteSucceeds(t *testing.T) {
	dbtx := new(MockDBTX)
	dbtx.On("Exec", mock.Anything, deleteRoomSQL, mock.Anything).Return(pgconn.NewCommandTag("DELETE 1"), nil)

	assert.NoError(t, NewRoomRepository(dbtx).Delete(context.Background(), uuid.New()))
	dbtx.AssertExpectations(t)
}

func TestFindPropertyNoRows(t *testing.T) {
	dbtx := new(MockDBTX)
	dbtx.On("QueryRow", mock.Anything, selectPropertySQL, mock.Anything).
		Return(rowFunc(func(...any) error { return pgx.ErrNoRows }))

	_, err := NewPropertyRepository(dbtx).FindByID(context.Background(), uuid.New())

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestCreateDuplicateCode(t *testing.T) {
	dbtx := new(MockDBTX)
	dbtx.On("Exec", mock.Anything, insertPropertySQL, mock.Anything).
		Return(pgconn.CommandTag{}, &pgconn.PgError{Code: "23505", ConstraintName: "uq_properties_code"})

	err := NewPropertyRepository(dbtx).Create(context.Background(), mustProperty(t))

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	assert.True(t, errors.Is(err, errs.ErrConflict))
}

func TestCodeSequenceNext(t *testing.T) {
	propertyID := uuid.New()
	dbtx := new(MockDBTX)
	dbtx.On("QueryRow", mock.Anything, nextCodeSequenceSQL, []interface{}{propertyID, 2024}).
		Return(rowFunc(func(dest ...any) error {
			*(dest[0].(*int64)) = 7
			return nil
		}))

	next, err := NewCodeSequenceRepository(dbtx).Next(context.Background(), propertyID, 2024)

	require.NoError(t, err)
	assert.Equal(t, int64(7), next)
	dbtx.AssertExpectations(t)
}

func TestPricesWithoutRoomsSkipsQuery(t *testing.T) {
	dbtx := new(MockDBTX)

	rates, err := NewRoomRepository(dbtx).Prices(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, rates)
	dbtx.AssertNotCalled(t, "Query", mock.Anything, mock.Anything, mock.Anything)
}

func TestRoomHeld(t *testing.T) {
	roomID := uuid.New()
	stay, err := calendar.NewDateRange(calendar.MustParseDate("2024-03-01"), calendar.MustParseDate("2024-03-04"))
	require.NoError(t, err)

	for _, held := range []bool{true, false} {
		dbtx := new(MockDBTX)
		dbtx.On("QueryRow", mock.Anything, roomHeldSQL, mock.Anything).
			Return(rowFunc(func(dest ...any) error {
				*(dest[0].(*bool)) = held
				return nil
			}))

		got, err := NewBookingRepository(dbtx).RoomHeld(context.Background(), roomID, stay, uuid.Nil)

		require.NoError(t, err)
		assert.Equal(t, held, got)
	}
}

func TestUpdateMissingBooking(t *testing.T) {
	dbtx := new(MockDBTX)
	dbtx.On("Exec", mock.Anything, updateBookingSQL, mock.Anything).Return(pgconn.NewCommandTag("UPDATE 0"), nil)

	err := NewBookingRepository(dbtx).Update(context.Background(), mustBooking(t))

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	dbtx.AssertNumberOfCalls(t, "Exec", 1)
}
