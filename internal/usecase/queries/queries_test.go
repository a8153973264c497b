//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotel-inventory/internal/domain/availability"
	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/infra"
	"hotel-inventory/internal/infra/db"
	"hotel-inventory/internal/pkg/errs"
	"hotel-inventory/internal/usecase/queries"
	queriesmock "hotel-inventory/tests/mock/queries"
	sharedmock "hotel-inventory/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QueriesTestSuite struct {
	suite.Suite
	mockCtrl          *gomock.Controller
	uow               *sharedmock.MockUnitOfWork
	availabilityStore *queriesmock.MockAvailabilityReadStore
	bookingStore      *queriesmock.MockBookingReadStore
	catalogStore      *queriesmock.MockCatalogReadStore
	dashboardStore    *queriesmock.MockDashboardReadStore

	propertyID uuid.UUID
}

func (s *QueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.availabilityStore = queriesmock.NewMockAvailabilityReadStore(s.mockCtrl)
	s.bookingStore = queriesmock.NewMockBookingReadStore(s.mockCtrl)
	s.catalogStore = queriesmock.NewMockCatalogReadStore(s.mockCtrl)
	s.dashboardStore = queriesmock.NewMockDashboardReadStore(s.mockCtrl)
	s.propertyID = uuid.New()

	run := func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
		return fn(ctx, nil)
	}
	s.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	s.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
}

func (s *QueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQueriesSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}

func stay(from, to string) calendar.DateRange {
	r, err := calendar.NewDateRange(calendar.MustParseDate(from), calendar.MustParseDate(to))
	if err != nil {
		panic(err)
	}
	return r
}

// ================================================================================
// Availability
// ================================================================================

func (s *QueriesTestSuite) TestAvailabilityCompute() {
	q := queries.NewAvailabilityQueries(s.uow, s.availabilityStore, s.catalogStore)
	std, dlx := uuid.New(), uuid.New()
	start := calendar.MustParseDate("2024-03-01")

	s.Run("success: counts overlapping lines per night and reports oversell", func() {
		s.catalogStore.EXPECT().FindProperty(gomock.Any(), gomock.Any(), s.propertyID).
			Return(&queries.PropertyView{ID: s.propertyID}, nil)
		s.availabilityStore.EXPECT().ListActiveRoomTypes(gomock.Any(), gomock.Any(), s.propertyID).
			Return([]queries.RoomTypeSummary{
				{ID: std, Code: "STD", Name: "Standard", DisplayOrder: 1},
				{ID: dlx, Code: "DLX", Name: "Deluxe", DisplayOrder: 2},
			}, nil)
		s.availabilityStore.EXPECT().CountActiveRooms(gomock.Any(), gomock.Any(), s.propertyID).
			Return(map[uuid.UUID]int{std: 2, dlx: 1}, nil)
		s.availabilityStore.EXPECT().FindOverlappingLines(gomock.Any(), gomock.Any(), s.propertyID, stay("2024-03-01", "2024-03-05")).
			Return([]availability.Occupancy{
				{RoomTypeID: std, Stay: stay("2024-02-28", "2024-03-03")},
				{RoomTypeID: std, Stay: stay("2024-03-02", "2024-03-04")},
				{RoomTypeID: dlx, Stay: stay("2024-03-02", "2024-03-03")},
				{RoomTypeID: dlx, Stay: stay("2024-03-02", "2024-03-04")},
			}, nil)

		cal, err := q.Compute(context.Background(), s.propertyID, start, 4)

		s.Require().NoError(err)
		s.Require().Len(cal.RoomTypes, 2)
		s.Equal("STD", cal.RoomTypes[0].Code)
		if diff := cmp.Diff([]int{1, 0, 1, 2}, cal.RoomTypes[0].Available); diff != "" {
			s.Failf("STD available mismatch", "(-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]int{1, 0, 0, 1}, cal.RoomTypes[1].Available); diff != "" {
			s.Failf("DLX available mismatch", "(-want +got):\n%s", diff)
		}
		s.Equal([]int{0, 1, 0, 0}, cal.RoomTypes[1].Overbooked)
		s.Equal(1, cal.OversoldCells())
		s.Equal([]int{3, 3, 3, 3}, cal.Totals().Total)
		s.Len(cal.Dates, 4)
		s.True(cal.Dates[0].Equal(start))
	})

	s.Run("error: zero days is rejected before reading", func() {
		_, err := q.Compute(context.Background(), s.propertyID, start, 0)

		s.ErrorIs(err, calendar.ErrInvalidWindow)
		s.ErrorIs(err, errs.ErrInvalidArgument)
	})

	s.Run("error: window longer than a year is rejected before reading", func() {
		_, err := q.Compute(context.Background(), s.propertyID, start, calendar.MaxWindowDays+1)

		s.ErrorIs(err, calendar.ErrInvalidWindow)
		s.ErrorIs(err, errs.ErrInvalidArgument)
	})

	s.Run("error: unknown property", func() {
		s.catalogStore.EXPECT().FindProperty(gomock.Any(), gomock.Any(), s.propertyID).
			Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := q.Compute(context.Background(), s.propertyID, start, 7)

		s.ErrorIs(err, queries.ErrPropertyNotFound)
	})
}

// ================================================================================
// Bookings
// ================================================================================

func (s *QueriesTestSuite) TestBookingGetByID() {
	q := queries.NewBookingQueries(s.uow, s.bookingStore)

	s.Run("success: assembles children and sums payments", func() {
		id := uuid.New()
		s.bookingStore.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).
			Return(&queries.BookingView{ID: id, Code: "B-2024-0001", TotalCents: 21000}, nil)
		s.bookingStore.EXPECT().FindRooms(gomock.Any(), gomock.Any(), id).
			Return([]*queries.BookingRoomView{{ID: uuid.New(), LineTotalCents: 21000}}, nil)
		s.bookingStore.EXPECT().FindGuests(gomock.Any(), gomock.Any(), id).
			Return([]*queries.BookingGuestView{}, nil)
		s.bookingStore.EXPECT().FindPayments(gomock.Any(), gomock.Any(), id).
			Return([]*queries.PaymentView{{AmountCents: 5000}, {AmountCents: 2500}}, nil)

		view, err := q.GetByID(context.Background(), id)

		s.Require().NoError(err)
		s.Equal(int64(7500), view.PaidCents)
		s.Len(view.Rooms, 1)
		s.Len(view.Payments, 2)
	})

	s.Run("error: not found", func() {
		id := uuid.New()
		s.bookingStore.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := q.GetByID(context.Background(), id)

		s.ErrorIs(err, queries.ErrBookingNotFound)
		s.ErrorIs(err, errs.ErrNotFound)
	})
}

func (s *QueriesTestSuite) TestBookingList() {
	q := queries.NewBookingQueries(s.uow, s.bookingStore)
	filters := queries.BookingFilters{PropertyID: s.propertyID}
	items := func(n int) []*queries.BookingListItem {
		out := make([]*queries.BookingListItem, n)
		for i := range out {
			out[i] = &queries.BookingListItem{
				ID:      uuid.New(),
				CheckIn: calendar.MustParseDate("2024-03-01").AddDays(i),
			}
		}
		return out
	}

	s.Run("success: an extra row yields a cursor at the last returned item", func() {
		rows := items(3)
		s.bookingStore.EXPECT().ListFirstPage(gomock.Any(), gomock.Any(), filters, 3).Return(rows, nil)

		got, next, err := q.List(context.Background(), filters, nil, 2)

		s.Require().NoError(err)
		s.Len(got, 2)
		s.Require().NotNil(next)
		at, id, err := queries.DecodeAfterCursor(next.After)
		s.Require().NoError(err)
		s.Equal(rows[1].ID, id)
		s.True(rows[1].CheckIn.Time().Equal(at))
	})

	s.Run("success: last page has no cursor", func() {
		s.bookingStore.EXPECT().ListFirstPage(gomock.Any(), gomock.Any(), filters, 3).Return(items(2), nil)

		got, next, err := q.List(context.Background(), filters, nil, 2)

		s.Require().NoError(err)
		s.Len(got, 2)
		s.Nil(next)
	})

	s.Run("success: cursor continues with keyset paging", func() {
		last := items(1)[0]
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(last.CheckIn.Time(), last.ID)}
		s.bookingStore.EXPECT().
			ListKeyset(gomock.Any(), gomock.Any(), filters, gomock.Any(), last.ID, queries.DefaultListLimit+1).
			Return(items(1), nil)

		got, next, err := q.List(context.Background(), filters, cursor, 0)

		s.Require().NoError(err)
		s.Len(got, 1)
		s.Nil(next)
	})

	s.Run("error: malformed cursor", func() {
		_, _, err := q.List(context.Background(), filters, &queries.Cursor{After: "%%%"}, 10)

		s.ErrorIs(err, queries.ErrInvalidCursor)
	})

	s.Run("error: unknown status filter", func() {
		status := "archived"
		f := filters
		f.Status = &status

		_, _, err := q.List(context.Background(), f, nil, 10)

		s.ErrorIs(err, queries.ErrInvalidStatus)
	})
}

// ================================================================================
// Catalog
// ================================================================================

func (s *QueriesTestSuite) TestCatalogListGuests() {
	q := queries.NewCatalogQueries(s.uow, s.catalogStore)

	s.Run("success: limit is clamped", func() {
		s.catalogStore.EXPECT().FindProperty(gomock.Any(), gomock.Any(), s.propertyID).
			Return(&queries.PropertyView{ID: s.propertyID}, nil)
		s.catalogStore.EXPECT().SearchGuests(gomock.Any(), gomock.Any(), s.propertyID, "ada", queries.MaxListLimit).
			Return([]*queries.GuestView{{FirstName: "Ada"}}, nil)

		got, err := q.ListGuests(context.Background(), s.propertyID, "ada", 5000)

		s.Require().NoError(err)
		s.Len(got, 1)
	})

	s.Run("error: unknown property", func() {
		s.catalogStore.EXPECT().FindProperty(gomock.Any(), gomock.Any(), s.propertyID).
			Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := q.ListRooms(context.Background(), s.propertyID)

		s.ErrorIs(err, queries.ErrPropertyNotFound)
	})
}

// ================================================================================
// Dashboard
// ================================================================================

func (s *QueriesTestSuite) TestDashboard() {
	q := queries.NewDashboardQueries(s.uow, s.dashboardStore, s.catalogStore)
	day := calendar.MustParseDate("2024-03-15")

	s.Run("success: payments are summed over the calendar month", func() {
		arrivals := []*queries.BookingListItem{{ID: uuid.New()}, {ID: uuid.New()}}
		s.catalogStore.EXPECT().FindProperty(gomock.Any(), gomock.Any(), s.propertyID).
			Return(&queries.PropertyView{ID: s.propertyID}, nil)
		s.dashboardStore.EXPECT().CountRooms(gomock.Any(), gomock.Any(), s.propertyID).
			Return(queries.RoomCounts{Total: 5, Active: 4}, nil)
		s.dashboardStore.EXPECT().ListArrivals(gomock.Any(), gomock.Any(), s.propertyID, day).Return(arrivals, nil)
		s.dashboardStore.EXPECT().ListDepartures(gomock.Any(), gomock.Any(), s.propertyID, day).
			Return([]*queries.BookingListItem{}, nil)
		s.dashboardStore.EXPECT().CountInHouse(gomock.Any(), gomock.Any(), s.propertyID).Return(3, nil)
		s.dashboardStore.EXPECT().
			SumPayments(gomock.Any(), gomock.Any(), s.propertyID,
				calendar.MustParseDate("2024-03-01"), calendar.MustParseDate("2024-04-01")).
			Return(int64(125000), nil)

		view, err := q.Get(context.Background(), s.propertyID, day)

		s.Require().NoError(err)
		s.Equal(5, view.RoomsTotal)
		s.Equal(4, view.RoomsActive)
		s.Equal(2, view.ArrivalsToday)
		s.Equal(0, view.DeparturesToday)
		s.Equal(3, view.InHouse)
		s.Equal(int64(125000), view.PaymentsThisMonthCents)
	})
}
