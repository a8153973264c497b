//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"hotel-inventory/internal/domain/availability"
	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/handler/api"
	resdto "hotel-inventory/internal/handler/dto/response"
	"hotel-inventory/internal/pkg/clock"
	"hotel-inventory/internal/usecase/queries"
	"hotel-inventory/tests/common/httptest"
	queriesmock "hotel-inventory/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockAvailability *queriesmock.MockAvailabilityQueries
	mockDashboard    *queriesmock.MockDashboardQueries
	propertyID       uuid.UUID
	today            calendar.Date
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockDashboard = queriesmock.NewMockDashboardQueries(s.mockCtrl)
	s.propertyID = uuid.New()
	s.today = calendar.MustParseDate("2024-03-10")

	clk := clock.NewFixedClock(time.Date(2024, time.March, 10, 22, 30, 0, 0, time.UTC))
	handler := api.NewAvailabilityHandler(s.mockAvailability, s.mockDashboard, clk)

	s.router.GET("/properties/:propertyId/availability", handler.GetAvailability)
	s.router.GET("/properties/:propertyId/dashboard", handler.GetDashboard)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) calendarFor(start calendar.Date, days int) *availability.Calendar {
	window, err := calendar.NewWindow(start, days)
	s.Require().NoError(err)
	rt := uuid.New()
	return availability.Compute(window,
		[]availability.RoomTypeCapacity{{RoomTypeID: rt, Code: "DLX", Name: "Deluxe", ActiveRooms: 1}},
		[]availability.Occupancy{
			{RoomTypeID: rt, Stay: window},
			{RoomTypeID: rt, Stay: window},
		})
}

func (s *AvailabilityHandlerTestSuite) TestGetAvailability() {
	url := "/properties/" + s.propertyID.String() + "/availability"

	s.Run("success: defaults to today and two weeks", func() {
		s.mockAvailability.EXPECT().Compute(gomock.Any(), s.propertyID, s.today, 14).
			Return(s.calendarFor(s.today, 14), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Dates, 14)
		s.Equal("2024-03-10", body.Start.String())
		s.Equal("2024-03-24", body.End.String())
		s.Equal(14, body.OversoldCells)
	})

	s.Run("success: explicit window", func() {
		start := calendar.MustParseDate("2024-04-01")
		s.mockAvailability.EXPECT().Compute(gomock.Any(), s.propertyID, start, 3).
			Return(s.calendarFor(start, 3), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?start=2024-04-01&days=3", nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.RoomTypes, 1)
		if diff := cmp.Diff([]int{0, 0, 0}, body.RoomTypes[0].Available); diff != "" {
			s.Failf("available mismatch", "(-want +got):\n%s", diff)
		}
		s.Equal([]int{1, 1, 1}, body.RoomTypes[0].Overbooked)
		s.Equal([]int{1, 1, 1}, body.Totals.Total)
	})

	s.Run("error: invalid window maps to 400", func() {
		s.mockAvailability.EXPECT().Compute(gomock.Any(), s.propertyID, s.today, 0).
			Return(nil, calendar.ErrInvalidWindow)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?days=0", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "number of days")
	})

	s.Run("error: window over the limit maps to 400", func() {
		s.mockAvailability.EXPECT().Compute(gomock.Any(), s.propertyID, s.today, calendar.MaxWindowDays+1).
			Return(nil, calendar.ErrInvalidWindow)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			fmt.Sprintf("%s?days=%d", url, calendar.MaxWindowDays+1), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "between 1 and 366")
	})

	s.Run("error: malformed start", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?start=2024-13-01", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid start")
	})

	s.Run("error: unknown property maps to 404", func() {
		s.mockAvailability.EXPECT().Compute(gomock.Any(), s.propertyID, gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrPropertyNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "property not found")
	})
}

func (s *AvailabilityHandlerTestSuite) TestGetDashboard() {
	url := "/properties/" + s.propertyID.String() + "/dashboard"

	s.Run("success", func() {
		s.mockDashboard.EXPECT().Get(gomock.Any(), s.propertyID, s.today).
			Return(&queries.DashboardView{
				PropertyID:             s.propertyID,
				Date:                   s.today,
				RoomsTotal:             3,
				RoomsActive:            3,
				ArrivalsToday:          1,
				Arrivals:               []*queries.BookingListItem{{ID: uuid.New(), Code: "B-2024-0003"}},
				PaymentsThisMonthCents: 7500,
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.DashboardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.ArrivalsToday)
		s.Len(body.Arrivals, 1)
		s.NotNil(body.Departures)
		s.Equal(int64(7500), body.PaymentsThisMonthCents)
	})

	s.Run("error: invalid property id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/abc/dashboard", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid propertyId format")
	})
}
