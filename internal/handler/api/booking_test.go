//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"hotel-inventory/internal/domain/booking"
	"hotel-inventory/internal/handler/api"
	resdto "hotel-inventory/internal/handler/dto/response"
	"hotel-inventory/internal/pkg/errs"
	"hotel-inventory/internal/usecase/commands"
	"hotel-inventory/internal/usecase/queries"
	"hotel-inventory/tests/common/builder"
	"hotel-inventory/tests/common/httptest"
	"hotel-inventory/tests/common/testutil"
	commandsmock "hotel-inventory/tests/mock/commands"
	queriesmock "hotel-inventory/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	operatorID   uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.operatorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("operator_id", s.operatorID)
		c.Set("operator_name", "Front Desk")
		c.Next()
	}

	bookings := s.router.Group("/bookings", authMiddleware)
	bookings.POST("", s.handler.CreateBooking)
	bookings.GET("", s.handler.ListBookings)
	bookings.GET("/:id", s.handler.GetBooking)
	bookings.PUT("/:id", s.handler.UpdateBooking)
	bookings.POST("/:id/recalculate", s.handler.RecalculateTotals)
	bookings.POST("/:id/rooms", s.handler.AddRoom)
	bookings.POST("/:id/guests", s.handler.AttachGuest)
	bookings.POST("/:id/payments", s.handler.AddPayment)
	s.router.PUT("/booking-rooms/:lineId/room", authMiddleware, s.handler.AssignRoom)
	s.router.DELETE("/booking-rooms/:lineId", authMiddleware, s.handler.RemoveRoom)
	s.router.DELETE("/booking-guests/:linkId", authMiddleware, s.handler.RemoveGuest)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 with the stored booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToInput(), s.operatorID).
			Return(&commands.CreateBookingResult{BookingID: view.ID, Code: view.Code}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("B-2024-0001", body.Code)
		s.Equal("tentative", body.Status)
		s.Equal(3, body.Nights)
		s.Equal("2024-03-01", body.CheckIn.String())
		s.NotNil(body.Rooms)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: propertyId (required)", mutate: testutil.Field("propertyId", nil), expectCode: http.StatusBadRequest},
			{name: "malformed checkIn", mutate: testutil.Field("checkIn", "03/01/2024"), expectCode: http.StatusBadRequest},
			{name: "negative adults", mutate: testutil.Field("adults", -1), expectCode: http.StatusBadRequest},
			{name: "negative infants", mutate: testutil.Field("infants", -2), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request format")
			})
		}
	})

	s.Run("error: domain rejection maps to 400", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(errs.Mark(errs.New("check-in must be earlier than check-out"), errs.ErrInvalidArgument), "range"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "check-in must be earlier")
	})

	s.Run("error: unknown property maps to 404", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrPropertyNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "property not found")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: unclassified failure hides its message", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.New("connection reset by peer"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "connection reset")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	propertyID := uuid.New()

	s.Run("success: passes filters and returns the next cursor", func() {
		items := []*queries.BookingListItem{{ID: uuid.New(), Code: "B-2024-0001", Status: "confirmed"}}
		next := &queries.Cursor{After: "opaque"}
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Any(), &queries.Cursor{After: "prev"}, 25).
			DoAndReturn(func(_ context.Context, f queries.BookingFilters, _ *queries.Cursor, _ int) ([]*queries.BookingListItem, *queries.Cursor, error) {
				s.Equal(propertyID, f.PropertyID)
				s.Require().NotNil(f.Status)
				s.Equal("confirmed", *f.Status)
				s.Require().NotNil(f.From)
				s.Equal("2024-03-01", f.From.String())
				s.Nil(f.To)
				return items, next, nil
			})

		url := "/bookings?propertyId=" + propertyID.String() + "&status=confirmed&from=2024-03-01&limit=25&after=prev"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Require().NotNil(body.NextCursor)
		s.Equal("opaque", *body.NextCursor)
	})

	s.Run("success: empty page encodes an empty list", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), nil, 0).Return(nil, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?propertyId="+propertyID.String(), nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"items":[]}`, rec.Body.String())
	})

	s.Run("error: propertyId is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "propertyId")
	})

	s.Run("error: malformed date filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?propertyId="+propertyID.String()+"&to=tomorrow", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid to")
	})
}

// ================================================================================
// TestGetBooking / TestUpdateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success", func() {
		view := builder.NewBookingBuilder().BuildView()
		view.Payments = []*queries.PaymentView{{ID: uuid.New(), Method: "Cash", AmountCents: 5000}}
		view.PaidCents = 5000
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(5000), body.PaidCents)
		s.Len(body.Payments, 1)
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id format")
	})

	s.Run("error: not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestUpdateBooking() {
	b := builder.NewBookingBuilder()
	view := b.BuildView()
	reqBody := b.BuildUpdateRequestDTO(booking.StatusConfirmed)
	url := "/bookings/" + view.ID.String()

	s.Run("success: returns the updated booking", func() {
		s.mockCommands.EXPECT().UpdateDetails(gomock.Any(), view.ID, reqBody.ToInput(), s.operatorID).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resdto.BookingResponse{})
	})

	s.Run("error: missing status", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("status", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: invalid transition maps to 400", func() {
		s.mockCommands.EXPECT().UpdateDetails(gomock.Any(), view.ID, gomock.Any(), s.operatorID).
			Return(errs.Wrap(booking.ErrInvalidTransition, "cancelled -> confirmed"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "status transition not allowed")
	})
}

// ================================================================================
// TestRooms
// ================================================================================

func (s *BookingHandlerTestSuite) TestRooms() {
	view := builder.NewBookingBuilder().BuildView()
	roomTypeID, roomID, lineID := uuid.New(), uuid.New(), uuid.New()

	s.Run("success: add room returns 201 with the booking", func() {
		s.mockCommands.EXPECT().
			AddRoom(gomock.Any(), view.ID, commands.AddRoomInput{RoomTypeID: roomTypeID, RoomID: &roomID}).
			Return(&commands.LineResult{LineID: lineID, BookingID: view.ID}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+view.ID.String()+"/rooms",
			map[string]any{"roomTypeId": roomTypeID, "roomId": roomID}, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resdto.BookingResponse{})
	})

	s.Run("error: add room conflict maps to 409", func() {
		s.mockCommands.EXPECT().AddRoom(gomock.Any(), view.ID, gomock.Any()).Return(nil, commands.ErrRoomUnavailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+view.ID.String()+"/rooms",
			map[string]any{"roomTypeId": roomTypeID, "roomId": roomID}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already booked")
	})

	s.Run("error: add room without room type", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+view.ID.String()+"/rooms",
			map[string]any{}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("success: assign room returns 204", func() {
		s.mockCommands.EXPECT().AssignRoom(gomock.Any(), lineID, &roomID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/booking-rooms/"+lineID.String()+"/room",
			map[string]any{"roomId": roomID}, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: null room unassigns", func() {
		s.mockCommands.EXPECT().AssignRoom(gomock.Any(), lineID, gomock.Nil()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/booking-rooms/"+lineID.String()+"/room",
			map[string]any{"roomId": nil}, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: room type mismatch maps to 400", func() {
		s.mockCommands.EXPECT().AssignRoom(gomock.Any(), lineID, &roomID).Return(commands.ErrRoomTypeMismatch)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/booking-rooms/"+lineID.String()+"/room",
			map[string]any{"roomId": roomID}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "room type")
	})

	s.Run("success: remove room returns 204", func() {
		s.mockCommands.EXPECT().RemoveRoom(gomock.Any(), lineID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/booking-rooms/"+lineID.String(), nil, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: remove unknown line", func() {
		s.mockCommands.EXPECT().RemoveRoom(gomock.Any(), lineID).Return(booking.ErrLineNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/booking-rooms/"+lineID.String(), nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking room not found")
	})

	s.Run("success: recalculate returns the repriced booking", func() {
		s.mockCommands.EXPECT().RecalculateTotals(gomock.Any(), view.ID).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+view.ID.String()+"/recalculate", nil, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resdto.BookingResponse{})
	})
}

// ================================================================================
// TestGuestsAndPayments
// ================================================================================

func (s *BookingHandlerTestSuite) TestGuestsAndPayments() {
	view := builder.NewBookingBuilder().BuildView()
	guestID, linkID := uuid.New(), uuid.New()

	s.Run("success: attach lead guest", func() {
		s.mockCommands.EXPECT().
			AttachGuest(gomock.Any(), view.ID, commands.AttachGuestInput{GuestID: guestID, IsLead: true}).
			Return(&commands.GuestLinkResult{LinkID: linkID, BookingID: view.ID}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+view.ID.String()+"/guests",
			map[string]any{"guestId": guestID, "isLead": true}, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resdto.BookingResponse{})
	})

	s.Run("success: remove guest returns 204", func() {
		s.mockCommands.EXPECT().RemoveGuest(gomock.Any(), linkID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/booking-guests/"+linkID.String(), nil, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	paymentBody := map[string]any{"propertyId": view.PropertyID, "method": "CardPOS", "amountCents": 2500}

	s.Run("success: payment is recorded by the operator", func() {
		s.mockCommands.EXPECT().
			AddPayment(gomock.Any(), view.ID, commands.AddPaymentInput{PropertyID: view.PropertyID, Method: "CardPOS", AmountCents: 2500}, s.operatorID).
			Return(&commands.PaymentResult{PaymentID: uuid.New(), BookingID: view.ID}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+view.ID.String()+"/payments", paymentBody, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resdto.BookingResponse{})
	})

	s.Run("error: payment validation", func() {
		cases := []testCaseBooking{
			{name: "missing field: method (required)", mutate: testutil.Field("method", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: amountCents (required)", mutate: testutil.Field("amountCents", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: propertyId (required)", mutate: testutil.Field("propertyId", nil), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), paymentBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+view.ID.String()+"/payments", requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request format")
			})
		}
	})

	s.Run("error: non-positive amount maps to 400", func() {
		s.mockCommands.EXPECT().AddPayment(gomock.Any(), view.ID, gomock.Any(), s.operatorID).
			Return(nil, booking.ErrNonPositivePayment)

		body := map[string]any{"propertyId": view.PropertyID, "method": "Cash", "amountCents": -100}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+view.ID.String()+"/payments", body, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "payment amount must be positive")
	})
}
