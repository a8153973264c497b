package api

import (
	"net/http"

	reqdto "hotel-inventory/internal/handler/dto/request"
	resdto "hotel-inventory/internal/handler/dto/response"
	"hotel-inventory/internal/handler/httperr"
	"hotel-inventory/internal/handler/middleware"
	"hotel-inventory/internal/usecase/commands"
	"hotel-inventory/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, qs queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create booking
// @Description Creates a tentative booking without room lines; the code is allocated per property and year
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	operatorID, ok := operator(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	res, err := h.commands.Create(c.Request.Context(), req.ToInput(), operatorID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.respondWithBooking(c, http.StatusCreated, res.BookingID)
}

// @Summary List bookings
// @Description Ordered by check-in date; pass nextCursor back as after for the next page
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param propertyId query string true "Property ID"
// @Param status query string false "Booking status"
// @Param from query string false "Stay overlaps from this day (YYYY-MM-DD)"
// @Param to query string false "Stay overlaps until this day, exclusive (YYYY-MM-DD)"
// @Param limit query int false "Page size"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Query("propertyId"))
	if err != nil {
		httperr.BadRequest(c, err, "propertyId query parameter is required")
		return
	}
	filters := queries.BookingFilters{PropertyID: propertyID}
	if status := c.Query("status"); status != "" {
		filters.Status = &status
	}
	var ok bool
	if filters.From, ok = optionalQueryDate(c, "from"); !ok {
		return
	}
	if filters.To, ok = optionalQueryDate(c, "to"); !ok {
		return
	}
	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		return
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.queries.List(c.Request.Context(), filters, cursor, limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingList(items, next))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	h.respondWithBooking(c, http.StatusOK, id)
}

// @Summary Update booking
// @Description Replaces header dates, occupancy, contact and status, then reprices; line dates are left as they are
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Booking"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id} [put]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	operatorID, ok := operator(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	if err := h.commands.UpdateDetails(c.Request.Context(), id, req.ToInput(), operatorID); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.respondWithBooking(c, http.StatusOK, id)
}

// @Summary Recalculate booking totals
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id}/recalculate [post]
func (h *BookingHandler) RecalculateTotals(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.commands.RecalculateTotals(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.respondWithBooking(c, http.StatusOK, id)
}

// @Summary Add room line
// @Description Adds a line for a room type, optionally assigned to a room right away
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.AddRoomRequest true "Line"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/rooms [post]
func (h *BookingHandler) AddRoom(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AddRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	res, err := h.commands.AddRoom(c.Request.Context(), id, commands.AddRoomInput(req))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.respondWithBooking(c, http.StatusCreated, res.BookingID)
}

// @Summary Assign room to line
// @Description Assigns a physical room to the line, or unassigns it when roomId is null
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lineId path string true "Booking room line ID"
// @Param request body reqdto.AssignRoomRequest true "Room"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/booking-rooms/{lineId}/room [put]
func (h *BookingHandler) AssignRoom(c *gin.Context) {
	lineID, ok := pathUUID(c, "lineId")
	if !ok {
		return
	}
	var req reqdto.AssignRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	if err := h.commands.AssignRoom(c.Request.Context(), lineID, req.RoomID); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Remove room line
// @Tags bookings
// @Security BearerAuth
// @Param lineId path string true "Booking room line ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /api/booking-rooms/{lineId} [delete]
func (h *BookingHandler) RemoveRoom(c *gin.Context) {
	lineID, ok := pathUUID(c, "lineId")
	if !ok {
		return
	}

	if err := h.commands.RemoveRoom(c.Request.Context(), lineID); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Attach guest
// @Description Links a guest to the booking; a lead guest replaces the previous lead
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.AttachGuestRequest true "Guest link"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/guests [post]
func (h *BookingHandler) AttachGuest(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AttachGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	res, err := h.commands.AttachGuest(c.Request.Context(), id, req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.respondWithBooking(c, http.StatusCreated, res.BookingID)
}

// @Summary Remove guest link
// @Tags bookings
// @Security BearerAuth
// @Param linkId path string true "Booking guest link ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /api/booking-guests/{linkId} [delete]
func (h *BookingHandler) RemoveGuest(c *gin.Context) {
	linkID, ok := pathUUID(c, "linkId")
	if !ok {
		return
	}

	if err := h.commands.RemoveGuest(c.Request.Context(), linkID); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Record payment
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.AddPaymentRequest true "Payment"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id}/payments [post]
func (h *BookingHandler) AddPayment(c *gin.Context) {
	operatorID, ok := operator(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	res, err := h.commands.AddPayment(c.Request.Context(), id, req.ToInput(), operatorID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.respondWithBooking(c, http.StatusCreated, res.BookingID)
}

func (h *BookingHandler) respondWithBooking(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(status, resdto.FromBookingView(view))
}

// operator is set by RequireAuth; its absence is a wiring error.
func operator(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetOperatorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return uuid.Nil, false
	}
	return id, true
}
