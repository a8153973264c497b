package api

import (
	"net/http"

	"hotel-inventory/internal/domain/calendar"
	resdto "hotel-inventory/internal/handler/dto/response"
	"hotel-inventory/internal/handler/httperr"
	"hotel-inventory/internal/pkg/clock"
	"hotel-inventory/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const defaultAvailabilityDays = 14

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
	dashboard    queries.DashboardQueries
	clock        clock.Clock
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries, dashboard queries.DashboardQueries, clk clock.Clock) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
		dashboard:    dashboard,
		clock:        clk,
	}
}

// @Summary Availability calendar
// @Description Per room type and day: total active rooms, rooms still available and overbooked count
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param propertyId path string true "Property ID"
// @Param start query string false "First day (YYYY-MM-DD), defaults to today"
// @Param days query int false "Number of days (1-366), defaults to 14"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/properties/{propertyId}/availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	propertyID, ok := pathUUID(c, "propertyId")
	if !ok {
		return
	}
	start, ok := queryDate(c, "start", calendar.DateOf(h.clock.Now()))
	if !ok {
		return
	}
	days, ok := queryInt(c, "days", defaultAvailabilityDays)
	if !ok {
		return
	}

	cal, err := h.availability.Compute(c.Request.Context(), propertyID, start, days)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCalendar(cal))
}

// @Summary Front desk dashboard
// @Description Room counts, arrivals, departures, in-house bookings and payments of the month
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param propertyId path string true "Property ID"
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} resdto.DashboardResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/properties/{propertyId}/dashboard [get]
func (h *AvailabilityHandler) GetDashboard(c *gin.Context) {
	propertyID, ok := pathUUID(c, "propertyId")
	if !ok {
		return
	}
	day, ok := queryDate(c, "date", calendar.DateOf(h.clock.Now()))
	if !ok {
		return
	}

	view, err := h.dashboard.Get(c.Request.Context(), propertyID, day)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDashboardView(view))
}
