package api

import (
	"net/http"

	reqdto "hotel-inventory/internal/handler/dto/request"
	resdto "hotel-inventory/internal/handler/dto/response"
	"hotel-inventory/internal/handler/httperr"
	"hotel-inventory/internal/usecase/commands"
	"hotel-inventory/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const defaultGuestSearchLimit = 20

type GuestHandler struct {
	commands commands.GuestCommands
	queries  queries.CatalogQueries
}

func NewGuestHandler(cmds commands.GuestCommands, qs queries.CatalogQueries) *GuestHandler {
	return &GuestHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create guest
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param propertyId path string true "Property ID"
// @Param request body reqdto.CreateGuestRequest true "Guest"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/properties/{propertyId}/guests [post]
func (h *GuestHandler) CreateGuest(c *gin.Context) {
	propertyID, ok := pathUUID(c, "propertyId")
	if !ok {
		return
	}
	var req reqdto.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	id, err := h.commands.CreateGuest(c.Request.Context(), req.ToInput(propertyID))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Quick-add guest
// @Description Creates a guest from a first and last name only
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param propertyId path string true "Property ID"
// @Param request body reqdto.QuickGuestRequest true "Guest name"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/properties/{propertyId}/guests/quick [post]
func (h *GuestHandler) QuickAddGuest(c *gin.Context) {
	propertyID, ok := pathUUID(c, "propertyId")
	if !ok {
		return
	}
	var req reqdto.QuickGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	id, err := h.commands.AddGuestQuick(c.Request.Context(), propertyID, req.FirstName, req.LastName)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Search guests
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param propertyId path string true "Property ID"
// @Param q query string false "Matches first name, last name or email"
// @Param limit query int false "Maximum rows, defaults to 20"
// @Success 200 {array} resdto.GuestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/properties/{propertyId}/guests [get]
func (h *GuestHandler) ListGuests(c *gin.Context) {
	propertyID, ok := pathUUID(c, "propertyId")
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", defaultGuestSearchLimit)
	if !ok {
		return
	}

	views, err := h.queries.ListGuests(c.Request.Context(), propertyID, c.Query("q"), limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuestViews(views))
}
