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

type CatalogHandler struct {
	commands commands.CatalogCommands
	queries  queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, qs queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create property
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePropertyRequest true "Property"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/properties [post]
func (h *CatalogHandler) CreateProperty(c *gin.Context) {
	var req reqdto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	id, err := h.commands.CreateProperty(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List properties
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PropertyResponse
// @Router /api/properties [get]
func (h *CatalogHandler) ListProperties(c *gin.Context) {
	views, err := h.queries.ListProperties(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPropertyViews(views))
}

// @Summary Delete property
// @Description Refused with 409 while room types, rooms, guests or bookings reference it
// @Tags catalog
// @Security BearerAuth
// @Param propertyId path string true "Property ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/properties/{propertyId} [delete]
func (h *CatalogHandler) DeleteProperty(c *gin.Context) {
	id, ok := pathUUID(c, "propertyId")
	if !ok {
		return
	}

	if err := h.commands.DeleteProperty(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Create room type
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param propertyId path string true "Property ID"
// @Param request body reqdto.CreateRoomTypeRequest true "Room type"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/properties/{propertyId}/room-types [post]
func (h *CatalogHandler) CreateRoomType(c *gin.Context) {
	propertyID, ok := pathUUID(c, "propertyId")
	if !ok {
		return
	}
	var req reqdto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	id, err := h.commands.CreateRoomType(c.Request.Context(), req.ToInput(propertyID))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List room types
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param propertyId path string true "Property ID"
// @Success 200 {array} resdto.RoomTypeResponse
// @Failure 404 {object} httperr.Response
// @Router /api/properties/{propertyId}/room-types [get]
func (h *CatalogHandler) ListRoomTypes(c *gin.Context) {
	propertyID, ok := pathUUID(c, "propertyId")
	if !ok {
		return
	}

	views, err := h.queries.ListRoomTypes(c.Request.Context(), propertyID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomTypeViews(views))
}

// @Summary Delete room type
// @Tags catalog
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/room-types/{id} [delete]
func (h *CatalogHandler) DeleteRoomType(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.commands.DeleteRoomType(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Create room
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param propertyId path string true "Property ID"
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/properties/{propertyId}/rooms [post]
func (h *CatalogHandler) CreateRoom(c *gin.Context) {
	propertyID, ok := pathUUID(c, "propertyId")
	if !ok {
		return
	}
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	id, err := h.commands.CreateRoom(c.Request.Context(), req.ToInput(propertyID))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List rooms
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param propertyId path string true "Property ID"
// @Success 200 {array} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /api/properties/{propertyId}/rooms [get]
func (h *CatalogHandler) ListRooms(c *gin.Context) {
	propertyID, ok := pathUUID(c, "propertyId")
	if !ok {
		return
	}

	views, err := h.queries.ListRooms(c.Request.Context(), propertyID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Update room
// @Description Changes the nightly price and/or the active flag
// @Tags catalog
// @Accept json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Fields to change"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id} [patch]
func (h *CatalogHandler) UpdateRoom(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	if err := h.commands.UpdateRoom(c.Request.Context(), id, req.ToInput()); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete room
// @Tags catalog
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/rooms/{id} [delete]
func (h *CatalogHandler) DeleteRoom(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.commands.DeleteRoom(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
