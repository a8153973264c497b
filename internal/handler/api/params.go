package api

import (
	"strconv"

	"hotel-inventory/internal/domain/calendar"
	"hotel-inventory/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pathUUID parses a path parameter and answers 400 when it is not a uuid.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// queryDate parses an optional YYYY-MM-DD query value, falling back to def.
func queryDate(c *gin.Context, name string, def calendar.Date) (calendar.Date, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	d, err := calendar.ParseDate(raw)
	if err != nil {
		httperr.BadRequest(c, err, "Invalid "+name+", expected YYYY-MM-DD")
		return calendar.Date{}, false
	}
	return d, true
}

func optionalQueryDate(c *gin.Context, name string) (*calendar.Date, bool) {
	if c.Query(name) == "" {
		return nil, true
	}
	d, ok := queryDate(c, name, calendar.Date{})
	if !ok {
		return nil, false
	}
	return &d, true
}

func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		httperr.BadRequest(c, err, "Invalid "+name+", expected an integer")
		return 0, false
	}
	return n, true
}
