package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-inventory/internal/handler/api"
	"hotel-inventory/internal/handler/middleware"
	"hotel-inventory/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers mounted by NewRouter.
type Handlers struct {
	Availability *api.AvailabilityHandler
	Catalog      *api.CatalogHandler
	Guest        *api.GuestHandler
	Booking      *api.BookingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		properties := apiGroup.Group("/properties")
		addRoutes(properties, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateProperty},
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListProperties},
			{Method: http.MethodDelete, Path: "/:propertyId", Handler: h.Catalog.DeleteProperty},
		})

		property := properties.Group("/:propertyId")
		addRoutes(property, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.GetAvailability},
			{Method: http.MethodGet, Path: "/dashboard", Handler: h.Availability.GetDashboard},
			{Method: http.MethodPost, Path: "/room-types", Handler: h.Catalog.CreateRoomType},
			{Method: http.MethodGet, Path: "/room-types", Handler: h.Catalog.ListRoomTypes},
			{Method: http.MethodPost, Path: "/rooms", Handler: h.Catalog.CreateRoom},
			{Method: http.MethodGet, Path: "/rooms", Handler: h.Catalog.ListRooms},
			{Method: http.MethodPost, Path: "/guests", Handler: h.Guest.CreateGuest},
			{Method: http.MethodPost, Path: "/guests/quick", Handler: h.Guest.QuickAddGuest},
			{Method: http.MethodGet, Path: "/guests", Handler: h.Guest.ListGuests},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodDelete, Path: "/room-types/:id", Handler: h.Catalog.DeleteRoomType},
			{Method: http.MethodPatch, Path: "/rooms/:id", Handler: h.Catalog.UpdateRoom},
			{Method: http.MethodDelete, Path: "/rooms/:id", Handler: h.Catalog.DeleteRoom},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking},
			{Method: http.MethodGet, Path: "", Handler: h.Booking.ListBookings},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Booking.UpdateBooking},
			{Method: http.MethodPost, Path: "/:id/recalculate", Handler: h.Booking.RecalculateTotals},
			{Method: http.MethodPost, Path: "/:id/rooms", Handler: h.Booking.AddRoom},
			{Method: http.MethodPost, Path: "/:id/guests", Handler: h.Booking.AttachGuest},
			{Method: http.MethodPost, Path: "/:id/payments", Handler: h.Booking.AddPayment},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPut, Path: "/booking-rooms/:lineId/room", Handler: h.Booking.AssignRoom},
			{Method: http.MethodDelete, Path: "/booking-rooms/:lineId", Handler: h.Booking.RemoveRoom},
			{Method: http.MethodDelete, Path: "/booking-guests/:linkId", Handler: h.Booking.RemoveGuest},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
