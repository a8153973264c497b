package components

import (
	"hotel-inventory/internal/handler"
	"hotel-inventory/internal/handler/api"
	"hotel-inventory/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewCatalogHandler,
		api.NewGuestHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
		func(a *api.AvailabilityHandler, c *api.CatalogHandler, g *api.GuestHandler, b *api.BookingHandler) handler.Handlers {
			return handler.Handlers{Availability: a, Catalog: c, Guest: g, Booking: b}
		},
	),
	fx.Invoke(handler.NewRouter),
)
