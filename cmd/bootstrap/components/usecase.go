package components

import (
	"hotel-inventory/internal/domain/booking"
	"hotel-inventory/internal/pkg/clock"
	"hotel-inventory/internal/usecase/commands"
	"hotel-inventory/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewNightlyRateCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewCatalogUseCase,
		commands.NewGuestUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewCatalogQueries,
		queries.NewBookingQueries,
		queries.NewDashboardQueries,
	),
)
