package components

import (
	"event-booking/internal/domain/event"
	"event-booking/internal/pkg/clock"
	"event-booking/internal/pkg/config"
	"event-booking/internal/usecase/commands"
	"event-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewQuantityPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewDraftCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewEventQueries,
		queries.NewDraftQueries,
	),
)

func NewQuantityPolicy(cfg config.Config) event.QuantityPolicy {
	return event.QuantityPolicy{
		MaxPerBooking: cfg.Booking.MaxPerBooking,
		UnlimitedCap:  cfg.Booking.UnlimitedCap,
	}
}
