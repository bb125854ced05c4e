package components

import (
	"event-booking/internal/infra/couponsvc"
	"event-booking/internal/infra/draftstore"
	"event-booking/internal/infra/readstore"
	"event-booking/internal/pkg/clock"
	"event-booking/internal/pkg/config"
	"event-booking/internal/usecase/commands"
	"event-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		readstore.NewEventReadStore,
		NewCouponValidator,
		fx.Annotate(
			NewDraftStore,
			fx.As(new(commands.DraftStore)),
			fx.As(new(queries.DraftReader)),
		),
	),
)

func NewDraftStore(cfg config.Config, clk clock.Clock) *draftstore.Store {
	return draftstore.New(cfg.Booking.DraftTTL, clk)
}

func NewCouponValidator(cfg config.Config) commands.CouponValidator {
	return couponsvc.NewClient(cfg.Coupon)
}
