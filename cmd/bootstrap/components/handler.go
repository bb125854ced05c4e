package components

import (
	"event-booking/internal/handler"
	"event-booking/internal/handler/api"
	"event-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewEventHandler,
		api.NewDraftHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
