package components

import (
	"fuelstation/internal/handler"
	"fuelstation/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewPurchaseHandler,
		api.NewCatalogHandler,
	),
	fx.Invoke(handler.NewRouter),
)
