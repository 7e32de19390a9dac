package bootstrap

import (
	"context"
	"log/slog"

	"fuelstation/internal/pkg/config"
	"fuelstation/internal/usecase/commands"
	"fuelstation/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewExpirer,
	),
	fx.Invoke(func(*worker.Expirer) {}),
)

func NewExpirer(
	lc fx.Lifecycle,
	reservationCommands commands.ReservationCommands,
	purchaseCommands commands.PurchaseCommands,
	cfg config.StationConfig,
	logger *slog.Logger,
) *worker.Expirer {
	expirer := worker.NewExpirer(reservationCommands, purchaseCommands, cfg.SweepInterval, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			expirer.Start(context.WithoutCancel(ctx))
			return nil
		},
		OnStop: func(_ context.Context) error {
			expirer.Stop()
			return nil
		},
	})

	return expirer
}
