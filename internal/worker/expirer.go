package worker

import (
	"context"
	"log/slog"
	"time"

	"fuelstation/internal/usecase/commands"
)

// Expirer periodically frees columns held by reservations whose slot has
// passed and drops idempotency keys past their TTL. Reserve also sweeps
// lazily per column, so the worker only bounds how long a stale row can
// linger on columns nobody is asking for.
type Expirer struct {
	reservationCommands commands.ReservationCommands
	purchaseCommands    commands.PurchaseCommands
	interval            time.Duration
	logger              *slog.Logger

	stop chan struct{}
	done chan struct{}
}

func NewExpirer(
	reservationCommands commands.ReservationCommands,
	purchaseCommands commands.PurchaseCommands,
	interval time.Duration,
	logger *slog.Logger,
) *Expirer {
	return &Expirer{
		reservationCommands: reservationCommands,
		purchaseCommands:    purchaseCommands,
		interval:            interval,
		logger:              logger,
		stop:                make(chan struct{}),
		done:                make(chan struct{}),
	}
}

func (e *Expirer) Start(ctx context.Context) {
	go e.run(ctx)
}

// Stop blocks until the running sweep, if any, finishes.
func (e *Expirer) Stop() {
	close(e.stop)
	<-e.done
}

func (e *Expirer) run(ctx context.Context) {
	defer close(e.done)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			e.sweep(ctx)
		case <-e.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (e *Expirer) sweep(ctx context.Context) {
	expired, err := e.reservationCommands.ExpireStale(ctx)
	if err != nil {
		e.logger.Error("reservation expiry sweep failed", "error", err)
	} else if expired > 0 {
		e.logger.Info("expired stale reservations", "count", expired)
	}

	purged, err := e.purchaseCommands.PurgeExpiredKeys(ctx)
	if err != nil {
		e.logger.Error("idempotency key purge failed", "error", err)
	} else if purged > 0 {
		e.logger.Info("purged expired idempotency keys", "count", purged)
	}
}
