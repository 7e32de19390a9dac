package repository

import (
	"context"
	"time"

	"fuelstation/internal/infra"
	"fuelstation/internal/infra/db"
)

// NotificationRepository writes outbox jobs. Delivery belongs to an
// external worker; the core only guarantees the job commits together with
// the state change that caused it.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO notification_jobs (kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.db.Exec(ctx, query, kind, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
