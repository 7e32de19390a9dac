package repository

import (
	"context"
	"errors"
	"time"

	"fuelstation/internal/infra"
	"fuelstation/internal/infra/db"
	"fuelstation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(dbtx db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: dbtx}
}

// TryInsert claims the key with ON CONFLICT DO NOTHING; the primary key on
// (key, user_id) makes the claim race-free.
func (r *IdempotencyRepository) TryInsert(
	ctx context.Context,
	key uuid.UUID,
	userID int64,
	endpoint, requestHash string,
	expiresAt time.Time,
) (bool, error) {
	const query = `
		INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
		VALUES ($1, $2, $3, $4, 'processing', $5)
		ON CONFLICT (key, user_id) DO NOTHING`

	tag, err := r.db.Exec(ctx, query, key, userID, endpoint, requestHash, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim idempotency key", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key uuid.UUID, userID int64) (*shared.IdempotencyRecord, error) {
	const query = `
		SELECT key, user_id, status, request_hash, result_transaction_id, expires_at
		FROM idempotency_keys
		WHERE key = $1 AND user_id = $2`

	var record shared.IdempotencyRecord
	err := r.db.QueryRow(ctx, query, key, userID).Scan(
		&record.Key,
		&record.UserID,
		&record.Status,
		&record.RequestHash,
		&record.ResultTransactionID,
		&record.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read idempotency key", err)
	}
	return &record, nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, key uuid.UUID, userID int64, resultTransactionID int64) error {
	const query = `
		UPDATE idempotency_keys
		SET status = 'completed', result_transaction_id = $3, updated_at = now()
		WHERE key = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, key, userID, resultTransactionID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete releases a claimed key. Deleting an absent key is a no-op so the
// release path stays idempotent.
func (r *IdempotencyRepository) Delete(ctx context.Context, key uuid.UUID, userID int64) error {
	const query = `DELETE FROM idempotency_keys WHERE key = $1 AND user_id = $2`

	if _, err := r.db.Exec(ctx, query, key, userID); err != nil {
		return infra.WrapRepoErr("failed to delete idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	const query = `DELETE FROM idempotency_keys WHERE expires_at <= $1`

	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}
