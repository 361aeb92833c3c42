package repository

import (
	"context"
	"errors"
	"time"

	"kennelbook/internal/infra"
	"kennelbook/internal/infra/db"
	"kennelbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(dbtx db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: dbtx}
}

// TryInsert claims the key if it is new. An existing key is not an error
// here; the caller inspects the stored record to decide replay vs conflict.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error {
	const query = `
		INSERT INTO idempotency_keys (key, endpoint, request_hash, status, expires_at)
		VALUES ($1, $2, $3, 'processing', $4)
		ON CONFLICT (key) DO NOTHING`

	_, err := r.db.Exec(ctx, query, key, endpoint, requestHash, expiresAt)
	if err != nil {
		return infra.WrapRepoErr("failed to insert idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key uuid.UUID) (*commands.IdempotencyRecord, error) {
	const query = `
		SELECT key, endpoint, request_hash, status, result_booking_id, expires_at
		FROM idempotency_keys
		WHERE key = $1`

	var rec commands.IdempotencyRecord
	err := r.db.QueryRow(ctx, query, key).Scan(
		&rec.Key, &rec.Endpoint, &rec.RequestHash, &rec.Status, &rec.ResultBookingID, &rec.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &rec, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, dbtx db.DBTX, key uuid.UUID, responseBodyHash string, resultBookingID uuid.UUID) error {
	const query = `
		UPDATE idempotency_keys
		SET status = 'completed', response_body_hash = $2, result_booking_id = $3, updated_at = now()
		WHERE key = $1`

	tag, err := dbtx.Exec(ctx, query, key, responseBodyHash, resultBookingID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
