package repository

import (
	"context"
	"time"

	"kennelbook/internal/infra"
	"kennelbook/internal/infra/db"

	"github.com/google/uuid"
)

// NotificationRepository enqueues outbox-style jobs inside the booking
// transaction, so a committed booking always has its notification queued.
type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO notification_jobs (id, kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := dbtx.Exec(ctx, query, uuid.New(), kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}
