package commands

import (
	"context"
	"time"

	"kennelbook/internal/domain/booking"
	"kennelbook/internal/domain/schedule"
	"kennelbook/internal/infra/db"

	"github.com/google/uuid"
)

// BookingRepository is the write side of the booking store. Methods taking a
// db.DBTX run against whatever the caller passes: the pool, or the open
// transaction during the re-check-and-insert dance.
type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error
	// LockCalendar takes a transaction-scoped advisory lock on
	// (breederID, date) so conflict check and insert act as one atomic step.
	LockCalendar(ctx context.Context, dbtx db.DBTX, breederID uuid.UUID, date time.Time) error
	BlockingIntervalsForDate(ctx context.Context, dbtx db.DBTX, breederID uuid.UUID, date time.Time) ([]schedule.BookedInterval, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	Endpoint        string
	RequestHash     string
	Status          string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error
	Get(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, dbtx db.DBTX, key uuid.UUID, responseBodyHash string, resultBookingID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

// SlotCacheInvalidator drops cached slot lists for a breeder's date after a
// write lands; a noop implementation serves when caching is off.
type SlotCacheInvalidator interface {
	InvalidateDate(ctx context.Context, breederID uuid.UUID, date time.Time)
}
