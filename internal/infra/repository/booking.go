package repository

import (
	"context"
	"errors"
	"hash/fnv"
	"time"

	"kennelbook/internal/domain/booking"
	"kennelbook/internal/domain/schedule"
	"kennelbook/internal/infra"
	"kennelbook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (
			id, breeder_id, appointment_type_id,
			customer_name, customer_email, customer_phone,
			start_time, end_time, duration_minutes, status, notes, booked_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := dbtx.Exec(ctx, query,
		b.ID(), b.BreederID(), b.AppointmentTypeID(),
		b.Customer().Name(), b.Customer().Email(), b.Customer().Phone(),
		b.StartTime(), b.EndTime(), b.DurationMinutes(), string(b.Status()), b.Notes().String(), b.BookedAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return infra.WrapRepoErr("booking already exists", err, infra.KindDuplicateKey)
			case "23503":
				return infra.WrapRepoErr("booking references missing row", err, infra.KindForeignKeyViolated)
			}
		}
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

// LockCalendar serializes writers touching one breeder's calendar date. The
// advisory lock is transaction-scoped, so commit or rollback releases it.
func (r *BookingRepository) LockCalendar(ctx context.Context, dbtx db.DBTX, breederID uuid.UUID, date time.Time) error {
	_, err := dbtx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, calendarLockKey(breederID, date))
	if err != nil {
		return infra.WrapRepoErr("failed to lock calendar date", err)
	}
	return nil
}

func (r *BookingRepository) BlockingIntervalsForDate(ctx context.Context, dbtx db.DBTX, breederID uuid.UUID, date time.Time) ([]schedule.BookedInterval, error) {
	const query = `
		SELECT start_time, end_time
		FROM bookings
		WHERE breeder_id = $1
		  AND status IN ('pending', 'confirmed')
		  AND start_time >= $2 AND start_time < $3
		ORDER BY start_time`

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	rows, err := dbtx.Query(ctx, query, breederID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocking intervals", err)
	}
	defer rows.Close()

	var intervals []schedule.BookedInterval
	for rows.Next() {
		var iv schedule.BookedInterval
		if err := rows.Scan(&iv.Start, &iv.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking interval", err)
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking intervals", err)
	}
	return intervals, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, breeder_id, appointment_type_id,
		       customer_name, customer_email, customer_phone,
		       start_time, end_time, duration_minutes, status, notes, booked_at
		FROM bookings
		WHERE id = $1`

	var (
		bookingID, breederID, typeID uuid.UUID
		name, email, phone           string
		startTime, endTime, bookedAt time.Time
		durationMinutes              int
		status, notes                string
	)
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&bookingID, &breederID, &typeID,
		&name, &email, &phone,
		&startTime, &endTime, &durationMinutes, &status, &notes, &bookedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	return booking.Reconstruct(
		bookingID, breederID, typeID,
		booking.ReconstructCustomer(name, email, phone),
		startTime, endTime,
		durationMinutes,
		booking.Status(status),
		booking.ReconstructNotes(notes),
		bookedAt,
	), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// calendarLockKey folds (breeder, date) into the signed 64-bit key space
// pg_advisory_xact_lock expects. Collisions only cost extra serialization.
func calendarLockKey(breederID uuid.UUID, date time.Time) int64 {
	h := fnv.New64a()
	h.Write(breederID[:])
	h.Write([]byte(date.Format("2006-01-02")))
	return int64(h.Sum64())
}
