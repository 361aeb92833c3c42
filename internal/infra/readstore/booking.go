package readstore

import (
	"context"
	"time"

	"kennelbook/internal/domain/schedule"
	"kennelbook/internal/infra"
	"kennelbook/internal/infra/db"
	"kennelbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewColumns = `
	b.id, b.breeder_id, b.appointment_type_id, t.name,
	b.customer_name, b.customer_email, b.customer_phone,
	b.start_time, b.end_time, b.duration_minutes, b.status, b.notes, b.booked_at`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := `
		SELECT` + bookingViewColumns + `
		FROM bookings b
		JOIN appointment_types t ON t.id = b.appointment_type_id
		WHERE b.id = $1`

	row := r.db.QueryRow(ctx, query, id)
	view, err := scanBookingView(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByBreederAndDate(ctx context.Context, breederID uuid.UUID, date time.Time) ([]*queries.BookingView, error) {
	query := `
		SELECT` + bookingViewColumns + `
		FROM bookings b
		JOIN appointment_types t ON t.id = b.appointment_type_id
		WHERE b.breeder_id = $1 AND b.start_time >= $2 AND b.start_time < $3
		ORDER BY b.start_time`

	dayStart := startOfDay(date)
	rows, err := r.db.Query(ctx, query, breederID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for date", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return views, nil
}

// BlockingIntervalsForDate feeds the slot generator: only pending and
// confirmed bookings occupy time, cancelled ones never block.
func (r *BookingReadStore) BlockingIntervalsForDate(ctx context.Context, breederID uuid.UUID, date time.Time) ([]schedule.BookedInterval, error) {
	const query = `
		SELECT start_time, end_time
		FROM bookings
		WHERE breeder_id = $1
		  AND status IN ('pending', 'confirmed')
		  AND start_time >= $2 AND start_time < $3
		ORDER BY start_time`

	dayStart := startOfDay(date)
	rows, err := r.db.Query(ctx, query, breederID, dayStart, dayStart.AddDate(0, 0, 1))
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.BreederID, &v.AppointmentTypeID, &v.AppointmentTypeName,
		&v.CustomerName, &v.CustomerEmail, &v.CustomerPhone,
		&v.StartTime, &v.EndTime, &v.DurationMinutes, &v.Status, &v.Notes, &v.BookedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
