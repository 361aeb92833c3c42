package readstore

import (
	"context"

	"kennelbook/internal/domain/schedule"
	"kennelbook/internal/infra"
	"kennelbook/internal/infra/db"
	"kennelbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SettingsReadStore assembles a breeder's booking configuration from the
// settings tables. Domain constructors run while loading, so a breeder with
// a malformed range or policy fails here, loudly, instead of silently
// offering no slots later.
type SettingsReadStore struct {
	db db.DBTX
}

func NewSettingsReadStore(dbtx db.DBTX) *SettingsReadStore {
	return &SettingsReadStore{db: dbtx}
}

func (s *SettingsReadStore) LoadSettings(ctx context.Context, breederID uuid.UUID) (*shared.BreederSettings, error) {
	const breederQuery = `
		SELECT name, booking_page_enabled, min_advance_booking_hours,
		       max_advance_booking_days, slot_interval_minutes
		FROM breeders
		WHERE id = $1`

	var (
		name            string
		pageEnabled     bool
		minAdvanceHours int
		maxAdvanceDays  int
		slotInterval    int
	)
	err := s.db.QueryRow(ctx, breederQuery, breederID).
		Scan(&name, &pageEnabled, &minAdvanceHours, &maxAdvanceDays, &slotInterval)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("breeder not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load breeder", err)
	}

	policy, err := schedule.NewBookingPolicy(minAdvanceHours, maxAdvanceDays, slotInterval, pageEnabled)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed booking policy", err, infra.KindBadConfig)
	}

	availability, err := s.loadAvailability(ctx, breederID)
	if err != nil {
		return nil, err
	}

	types, err := s.loadAppointmentTypes(ctx, breederID)
	if err != nil {
		return nil, err
	}

	return &shared.BreederSettings{
		BreederID:    breederID,
		Name:         name,
		Policy:       policy,
		Availability: availability,
		Types:        types,
	}, nil
}

func (s *SettingsReadStore) loadAvailability(ctx context.Context, breederID uuid.UUID) (schedule.WeeklyAvailability, error) {
	const rangeQuery = `
		SELECT day_of_week, start_minute, end_minute
		FROM availability_ranges
		WHERE breeder_id = $1
		ORDER BY day_of_week, position`

	rows, err := s.db.Query(ctx, rangeQuery, breederID)
	if err != nil {
		return schedule.WeeklyAvailability{}, infra.WrapRepoErr("failed to load availability ranges", err)
	}
	defer rows.Close()

	days := make(map[schedule.DayOfWeek][]schedule.TimeRange)
	for rows.Next() {
		var day, startMinute, endMinute int
		if err := rows.Scan(&day, &startMinute, &endMinute); err != nil {
			return schedule.WeeklyAvailability{}, infra.WrapRepoErr("failed to scan availability range", err)
		}
		r, err := schedule.NewTimeRange(startMinute, endMinute)
		if err != nil {
			return schedule.WeeklyAvailability{}, infra.WrapRepoErr("malformed availability range", err, infra.KindBadConfig)
		}
		days[schedule.DayOfWeek(day)] = append(days[schedule.DayOfWeek(day)], r)
	}
	if err := rows.Err(); err != nil {
		return schedule.WeeklyAvailability{}, infra.WrapRepoErr("failed to read availability ranges", err)
	}

	availability, err := schedule.NewWeeklyAvailability(days)
	if err != nil {
		return schedule.WeeklyAvailability{}, infra.WrapRepoErr("malformed weekly availability", err, infra.KindBadConfig)
	}
	return availability, nil
}

func (s *SettingsReadStore) loadAppointmentTypes(ctx context.Context, breederID uuid.UUID) ([]schedule.AppointmentType, error) {
	const typeQuery = `
		SELECT id, name, duration_minutes, buffer_before_minutes, buffer_after_minutes, enabled
		FROM appointment_types
		WHERE breeder_id = $1
		ORDER BY name`

	rows, err := s.db.Query(ctx, typeQuery, breederID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load appointment types", err)
	}
	defer rows.Close()

	var types []schedule.AppointmentType
	for rows.Next() {
		var (
			id                      uuid.UUID
			name                    string
			duration, before, after int
			enabled                 bool
		)
		if err := rows.Scan(&id, &name, &duration, &before, &after, &enabled); err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment type", err)
		}
		t, err := schedule.NewAppointmentType(id, name, duration, before, after, enabled)
		if err != nil {
			return nil, infra.WrapRepoErr("malformed appointment type", err, infra.KindBadConfig)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read appointment types", err)
	}
	return types, nil
}
