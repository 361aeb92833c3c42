package shared

import (
	"context"

	"kennelbook/internal/domain/schedule"

	"github.com/google/uuid"
)

// BreederSettings is the read-only configuration bundle the engine consumes:
// booking policy, weekly availability, and the appointment-type catalog.
// Stores validate while loading, so holding one of these means the
// configuration was well formed.
type BreederSettings struct {
	BreederID    uuid.UUID
	Name         string
	Policy       schedule.BookingPolicy
	Availability schedule.WeeklyAvailability
	Types        []schedule.AppointmentType
}

func (s *BreederSettings) AppointmentType(id uuid.UUID) (schedule.AppointmentType, bool) {
	for _, t := range s.Types {
		if t.ID() == id {
			return t, true
		}
	}
	return schedule.AppointmentType{}, false
}

type SettingsReader interface {
	LoadSettings(ctx context.Context, breederID uuid.UUID) (*BreederSettings, error)
}
