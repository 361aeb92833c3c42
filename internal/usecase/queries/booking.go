package queries

import (
	"context"
	"time"

	"kennelbook/internal/infra"
	"kennelbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListForBreederDate(ctx context.Context, breederID uuid.UUID, date time.Time) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByBreederAndDate(ctx context.Context, breederID uuid.UUID, date time.Time) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForBreederDate(ctx context.Context, breederID uuid.UUID, date time.Time) ([]*BookingView, error) {
	return q.store.FindByBreederAndDate(ctx, breederID, date)
}
