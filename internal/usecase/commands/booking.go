package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"kennelbook/internal/domain/booking"
	"kennelbook/internal/domain/schedule"
	"kennelbook/internal/infra"
	"kennelbook/internal/infra/db"
	"kennelbook/internal/pkg/clock"
	"kennelbook/internal/pkg/errs"
	"kennelbook/internal/usecase/queries"
	"kennelbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateBookingParams struct {
	BreederID         uuid.UUID
	AppointmentTypeID uuid.UUID
	Date              time.Time
	SlotStartMinute   int
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	Notes             string
}

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
	UpdateBookingStatus(ctx context.Context, breederID, bookingID uuid.UUID, next booking.Status) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	settings        shared.SettingsReader
	bookingRepo     BookingRepository
	idempotencyRepo IdempotencyRepository
	notifyRepo      NotificationRepository
	bookingQueries  queries.BookingQueries
	cache           SlotCacheInvalidator
	pool            *pgxpool.Pool
	clock           clock.Clock
}

func NewBookingCommands(
	settings shared.SettingsReader,
	bookingRepo BookingRepository,
	idempotencyRepo IdempotencyRepository,
	notifyRepo NotificationRepository,
	bookingQueries queries.BookingQueries,
	cache SlotCacheInvalidator,
	pool *pgxpool.Pool,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		settings:        settings,
		bookingRepo:     bookingRepo,
		idempotencyRepo: idempotencyRepo,
		notifyRepo:      notifyRepo,
		bookingQueries:  bookingQueries,
		cache:           cache,
		pool:            pool,
		clock:           clock,
	}
}

// CreateBooking turns a chosen slot into a pending booking. The slot shown to
// the customer may have been taken in the meantime, so the conflict check
// runs a second time inside the insert transaction, under an advisory lock on
// the breeder's date; losing that race surfaces as ErrSlotTaken after one
// bounded retry, never as a silent double-booking.
func (c *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	params CreateBookingParams,
	idempotencyKey uuid.UUID,
) (*CreateBookingResult, error) {
	requestHash := calculateRequestHash(params)
	expiresAt := c.clock.Now().Add(24 * time.Hour)

	replayed, err := c.handleIdempotency(ctx, idempotencyKey, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CreateBookingResult{Booking: replayed, IsReplayed: true}, nil
	}

	entity, appointmentType, err := c.validateSubmission(ctx, params)
	if err != nil {
		return nil, err
	}

	const maxAttempts = 2
	var view *queries.BookingView
	for attempt := 1; ; attempt++ {
		view, err = c.executeBookingTransaction(ctx, entity, appointmentType, params, idempotencyKey)
		if err == nil {
			break
		}
		if errors.Is(err, errs.ErrSlotTaken) && attempt < maxAttempts {
			continue
		}
		return nil, err
	}

	c.cache.InvalidateDate(ctx, params.BreederID, params.Date)
	return &CreateBookingResult{Booking: view, IsReplayed: false}, nil
}

func (c *bookingCommandsImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.BookingView, error) {
	if err := c.idempotencyRepo.TryInsert(ctx, idempotencyKey, "POST /bookings", requestHash, expiresAt); err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	existing, err := c.idempotencyRepo.Get(ctx, idempotencyKey)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		if existing.ResultBookingID != nil {
			return c.bookingQueries.GetByID(ctx, *existing.ResultBookingID)
		}
		return nil, errs.New("completed request missing result booking ID")

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, errs.ErrDuplicateBooking
		}
		return nil, nil

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

// validateSubmission applies the same gates the slot listing applies, so a
// request forged around the public page fails the same way a stale one does.
func (c *bookingCommandsImpl) validateSubmission(
	ctx context.Context,
	params CreateBookingParams,
) (*booking.Booking, schedule.AppointmentType, error) {
	var none schedule.AppointmentType

	settings, err := c.settings.LoadSettings(ctx, params.BreederID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, none, errs.ErrBreederNotFound
		}
		return nil, none, err
	}
	if !settings.Policy.BookingPageEnabled() {
		return nil, none, errs.ErrBookingUnavailable
	}

	appointmentType, ok := settings.AppointmentType(params.AppointmentTypeID)
	if !ok {
		return nil, none, errs.ErrAppointmentTypeNotFound
	}
	if !appointmentType.Enabled() {
		return nil, none, errs.ErrBookingUnavailable
	}

	now := c.clock.Now()
	if !settings.Policy.WindowFrom(now).Contains(params.Date) {
		return nil, none, errs.ErrDateOutOfRange
	}

	if !schedule.AlignedToRange(params.Date, params.SlotStartMinute, appointmentType, settings.Availability, settings.Policy) {
		return nil, none, errs.ErrSlotMisaligned
	}

	slotStart := startOfDay(params.Date).Add(time.Duration(params.SlotStartMinute) * time.Minute)
	if !slotStart.After(now.Add(settings.Policy.MinAdvance())) {
		return nil, none, errs.ErrInsufficientLead
	}

	customer, err := booking.NewCustomer(params.CustomerName, params.CustomerEmail, params.CustomerPhone)
	if err != nil {
		return nil, none, errs.Mark(err, errs.ErrDomainValidation)
	}
	notes, err := booking.NewNotes(params.Notes)
	if err != nil {
		return nil, none, errs.Mark(err, errs.ErrDomainValidation)
	}

	return booking.NewBooking(params.BreederID, appointmentType, slotStart, customer, notes, now), appointmentType, nil
}

func (c *bookingCommandsImpl) executeBookingTransaction(
	ctx context.Context,
	entity *booking.Booking,
	appointmentType schedule.AppointmentType,
	params CreateBookingParams,
	idempotencyKey uuid.UUID,
) (*queries.BookingView, error) {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := c.bookingRepo.LockCalendar(ctx, tx, params.BreederID, params.Date); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	booked, err := c.bookingRepo.BlockingIntervalsForDate(ctx, tx, params.BreederID, params.Date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if appointmentType.ConflictsWith(entity.StartTime(), entity.EndTime(), booked) {
		return nil, errs.ErrSlotTaken
	}

	if err := c.bookingRepo.Create(ctx, tx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrSlotTaken
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := c.createNotificationJob(ctx, tx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	responseHash := calculateIDHash(entity.ID())
	if err := c.idempotencyRepo.UpdateStatusCompleted(ctx, tx, idempotencyKey, responseHash, entity.ID()); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Read-after-write: return the full view from the read store
	view, err := c.bookingQueries.GetByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// UpdateBookingStatus is the breeder-tooling side of the lifecycle:
// pending bookings get confirmed or cancelled, nothing else moves.
func (c *bookingCommandsImpl) UpdateBookingStatus(
	ctx context.Context,
	breederID, bookingID uuid.UUID,
	next booking.Status,
) (*queries.BookingView, error) {
	entity, err := c.bookingRepo.FindByID(ctx, c.pool, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if entity.BreederID() != breederID {
		return nil, errs.ErrBookingNotFound
	}

	if err := entity.TransitionTo(next); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransition)
	}

	if err := c.bookingRepo.UpdateStatus(ctx, c.pool, bookingID, next); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// A cancellation frees calendar time for the whole day.
	if next == booking.StatusCancelled {
		c.cache.InvalidateDate(ctx, breederID, entity.StartTime())
	}

	return c.bookingQueries.GetByID(ctx, bookingID)
}

func (c *bookingCommandsImpl) createNotificationJob(ctx context.Context, tx db.DBTX, entity *booking.Booking) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id":     entity.ID(),
		"customer_email": entity.Customer().Email(),
		"start_time":     entity.StartTime(),
	})
	if err != nil {
		return err
	}
	return c.notifyRepo.CreateJob(ctx, tx, "email", "booking_received", payload, c.clock.Now())
}

func calculateRequestHash(params CreateBookingParams) string {
	data, _ := json.Marshal(params)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
