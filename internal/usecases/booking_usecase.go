package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/domain/repositories"
	"care-connect.backend/pkg/logger"
)

// BookingUsecase handles booking creation, conflict detection and the status
// state machine
type BookingUsecase struct {
	bookingRepo   repositories.BookingRepository
	caregiverRepo repositories.CaregiverRepository
	userRepo      repositories.UserRepository
	uow           repositories.UnitOfWork
	publisher     repositories.BookingEventPublisher
	mailer        repositories.Mailer
	now           func() time.Time
}

// NewBookingUsecase creates a new booking usecase
func NewBookingUsecase(
	bookingRepo repositories.BookingRepository,
	caregiverRepo repositories.CaregiverRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
	publisher repositories.BookingEventPublisher,
	mailer repositories.Mailer,
) *BookingUsecase {
	return &BookingUsecase{
		bookingRepo:   bookingRepo,
		caregiverRepo: caregiverRepo,
		userRepo:      userRepo,
		uow:           uow,
		publisher:     publisher,
		mailer:        mailer,
		now:           time.Now,
	}
}

// CreateBooking validates availability and creates a pending booking.
//
// The check-then-write sequence runs inside a transaction holding a row lock
// on the caregiver, so two concurrent requests for overlapping intervals on
// the same caregiver cannot both pass the overlap check.
func (u *BookingUsecase) CreateBooking(ctx context.Context, seekerID uuid.UUID, input *entities.CreateBookingInput) (*entities.Booking, error) {
	caregiverID, err := uuid.Parse(input.CaregiverID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid caregiver ID")
	}
	if !input.End.After(input.Start) {
		return nil, domainerrors.BadRequest("booking end must be after start")
	}
	if input.Start.Before(u.now()) {
		return nil, domainerrors.BadRequest("booking start must not be in the past")
	}

	booking := &entities.Booking{
		ID:          uuid.New(),
		CaregiverID: caregiverID,
		SeekerID:    seekerID,
		Start:       input.Start,
		End:         input.End,
		Service:     input.Service,
		Status:      entities.BookingStatusPending,
		CreatedAt:   u.now(),
		UpdatedAt:   u.now(),
	}
	if input.Notes != "" {
		booking.Notes.SetValid(input.Notes)
	}
	if input.Location != "" {
		booking.Location.SetValid(input.Location)
	}

	var caregiver *entities.CaregiverProfile
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		caregiver, err = u.caregiverRepo.GetByIDForUpdate(ctx, caregiverID)
		if err != nil {
			if err == domainerrors.ErrNotFound {
				return domainerrors.NotFound("caregiver not found")
			}
			return err
		}
		if !caregiver.Verified {
			return domainerrors.BadRequest("caregiver is not verified")
		}
		if !caregiver.OffersService(input.Service) {
			return domainerrors.BadRequest("caregiver does not offer this service")
		}

		overlap, err := u.bookingRepo.HasAcceptedOverlap(ctx, caregiverID, input.Start, input.End, uuid.Nil)
		if err != nil {
			return err
		}
		if overlap {
			return domainerrors.Conflict("caregiver already has an accepted booking in this time slot")
		}

		booking.Price = roundPrice(hoursBetween(input.Start, input.End) * caregiver.HourlyRate)
		return u.bookingRepo.Create(ctx, booking)
	})
	if err != nil {
		return nil, err
	}

	bookingsCreatedTotal.Inc()
	u.notifyCaregiver(ctx, caregiver, "booking_requested", booking)
	return booking, nil
}

// Transition applies a role-gated status change to a booking.
//
// Allowed transitions:
//
//	caregiver owner: pending -> accepted, pending -> rejected
//	seeker owner:    any non-terminal -> cancelled
//
// Anything else is an authorization failure.
func (u *BookingUsecase) Transition(ctx context.Context, actorID uuid.UUID, role entities.UserRole, bookingID uuid.UUID, input *entities.TransitionBookingInput) (*entities.Booking, error) {
	switch input.Status {
	case entities.BookingStatusAccepted, entities.BookingStatusRejected, entities.BookingStatusCancelled:
	default:
		return nil, domainerrors.BadRequest("unsupported target status")
	}

	var booking *entities.Booking
	var oldStatus entities.BookingStatus
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		booking, err = u.bookingRepo.GetByID(ctx, bookingID)
		if err != nil {
			if err == domainerrors.ErrNotFound {
				return domainerrors.NotFound("booking not found")
			}
			return err
		}
		oldStatus = booking.Status

		if err := u.authorizeTransition(ctx, actorID, role, booking, input.Status); err != nil {
			return err
		}

		if input.Status == entities.BookingStatusAccepted {
			// Re-check under the caregiver lock so two overlapping pending
			// bookings cannot both be accepted.
			if _, err := u.caregiverRepo.GetByIDForUpdate(ctx, booking.CaregiverID); err != nil {
				return err
			}
			overlap, err := u.bookingRepo.HasAcceptedOverlap(ctx, booking.CaregiverID, booking.Start, booking.End, booking.ID)
			if err != nil {
				return err
			}
			if overlap {
				return domainerrors.Conflict("an overlapping booking has already been accepted")
			}
		}

		reason := ""
		if input.Status == entities.BookingStatusCancelled {
			reason = input.Reason
		}
		return u.bookingRepo.UpdateStatus(ctx, bookingID, input.Status, reason)
	})
	if err != nil {
		return nil, err
	}

	booking.Status = input.Status
	if input.Status == entities.BookingStatusCancelled && input.Reason != "" {
		booking.CancelReason = null.StringFrom(input.Reason)
	}

	u.emitStatusChange(ctx, booking.ID, oldStatus, input.Status)
	return booking, nil
}

// AutoComplete moves an accepted booking past its end time to completed. It
// is the system-actor transition used when a review is filed; completing an
// already-completed booking is a no-op.
func (u *BookingUsecase) AutoComplete(ctx context.Context, bookingID uuid.UUID) (*entities.Booking, error) {
	var booking *entities.Booking
	var transitioned bool
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		booking, err = u.bookingRepo.GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if booking.Status == entities.BookingStatusCompleted {
			return nil
		}
		if booking.Status != entities.BookingStatusAccepted {
			return domainerrors.BadRequest("only accepted bookings can be completed")
		}
		if !booking.End.Before(u.now()) {
			return domainerrors.BadRequest("booking has not ended yet")
		}
		transitioned = true
		return u.bookingRepo.UpdateStatus(ctx, bookingID, entities.BookingStatusCompleted, "")
	})
	if err != nil {
		return nil, err
	}

	if transitioned {
		old := booking.Status
		booking.Status = entities.BookingStatusCompleted
		u.emitStatusChange(ctx, booking.ID, old, entities.BookingStatusCompleted)
	}
	return booking, nil
}

// GetBooking gets a booking visible to the actor
func (u *BookingUsecase) GetBooking(ctx context.Context, actorID uuid.UUID, role entities.UserRole, bookingID uuid.UUID) (*entities.Booking, error) {
	booking, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("booking not found")
		}
		return nil, err
	}
	if err := u.authorizeRead(ctx, actorID, role, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// ListBookings lists bookings on the actor's side of the marketplace
func (u *BookingUsecase) ListBookings(ctx context.Context, actorID uuid.UUID, role entities.UserRole, limit, offset int) ([]*entities.Booking, int, error) {
	if role == entities.UserRoleCaregiver {
		caregiver, err := u.caregiverRepo.GetByUserID(ctx, actorID)
		if err != nil {
			if err == domainerrors.ErrNotFound {
				return nil, 0, domainerrors.NotFound("caregiver profile not found")
			}
			return nil, 0, err
		}
		return u.bookingRepo.GetByCaregiverID(ctx, caregiver.ID, limit, offset)
	}
	return u.bookingRepo.GetBySeekerID(ctx, actorID, limit, offset)
}

func (u *BookingUsecase) authorizeTransition(ctx context.Context, actorID uuid.UUID, role entities.UserRole, booking *entities.Booking, target entities.BookingStatus) error {
	switch role {
	case entities.UserRoleCaregiver:
		caregiver, err := u.caregiverRepo.GetByID(ctx, booking.CaregiverID)
		if err != nil {
			return err
		}
		if caregiver.UserID != actorID {
			return domainerrors.Forbidden("booking belongs to another caregiver")
		}
		if booking.Status != entities.BookingStatusPending ||
			(target != entities.BookingStatusAccepted && target != entities.BookingStatusRejected) {
			return domainerrors.Forbidden("caregivers may only accept or reject pending bookings")
		}
		return nil
	case entities.UserRoleSeeker:
		if booking.SeekerID != actorID {
			return domainerrors.Forbidden("booking belongs to another seeker")
		}
		if target != entities.BookingStatusCancelled {
			return domainerrors.Forbidden("seekers may only cancel bookings")
		}
		if booking.Status.IsTerminal() {
			return domainerrors.Forbidden("booking is already in a terminal state")
		}
		return nil
	default:
		return domainerrors.Forbidden("role may not change booking status")
	}
}

func (u *BookingUsecase) authorizeRead(ctx context.Context, actorID uuid.UUID, role entities.UserRole, booking *entities.Booking) error {
	switch role {
	case entities.UserRoleAdmin:
		return nil
	case entities.UserRoleSeeker:
		if booking.SeekerID == actorID {
			return nil
		}
	case entities.UserRoleCaregiver:
		caregiver, err := u.caregiverRepo.GetByID(ctx, booking.CaregiverID)
		if err != nil {
			return err
		}
		if caregiver.UserID == actorID {
			return nil
		}
	}
	return domainerrors.Forbidden("booking belongs to another account")
}

// emitStatusChange publishes the transition event. Delivery is best-effort;
// failures are logged and never affect the committed state change.
func (u *BookingUsecase) emitStatusChange(ctx context.Context, bookingID uuid.UUID, oldStatus, newStatus entities.BookingStatus) {
	event := &entities.BookingEvent{
		BookingID:  bookingID,
		OldStatus:  oldStatus,
		NewStatus:  newStatus,
		OccurredAt: u.now(),
	}
	bookingTransitionsTotal.WithLabelValues(string(newStatus)).Inc()
	if err := u.publisher.PublishStatusChange(ctx, event); err != nil {
		logger.Warn(ctx, "Failed to publish booking event",
			zap.String("booking_id", bookingID.String()),
			zap.String("new_status", string(newStatus)),
			zap.Error(err),
		)
	}
}

func (u *BookingUsecase) notifyCaregiver(ctx context.Context, caregiver *entities.CaregiverProfile, template string, booking *entities.Booking) {
	owner, err := u.userRepo.GetByID(ctx, caregiver.UserID)
	if err != nil {
		logger.Warn(ctx, "Failed to resolve caregiver account for notification", zap.Error(err))
		return
	}
	data := map[string]interface{}{
		"bookingId": booking.ID.String(),
		"service":   booking.Service,
		"start":     booking.Start,
		"end":       booking.End,
	}
	if err := u.mailer.Send(ctx, owner.Email, template, data); err != nil {
		logger.Warn(ctx, "Failed to send booking notification", zap.Error(err))
	}
}
