package repositories

import (
	"context"
	"time"

	"care-connect.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// BookingRepository defines booking data operations
type BookingRepository interface {
	Create(ctx context.Context, booking *entities.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error)
	GetBySeekerID(ctx context.Context, seekerID uuid.UUID, limit, offset int) ([]*entities.Booking, int, error)
	GetByCaregiverID(ctx context.Context, caregiverID uuid.UUID, limit, offset int) ([]*entities.Booking, int, error)
	// HasAcceptedOverlap reports whether an accepted booking for the caregiver
	// overlaps [start, end). excludeID skips the booking being transitioned.
	HasAcceptedOverlap(ctx context.Context, caregiverID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BookingStatus, reason string) error
}
