package repositories

import (
	"context"

	"care-connect.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// ReviewRepository defines review data operations
type ReviewRepository interface {
	Create(ctx context.Context, review *entities.Review) error
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*entities.Review, error)
	GetByCaregiverID(ctx context.Context, caregiverID uuid.UUID, limit, offset int) ([]*entities.Review, int, error)
}
