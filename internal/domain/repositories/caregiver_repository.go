package repositories

import (
	"context"

	"care-connect.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// CaregiverRepository defines caregiver data operations
type CaregiverRepository interface {
	Create(ctx context.Context, caregiver *entities.CaregiverProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.CaregiverProfile, error)
	// GetByIDForUpdate locks the caregiver row for the duration of the
	// surrounding transaction, serializing booking writes per caregiver.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.CaregiverProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.CaregiverProfile, error)
	// ListVerifiedNear returns verified caregivers inside a bounding box around
	// origin; callers apply the exact great-circle distance test.
	ListVerifiedNear(ctx context.Context, origin entities.GeoPoint, radiusKm float64) ([]*entities.CaregiverProfile, error)
	List(ctx context.Context) ([]*entities.CaregiverProfile, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
}
