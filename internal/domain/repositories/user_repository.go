package repositories

import (
	"context"

	"care-connect.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// UserRepository defines account data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	UpdateAccountStatus(ctx context.Context, id uuid.UUID, status entities.AccountStatus) error
}
