package repositories

import (
	"context"
)

// UnitOfWork defines the interface for atomic multi-repository operations
type UnitOfWork interface {
	// Do executes fn within a single transaction; any error rolls back every
	// write made inside fn.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
