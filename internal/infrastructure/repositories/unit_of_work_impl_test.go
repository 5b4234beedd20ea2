package repositories_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/infrastructure/repositories"
)

func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	uow := repositories.NewUnitOfWork(db)
	userRepo := repositories.NewUserRepository(db)
	caregiverRepo := repositories.NewCaregiverRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, entities.UserRoleCaregiver, entities.AccountStatusPending)
	caregiver := seedCaregiver(t, db, user.ID, 36.82, -1.29, false)

	err := uow.Do(ctx, func(ctx context.Context) error {
		if err := userRepo.UpdateAccountStatus(ctx, user.ID, entities.AccountStatusApproved); err != nil {
			return err
		}
		return caregiverRepo.SetVerified(ctx, caregiver.ID, true)
	})
	require.NoError(t, err)

	gotUser, err := userRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.AccountStatusApproved, gotUser.AccountStatus)

	gotCaregiver, err := caregiverRepo.GetByID(ctx, caregiver.ID)
	require.NoError(t, err)
	assert.True(t, gotCaregiver.Verified)
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	uow := repositories.NewUnitOfWork(db)
	userRepo := repositories.NewUserRepository(db)
	caregiverRepo := repositories.NewCaregiverRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, entities.UserRoleCaregiver, entities.AccountStatusPending)
	caregiver := seedCaregiver(t, db, user.ID, 36.82, -1.29, false)

	boom := errors.New("boom")
	err := uow.Do(ctx, func(ctx context.Context) error {
		if err := userRepo.UpdateAccountStatus(ctx, user.ID, entities.AccountStatusApproved); err != nil {
			return err
		}
		if err := caregiverRepo.SetVerified(ctx, caregiver.ID, true); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// Neither write survives the rollback.
	gotUser, err := userRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.AccountStatusPending, gotUser.AccountStatus)

	gotCaregiver, err := caregiverRepo.GetByID(ctx, caregiver.ID)
	require.NoError(t, err)
	assert.False(t, gotCaregiver.Verified)
}

func TestUnitOfWork_WritesVisibleInsideTransaction(t *testing.T) {
	db := newTestDB(t)
	uow := repositories.NewUnitOfWork(db)
	bookingRepo := repositories.NewBookingRepository(db)
	ctx := context.Background()

	caregiverID := seedCaregiver(t, db, uuid.New(), 36.82, -1.29, true).ID
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	err := uow.Do(ctx, func(ctx context.Context) error {
		booking := &entities.Booking{
			ID:          uuid.New(),
			CaregiverID: caregiverID,
			SeekerID:    uuid.New(),
			Start:       start,
			End:         start.Add(time.Hour),
			Service:     "elderly care",
			Price:       20,
			Status:      entities.BookingStatusAccepted,
			CreatedAt:   time.Now().UTC(),
			UpdatedAt:   time.Now().UTC(),
		}
		if err := bookingRepo.Create(ctx, booking); err != nil {
			return err
		}

		overlap, err := bookingRepo.HasAcceptedOverlap(ctx, caregiverID, start.Add(30*time.Minute), start.Add(90*time.Minute), uuid.Nil)
		if err != nil {
			return err
		}
		if !overlap {
			return domainerrors.ErrBookingConflict
		}
		return nil
	})
	require.NoError(t, err)
}
