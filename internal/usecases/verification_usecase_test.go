package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/usecases"
)

type verificationMocks struct {
	userRepo      *MockUserRepository
	caregiverRepo *MockCaregiverRepository
	uow           *MockUnitOfWork
	mailer        *MockMailer
}

func newVerificationUsecase() (*usecases.VerificationUsecase, *verificationMocks) {
	m := &verificationMocks{
		userRepo:      new(MockUserRepository),
		caregiverRepo: new(MockCaregiverRepository),
		uow:           new(MockUnitOfWork),
		mailer:        new(MockMailer),
	}
	m.uow.On("Do", mock.Anything, mock.Anything).Return(nil).Maybe()

	uc := usecases.NewVerificationUsecase(m.userRepo, m.caregiverRepo, m.uow, m.mailer)
	uc.SetClock(func() time.Time { return fixedNow })
	return uc, m
}

func caregiverAccount(status entities.AccountStatus) *entities.User {
	return &entities.User{
		ID:            uuid.New(),
		Email:         "grace@example.com",
		Name:          "Grace",
		Role:          entities.UserRoleCaregiver,
		AccountStatus: status,
	}
}

func TestVerificationUsecase_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("approves the account and sets verified together", func(t *testing.T) {
		uc, m := newVerificationUsecase()
		account := caregiverAccount(entities.AccountStatusPending)
		caregiver := &entities.CaregiverProfile{ID: uuid.New(), UserID: account.ID}

		m.userRepo.On("GetByID", mock.Anything, account.ID).Return(account, nil)
		m.caregiverRepo.On("GetByUserID", mock.Anything, account.ID).Return(caregiver, nil)
		m.userRepo.On("UpdateAccountStatus", mock.Anything, account.ID, entities.AccountStatusApproved).Return(nil)
		m.caregiverRepo.On("SetVerified", mock.Anything, caregiver.ID, true).Return(nil)
		m.mailer.On("Send", mock.Anything, account.Email, "caregiver_approved", mock.Anything).Return(nil)

		err := uc.Approve(ctx, account.ID)

		require.NoError(t, err)
		m.userRepo.AssertExpectations(t)
		m.caregiverRepo.AssertExpectations(t)
		m.mailer.AssertExpectations(t)
		m.uow.AssertCalled(t, "Do", mock.Anything, mock.Anything)
	})

	t.Run("a status write failure leaves verified untouched", func(t *testing.T) {
		uc, m := newVerificationUsecase()
		account := caregiverAccount(entities.AccountStatusPending)
		caregiver := &entities.CaregiverProfile{ID: uuid.New(), UserID: account.ID}

		m.userRepo.On("GetByID", mock.Anything, account.ID).Return(account, nil)
		m.caregiverRepo.On("GetByUserID", mock.Anything, account.ID).Return(caregiver, nil)
		m.userRepo.On("UpdateAccountStatus", mock.Anything, account.ID, entities.AccountStatusApproved).
			Return(domainerrors.ErrNotFound)

		err := uc.Approve(ctx, account.ID)

		assert.Error(t, err)
		m.caregiverRepo.AssertNotCalled(t, "SetVerified", mock.Anything, mock.Anything, mock.Anything)
		m.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects non-caregiver accounts", func(t *testing.T) {
		uc, m := newVerificationUsecase()
		account := caregiverAccount(entities.AccountStatusPending)
		account.Role = entities.UserRoleSeeker

		m.userRepo.On("GetByID", mock.Anything, account.ID).Return(account, nil)

		err := uc.Approve(ctx, account.ID)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("unknown account", func(t *testing.T) {
		uc, m := newVerificationUsecase()
		accountID := uuid.New()
		m.userRepo.On("GetByID", mock.Anything, accountID).Return(nil, domainerrors.ErrNotFound)

		err := uc.Approve(ctx, accountID)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}

func TestVerificationUsecase_Reject(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects the account and clears verified together", func(t *testing.T) {
		uc, m := newVerificationUsecase()
		account := caregiverAccount(entities.AccountStatusApproved)
		caregiver := &entities.CaregiverProfile{ID: uuid.New(), UserID: account.ID, Verified: true}

		m.userRepo.On("GetByID", mock.Anything, account.ID).Return(account, nil)
		m.caregiverRepo.On("GetByUserID", mock.Anything, account.ID).Return(caregiver, nil)
		m.userRepo.On("UpdateAccountStatus", mock.Anything, account.ID, entities.AccountStatusRejected).Return(nil)
		m.caregiverRepo.On("SetVerified", mock.Anything, caregiver.ID, false).Return(nil)
		m.mailer.On("Send", mock.Anything, account.Email, "caregiver_rejected", mock.Anything).Return(nil)

		err := uc.Reject(ctx, account.ID)

		require.NoError(t, err)
		m.caregiverRepo.AssertExpectations(t)
	})

	t.Run("caregiver without a profile", func(t *testing.T) {
		uc, m := newVerificationUsecase()
		account := caregiverAccount(entities.AccountStatusPending)

		m.userRepo.On("GetByID", mock.Anything, account.ID).Return(account, nil)
		m.caregiverRepo.On("GetByUserID", mock.Anything, account.ID).Return(nil, domainerrors.ErrNotFound)

		err := uc.Reject(ctx, account.ID)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}

func TestVerificationUsecase_Reconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("corrects caregivers whose flag disagrees with the account", func(t *testing.T) {
		uc, m := newVerificationUsecase()

		approvedAccount := caregiverAccount(entities.AccountStatusApproved)
		consistent := &entities.CaregiverProfile{ID: uuid.New(), UserID: approvedAccount.ID, Verified: true}

		rejectedAccount := caregiverAccount(entities.AccountStatusRejected)
		drifted := &entities.CaregiverProfile{ID: uuid.New(), UserID: rejectedAccount.ID, Verified: true}

		m.caregiverRepo.On("List", mock.Anything).
			Return([]*entities.CaregiverProfile{consistent, drifted}, nil)
		m.userRepo.On("GetByID", mock.Anything, approvedAccount.ID).Return(approvedAccount, nil)
		m.userRepo.On("GetByID", mock.Anything, rejectedAccount.ID).Return(rejectedAccount, nil)
		m.caregiverRepo.On("GetByIDForUpdate", mock.Anything, drifted.ID).Return(drifted, nil)
		m.caregiverRepo.On("SetVerified", mock.Anything, drifted.ID, false).Return(nil)

		report, err := uc.Reconcile(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, report.CheckedCount)
		assert.Equal(t, 1, report.CorrectedCount)
		require.Len(t, report.Mismatches, 1)
		mismatch := report.Mismatches[0]
		assert.Equal(t, drifted.ID, mismatch.CaregiverID)
		assert.Equal(t, rejectedAccount.ID, mismatch.AccountID)
		assert.Equal(t, entities.AccountStatusRejected, mismatch.AccountStatus)
		assert.True(t, mismatch.Verified)
		assert.False(t, mismatch.Expected)
		m.caregiverRepo.AssertExpectations(t)
	})

	t.Run("a consistent fleet corrects nothing", func(t *testing.T) {
		uc, m := newVerificationUsecase()

		account := caregiverAccount(entities.AccountStatusApproved)
		caregiver := &entities.CaregiverProfile{ID: uuid.New(), UserID: account.ID, Verified: true}

		m.caregiverRepo.On("List", mock.Anything).
			Return([]*entities.CaregiverProfile{caregiver}, nil)
		m.userRepo.On("GetByID", mock.Anything, account.ID).Return(account, nil)

		report, err := uc.Reconcile(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, report.CheckedCount)
		assert.Equal(t, 0, report.CorrectedCount)
		assert.Empty(t, report.Mismatches)
		m.caregiverRepo.AssertNotCalled(t, "SetVerified", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("re-validates against the current account before writing", func(t *testing.T) {
		uc, m := newVerificationUsecase()

		// The scan sees a stale rejected account, but by the time the
		// correction transaction re-reads it an admin has approved it.
		// The sweep must not clear the flag.
		account := caregiverAccount(entities.AccountStatusRejected)
		caregiver := &entities.CaregiverProfile{ID: uuid.New(), UserID: account.ID, Verified: true}

		m.caregiverRepo.On("List", mock.Anything).
			Return([]*entities.CaregiverProfile{caregiver}, nil)
		m.userRepo.On("GetByID", mock.Anything, account.ID).Return(account, nil).Once()

		current := caregiverAccount(entities.AccountStatusApproved)
		current.ID = account.ID
		m.userRepo.On("GetByID", mock.Anything, account.ID).Return(current, nil)
		m.caregiverRepo.On("GetByIDForUpdate", mock.Anything, caregiver.ID).Return(caregiver, nil)

		report, err := uc.Reconcile(ctx)

		require.NoError(t, err)
		assert.Equal(t, 0, report.CorrectedCount)
		m.caregiverRepo.AssertNotCalled(t, "SetVerified", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("skips caregivers without an owning account", func(t *testing.T) {
		uc, m := newVerificationUsecase()

		orphan := &entities.CaregiverProfile{ID: uuid.New(), UserID: uuid.New(), Verified: true}

		m.caregiverRepo.On("List", mock.Anything).
			Return([]*entities.CaregiverProfile{orphan}, nil)
		m.userRepo.On("GetByID", mock.Anything, orphan.UserID).Return(nil, domainerrors.ErrNotFound)

		report, err := uc.Reconcile(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, report.CheckedCount)
		assert.Equal(t, 0, report.CorrectedCount)
	})

	t.Run("a second sweep after correction is a no-op", func(t *testing.T) {
		uc, m := newVerificationUsecase()

		account := caregiverAccount(entities.AccountStatusRejected)
		drifted := &entities.CaregiverProfile{ID: uuid.New(), UserID: account.ID, Verified: true}

		m.caregiverRepo.On("List", mock.Anything).
			Return([]*entities.CaregiverProfile{drifted}, nil).Once()
		m.userRepo.On("GetByID", mock.Anything, account.ID).Return(account, nil)
		m.caregiverRepo.On("GetByIDForUpdate", mock.Anything, drifted.ID).Return(drifted, nil)
		m.caregiverRepo.On("SetVerified", mock.Anything, drifted.ID, false).
			Run(func(args mock.Arguments) { drifted.Verified = false }).
			Return(nil).Once()

		first, err := uc.Reconcile(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, first.CorrectedCount)

		m.caregiverRepo.On("List", mock.Anything).
			Return([]*entities.CaregiverProfile{drifted}, nil).Once()

		second, err := uc.Reconcile(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, second.CorrectedCount)
		assert.Empty(t, second.Mismatches)
	})
}
