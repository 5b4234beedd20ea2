package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/domain/repositories"
	"care-connect.backend/pkg/logger"
)

// VerificationUsecase keeps a caregiver's verified flag consistent with the
// administrator's decision on the owning account. The account status is the
// source of truth; verified must always equal (status == approved).
type VerificationUsecase struct {
	userRepo      repositories.UserRepository
	caregiverRepo repositories.CaregiverRepository
	uow           repositories.UnitOfWork
	mailer        repositories.Mailer
	now           func() time.Time
}

// NewVerificationUsecase creates a new verification usecase
func NewVerificationUsecase(
	userRepo repositories.UserRepository,
	caregiverRepo repositories.CaregiverRepository,
	uow repositories.UnitOfWork,
	mailer repositories.Mailer,
) *VerificationUsecase {
	return &VerificationUsecase{
		userRepo:      userRepo,
		caregiverRepo: caregiverRepo,
		uow:           uow,
		mailer:        mailer,
		now:           time.Now,
	}
}

// Approve marks the account approved and the caregiver verified in one
// transaction
func (u *VerificationUsecase) Approve(ctx context.Context, accountID uuid.UUID) error {
	return u.decide(ctx, accountID, entities.AccountStatusApproved, "caregiver_approved")
}

// Reject marks the account rejected and the caregiver unverified in one
// transaction
func (u *VerificationUsecase) Reject(ctx context.Context, accountID uuid.UUID) error {
	return u.decide(ctx, accountID, entities.AccountStatusRejected, "caregiver_rejected")
}

func (u *VerificationUsecase) decide(ctx context.Context, accountID uuid.UUID, status entities.AccountStatus, template string) error {
	var account *entities.User
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		account, err = u.userRepo.GetByID(ctx, accountID)
		if err != nil {
			if err == domainerrors.ErrNotFound {
				return domainerrors.NotFound("account not found")
			}
			return err
		}
		if account.Role != entities.UserRoleCaregiver {
			return domainerrors.BadRequest("account is not a caregiver")
		}

		caregiver, err := u.caregiverRepo.GetByUserID(ctx, accountID)
		if err != nil {
			if err == domainerrors.ErrNotFound {
				return domainerrors.NotFound("caregiver profile not found")
			}
			return err
		}

		// Both writes commit or roll back together so verified can never
		// disagree with the account status after a successful call.
		if err := u.userRepo.UpdateAccountStatus(ctx, accountID, status); err != nil {
			return err
		}
		return u.caregiverRepo.SetVerified(ctx, caregiver.ID, status == entities.AccountStatusApproved)
	})
	if err != nil {
		return err
	}

	if err := u.mailer.Send(ctx, account.Email, template, map[string]interface{}{
		"accountId": accountID.String(),
		"status":    string(status),
	}); err != nil {
		logger.Warn(ctx, "Failed to send verification notification", zap.Error(err))
	}
	return nil
}

// Reconcile sweeps all caregiver/account pairs and corrects any verified flag
// that disagrees with the account status. Each correction re-reads the
// account inside its own transaction so a decision landing mid-sweep is never
// overwritten from a stale read. Idempotent: with no intervening writes a
// second sweep corrects nothing.
func (u *VerificationUsecase) Reconcile(ctx context.Context) (*entities.ReconciliationReport, error) {
	caregivers, err := u.caregiverRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &entities.ReconciliationReport{RanAt: u.now()}
	for _, caregiver := range caregivers {
		report.CheckedCount++

		account, err := u.userRepo.GetByID(ctx, caregiver.UserID)
		if err != nil {
			if err == domainerrors.ErrNotFound {
				logger.Warn(ctx, "Caregiver without owning account",
					zap.String("caregiver_id", caregiver.ID.String()))
				continue
			}
			return nil, err
		}

		expected := account.AccountStatus == entities.AccountStatusApproved
		if caregiver.Verified == expected {
			continue
		}

		corrected := false
		err = u.uow.Do(ctx, func(ctx context.Context) error {
			// Re-validate against the current account status before
			// writing; the flag may have been fixed since the scan.
			current, err := u.userRepo.GetByID(ctx, caregiver.UserID)
			if err != nil {
				return err
			}
			fresh, err := u.caregiverRepo.GetByIDForUpdate(ctx, caregiver.ID)
			if err != nil {
				return err
			}
			want := current.AccountStatus == entities.AccountStatusApproved
			if fresh.Verified == want {
				return nil
			}
			corrected = true
			report.Mismatches = append(report.Mismatches, entities.VerificationMismatch{
				AccountID:     current.ID,
				CaregiverID:   caregiver.ID,
				AccountStatus: current.AccountStatus,
				Verified:      fresh.Verified,
				Expected:      want,
			})
			return u.caregiverRepo.SetVerified(ctx, caregiver.ID, want)
		})
		if err != nil {
			return nil, err
		}
		if corrected {
			report.CorrectedCount++
			verificationCorrectionsTotal.Inc()
			logger.Error(ctx, "Corrected verification drift",
				zap.String("caregiver_id", caregiver.ID.String()),
				zap.String("account_id", caregiver.UserID.String()),
			)
		}
	}
	return report, nil
}
