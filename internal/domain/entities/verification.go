package entities

import (
	"time"

	"github.com/google/uuid"
)

// VerificationMismatch records one caregiver whose verified flag disagreed with
// the account status at sweep time.
type VerificationMismatch struct {
	AccountID     uuid.UUID     `json:"accountId"`
	CaregiverID   uuid.UUID     `json:"caregiverId"`
	AccountStatus AccountStatus `json:"accountStatus"`
	Verified      bool          `json:"verified"`
	Expected      bool          `json:"expected"`
}

// ReconciliationReport summarizes one reconciliation sweep
type ReconciliationReport struct {
	CheckedCount   int                    `json:"checkedCount"`
	CorrectedCount int                    `json:"correctedCount"`
	Mismatches     []VerificationMismatch `json:"mismatches"`
	RanAt          time.Time              `json:"ranAt"`
}
