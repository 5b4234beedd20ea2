package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/interfaces/http/response"
)

type VerificationService interface {
	Approve(ctx context.Context, accountID uuid.UUID) error
	Reject(ctx context.Context, accountID uuid.UUID) error
	Reconcile(ctx context.Context) (*entities.ReconciliationReport, error)
}

// AdminHandler handles the verification boundary (admin only)
type AdminHandler struct {
	verificationUsecase VerificationService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(verificationUsecase VerificationService) *AdminHandler {
	return &AdminHandler{verificationUsecase: verificationUsecase}
}

// ApproveCaregiver approves a caregiver account
// POST /api/v1/admin/caregivers/:accountId/approve
func (h *AdminHandler) ApproveCaregiver(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid account ID"))
		return
	}

	if err := h.verificationUsecase.Approve(c.Request.Context(), accountID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": string(entities.AccountStatusApproved)})
}

// RejectCaregiver rejects a caregiver account
// POST /api/v1/admin/caregivers/:accountId/reject
func (h *AdminHandler) RejectCaregiver(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid account ID"))
		return
	}

	if err := h.verificationUsecase.Reject(c.Request.Context(), accountID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": string(entities.AccountStatusRejected)})
}

// Reconcile runs a verification reconciliation sweep on demand
// POST /api/v1/admin/reconcile
func (h *AdminHandler) Reconcile(c *gin.Context) {
	report, err := h.verificationUsecase.Reconcile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"report": report})
}
