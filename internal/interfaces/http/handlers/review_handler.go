package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/interfaces/http/response"
	"care-connect.backend/pkg/utils"
)

type ReviewService interface {
	CreateReview(ctx context.Context, seekerID uuid.UUID, bookingID uuid.UUID, input *entities.CreateReviewInput) (*entities.Review, error)
	GetCaregiverReviews(ctx context.Context, caregiverID uuid.UUID, limit, offset int) ([]*entities.Review, int, error)
}

// ReviewHandler handles review endpoints
type ReviewHandler struct {
	reviewUsecase ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewUsecase ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewUsecase: reviewUsecase}
}

// CreateReview files a review for a completed booking
// POST /api/v1/bookings/:id/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	actorID, role, ok := actor(c)
	if !ok {
		return
	}
	if role != entities.UserRoleSeeker {
		response.Error(c, domainerrors.Forbidden("only seekers may file reviews"))
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid booking ID"))
		return
	}

	var input entities.CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	review, err := h.reviewUsecase.CreateReview(c.Request.Context(), actorID, bookingID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": review})
}

// ListCaregiverReviews lists reviews for a caregiver
// GET /api/v1/caregivers/:id/reviews
func (h *ReviewHandler) ListCaregiverReviews(c *gin.Context) {
	caregiverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid caregiver ID"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	params := utils.GetPaginationParams(page, limit)

	reviews, total, err := h.reviewUsecase.GetCaregiverReviews(c.Request.Context(), caregiverID, params.Limit, params.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"reviews":    reviews,
		"pagination": utils.CalculateMeta(int64(total), page, limit),
	})
}
