package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/interfaces/http/middleware"
	"care-connect.backend/internal/interfaces/http/response"
	"care-connect.backend/pkg/utils"
)

type BookingService interface {
	CreateBooking(ctx context.Context, seekerID uuid.UUID, input *entities.CreateBookingInput) (*entities.Booking, error)
	Transition(ctx context.Context, actorID uuid.UUID, role entities.UserRole, bookingID uuid.UUID, input *entities.TransitionBookingInput) (*entities.Booking, error)
	GetBooking(ctx context.Context, actorID uuid.UUID, role entities.UserRole, bookingID uuid.UUID) (*entities.Booking, error)
	ListBookings(ctx context.Context, actorID uuid.UUID, role entities.UserRole, limit, offset int) ([]*entities.Booking, int, error)
}

// BookingHandler handles booking endpoints
type BookingHandler struct {
	bookingUsecase BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUsecase BookingService) *BookingHandler {
	return &BookingHandler{bookingUsecase: bookingUsecase}
}

// CreateBooking creates a new booking request
// POST /api/v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actorID, role, ok := actor(c)
	if !ok {
		return
	}
	if role != entities.UserRoleSeeker {
		response.Error(c, domainerrors.Forbidden("only seekers may request bookings"))
		return
	}

	var input entities.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(c.Request.Context(), actorID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": booking})
}

// GetBooking gets a booking by ID
// GET /api/v1/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	actorID, role, ok := actor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid booking ID"))
		return
	}

	booking, err := h.bookingUsecase.GetBooking(c.Request.Context(), actorID, role, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": booking})
}

// ListBookings lists bookings for the current actor
// GET /api/v1/bookings
func (h *BookingHandler) ListBookings(c *gin.Context) {
	actorID, role, ok := actor(c)
	if !ok {
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

	bookings, total, err := h.bookingUsecase.ListBookings(c.Request.Context(), actorID, role, params.Limit, params.Offset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bookings":   bookings,
		"pagination": utils.CalculateMeta(int64(total), page, limit),
	})
}

// TransitionBooking changes a booking's status
// PATCH /api/v1/bookings/:id/status
func (h *BookingHandler) TransitionBooking(c *gin.Context) {
	actorID, role, ok := actor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid booking ID"))
		return
	}

	var input entities.TransitionBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	booking, err := h.bookingUsecase.Transition(c.Request.Context(), actorID, role, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": booking})
}

func actor(c *gin.Context) (uuid.UUID, entities.UserRole, bool) {
	actorID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetRole(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return uuid.Nil, "", false
	}
	return actorID, role, true
}
