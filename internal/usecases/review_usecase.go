package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/domain/repositories"
)

// ReviewUsecase handles review creation and listing
type ReviewUsecase struct {
	reviewRepo     repositories.ReviewRepository
	bookingRepo    repositories.BookingRepository
	bookingUsecase *BookingUsecase
	now            func() time.Time
}

// NewReviewUsecase creates a new review usecase
func NewReviewUsecase(
	reviewRepo repositories.ReviewRepository,
	bookingRepo repositories.BookingRepository,
	bookingUsecase *BookingUsecase,
) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo:     reviewRepo,
		bookingRepo:    bookingRepo,
		bookingUsecase: bookingUsecase,
		now:            time.Now,
	}
}

// CreateReview files a review for a booking. If the booking is accepted and
// past its end time it is auto-completed first; at most one review may exist
// per booking.
func (u *ReviewUsecase) CreateReview(ctx context.Context, seekerID uuid.UUID, bookingID uuid.UUID, input *entities.CreateReviewInput) (*entities.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.BadRequest("rating must be between 1 and 5")
	}

	booking, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("booking not found")
		}
		return nil, err
	}
	if booking.SeekerID != seekerID {
		return nil, domainerrors.Forbidden("booking belongs to another seeker")
	}

	if booking.Status != entities.BookingStatusCompleted {
		booking, err = u.bookingUsecase.AutoComplete(ctx, bookingID)
		if err != nil {
			return nil, err
		}
	}

	if _, err := u.reviewRepo.GetByBookingID(ctx, bookingID); err == nil {
		return nil, domainerrors.Conflict("booking already has a review")
	} else if err != domainerrors.ErrNotFound {
		return nil, err
	}

	review := &entities.Review{
		ID:          uuid.New(),
		BookingID:   booking.ID,
		CaregiverID: booking.CaregiverID,
		SeekerID:    seekerID,
		Rating:      input.Rating,
		CreatedAt:   u.now(),
	}
	if input.Comment != "" {
		review.Comment.SetValid(input.Comment)
	}

	if err := u.reviewRepo.Create(ctx, review); err != nil {
		if err == domainerrors.ErrAlreadyExists {
			return nil, domainerrors.Conflict("booking already has a review")
		}
		return nil, err
	}
	return review, nil
}

// GetCaregiverReviews lists reviews for a caregiver
func (u *ReviewUsecase) GetCaregiverReviews(ctx context.Context, caregiverID uuid.UUID, limit, offset int) ([]*entities.Review, int, error) {
	return u.reviewRepo.GetByCaregiverID(ctx, caregiverID, limit, offset)
}
