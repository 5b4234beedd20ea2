package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/infrastructure/models"
)

// ReviewRepository implements review data operations
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create creates a new review. The unique index on booking_id enforces the
// one-review-per-booking rule at the store level.
func (r *ReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	m := &models.Review{
		ID:          review.ID,
		BookingID:   review.BookingID,
		CaregiverID: review.CaregiverID,
		SeekerID:    review.SeekerID,
		Rating:      review.Rating,
		Comment:     review.Comment.Ptr(),
		CreatedAt:   review.CreatedAt,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	review.ID = m.ID
	return nil
}

// GetByBookingID gets the review for a booking
func (r *ReviewRepository) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*entities.Review, error) {
	var m models.Review
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toReviewEntity(&m), nil
}

// GetByCaregiverID gets reviews for a caregiver with pagination
func (r *ReviewRepository) GetByCaregiverID(ctx context.Context, caregiverID uuid.UUID, limit, offset int) ([]*entities.Review, int, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.Review{}).
		Where("caregiver_id = ?", caregiverID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Review
	if err := db.WithContext(ctx).
		Where("caregiver_id = ?", caregiverID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	var reviews []*entities.Review
	for i := range ms {
		reviews = append(reviews, toReviewEntity(&ms[i]))
	}
	return reviews, int(total), nil
}

func toReviewEntity(m *models.Review) *entities.Review {
	return &entities.Review{
		ID:          m.ID,
		BookingID:   m.BookingID,
		CaregiverID: m.CaregiverID,
		SeekerID:    m.SeekerID,
		Rating:      m.Rating,
		Comment:     null.StringFromPtr(m.Comment),
		CreatedAt:   m.CreatedAt,
	}
}
