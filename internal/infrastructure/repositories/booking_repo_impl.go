package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/infrastructure/models"
)

// BookingRepository implements booking data operations
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create creates a new booking
func (r *BookingRepository) Create(ctx context.Context, booking *entities.Booking) error {
	m := &models.Booking{
		ID:           booking.ID,
		CaregiverID:  booking.CaregiverID,
		SeekerID:     booking.SeekerID,
		Start:        booking.Start,
		End:          booking.End,
		Service:      booking.Service,
		Price:        booking.Price,
		Location:     booking.Location.Ptr(),
		Notes:        booking.Notes.Ptr(),
		CancelReason: booking.CancelReason.Ptr(),
		Status:       string(booking.Status),
		CreatedAt:    booking.CreatedAt,
		UpdatedAt:    booking.UpdatedAt,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	booking.ID = m.ID
	return nil
}

// GetByID gets a booking by ID
func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	var m models.Booking
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toBookingEntity(&m), nil
}

// GetBySeekerID gets bookings for a seeker with pagination
func (r *BookingRepository) GetBySeekerID(ctx context.Context, seekerID uuid.UUID, limit, offset int) ([]*entities.Booking, int, error) {
	return r.list(ctx, "seeker_id = ?", seekerID, limit, offset)
}

// GetByCaregiverID gets bookings for a caregiver with pagination
func (r *BookingRepository) GetByCaregiverID(ctx context.Context, caregiverID uuid.UUID, limit, offset int) ([]*entities.Booking, int, error) {
	return r.list(ctx, "caregiver_id = ?", caregiverID, limit, offset)
}

func (r *BookingRepository) list(ctx context.Context, cond string, id uuid.UUID, limit, offset int) ([]*entities.Booking, int, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.Booking{}).
		Where(cond, id).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Booking
	if err := db.WithContext(ctx).
		Where(cond, id).
		Order("start DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	var bookings []*entities.Booking
	for i := range ms {
		bookings = append(bookings, toBookingEntity(&ms[i]))
	}
	return bookings, int(total), nil
}

// HasAcceptedOverlap reports whether an accepted booking for the caregiver
// overlaps the half-open interval [start, end).
func (r *BookingRepository) HasAcceptedOverlap(ctx context.Context, caregiverID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (bool, error) {
	db := GetDB(ctx, r.db)

	var count int64
	q := db.WithContext(ctx).Model(&models.Booking{}).
		Where("caregiver_id = ?", caregiverID).
		Where("status = ?", string(entities.BookingStatusAccepted)).
		Where(`start < ? AND "end" > ?`, end, start)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateStatus updates a booking's status, recording an optional reason
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BookingStatus, reason string) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if reason != "" {
		updates["cancel_reason"] = reason
	}

	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toBookingEntity(m *models.Booking) *entities.Booking {
	return &entities.Booking{
		ID:           m.ID,
		CaregiverID:  m.CaregiverID,
		SeekerID:     m.SeekerID,
		Start:        m.Start,
		End:          m.End,
		Service:      m.Service,
		Price:        m.Price,
		Location:     null.StringFromPtr(m.Location),
		Notes:        null.StringFromPtr(m.Notes),
		CancelReason: null.StringFromPtr(m.CancelReason),
		Status:       entities.BookingStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
