package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CaregiverID  uuid.UUID `gorm:"type:uuid;not null;index:idx_bookings_caregiver_status_start,priority:1"`
	SeekerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Start        time.Time `gorm:"not null;index:idx_bookings_caregiver_status_start,priority:3"`
	End          time.Time `gorm:"not null"`
	Service      string    `gorm:"type:varchar(100);not null"`
	Price        float64   `gorm:"type:decimal(10,2);not null"`
	Location     *string   `gorm:"type:text"`
	Notes        *string   `gorm:"type:text"`
	CancelReason *string   `gorm:"type:text"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending';index:idx_bookings_caregiver_status_start,priority:2"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
