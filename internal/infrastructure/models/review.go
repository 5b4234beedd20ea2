package models

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	BookingID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CaregiverID uuid.UUID `gorm:"type:uuid;not null;index"`
	SeekerID    uuid.UUID `gorm:"type:uuid;not null"`
	Rating      int       `gorm:"not null"`
	Comment     *string   `gorm:"type:text"`
	CreatedAt   time.Time
}
