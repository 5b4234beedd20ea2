package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Caregiver struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Lng              float64   `gorm:"type:decimal(10,6);not null;index:idx_caregivers_location"`
	Lat              float64   `gorm:"type:decimal(10,6);not null;index:idx_caregivers_location"`
	Verified         bool      `gorm:"not null;default:false;index"`
	HourlyRate       float64   `gorm:"type:decimal(10,2);not null"`
	Specializations  string    `gorm:"type:jsonb;default:'[]'"`
	Qualifications   string    `gorm:"type:jsonb;default:'[]'"`
	ServicesOffered  string    `gorm:"type:jsonb;default:'[]'"`
	AvailabilityDays string    `gorm:"type:jsonb;default:'[]'"`
	Languages        string    `gorm:"type:jsonb;default:'[]'"`
	Bio              string    `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (Caregiver) TableName() string {
	return "caregivers"
}
