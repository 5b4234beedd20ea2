package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role of an account
type UserRole string

const (
	UserRoleSeeker    UserRole = "seeker"
	UserRoleCaregiver UserRole = "caregiver"
	UserRoleAdmin     UserRole = "admin"
)

// AccountStatus represents the verification decision on an account.
// Source of truth for CaregiverProfile.Verified.
type AccountStatus string

const (
	AccountStatusPending  AccountStatus = "pending"
	AccountStatusApproved AccountStatus = "approved"
	AccountStatusRejected AccountStatus = "rejected"
)

// User represents an account entity
type User struct {
	ID            uuid.UUID     `json:"id"`
	Email         string        `json:"email"`
	Name          string        `json:"name"`
	Role          UserRole      `json:"role"`
	AccountStatus AccountStatus `json:"accountStatus"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	DeletedAt     *time.Time    `json:"-"`
}
