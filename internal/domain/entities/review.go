package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Review represents a review entity. At most one review exists per booking.
type Review struct {
	ID          uuid.UUID   `json:"id"`
	BookingID   uuid.UUID   `json:"bookingId"`
	CaregiverID uuid.UUID   `json:"caregiverId"`
	SeekerID    uuid.UUID   `json:"seekerId"`
	Rating      int         `json:"rating"`
	Comment     null.String `json:"comment,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// CreateReviewInput represents input for creating a review
type CreateReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}
