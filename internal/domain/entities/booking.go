package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// BookingStatus represents booking status
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusAccepted  BookingStatus = "accepted"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsTerminal reports whether the status admits no further transitions
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusRejected || s == BookingStatusCompleted || s == BookingStatusCancelled
}

// Booking represents a booking entity. Bookings are never deleted, only moved
// to a terminal status.
type Booking struct {
	ID           uuid.UUID     `json:"id"`
	CaregiverID  uuid.UUID     `json:"caregiverId"`
	SeekerID     uuid.UUID     `json:"seekerId"`
	Start        time.Time     `json:"start"`
	End          time.Time     `json:"end"`
	Service      string        `json:"service"`
	Price        float64       `json:"price"`
	Location     null.String   `json:"location,omitempty"`
	Notes        null.String   `json:"notes,omitempty"`
	CancelReason null.String   `json:"cancelReason,omitempty"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// Overlaps reports whether [start, end) overlaps the booking's half-open interval.
// A booking ending exactly when another starts is not an overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.Start.Before(end) && b.End.After(start)
}

// BookingEvent represents a status change emitted for external delivery
type BookingEvent struct {
	BookingID  uuid.UUID     `json:"bookingId"`
	OldStatus  BookingStatus `json:"oldStatus"`
	NewStatus  BookingStatus `json:"newStatus"`
	OccurredAt time.Time     `json:"occurredAt"`
}

// CreateBookingInput represents input for creating a booking
type CreateBookingInput struct {
	CaregiverID string    `json:"caregiverId" binding:"required"`
	Start       time.Time `json:"start" binding:"required"`
	End         time.Time `json:"end" binding:"required"`
	Service     string    `json:"service" binding:"required"`
	Notes       string    `json:"notes,omitempty"`
	Location    string    `json:"location,omitempty"`
}

// TransitionBookingInput represents input for a status transition
type TransitionBookingInput struct {
	Status BookingStatus `json:"status" binding:"required"`
	Reason string        `json:"reason,omitempty"`
}
