package repositories

import (
	"context"

	"care-connect.backend/internal/domain/entities"
)

// BookingEventPublisher delivers booking status changes to the outbound
// notification channel. Delivery is fire-and-forget; failures never roll back
// the state change that produced the event.
type BookingEventPublisher interface {
	PublishStatusChange(ctx context.Context, event *entities.BookingEvent) error
}

// Mailer sends templated email-style notifications
type Mailer interface {
	Send(ctx context.Context, recipient, template string, data map[string]interface{}) error
}
