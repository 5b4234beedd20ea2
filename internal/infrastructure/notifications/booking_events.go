package notifications

import (
	"context"
	"encoding/json"

	"care-connect.backend/internal/domain/entities"
	"care-connect.backend/pkg/redis"
)

// BookingEventChannel is the Redis channel booking status changes are
// published on.
const BookingEventChannel = "care-connect:booking-events"

// RedisBookingEventPublisher publishes booking status changes to a Redis
// channel for downstream consumers (push, SMS, analytics). Delivery is
// fire-and-forget.
type RedisBookingEventPublisher struct {
	channel string
}

// NewRedisBookingEventPublisher creates a new publisher
func NewRedisBookingEventPublisher() *RedisBookingEventPublisher {
	return &RedisBookingEventPublisher{channel: BookingEventChannel}
}

// PublishStatusChange publishes a booking status change event
func (p *RedisBookingEventPublisher) PublishStatusChange(ctx context.Context, event *entities.BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return redis.Publish(ctx, p.channel, payload)
}
