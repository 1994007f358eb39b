package domain

import (
	"context"
	"time"
)

// Subscriber represents a newsletter subscriber. Email is unique across all
// subscribers; the subscribers table enforces this with a unique index.
// swagger:model Subscriber
type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSubscriber returns a new Subscriber. ID is set by the repository on create.
func NewSubscriber(email, name string, createdAt time.Time) *Subscriber {
	return &Subscriber{
		Email:     email,
		Name:      name,
		CreatedAt: createdAt,
	}
}

// SubscriberRepository defines storage operations for subscribers.
type SubscriberRepository interface {
	// Create inserts the subscriber. A unique-constraint violation on email
	// is returned as ErrDuplicateSubscriber.
	Create(ctx context.Context, s *Subscriber) error
}

// SubscriberService defines the subscription flow: create once, send one
// welcome notification.
type SubscriberService interface {
	// Subscribe creates the subscriber and sends the welcome email. Fails
	// with ErrDuplicateSubscriber when the email is already subscribed, in
	// which case no notification is sent.
	Subscribe(ctx context.Context, email, name string) (*Subscriber, error)
}
