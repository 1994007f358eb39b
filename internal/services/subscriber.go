package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"milesahead/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type subscriberService struct {
	subscriberRepo domain.SubscriberRepository
	emailService   domain.EmailService
	logger         *slog.Logger
}

// NewSubscriberService creates a SubscriberService with the given repository
// and email service.
func NewSubscriberService(subscriberRepo domain.SubscriberRepository, emailService domain.EmailService, logger *slog.Logger) domain.SubscriberService {
	return &subscriberService{
		subscriberRepo: subscriberRepo,
		emailService:   emailService,
		logger:         logger,
	}
}

// Subscribe creates the subscriber and sends the one-time welcome email.
// The unique index on email guarantees at most one subscription, and the
// notification is only sent after a successful insert, so a duplicate
// request never triggers a second email.
func (s *subscriberService) Subscribe(ctx context.Context, email, name string) (*domain.Subscriber, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}

	sub := domain.NewSubscriber(email, strings.TrimSpace(name), time.Now())
	if err := s.subscriberRepo.Create(ctx, sub); err != nil {
		if errors.Is(err, domain.ErrDuplicateSubscriber) {
			return nil, domain.ErrDuplicateSubscriber
		}
		return nil, fmt.Errorf("create subscriber: %w", err)
	}

	// Best effort: the subscription is committed either way.
	if err := s.emailService.SendWelcomeMessage(ctx, &domain.WelcomeEmailData{Email: sub.Email, Name: sub.Name}); err != nil {
		s.logger.WarnContext(ctx, "welcome email failed", "email", sub.Email, "err", err)
	}
	return sub, nil
}
