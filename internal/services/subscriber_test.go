package services

import (
	"context"
	"errors"
	"testing"

	"milesahead/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSubscriberRepo implements domain.SubscriberRepository for service tests.
type fakeSubscriberRepo struct {
	emails map[string]bool
	err    error
}

func (f *fakeSubscriberRepo) Create(ctx context.Context, s *domain.Subscriber) error {
	if f.err != nil {
		return f.err
	}
	if f.emails[s.Email] {
		return domain.ErrDuplicateSubscriber
	}
	if f.emails == nil {
		f.emails = map[string]bool{}
	}
	f.emails[s.Email] = true
	s.ID = "sub-new"
	return nil
}

// fakeEmailService records welcome sends.
type fakeEmailService struct {
	sent    []string
	sendErr error
}

func (f *fakeEmailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeEmailData) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, data.Email)
	return nil
}

func TestSubscriberService_Subscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("first subscription sends one welcome email", func(t *testing.T) {
		repo := &fakeSubscriberRepo{}
		emails := &fakeEmailService{}
		svc := NewSubscriberService(repo, emails, testLogger)

		sub, err := svc.Subscribe(ctx, "b@x.com", "Ben")
		require.NoError(t, err)
		assert.Equal(t, "sub-new", sub.ID)
		assert.Equal(t, []string{"b@x.com"}, emails.sent)
	})

	t.Run("duplicate is rejected with no second email", func(t *testing.T) {
		repo := &fakeSubscriberRepo{}
		emails := &fakeEmailService{}
		svc := NewSubscriberService(repo, emails, testLogger)

		_, err := svc.Subscribe(ctx, "b@x.com", "Ben")
		require.NoError(t, err)

		_, err = svc.Subscribe(ctx, "b@x.com", "Ben")
		require.ErrorIs(t, err, domain.ErrDuplicateSubscriber)
		assert.Len(t, emails.sent, 1)
	})

	t.Run("email is normalized", func(t *testing.T) {
		repo := &fakeSubscriberRepo{}
		svc := NewSubscriberService(repo, &fakeEmailService{}, testLogger)

		sub, err := svc.Subscribe(ctx, "  B@X.com ", "Ben")
		require.NoError(t, err)
		assert.Equal(t, "b@x.com", sub.Email)
	})

	t.Run("invalid email", func(t *testing.T) {
		svc := NewSubscriberService(&fakeSubscriberRepo{}, &fakeEmailService{}, testLogger)
		_, err := svc.Subscribe(ctx, "not-an-email", "")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("mailer failure does not fail the subscription", func(t *testing.T) {
		repo := &fakeSubscriberRepo{}
		emails := &fakeEmailService{sendErr: errors.New("ses down")}
		svc := NewSubscriberService(repo, emails, testLogger)

		sub, err := svc.Subscribe(ctx, "b@x.com", "Ben")
		require.NoError(t, err)
		assert.NotNil(t, sub)
	})
}
