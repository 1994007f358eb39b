package services

import (
	"context"
	"testing"

	"milesahead/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePaymentGateway implements domain.PaymentGateway for service tests.
type fakePaymentGateway struct {
	lastReq *domain.PaymentIntentRequest
	err     error
}

func (f *fakePaymentGateway) CreatePaymentIntent(ctx context.Context, req *domain.PaymentIntentRequest) (*domain.PaymentIntentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastReq = req
	return &domain.PaymentIntentResponse{
		PaymentIntentID: "pi_test_1",
		ClientSecret:    "pi_test_1_secret",
		Status:          "requires_payment_method",
		Amount:          req.Amount,
		Currency:        req.Currency,
	}, nil
}

func (f *fakePaymentGateway) Name() string { return "fake" }

func TestPaymentService_CreateIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		gw := &fakePaymentGateway{}
		svc := NewPaymentService(gw)

		resp, err := svc.CreateIntent(ctx, 49.99, "EUR", map[string]string{"marathon_id": "mar-1"})
		require.NoError(t, err)
		assert.Equal(t, "pi_test_1", resp.PaymentIntentID)
		assert.NotEmpty(t, resp.ClientSecret)
		assert.Equal(t, "eur", gw.lastReq.Currency)
		assert.Equal(t, 49.99, gw.lastReq.Amount)
	})

	t.Run("currency defaults to usd", func(t *testing.T) {
		gw := &fakePaymentGateway{}
		svc := NewPaymentService(gw)

		_, err := svc.CreateIntent(ctx, 10, "", nil)
		require.NoError(t, err)
		assert.Equal(t, "usd", gw.lastReq.Currency)
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		svc := NewPaymentService(&fakePaymentGateway{})
		_, err := svc.CreateIntent(ctx, 0, "usd", nil)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
