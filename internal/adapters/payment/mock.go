package payment

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"milesahead/internal/domain"
)

// MockGateway implements domain.PaymentGateway without calling a provider.
// Used in development when no Stripe key is configured.
type MockGateway struct{}

// NewMockGateway returns a gateway that fabricates payment intents.
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

// CreatePaymentIntent fabricates an intent with a random id and client secret.
func (g *MockGateway) CreatePaymentIntent(_ context.Context, req *domain.PaymentIntentRequest) (*domain.PaymentIntentResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("payment intent request is required")
	}
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate mock intent id: %w", err)
	}
	id := "pi_mock_" + hex.EncodeToString(buf)
	return &domain.PaymentIntentResponse{
		PaymentIntentID: id,
		ClientSecret:    id + "_secret",
		Status:          "requires_payment_method",
		Amount:          req.Amount,
		Currency:        req.Currency,
	}, nil
}

// Name returns the gateway name.
func (g *MockGateway) Name() string {
	return "mock"
}
