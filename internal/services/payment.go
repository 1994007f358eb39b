package services

import (
	"context"
	"fmt"
	"strings"

	"milesahead/internal/domain"
)

const defaultCurrency = "usd"

type paymentService struct {
	gateway domain.PaymentGateway
}

// NewPaymentService creates a PaymentService backed by the given gateway.
func NewPaymentService(gateway domain.PaymentGateway) domain.PaymentService {
	return &paymentService{gateway: gateway}
}

func (s *paymentService) CreateIntent(ctx context.Context, amount float64, currency string, metadata map[string]string) (*domain.PaymentIntentResponse, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = defaultCurrency
	}

	resp, err := s.gateway.CreatePaymentIntent(ctx, &domain.PaymentIntentRequest{
		Amount:      amount,
		Currency:    currency,
		Description: "MilesAhead marathon registration fee",
		Metadata:    metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("create payment intent (%s): %w", s.gateway.Name(), err)
	}
	return resp, nil
}
