package domain

import "context"

// PaymentIntentRequest holds the inputs for creating a payment intent.
type PaymentIntentRequest struct {
	// Amount is in the major currency unit (e.g. dollars). Gateways convert
	// to the smallest unit themselves.
	Amount      float64
	Currency    string
	Description string
	Metadata    map[string]string
}

// PaymentIntentResponse is the gateway's answer to a created intent. The
// client secret is handed to the frontend to complete the payment.
type PaymentIntentResponse struct {
	PaymentIntentID string  `json:"payment_intent_id"`
	ClientSecret    string  `json:"client_secret"`
	Status          string  `json:"status"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
}

// PaymentGateway defines the contract for the payment provider
// (infrastructure port).
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, req *PaymentIntentRequest) (*PaymentIntentResponse, error)
	Name() string
}

// PaymentService defines the business logic for payment intents.
type PaymentService interface {
	// CreateIntent validates the amount and creates a payment intent with
	// the configured gateway.
	CreateIntent(ctx context.Context, amount float64, currency string, metadata map[string]string) (*PaymentIntentResponse, error)
}
