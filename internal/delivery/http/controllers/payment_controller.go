package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "milesahead/internal/delivery/http/helpers"
	"milesahead/internal/domain"
)

// CreatePaymentIntentRequest is the request body for POST /create-paymentIntent.
// Amount is in the major currency unit (e.g. dollars).
type CreatePaymentIntentRequest struct {
	Amount   float64           `json:"amount"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata"`
}

// Validate implements Validator.
func (p CreatePaymentIntentRequest) Validate() []string {
	var errs []string
	if p.Amount <= 0 {
		errs = append(errs, "amount must be positive")
	}
	return errs
}

// CreatePaymentIntentSuccessResponse is the success response envelope for POST /create-paymentIntent (200).
type CreatePaymentIntentSuccessResponse struct {
	Data  *domain.PaymentIntentResponse `json:"data"`
	Error *h.APIError                   `json:"error"`
}

type PaymentController struct {
	Logger  *slog.Logger
	Service domain.PaymentService
}

func NewPaymentController(logger *slog.Logger, svc domain.PaymentService) *PaymentController {
	return &PaymentController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateIntent godoc
// @Summary Create a payment intent
// @Description Creates a payment intent with the configured payment provider for the registration fee. Currency defaults to usd. The returned client secret is used by the frontend to complete the payment.
// @Tags payments
// @Accept json
// @Produce json
// @Param body body CreatePaymentIntentRequest true "Amount in the major currency unit"
// @Success 200 {object} controllers.CreatePaymentIntentSuccessResponse "data contains the intent id, client secret, and status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /create-paymentIntent [post]
func (c *PaymentController) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentIntentRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	intent, err := c.Service.CreateIntent(r.Context(), req.Amount, req.Currency, req.Metadata)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, intent)
}
