package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "milesahead/internal/delivery/http/helpers"
	"milesahead/internal/domain"
)

// SubscribeRequest is the request body for POST /user-subscription.
type SubscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Validate implements Validator.
func (s SubscribeRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(strings.ToLower(s.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

// SubscribeSuccessResponse is the success response envelope for POST /user-subscription (201).
type SubscribeSuccessResponse struct {
	Data  *domain.Subscriber `json:"data"`
	Error *h.APIError        `json:"error"`
}

type SubscriberController struct {
	Logger  *slog.Logger
	Service domain.SubscriberService
}

func NewSubscriberController(logger *slog.Logger, svc domain.SubscriberService) *SubscriberController {
	return &SubscriberController{
		Logger:  logger,
		Service: svc,
	}
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Description Creates a subscriber and sends a one-time welcome email. An email can subscribe at most once; a second attempt is rejected and no email is sent.
// @Tags subscribers
// @Accept json
// @Produce json
// @Param body body SubscribeRequest true "Subscriber data"
// @Success 201 {object} controllers.SubscribeSuccessResponse "data contains the created subscriber"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 422 {object} helpers.APIResponse "error.code: conflict (already subscribed)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /user-subscription [post]
func (c *SubscriberController) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sub, err := c.Service.Subscribe(r.Context(), req.Email, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSubscriber) {
			h.WriteJSONError(w, http.StatusUnprocessableEntity, h.ErrCodeConflict, "already subscribed")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, sub)
}
