package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "milesahead/internal/delivery/http/helpers"
	"milesahead/internal/delivery/http/middleware"
	"milesahead/internal/domain"
)

// ApplyRequest is the request body for POST /apply-marathons. The applicant
// email is taken from the authenticated identity, not the body.
type ApplyRequest struct {
	MarathonID    string `json:"marathon_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	ContactNumber string `json:"contact_number"`
}

// Validate implements Validator.
func (a ApplyRequest) Validate() []string {
	var errs []string
	if a.MarathonID == "" {
		errs = append(errs, "marathon_id is required")
	} else if !uuidRegex.MatchString(a.MarathonID) {
		errs = append(errs, "marathon_id must be a UUID")
	}
	if strings.TrimSpace(a.FirstName) == "" {
		errs = append(errs, "first_name is required")
	}
	if strings.TrimSpace(a.LastName) == "" {
		errs = append(errs, "last_name is required")
	}
	return errs
}

// RegistrationSuccessResponse is the success response envelope for handlers
// returning a single registration.
type RegistrationSuccessResponse struct {
	Data  *domain.Registration `json:"data"`
	Error *h.APIError          `json:"error"`
}

// RegistrationListSuccessResponse is the success response envelope for handlers
// returning a list of registrations.
type RegistrationListSuccessResponse struct {
	Data  []*domain.Registration `json:"data"`
	Error *h.APIError            `json:"error"`
}

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// Apply godoc
// @Summary Register for a marathon
// @Description Registers the authenticated identity for a marathon and increments the marathon's registration count. An applicant can register for a marathon at most once; a second attempt is rejected without touching the count. Requires the credential cookie.
// @Tags registrations
// @Accept json
// @Produce json
// @Param body body ApplyRequest true "Registration data"
// @Success 201 {object} controllers.RegistrationSuccessResponse "data contains the created registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (no such marathon)"
// @Failure 422 {object} helpers.APIResponse "error.code: conflict (already registered)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /apply-marathons [post]
func (c *RegistrationController) Apply(w http.ResponseWriter, r *http.Request) {
	var req ApplyRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	applicantEmail, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	reg, err := c.Service.Apply(r.Context(), domain.ApplyInput{
		MarathonID:     req.MarathonID,
		ApplicantEmail: applicantEmail,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		ContactNumber:  req.ContactNumber,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "marathon not found")
			return
		}
		if errors.Is(err, domain.ErrDuplicateRegistration) {
			h.WriteJSONError(w, http.StatusUnprocessableEntity, h.ErrCodeConflict, "already registered for this marathon")
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
	h.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// UpdateApplyRequest is the request body for PATCH /update-apply/marathon/{id}.
// All fields optional; omitted fields are unchanged.
type UpdateApplyRequest struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	ContactNumber *string `json:"contact_number"`
}

// Validate implements Validator.
func (u UpdateApplyRequest) Validate() []string {
	var errs []string
	if u.FirstName != nil && strings.TrimSpace(*u.FirstName) == "" {
		errs = append(errs, "first_name cannot be empty")
	}
	if u.LastName != nil && strings.TrimSpace(*u.LastName) == "" {
		errs = append(errs, "last_name cannot be empty")
	}
	return errs
}

// UpdateContact godoc
// @Summary Update registration contact details
// @Description Corrects the contact fields of a registration. Only the applicant can update. A nonexistent id is a no-op: the response is 200 with null data. Requires the credential cookie.
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Registration ID (UUID)"
// @Param body body UpdateApplyRequest true "Contact fields to update (all optional)"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data contains the updated registration, or null when the id does not exist"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not applicant)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /update-apply/marathon/{id} [patch]
func (c *RegistrationController) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !uuidRegex.MatchString(id) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid id")
		return
	}
	var req UpdateApplyRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	callerEmail, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	upd := domain.RegistrationContactUpdate{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		ContactNumber: req.ContactNumber,
	}
	reg, found, err := c.Service.UpdateContact(r.Context(), id, callerEmail, upd)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "forbidden")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if !found {
		h.WriteJSONSuccess(w, http.StatusOK, nil)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, reg)
}

// WithdrawResponse is the data payload for DELETE /delete/my-registration/{id} (200).
// Deleted is false when the id did not exist.
type WithdrawResponse struct {
	Deleted bool `json:"deleted"`
}

// WithdrawSuccessResponse is the success response envelope for DELETE /delete/my-registration/{id} (200).
type WithdrawSuccessResponse struct {
	Data  WithdrawResponse `json:"data"`
	Error *h.APIError      `json:"error"`
}

// Withdraw godoc
// @Summary Withdraw a registration
// @Description Deletes a registration. Only the applicant can withdraw. A nonexistent id is a no-op: the response is 200 with deleted false. Requires the credential cookie.
// @Tags registrations
// @Produce json
// @Param id path string true "Registration ID (UUID)"
// @Success 200 {object} controllers.WithdrawSuccessResponse "data reports whether a row was deleted"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not applicant)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /delete/my-registration/{id} [delete]
func (c *RegistrationController) Withdraw(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !uuidRegex.MatchString(id) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid id")
		return
	}
	callerEmail, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	deleted, err := c.Service.Withdraw(r.Context(), id, callerEmail)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "forbidden")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, WithdrawResponse{Deleted: deleted})
}

// MyApplied godoc
// @Summary List registrations by applicant
// @Description Returns the registrations made by the given email, optionally filtered by a case-insensitive marathon title search. The path email must match the authenticated identity. Requires the credential cookie.
// @Tags registrations
// @Produce json
// @Param email path string true "Applicant email"
// @Param search query string false "Filter by marathon title substring (case-insensitive)"
// @Success 200 {object} controllers.RegistrationListSuccessResponse "data is an array of registrations"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (identity mismatch)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /my-applied/marathons/{email} [get]
func (c *RegistrationController) MyApplied(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(strings.ToLower(r.PathValue("email")))
	if email == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing email")
		return
	}
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if !strings.EqualFold(identity, email) {
		h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "forbidden")
		return
	}
	search := strings.TrimSpace(r.URL.Query().Get("search"))
	regs, err := c.Service.ListByApplicant(r.Context(), email, search)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if regs == nil {
		regs = []*domain.Registration{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, regs)
}
