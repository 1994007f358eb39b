package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	h "milesahead/internal/delivery/http/helpers"
	"milesahead/internal/delivery/http/middleware"
	"milesahead/internal/domain"
)

// uuidRegex matches a canonical UUID string (8-4-4-4-12 hex).
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// AddMarathonRequest is the request body for POST /add-marathon. The creator
// email is taken from the authenticated identity, not the body.
type AddMarathonRequest struct {
	Title             string    `json:"title"`
	RegistrationStart time.Time `json:"registration_start"`
	RegistrationEnd   time.Time `json:"registration_end"`
	MarathonStart     time.Time `json:"marathon_start"`
	Location          string    `json:"location"`
	Distance          string    `json:"distance"`
	Description       string    `json:"description"`
	ImageURL          string    `json:"image_url"`
}

// Validate implements Validator.
func (a AddMarathonRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(a.Title) == "" {
		errs = append(errs, "title is required")
	}
	if !a.RegistrationStart.IsZero() && !a.RegistrationEnd.IsZero() && a.RegistrationEnd.Before(a.RegistrationStart) {
		errs = append(errs, "registration_end must not be before registration_start")
	}
	return errs
}

// MarathonSuccessResponse is the success response envelope for handlers
// returning a single marathon.
type MarathonSuccessResponse struct {
	Data  *domain.Marathon `json:"data"`
	Error *h.APIError      `json:"error"`
}

// MarathonListSuccessResponse is the success response envelope for handlers
// returning a list of marathons.
type MarathonListSuccessResponse struct {
	Data  []*domain.Marathon `json:"data"`
	Error *h.APIError        `json:"error"`
}

type MarathonController struct {
	Logger  *slog.Logger
	Service domain.MarathonService
}

func NewMarathonController(logger *slog.Logger, svc domain.MarathonService) *MarathonController {
	return &MarathonController{
		Logger:  logger,
		Service: svc,
	}
}

// Add godoc
// @Summary Create a marathon listing
// @Description Creates a marathon listing with a zero registration count. The authenticated identity becomes the creator. Requires the credential cookie.
// @Tags marathons
// @Accept json
// @Produce json
// @Param body body AddMarathonRequest true "Marathon data"
// @Success 201 {object} controllers.MarathonSuccessResponse "data contains the created marathon"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /add-marathon [post]
func (c *MarathonController) Add(w http.ResponseWriter, r *http.Request) {
	var req AddMarathonRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	creatorEmail, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	now := time.Now()
	marathon := domain.NewMarathon(req.Title, req.RegistrationStart, req.RegistrationEnd, req.MarathonStart,
		req.Location, req.Distance, req.Description, req.ImageURL, creatorEmail, now)
	created, err := c.Service.Create(r.Context(), marathon)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, created)
}

// UpdateMarathonRequest is the request body for PATCH /update-marathon/{id}.
// All fields optional; omitted fields are unchanged.
type UpdateMarathonRequest struct {
	Title             *string    `json:"title"`
	RegistrationStart *time.Time `json:"registration_start"`
	RegistrationEnd   *time.Time `json:"registration_end"`
	MarathonStart     *time.Time `json:"marathon_start"`
	Location          *string    `json:"location"`
	Distance          *string    `json:"distance"`
	Description       *string    `json:"description"`
	ImageURL          *string    `json:"image_url"`
}

// Validate implements Validator.
func (u UpdateMarathonRequest) Validate() []string {
	var errs []string
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		errs = append(errs, "title cannot be empty")
	}
	return errs
}

// Update godoc
// @Summary Update a marathon listing
// @Description Applies a partial update. Only the creator can update. A nonexistent id is a no-op: the response is 200 with null data. Requires the credential cookie.
// @Tags marathons
// @Accept json
// @Produce json
// @Param id path string true "Marathon ID (UUID)"
// @Param body body UpdateMarathonRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.MarathonSuccessResponse "data contains the updated marathon, or null when the id does not exist"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not creator)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /update-marathon/{id} [patch]
func (c *MarathonController) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !uuidRegex.MatchString(id) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid id")
		return
	}
	var req UpdateMarathonRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	callerEmail, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	upd := domain.MarathonUpdate{
		Title:             req.Title,
		RegistrationStart: req.RegistrationStart,
		RegistrationEnd:   req.RegistrationEnd,
		MarathonStart:     req.MarathonStart,
		Location:          req.Location,
		Distance:          req.Distance,
		Description:       req.Description,
		ImageURL:          req.ImageURL,
	}
	marathon, found, err := c.Service.Update(r.Context(), id, callerEmail, upd)
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
	h.WriteJSONSuccess(w, http.StatusOK, marathon)
}

// DeleteMarathonResponse is the data payload for DELETE /delete/my-marathon/{id} (200).
// Deleted is false when the id did not exist.
type DeleteMarathonResponse struct {
	Deleted bool `json:"deleted"`
}

// DeleteMarathonSuccessResponse is the success response envelope for DELETE /delete/my-marathon/{id} (200).
type DeleteMarathonSuccessResponse struct {
	Data  DeleteMarathonResponse `json:"data"`
	Error *h.APIError            `json:"error"`
}

// Delete godoc
// @Summary Delete a marathon listing
// @Description Deletes a marathon. Only the creator can delete. A nonexistent id is a no-op: the response is 200 with deleted false. Requires the credential cookie.
// @Tags marathons
// @Produce json
// @Param id path string true "Marathon ID (UUID)"
// @Success 200 {object} controllers.DeleteMarathonSuccessResponse "data reports whether a row was deleted"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not creator)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /delete/my-marathon/{id} [delete]
func (c *MarathonController) Delete(w http.ResponseWriter, r *http.Request) {
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
	deleted, err := c.Service.Delete(r.Context(), id, callerEmail)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "forbidden")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DeleteMarathonResponse{Deleted: deleted})
}

// List godoc
// @Summary List marathon listings
// @Description Without allMarathons, returns the first six marathons for the landing page. With allMarathons, returns a page selected by the 0-based page and size params, sorted newest-first by creation date (createDate) or registration start (registerDate); createDate wins when both are present.
// @Tags marathons
// @Produce json
// @Param allMarathons query string false "Any non-empty value selects the paginated mode"
// @Param createDate query string false "Sort newest listings first"
// @Param registerDate query string false "Sort latest registration windows first"
// @Param page query int false "Page number, 0-based (default 0)"
// @Param size query int false "Page size (default 10, max 100)"
// @Success 200 {object} controllers.MarathonListSuccessResponse "data is an array of marathons"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /marathons [get]
func (c *MarathonController) List(w http.ResponseWriter, r *http.Request) {
	params := h.ParseMarathonListQuery(r)
	marathons, err := c.Service.List(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if marathons == nil {
		marathons = []*domain.Marathon{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, marathons)
}

// PaginationCountResponse is the data payload for GET /pagination (200).
type PaginationCountResponse struct {
	Count int64 `json:"count"`
}

// PaginationCountSuccessResponse is the success response envelope for GET /pagination (200).
type PaginationCountSuccessResponse struct {
	Data  PaginationCountResponse `json:"data"`
	Error *h.APIError             `json:"error"`
}

// PaginationCount godoc
// @Summary Approximate marathon count
// @Description Returns an approximate total count of marathon listings for UI page arithmetic. The value may lag behind recent writes.
// @Tags marathons
// @Produce json
// @Success 200 {object} controllers.PaginationCountSuccessResponse "data contains the approximate count"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /pagination [get]
func (c *MarathonController) PaginationCount(w http.ResponseWriter, r *http.Request) {
	count, err := c.Service.EstimatedCount(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, PaginationCountResponse{Count: count})
}

// Upcoming godoc
// @Summary List upcoming marathons
// @Description Returns up to six marathons whose start date is in the future, soonest first.
// @Tags marathons
// @Produce json
// @Success 200 {object} controllers.MarathonListSuccessResponse "data is an array of marathons"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /upcoming-event [get]
func (c *MarathonController) Upcoming(w http.ResponseWriter, r *http.Request) {
	marathons, err := c.Service.ListUpcoming(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if marathons == nil {
		marathons = []*domain.Marathon{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, marathons)
}

// Details godoc
// @Summary Get a marathon by ID
// @Description Returns a single marathon listing. Requires the credential cookie.
// @Tags marathons
// @Produce json
// @Param id path string true "Marathon ID (UUID)"
// @Success 200 {object} controllers.MarathonSuccessResponse "data contains the marathon"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /marathons/details/{id} [get]
func (c *MarathonController) Details(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !uuidRegex.MatchString(id) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid id")
		return
	}
	marathon, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "marathon not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, marathon)
}

// MyMarathons godoc
// @Summary List marathons created by an email
// @Description Returns the marathons created by the given email. The path email must match the authenticated identity. Requires the credential cookie.
// @Tags marathons
// @Produce json
// @Param email path string true "Creator email"
// @Success 200 {object} controllers.MarathonListSuccessResponse "data is an array of marathons"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (identity mismatch)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /my-marathons/{email} [get]
func (c *MarathonController) MyMarathons(w http.ResponseWriter, r *http.Request) {
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
	marathons, err := c.Service.ListByCreator(r.Context(), email)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if marathons == nil {
		marathons = []*domain.Marathon{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, marathons)
}
