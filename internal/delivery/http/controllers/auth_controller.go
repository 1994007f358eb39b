package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	h "milesahead/internal/delivery/http/helpers"
	"milesahead/internal/delivery/http/middleware"
	"milesahead/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IssueTokenRequest is the request body for POST /jwt.
type IssueTokenRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (i IssueTokenRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(strings.ToLower(i.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

// TokenStatusResponse is the data payload for POST /jwt and POST /clearCookie.
type TokenStatusResponse struct {
	Success bool `json:"success"`
}

// TokenStatusSuccessResponse is the success response envelope for POST /jwt (200).
type TokenStatusSuccessResponse struct {
	Data  TokenStatusResponse `json:"data"`
	Error *h.APIError         `json:"error"`
}

type AuthController struct {
	Logger *slog.Logger
	Issuer domain.TokenIssuer
	// SecureCookies marks issued cookies Secure with SameSite=None for
	// cross-site frontends; when false the cookie is SameSite=Strict.
	SecureCookies bool
}

func NewAuthController(logger *slog.Logger, issuer domain.TokenIssuer, secureCookies bool) *AuthController {
	return &AuthController{
		Logger:        logger,
		Issuer:        issuer,
		SecureCookies: secureCookies,
	}
}

// IssueToken godoc
// @Summary Issue an identity credential
// @Description Issues a signed credential for the given email and sets it as an HTTP-only cookie with a 24-hour lifetime. The credential carries only the email; no account lookup is performed.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body IssueTokenRequest true "Identity email"
// @Success 200 {object} controllers.TokenStatusSuccessResponse "data contains success flag; credential is in the Set-Cookie header"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /jwt [post]
func (c *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req IssueTokenRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	email := strings.TrimSpace(strings.ToLower(req.Email))
	token, err := c.Issuer.Issue(email)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   domain.CredentialTTLHours * 3600,
		HttpOnly: true,
		Secure:   c.SecureCookies,
		SameSite: c.cookieSameSite(),
	})
	h.WriteJSONSuccess(w, http.StatusOK, TokenStatusResponse{Success: true})
}

// ClearToken godoc
// @Summary Clear the identity credential
// @Description Expires the credential cookie. Always succeeds, even when no cookie was set.
// @Tags auth
// @Produce json
// @Success 200 {object} controllers.TokenStatusSuccessResponse "data contains success flag"
// @Router /clearCookie [post]
func (c *AuthController) ClearToken(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.SecureCookies,
		SameSite: c.cookieSameSite(),
	})
	h.WriteJSONSuccess(w, http.StatusOK, TokenStatusResponse{Success: true})
}

func (c *AuthController) cookieSameSite() http.SameSite {
	if c.SecureCookies {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}
