package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mahdirahman356/electro-evo-server/internal/apperror"
	"github.com/mahdirahman356/electro-evo-server/internal/auth"
	"github.com/mahdirahman356/electro-evo-server/internal/service"
)

// AuthHandler issues and revokes the session cookie.
//
// The actual identity check (password, OAuth, whatever) happens on the
// client side with Firebase; this backend only vouches that "whoever
// holds this cookie claimed to be <email> at login time" and later
// compares that claim against the {email} route parameter.
type AuthHandler struct {
	authService *service.AuthService
	logger      *slog.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// tokenRequest is the body of POST /jwt. The client sends the whole
// Firebase user object; we only care about the email field and ignore
// the rest.
type tokenRequest struct {
	Email string `json:"email"`
}

// successResponse is the body for login and signout acknowledgments.
type successResponse struct {
	Success bool `json:"success"`
}

// HandleIssueToken handles POST /jwt.
//
// It signs a JWT for the supplied email and sets it as an HttpOnly
// cookie. The token itself is never returned in the body, so script
// running in the browser can't read it.
func (h *AuthHandler) HandleIssueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON in request body"))
		return
	}

	token, err := h.authService.IssueToken(req.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	auth.SetSessionCookie(w, token)
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// HandleSignOut handles POST /signout.
//
// Clearing the cookie is all a signout means here — the JWT stays valid
// until it expires, the browser just no longer sends it.
func (h *AuthHandler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	h.logger.Debug("session cookie cleared")
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
