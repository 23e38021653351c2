// Package service — authentication business logic.
//
// AuthService sits between the HTTP handlers and the token utilities:
//
//	AuthHandler (HTTP) → AuthService (business rules) → TokenService (JWT)
//
// There is no user table behind this: identity is established by the
// client app's own provider, and this service only converts a claimed
// email into a signed, time-limited session token. Signing in is therefore
// just "tell me who you are" — the trust model the deployed client relies
// on, with ownership enforced later by the guard on private routes.
package service

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mahdirahman356/electro-evo-server/internal/apperror"
	"github.com/mahdirahman356/electro-evo-server/internal/auth"
)

// AuthService issues session tokens for the login endpoint.
type AuthService struct {
	tokens *auth.TokenService
	logger *slog.Logger
}

// NewAuthService creates an AuthService with all required dependencies.
func NewAuthService(tokens *auth.TokenService, logger *slog.Logger) *AuthService {
	return &AuthService{
		tokens: tokens,
		logger: logger,
	}
}

// IssueToken signs a 1-day session token for the given email. The claim
// set the client sends may contain more than the email; everything else is
// ignored — the email is the only identity the guard ever checks.
func (s *AuthService) IssueToken(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", apperror.ValidationFailed("email", "email is required")
	}

	token, err := s.tokens.Generate(email)
	if err != nil {
		s.logger.Error("failed to issue token",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("issuing token: %w", err)
	}

	s.logger.Info("token issued", slog.String("email", email))
	return token, nil
}
