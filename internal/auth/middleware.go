package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// contextKey is an unexported type used for context keys in this package.
//
// context.WithValue uses any as the key type. If you use a plain string,
// any package that knows the string can read or shadow your value. A
// package-private type prevents collisions: only this package can create a
// key of type contextKey, so only this package can write email values into
// the context.
type contextKey string

const emailKey contextKey = "email"

// RequireOwner is the authorization guard applied to routes that expose a
// user's private listings (their own queries, their sent/received
// recommendations). It is NOT applied to public listing or single-item
// routes — those are intentionally open.
//
// THE GUARD, IN ORDER:
//  1. Read the JWT from the "token" HttpOnly cookie.
//     Missing cookie → 401 Unauthorized.
//  2. Validate signature, expiry and issuer.
//     Invalid/expired → 401 Unauthorized.
//  3. Compare the token's email against the {email} URL parameter.
//     Mismatch → 403 Forbidden (authenticated, but not the resource owner).
//  4. Store the verified email in the request context and continue.
//
// MIDDLEWARE PATTERN IN GO:
// A middleware takes an http.Handler and returns a new http.Handler that
// wraps it. Chi applies middlewares in a chain:
// req → M1 → M2 → Handler → M2 → M1 → resp.
func RequireOwner(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, err := extractEmail(r, tokens)
			if err != nil {
				// The message spelling is part of the deployed client
				// contract; don't correct it.
				writeGuardError(w, http.StatusUnauthorized, "unauthorise access")
				return
			}

			// The {email} parameter names the resource owner the caller is
			// asking about. A valid token for somebody else is not enough.
			if owner := chi.URLParam(r, "email"); owner != email {
				writeGuardError(w, http.StatusForbidden, "forbidden access")
				return
			}

			// Store the verified email in context so handlers can read it
			ctx := context.WithValue(r.Context(), emailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EmailFromContext retrieves the authenticated user's email from the
// request context.
//
// Returns ("", false) if the request did not pass through RequireOwner.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok && email != ""
}

// writeGuardError emits the guard's fixed JSON rejection body. The
// handler package has its own error writer for domain errors; the guard
// responds before any handler runs, so it writes directly.
func writeGuardError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"message":%q}`, message)
}

// extractEmail reads the JWT cookie and validates it.
//
// COOKIE FLOW:
// 1. Set-Cookie: token=<jwt>; HttpOnly; Secure; SameSite=None (set on login)
// 2. Browser automatically sends Cookie: token=<jwt> on subsequent requests
// 3. We read r.Cookie("token") and validate it
func extractEmail(r *http.Request, tokens *TokenService) (string, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		// http.ErrNoCookie — no token at all
		return "", err
	}

	return tokens.Validate(cookie.Value)
}
