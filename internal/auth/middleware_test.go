package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

// guardedRouter mounts a trivial handler behind RequireOwner on a route
// with an {email} parameter, mirroring how the server wires the guard.
func guardedRouter(ts *TokenService) (*chi.Mux, *string) {
	var seenEmail string
	r := chi.NewRouter()
	r.With(RequireOwner(ts)).Get("/queries/email/{email}", func(w http.ResponseWriter, req *http.Request) {
		seenEmail, _ = EmailFromContext(req.Context())
		w.WriteHeader(http.StatusOK)
	})
	return r, &seenEmail
}

func TestRequireOwner_NoCookie(t *testing.T) {
	ts := newTestTokenService(t)
	r, _ := guardedRouter(ts)

	req := httptest.NewRequest(http.MethodGet, "/queries/email/a@x.com", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestRequireOwner_InvalidToken(t *testing.T) {
	ts := newTestTokenService(t)
	r, _ := guardedRouter(ts)

	req := httptest.NewRequest(http.MethodGet, "/queries/email/a@x.com", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-real-token"})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestRequireOwner_ExpiredToken(t *testing.T) {
	ts := newTestTokenService(t)
	r, _ := guardedRouter(ts)

	token, err := ts.GenerateWithDuration("a@x.com", -1)
	if err != nil {
		t.Fatalf("GenerateWithDuration: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/queries/email/a@x.com", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestRequireOwner_EmailMismatch(t *testing.T) {
	ts := newTestTokenService(t)
	r, _ := guardedRouter(ts)

	// Valid token, but for a different user than the path asks about.
	token, err := ts.Generate("b@x.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/queries/email/a@x.com", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusForbidden)
	}
}

func TestRequireOwner_MatchingToken(t *testing.T) {
	ts := newTestTokenService(t)
	r, seenEmail := guardedRouter(ts)

	token, err := ts.Generate("a@x.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/queries/email/a@x.com", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	// The guard must hand the verified identity to the handler.
	if *seenEmail != "a@x.com" {
		t.Errorf("handler saw email %q, want %q", *seenEmail, "a@x.com")
	}
}

// =========================================================================
// COOKIE TRANSPORT TESTS
// =========================================================================

func TestSetSessionCookie_Attributes(t *testing.T) {
	rr := httptest.NewRecorder()
	SetSessionCookie(rr, "some-jwt")

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}

	c := cookies[0]
	if c.Name != SessionCookieName {
		t.Errorf("Name = %q, want %q", c.Name, SessionCookieName)
	}
	if c.Value != "some-jwt" {
		t.Errorf("Value = %q, want %q", c.Value, "some-jwt")
	}
	if !c.HttpOnly {
		t.Error("cookie must be HttpOnly")
	}
	if !c.Secure {
		t.Error("cookie must be Secure (SameSite=None requires it)")
	}
	if c.SameSite != http.SameSiteNoneMode {
		t.Errorf("SameSite = %v, want SameSiteNoneMode", c.SameSite)
	}
	if c.MaxAge != int(TokenTTL.Seconds()) {
		t.Errorf("MaxAge = %d, want %d", c.MaxAge, int(TokenTTL.Seconds()))
	}
}

func TestClearSessionCookie_ExpiresImmediately(t *testing.T) {
	rr := httptest.NewRecorder()
	ClearSessionCookie(rr)

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}

	c := cookies[0]
	if c.Value != "" {
		t.Errorf("Value = %q, want empty", c.Value)
	}
	if c.MaxAge >= 0 {
		t.Errorf("MaxAge = %d, want negative (delete now)", c.MaxAge)
	}
}
