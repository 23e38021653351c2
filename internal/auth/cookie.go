package auth

import "net/http"

// SessionCookieName is the cookie the browser carries the JWT in. The
// deployed client never reads it (HttpOnly), it only relies on the browser
// sending it back.
const SessionCookieName = "token"

// SetSessionCookie writes the session token cookie on a login response.
//
// COOKIE ATTRIBUTES:
//   - HttpOnly: JavaScript cannot read the cookie — XSS can't steal the token
//   - Secure: only sent over HTTPS
//   - SameSite=None: the client apps are served from different origins than
//     this API, so the browser must be allowed to send the cookie on
//     cross-site requests. SameSite=None requires Secure.
//
// MaxAge matches the token's own 1-day expiry so the browser drops the
// cookie around the same time the token stops verifying.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// ClearSessionCookie expires the session cookie immediately. Used by the
// sign-out endpoint. Since tokens are stateless the JWT itself stays valid
// until its expiry, but without the cookie the browser can't send it.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // tells the browser to delete the cookie immediately
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
