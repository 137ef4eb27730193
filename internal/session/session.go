package session

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Reddyn-Wallace/insulhub-ui/internal/store"
)

const (
	cookieName = "insulhub_session"
	maxAge     = 14 * 24 * time.Hour
)

type ctxKey int

const sessionCtxKey ctxKey = iota

// Claims carry only the local session id; the API token and user fields
// live in the store, never in the cookie.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Create signs a cookie pointing at the stored session.
func Create(w http.ResponseWriter, secret, sessionID string) error {
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(maxAge)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(maxAge),
	})
	return nil
}

// Clear deletes the session cookie.
func Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: cookieName, Value: "", Path: "/", Expires: time.Unix(0, 0), HttpOnly: true, SameSite: http.SameSiteLaxMode})
}

// Parse validates the cookie and returns the session id.
func Parse(r *http.Request, secret string) (string, bool) {
	c, err := r.Cookie(cookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	token, err := jwt.ParseWithClaims(c.Value, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", false
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.SessionID == "" {
		return "", false
	}
	return claims.SessionID, true
}

// WithSession stores the resolved session in context.
func WithSession(ctx context.Context, sess store.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, sess)
}

// FromContext extracts the session attached by Middleware.
func FromContext(ctx context.Context) (store.Session, bool) {
	sess, ok := ctx.Value(sessionCtxKey).(store.Session)
	return sess, ok
}

// Middleware resolves the cookie against the store and attaches the
// session to the request context. A cookie whose session row is gone is
// cleared so the browser stops presenting it.
func Middleware(st *store.Store, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id, ok := Parse(r, secret); ok {
				sess, err := st.GetSession(id)
				if err == nil {
					r = r.WithContext(WithSession(r.Context(), sess))
				} else {
					Clear(w)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth redirects to /login if not authenticated, or returns 401
// JSON for API clients.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := FromContext(r.Context()); !ok {
			accept := r.Header.Get("Accept")
			if strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html") {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprint(w, `{"error":"unauthorized"}`)
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
