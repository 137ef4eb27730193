package handlers

import (
	"net/http"
	"strings"

	"github.com/Reddyn-Wallace/insulhub-ui/internal/graphql"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/httpx"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/session"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/store"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/view"
)

// AuthHandler serves the login form and exchanges credentials for an API
// token, which lives in the local session store, never in the browser.
type AuthHandler struct {
	base
	API    *graphql.Client
	Secret string
}

func NewAuthHandler(api *graphql.Client, st *store.Store, secret string) *AuthHandler {
	return &AuthHandler{base: base{Store: st}, API: api, Secret: secret}
}

// LoginForm: GET /login
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := session.FromContext(r.Context()); ok {
		http.Redirect(w, r, "/jobs", http.StatusSeeOther)
		return
	}
	_ = view.Render(w, r, "login.html", nil)
}

// Login: POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	if email == "" || password == "" {
		h.loginFailed(w, r, email, "Email and password are required")
		return
	}

	token, user, err := h.API.Login(r.Context(), email, password)
	if err != nil {
		h.loginFailed(w, r, email, err.Error())
		return
	}
	sess, err := h.Store.CreateSession(token, user)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := session.Create(w, h.Secret, sess.ID); err != nil {
		h.fail(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"user": user})
		return
	}
	http.Redirect(w, r, "/jobs", http.StatusSeeOther)
}

func (h *AuthHandler) loginFailed(w http.ResponseWriter, r *http.Request, email, msg string) {
	if httpx.WantsJSON(r) {
		httpx.JSONError(w, http.StatusUnauthorized, "login_failed", msg)
		return
	}
	w.WriteHeader(http.StatusUnauthorized)
	_ = view.Render(w, r, "login.html", map[string]any{"Error": msg, "Email": email})
}

// Logout: POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := session.FromContext(r.Context()); ok {
		_ = h.Store.DeleteSession(sess.ID)
	}
	session.Clear(w)
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
