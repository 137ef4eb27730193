package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Reddyn-Wallace/insulhub-ui/internal/graphql"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/httpx"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/session"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/store"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/view"
)

// base carries the pieces every handler needs for error handling.
type base struct {
	Store *store.Store
}

// fail maps an upstream error onto a response. An expired or revoked API
// token tears the local session down and sends the browser back to login;
// anything else surfaces as a 502 the page can show inline with a retry.
func (b base) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, graphql.ErrUnauthorized) {
		if sess, ok := session.FromContext(r.Context()); ok {
			if derr := b.Store.DeleteSession(sess.ID); derr != nil {
				log.Printf("delete session %s: %v", sess.ID, derr)
			}
		}
		session.Clear(w)
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	if httpx.WantsJSON(r) {
		httpx.JSONError(w, http.StatusBadGateway, "upstream_error", err.Error())
		return
	}
	w.WriteHeader(http.StatusBadGateway)
	renderErrorPage(w, r, err.Error())
}

// invalidate drops the session's cached stage lists after a mutation.
func (b base) invalidate(r *http.Request) {
	if sess, ok := session.FromContext(r.Context()); ok {
		if err := b.Store.InvalidateStageCaches(sess.ID); err != nil {
			log.Printf("invalidate caches: %v", err)
		}
	}
}

// mustSession returns the session or writes an auth failure. RequireAuth
// runs before every protected handler, so the miss branch is defensive
// against wiring mistakes only.
func (b base) mustSession(w http.ResponseWriter, r *http.Request) (store.Session, bool) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusUnauthorized, "unauthorized", nil)
		} else {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		}
		return store.Session{}, false
	}
	return sess, true
}

func renderErrorPage(w http.ResponseWriter, r *http.Request, msg string) {
	if err := view.Render(w, r, "error.html", map[string]any{"Message": msg, "Return": r.URL.String()}); err != nil {
		_, _ = w.Write([]byte("something went wrong: " + msg))
	}
}

// formFloat parses a form value, treating blank or junk as zero.
func formFloat(r *http.Request, name string) float64 {
	v := strings.TrimSpace(r.FormValue(name))
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

func formInt(r *http.Request, name string) int {
	v := strings.TrimSpace(r.FormValue(name))
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// formTime parses a date or datetime-local input. Returns nil for blank
// or unparseable values.
func formTime(r *http.Request, name string) *time.Time {
	v := strings.TrimSpace(r.FormValue(name))
	if v == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	return nil
}

// redirectBack returns to the referring page, falling back to the given path.
func redirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	target := r.FormValue("return")
	if target == "" || !strings.HasPrefix(target, "/") {
		target = fallback
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
