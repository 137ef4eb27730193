package server

import (
	"net/http"

	"github.com/Reddyn-Wallace/insulhub-ui/internal/config"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/graphql"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/handlers"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/httpx"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/pipeline"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/session"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/store"
)

// New constructs the root http.Handler with all routes and middlewares
// applied.
func New(cfg config.Config, api *graphql.Client, st *store.Store) http.Handler {
	mux := http.NewServeMux()

	attach := session.Middleware(st, cfg.SessionSecret)
	protect := func(h http.HandlerFunc) http.Handler {
		return attach(session.RequireAuth(h))
	}

	//revive:disable:unused-parameter simple handlers intentionally ignore *http.Request
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	//revive:enable:unused-parameter

	ah := handlers.NewAuthHandler(api, st, cfg.SessionSecret)
	mux.Handle("GET /login", attach(http.HandlerFunc(ah.LoginForm)))
	mux.Handle("POST /login", attach(http.HandlerFunc(ah.Login)))
	mux.Handle("POST /logout", attach(http.HandlerFunc(ah.Logout)))

	loader := pipeline.NewLoader(api, st, cfg.CacheTTL)
	jh := handlers.NewJobsHandler(loader, st)
	mux.Handle("GET /jobs", protect(jh.List))
	mux.Handle("GET /{$}", attach(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/jobs", http.StatusSeeOther)
	})))

	nh := handlers.NewNewLeadHandler(api, st)
	mux.Handle("GET /jobs/new", protect(nh.Form))
	mux.Handle("POST /jobs/new", protect(nh.Create))

	dh := handlers.NewJobHandler(api, st)
	mux.Handle("GET /jobs/{id}", protect(dh.Show))
	mux.Handle("POST /jobs/{id}/lead", protect(dh.UpdateLead))
	mux.Handle("POST /jobs/{id}/notes", protect(dh.UpdateNotes))
	mux.Handle("POST /jobs/{id}/stage", protect(dh.UpdateStage))
	mux.Handle("POST /jobs/{id}/quote", protect(dh.UpdateQuote))
	mux.Handle("POST /jobs/{id}/client", protect(dh.UpdateClient))
	mux.Handle("POST /jobs/{id}/archive", protect(dh.Archive))
	mux.Handle("GET /jobs/{id}/calendar.ics", protect(dh.Calendar))

	eh := handlers.NewEBAHandler(api, st)
	mux.Handle("GET /jobs/{id}/eba", protect(eh.Show))
	mux.Handle("POST /jobs/{id}/eba", protect(eh.Save))
	mux.Handle("POST /jobs/{id}/eba/send", protect(eh.Send))
	mux.Handle("POST /jobs/{id}/eba/photos", protect(eh.AddPhotos))
	mux.Handle("POST /jobs/{id}/eba/photos/remove", protect(eh.RemovePhoto))

	fh := handlers.NewFilesHandler(api, st)
	mux.Handle("GET /files/documents/{name}", protect(fh.Download))
	mux.Handle("POST /files/upload", protect(fh.Upload))

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	return withLogging(withRecover(mux))
}
