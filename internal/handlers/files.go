package handlers

import (
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/Reddyn-Wallace/insulhub-ui/internal/graphql"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/httpx"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/store"
)

// FilesHandler proxies the API's REST file side-channel. Uploads and
// downloads never expose the API token to the browser: the proxy injects
// it from the session on the way through.
type FilesHandler struct {
	base
	API *graphql.Client
}

func NewFilesHandler(api *graphql.Client, st *store.Store) *FilesHandler {
	return &FilesHandler{base: base{Store: st}, API: api}
}

// Download: GET /files/documents/{name}
func (h *FilesHandler) Download(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.mustSession(w, r)
	if !ok {
		return
	}
	name := path.Base(r.PathValue("name"))
	if name == "" || name == "." || name == "/" {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_file", nil)
		return
	}
	target := h.API.BaseURL() + "/files/documents/" + url.PathEscape(name) + "?token=" + url.QueryEscape(sess.Token)
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, target, nil)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	res, err := h.API.HTTPClient().Do(req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusUnauthorized {
		h.fail(w, r, graphql.ErrUnauthorized)
		return
	}
	if ct := res.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	if cl := res.Header.Get("Content-Length"); cl != "" {
		w.Header().Set("Content-Length", cl)
	}
	w.WriteHeader(res.StatusCode)
	_, _ = io.Copy(w, res.Body)
}

// Upload: POST /files/upload
// The multipart body streams straight through; the response is the API's
// JSON file listing, passed back verbatim.
func (h *FilesHandler) Upload(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.mustSession(w, r)
	if !ok {
		return
	}
	req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, h.API.BaseURL()+"/files/upload", r.Body)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	req.Header.Set("Content-Type", r.Header.Get("Content-Type"))
	req.ContentLength = r.ContentLength
	req.Header.Set("x-token", sess.Token)

	res, err := h.API.HTTPClient().Do(req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusUnauthorized {
		h.fail(w, r, graphql.ErrUnauthorized)
		return
	}
	if ct := res.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(res.StatusCode)
	_, _ = io.Copy(w, res.Body)
}
