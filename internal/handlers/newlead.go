package handlers

import (
	"net/http"
	"strings"

	"github.com/Reddyn-Wallace/insulhub-ui/internal/graphql"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/httpx"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/models"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/store"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/view"
)

// NewLeadHandler serves the new-lead capture form.
type NewLeadHandler struct {
	base
	API *graphql.Client
}

func NewNewLeadHandler(api *graphql.Client, st *store.Store) *NewLeadHandler {
	return &NewLeadHandler{base: base{Store: st}, API: api}
}

// Form: GET /jobs/new
func (h *NewLeadHandler) Form(w http.ResponseWriter, r *http.Request) {
	_ = view.Render(w, r, "job_new.html", map[string]any{
		"LeadSources": models.LeadSources,
	})
}

// Create: POST /jobs/new
// A lead needs a name and at least one way to reach the customer.
func (h *NewLeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.mustSession(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	mobile := strings.TrimSpace(r.FormValue("mobilePhone"))
	phone := strings.TrimSpace(r.FormValue("phone"))

	var errs []string
	if name == "" {
		errs = append(errs, "Name is required")
	}
	if email == "" && mobile == "" && phone == "" {
		errs = append(errs, "A phone number or email is required")
	}
	if len(errs) > 0 {
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusBadRequest, "validation_failed", errs)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		_ = view.Render(w, r, "job_new.html", map[string]any{
			"LeadSources": models.LeadSources,
			"Errors":      errs,
			"Form":        r.Form,
		})
		return
	}

	lead := map[string]any{"leadStatus": models.LeadStatusNew}
	if sources := r.Form["leadSource"]; len(sources) > 0 {
		lead["leadSource"] = sources
	}
	if v := r.FormValue("allocatedTo"); v != "" {
		lead["allocatedTo"] = v
	}
	input := map[string]any{
		"stage": models.StageLead,
		"lead":  lead,
		"client": map[string]any{
			"contactDetails": map[string]any{
				"name":          name,
				"email":         email,
				"mobilePhone":   mobile,
				"phone":         phone,
				"streetAddress": strings.TrimSpace(r.FormValue("streetAddress")),
				"suburb":        strings.TrimSpace(r.FormValue("suburb")),
				"city":          strings.TrimSpace(r.FormValue("city")),
				"postCode":      strings.TrimSpace(r.FormValue("postCode")),
			},
		},
	}
	if notes := strings.TrimSpace(r.FormValue("notes")); notes != "" {
		input["notes"] = notes
	}

	id, err := h.API.CreateJob(r.Context(), sess.Token, input)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.invalidate(r)
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusCreated, map[string]string{"_id": id})
		return
	}
	http.Redirect(w, r, "/jobs/"+id, http.StatusSeeOther)
}
