package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Reddyn-Wallace/insulhub-ui/internal/graphql"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/httpx"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/ics"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/models"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/pricing"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/store"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/view"
)

// JobHandler serves the job detail page and its section mutations. Every
// mutation invalidates the session's stage caches so the board refetches.
type JobHandler struct {
	base
	API *graphql.Client
}

func NewJobHandler(api *graphql.Client, st *store.Store) *JobHandler {
	return &JobHandler{base: base{Store: st}, API: api}
}

// Show: GET /jobs/{id} – HTML or JSON
func (h *JobHandler) Show(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.mustSession(w, r)
	if !ok {
		return
	}
	job, err := h.API.Job(r.Context(), sess.Token, r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"job": job})
		return
	}
	data := map[string]any{
		"Job":         &job,
		"Stages":      models.Stages,
		"LeadSources": models.LeadSources,
	}
	if job.Quote != nil {
		data["Pricing"] = pricing.Calculate(quoteInputs(job.Quote))
	}
	_ = view.Render(w, r, "job.html", data)
}

// UpdateLead: POST /jobs/{id}/lead
func (h *JobHandler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.mustSession(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	id := r.PathValue("id")
	lead := map[string]any{
		"leadStatus": strings.ToUpper(r.FormValue("leadStatus")),
		"leadSource": r.Form["leadSource"],
	}
	if v := r.FormValue("allocatedTo"); v != "" {
		lead["allocatedTo"] = v
	}
	lead["callbackDate"] = formTime(r, "callbackDate")
	lead["quoteBookingDate"] = formTime(r, "quoteBookingDate")

	input := map[string]any{"_id": id, "lead": lead}
	if err := h.API.UpdateJob(r.Context(), sess.Token, graphql.UpdateJobLeadMutation, input); err != nil {
		h.fail(w, r, err)
		return
	}
	h.invalidate(r)
	h.done(w, r, id)
}

// UpdateNotes: POST /jobs/{id}/notes
func (h *JobHandler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.mustSession(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	input := map[string]any{"_id": id, "notes": r.FormValue("notes")}
	if err := h.API.UpdateJob(r.Context(), sess.Token, graphql.UpdateJobNotesMutation, input); err != nil {
		h.fail(w, r, err)
		return
	}
	h.invalidate(r)
	h.done(w, r, id)
}

// UpdateStage: POST /jobs/{id}/stage
func (h *JobHandler) UpdateStage(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.mustSession(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	stage := models.Stage(strings.ToUpper(r.FormValue("stage")))
	if !stage.Valid() {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_stage", string(stage))
		return
	}
	input := map[string]any{"_id": id, "stage": stage}
	if err := h.API.UpdateJob(r.Context(), sess.Token, graphql.UpdateJobStageMutation, input); err != nil {
		h.fail(w, r, err)
		return
	}
	h.invalidate(r)
	h.done(w, r, id)
}

// UpdateQuote: POST /jobs/{id}/quote
// The computed figures are derived server-side and written back alongside
// the raw inputs, so the API record always carries consistent c_ fields.
func (h *JobHandler) UpdateQuote(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.mustSession(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	id := r.PathValue("id")

	in := pricing.Inputs{
		WallEnabled:       r.FormValue("wallInsulation") != "",
		WallSQM:           formFloat(r, "wallSQM"),
		WallSQMPrice:      formFloat(r, "wallSQMPrice"),
		WallCavityDepth:   formFloat(r, "wallCavityDepth"),
		CeilingEnabled:    r.FormValue("ceilingInsulation") != "",
		CeilingSQM:        formFloat(r, "ceilingSQM"),
		CeilingSQMPrice:   formFloat(r, "ceilingSQMPrice"),
		CeilingRValue:     formFloat(r, "ceilingRValue"),
		Extras:            formExtras(r),
		ConsentFee:        formFloat(r, "consentFee"),
		DepositPercentage: formFloat(r, "depositPercentage"),
		TotalOverride:     formFloat(r, "totalOverride"),
		DepositOverride:   formFloat(r, "depositOverride"),
	}
	out := pricing.Calculate(in)

	extras := make([]map[string]any, len(in.Extras))
	for i, e := range in.Extras {
		extras[i] = map[string]any{"name": e.Name, "price": e.Price}
	}
	quote := map[string]any{
		"quoteNumber":       r.FormValue("quoteNumber"),
		"quoteDate":         formTime(r, "quoteDate"),
		"status":            strings.ToUpper(r.FormValue("status")),
		"quoteComments":     r.FormValue("quoteComments"),
		"wallInsulation":    in.WallEnabled,
		"wallSQM":           in.WallSQM,
		"wallSQMPrice":      in.WallSQMPrice,
		"wallCavityDepth":   in.WallCavityDepth,
		"wallRValue":        out.WallRValue,
		"wallBags":          out.WallBags,
		"ceilingInsulation": in.CeilingEnabled,
		"ceilingSQM":        in.CeilingSQM,
		"ceilingSQMPrice":   in.CeilingSQMPrice,
		"ceilingRValue":     in.CeilingRValue,
		"ceilingDownlights": formInt(r, "ceilingDownlights"),
		"ceilingBags":       out.CeilingBags,
		"extras":            extras,
		"consentFee":        in.ConsentFee,
		"depositPercentage": in.DepositPercentage,
		"c_total":           out.Total,
		"c_deposit":         out.Deposit,
	}
	input := map[string]any{"_id": id, "quote": quote}
	if err := h.API.UpdateJob(r.Context(), sess.Token, graphql.UpdateJobQuoteMutation, input); err != nil {
		h.fail(w, r, err)
		return
	}
	h.invalidate(r)
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"pricing": out})
		return
	}
	redirectBack(w, r, "/jobs/"+id)
}

// UpdateClient: POST /jobs/{id}/client
func (h *JobHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.mustSession(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	id := r.PathValue("id")
	input := map[string]any{
		"contactDetails": contactFromForm(r, "contact_"),
	}
	if r.FormValue("hasBilling") != "" {
		input["billingDetails"] = contactFromForm(r, "billing_")
	}
	if err := h.API.UpdateClient(r.Context(), sess.Token, id, input); err != nil {
		h.fail(w, r, err)
		return
	}
	h.invalidate(r)
	h.done(w, r, id)
}

// Archive: POST /jobs/{id}/archive
func (h *JobHandler) Archive(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.mustSession(w, r)
	if !ok {
		return
	}
	if err := h.API.ArchiveJob(r.Context(), sess.Token, r.PathValue("id")); err != nil {
		h.fail(w, r, err)
		return
	}
	h.invalidate(r)
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "archived"})
		return
	}
	http.Redirect(w, r, "/jobs", http.StatusSeeOther)
}

// Calendar: GET /jobs/{id}/calendar.ics
// Exports the job's callback and quote-booking appointments.
func (h *JobHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.mustSession(w, r)
	if !ok {
		return
	}
	job, err := h.API.Job(r.Context(), sess.Token, r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	contact := job.Contact()
	var events []ics.Event
	if job.Lead != nil && job.Lead.CallbackDate != nil {
		events = append(events, ics.Event{
			UID:      job.ID + "-callback@insulhub",
			Summary:  "Callback: " + contact.Name,
			Location: contact.Address(),
			Start:    *job.Lead.CallbackDate,
			Duration: 30 * time.Minute,
		})
	}
	if job.Lead != nil && job.Lead.QuoteBookingDate != nil {
		events = append(events, ics.Event{
			UID:      job.ID + "-quote-visit@insulhub",
			Summary:  "Quote visit: " + contact.Name,
			Location: contact.Address(),
			Start:    *job.Lead.QuoteBookingDate,
			Duration: time.Hour,
		})
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="job.ics"`)
	_, _ = w.Write([]byte(ics.Calendar(events)))
}

// done finishes a mutation with either JSON or a redirect to the job page.
func (h *JobHandler) done(w http.ResponseWriter, r *http.Request, id string) {
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	redirectBack(w, r, "/jobs/"+id)
}

func contactFromForm(r *http.Request, prefix string) map[string]any {
	return map[string]any{
		"name":          strings.TrimSpace(r.FormValue(prefix + "name")),
		"email":         strings.TrimSpace(r.FormValue(prefix + "email")),
		"mobilePhone":   strings.TrimSpace(r.FormValue(prefix + "mobilePhone")),
		"phone":         strings.TrimSpace(r.FormValue(prefix + "phone")),
		"streetAddress": strings.TrimSpace(r.FormValue(prefix + "streetAddress")),
		"suburb":        strings.TrimSpace(r.FormValue(prefix + "suburb")),
		"city":          strings.TrimSpace(r.FormValue(prefix + "city")),
		"postCode":      strings.TrimSpace(r.FormValue(prefix + "postCode")),
		"lotDPNumber":   strings.TrimSpace(r.FormValue(prefix + "lotDPNumber")),
	}
}

// formExtras reads the parallel extra_name / extra_price arrays.
func formExtras(r *http.Request) []pricing.Extra {
	names := r.Form["extra_name"]
	prices := r.Form["extra_price"]
	var extras []pricing.Extra
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		e := pricing.Extra{Name: name}
		if i < len(prices) {
			if f, err := strconv.ParseFloat(strings.TrimSpace(prices[i]), 64); err == nil {
				e.Price = f
			}
		}
		extras = append(extras, e)
	}
	return extras
}

// quoteInputs rebuilds pricing inputs from a stored quote for display.
func quoteInputs(q *models.Quote) pricing.Inputs {
	extras := make([]pricing.Extra, len(q.Extras))
	for i, e := range q.Extras {
		extras[i] = pricing.Extra{Name: e.Name, Price: e.Price}
	}
	return pricing.Inputs{
		WallEnabled:       q.WallInsulation,
		WallSQM:           q.WallSQM,
		WallSQMPrice:      q.WallSQMPrice,
		WallCavityDepth:   q.WallCavityDepth,
		CeilingEnabled:    q.CeilingInsulation,
		CeilingSQM:        q.CeilingSQM,
		CeilingSQMPrice:   q.CeilingSQMPrice,
		CeilingRValue:     q.CeilingRValue,
		Extras:            extras,
		ConsentFee:        q.ConsentFee,
		DepositPercentage: q.DepositPercentage,
	}
}
