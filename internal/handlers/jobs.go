package handlers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/Reddyn-Wallace/insulhub-ui/internal/httpx"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/models"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/pipeline"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/store"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/view"
)

// JobsHandler serves the pipeline board: the per-stage job list with
// sub-tabs, counts, search, salesperson filter, sorting and paging.
type JobsHandler struct {
	base
	Loader *pipeline.Loader
}

func NewJobsHandler(loader *pipeline.Loader, st *store.Store) *JobsHandler {
	return &JobsHandler{base: base{Store: st}, Loader: loader}
}

// List: GET /jobs – HTML or JSON
func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.mustSession(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()

	stage := models.Stage(strings.ToUpper(q.Get("stage")))
	if !stage.Valid() {
		stage = models.StageLead
	}
	tab := pipeline.Tab(strings.ToUpper(q.Get("tab")))
	if !validTab(stage, tab) {
		tab = pipeline.TabAll
	}
	search := strings.TrimSpace(q.Get("q"))
	sales := q.Get("sales")
	order := pipeline.ParseSortOrder(q.Get("sort"))
	page := 0
	if v := q.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}

	var (
		jobs   []models.Job
		total  int
		counts map[pipeline.Tab]int
	)
	searching := search != ""
	if searching {
		found, n, err := h.Loader.Search(r.Context(), sess.Token, search)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		jobs, total = found, n
	} else {
		entry, err := h.Loader.Load(r.Context(), sess.Token, sess.ID, stage)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		jobs, total, counts = entry.Jobs, entry.Total, entry.Counts
	}

	salespeople := distinctSalespeople(jobs)
	filtered := pipeline.Filter(jobs, stage, tab, searching, sales)
	sorted := pipeline.Sort(filtered, order, stage, tab)
	pageJobs, page := pipeline.Paginate(sorted, page, pipeline.PageSize)

	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{
			"items":    pageJobs,
			"total":    total,
			"filtered": len(sorted),
			"counts":   counts,
			"stage":    stage,
			"tab":      tab,
			"page":     page,
			"pageSize": pipeline.PageSize,
		})
		return
	}
	pages := totalPages(len(sorted))
	_ = view.Render(w, r, "jobs.html", map[string]any{
		"Jobs":        pageJobs,
		"Stage":       stage,
		"Stages":      models.Stages,
		"Tab":         tab,
		"Tabs":        pipeline.Tabs(stage),
		"Counts":      counts,
		"Query":       search,
		"Searching":   searching,
		"Sales":       sales,
		"Salespeople": salespeople,
		"Sort":        order.String(),
		"Page":        page,
		"PageDisplay": page + 1,
		"TotalPages":  pages,
		"HasPrev":     page > 0,
		"HasNext":     page+1 < pages,
		"PrevPage":    page - 1,
		"NextPage":    page + 1,
		"Total":       total,
	})
}

func validTab(stage models.Stage, tab pipeline.Tab) bool {
	for _, t := range pipeline.Tabs(stage) {
		if t == tab {
			return true
		}
	}
	return false
}

func totalPages(n int) int {
	if n == 0 {
		return 1
	}
	return (n + pipeline.PageSize - 1) / pipeline.PageSize
}

// distinctSalespeople collects the allocated salespeople present in the
// working set, for the filter dropdown.
func distinctSalespeople(jobs []models.Job) []models.Person {
	seen := map[string]models.Person{}
	for _, j := range jobs {
		if j.Lead != nil && j.Lead.AllocatedTo != nil && j.Lead.AllocatedTo.ID != "" {
			seen[j.Lead.AllocatedTo.ID] = *j.Lead.AllocatedTo
		}
	}
	out := make([]models.Person, 0, len(seen))
	for _, p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].Name < out[k].Name })
	return out
}
