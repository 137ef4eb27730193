package pipeline

import (
	"testing"
	"time"

	"github.com/Reddyn-Wallace/insulhub-ui/internal/models"
)

func tp(t time.Time) *time.Time { return &t }

func leadJob(id, status string, booking *time.Time) models.Job {
	return models.Job{
		ID:    id,
		Stage: models.StageLead,
		Lead:  &models.Lead{Status: status, QuoteBookingDate: booking},
	}
}

func quoteJob(id, leadStatus, quoteStatus string) models.Job {
	return models.Job{
		ID:    id,
		Stage: models.StageQuote,
		Lead:  &models.Lead{Status: leadStatus},
		Quote: &models.Quote{Status: quoteStatus},
	}
}

func TestClassifyLeadStage(t *testing.T) {
	booking := tp(time.Now().Add(48 * time.Hour))
	cases := []struct {
		name string
		job  models.Job
		want Tab
	}{
		{"no lead record", models.Job{Stage: models.StageLead}, TabNew},
		{"empty status", leadJob("a", "", nil), TabNew},
		{"explicit new", leadJob("b", "NEW", nil), TabNew},
		{"lowercase status normalised", leadJob("c", "new", nil), TabNew},
		{"callback", leadJob("d", "CALLBACK", nil), TabCallback},
		{"on hold is callback", leadJob("e", "ON_HOLD", nil), TabCallback},
		{"booking date wins over status", leadJob("f", "CALLBACK", booking), TabQuoteBooked},
		{"booking date with new status", leadJob("g", "NEW", booking), TabQuoteBooked},
		{"dead wins over booking", leadJob("h", "DEAD", booking), TabDead},
		{"dead", leadJob("i", "DEAD", nil), TabDead},
	}
	for _, c := range cases {
		if got := Classify(&c.job, models.StageLead); got != c.want {
			t.Errorf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

func TestClassifyQuoteStage(t *testing.T) {
	cases := []struct {
		name string
		job  models.Job
		want Tab
	}{
		{"default open", quoteJob("a", "", ""), TabOpen},
		{"open quote", quoteJob("b", "NEW", "OPEN"), TabOpen},
		{"deferred quote", quoteJob("c", "", "DEFERRED"), TabCallback},
		{"lead callback", quoteJob("d", "CALLBACK", ""), TabCallback},
		{"lead on hold", quoteJob("e", "ON_HOLD", ""), TabCallback},
		{"declined quote", quoteJob("f", "", "DECLINED"), TabDead},
		{"dead lead", quoteJob("g", "DEAD", ""), TabDead},
		{"dead beats callback", quoteJob("h", "CALLBACK", "DECLINED"), TabDead},
		{"dead lead with deferred quote", quoteJob("i", "DEAD", "DEFERRED"), TabDead},
	}
	for _, c := range cases {
		if got := Classify(&c.job, models.StageQuote); got != c.want {
			t.Errorf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

// Classify must be total and land every job in exactly one declared tab.
func TestClassifyTotalAndExclusive(t *testing.T) {
	statuses := []string{"", "NEW", "CALLBACK", "ON_HOLD", "DEAD", "bogus"}
	quoteStatuses := []string{"", "OPEN", "DEFERRED", "DECLINED", "ACCEPTED"}
	bookings := []*time.Time{nil, tp(time.Now().Add(time.Hour))}

	for _, stage := range []models.Stage{models.StageLead, models.StageQuote} {
		declared := map[Tab]bool{}
		for _, tab := range Tabs(stage) {
			declared[tab] = true
		}
		for _, ls := range statuses {
			for _, qs := range quoteStatuses {
				for _, b := range bookings {
					j := models.Job{
						Stage: stage,
						Lead:  &models.Lead{Status: ls, QuoteBookingDate: b},
						Quote: &models.Quote{Status: qs},
					}
					tab := Classify(&j, stage)
					if tab == TabAll || !declared[tab] {
						t.Fatalf("stage %s lead=%q quote=%q booking=%v classified to %s", stage, ls, qs, b != nil, tab)
					}
				}
			}
		}
	}
}

func TestCountsSumToTotal(t *testing.T) {
	booking := tp(time.Now().Add(time.Hour))
	jobs := []models.Job{
		leadJob("a", "", nil),
		leadJob("b", "NEW", nil),
		leadJob("c", "CALLBACK", nil),
		leadJob("d", "ON_HOLD", nil),
		leadJob("e", "NEW", booking),
		leadJob("f", "DEAD", nil),
	}
	counts := Counts(jobs, models.StageLead)
	if counts[TabAll] != len(jobs) {
		t.Fatalf("ALL = %d, want %d", counts[TabAll], len(jobs))
	}
	sum := counts[TabNew] + counts[TabCallback] + counts[TabQuoteBooked] + counts[TabDead]
	if sum != len(jobs) {
		t.Fatalf("bucket sum = %d, want %d (counts %#v)", sum, len(jobs), counts)
	}
	if counts[TabNew] != 2 || counts[TabCallback] != 2 || counts[TabQuoteBooked] != 1 || counts[TabDead] != 1 {
		t.Fatalf("unexpected counts %#v", counts)
	}
}

func TestDropArchived(t *testing.T) {
	now := time.Now()
	jobs := []models.Job{
		{ID: "live"},
		{ID: "gone", ArchivedAt: &now},
		{ID: "live2"},
	}
	active := DropArchived(jobs)
	if len(active) != 2 {
		t.Fatalf("expected 2 active jobs, got %d", len(active))
	}
	for _, j := range active {
		if j.Archived() {
			t.Fatalf("archived job %s leaked through", j.ID)
		}
	}
}

func TestFilterModes(t *testing.T) {
	jobs := []models.Job{
		{ID: "a", Stage: models.StageLead, Lead: &models.Lead{Status: "NEW", AllocatedTo: &models.Person{ID: "s1"}}},
		{ID: "b", Stage: models.StageLead, Lead: &models.Lead{Status: "CALLBACK", AllocatedTo: &models.Person{ID: "s2"}}},
		{ID: "c", Stage: models.StageLead, Lead: &models.Lead{Status: "DEAD"}},
	}

	// Search suspends sub-tab filtering entirely.
	if got := Filter(jobs, models.StageLead, TabDead, true, ""); len(got) != 3 {
		t.Fatalf("search mode should return all, got %d", len(got))
	}

	// Salesperson filter restricts by allocation.
	got := Filter(jobs, models.StageLead, TabAll, false, "s2")
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("salesperson filter got %#v", got)
	}

	// Sub-tab filter classifies.
	got = Filter(jobs, models.StageLead, TabCallback, false, "")
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("callback tab got %#v", got)
	}
	if got := Filter(jobs, models.StageLead, TabAll, false, ""); len(got) != 3 {
		t.Fatalf("ALL tab should pass everything, got %d", len(got))
	}
}
