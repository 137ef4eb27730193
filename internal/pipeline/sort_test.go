package pipeline

import (
	"testing"
	"time"

	"github.com/Reddyn-Wallace/insulhub-ui/internal/models"
)

var sortNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func callbackJob(id string, callback *time.Time) models.Job {
	return models.Job{ID: id, Stage: models.StageLead, Lead: &models.Lead{Status: "CALLBACK", CallbackDate: callback}}
}

func ids(jobs []models.Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func sameOrder(a []models.Job, want ...string) bool {
	if len(a) != len(want) {
		return false
	}
	for i := range want {
		if a[i].ID != want[i] {
			return false
		}
	}
	return true
}

func TestCallbackSortFutureBeforePastUndatedLast(t *testing.T) {
	jobs := []models.Job{
		callbackJob("past-old", tp(sortNow.Add(-72*time.Hour))),
		callbackJob("undated", nil),
		callbackJob("future-far", tp(sortNow.Add(96*time.Hour))),
		callbackJob("past-recent", tp(sortNow.Add(-2*time.Hour))),
		callbackJob("future-soon", tp(sortNow.Add(3*time.Hour))),
	}
	got := SortAt(jobs, SortOrder{}, models.StageLead, TabCallback, sortNow)
	if !sameOrder(got, "future-soon", "future-far", "past-recent", "past-old", "undated") {
		t.Fatalf("ascending proximity order wrong: %v", ids(got))
	}

	got = SortAt(jobs, SortOrder{Descending: true}, models.StageLead, TabCallback, sortNow)
	if !sameOrder(got, "future-far", "future-soon", "past-old", "past-recent", "undated") {
		t.Fatalf("descending proximity order wrong: %v", ids(got))
	}
}

func TestQuoteBookedSortUsesBookingDate(t *testing.T) {
	mk := func(id string, booking *time.Time) models.Job {
		return models.Job{ID: id, Stage: models.StageLead, Lead: &models.Lead{QuoteBookingDate: booking}}
	}
	jobs := []models.Job{
		mk("b", tp(sortNow.Add(48*time.Hour))),
		mk("none", nil),
		mk("a", tp(sortNow.Add(24*time.Hour))),
	}
	got := SortAt(jobs, SortOrder{}, models.StageLead, TabQuoteBooked, sortNow)
	if !sameOrder(got, "a", "b", "none") {
		t.Fatalf("quote-booked order wrong: %v", ids(got))
	}
}

func TestQuoteStageSortsByQuoteDateUndatedFirst(t *testing.T) {
	mk := func(id string, d *time.Time) models.Job {
		return models.Job{ID: id, Stage: models.StageQuote, Quote: &models.Quote{QuoteDate: d}}
	}
	jobs := []models.Job{
		mk("late", tp(sortNow.Add(-24*time.Hour))),
		mk("none", nil),
		mk("early", tp(sortNow.Add(-96*time.Hour))),
	}
	got := SortAt(jobs, SortOrder{Field: SortByQuoteDate}, models.StageQuote, TabOpen, sortNow)
	if !sameOrder(got, "none", "early", "late") {
		t.Fatalf("quote date asc wrong: %v", ids(got))
	}
	got = SortAt(jobs, SortOrder{Field: SortByQuoteDate, Descending: true}, models.StageQuote, TabOpen, sortNow)
	if !sameOrder(got, "none", "late", "early") {
		t.Fatalf("quote date desc wrong: %v", ids(got))
	}
}

func TestLeadStageSortsByCreationDate(t *testing.T) {
	mk := func(id string, created time.Time) models.Job {
		return models.Job{ID: id, Stage: models.StageLead, CreatedAt: created}
	}
	jobs := []models.Job{
		mk("mid", sortNow.Add(-48 * time.Hour)),
		mk("new", sortNow.Add(-1 * time.Hour)),
		mk("old", sortNow.Add(-240 * time.Hour)),
	}
	got := SortAt(jobs, SortOrder{Field: SortByCreated, Descending: true}, models.StageLead, TabAll, sortNow)
	if !sameOrder(got, "new", "mid", "old") {
		t.Fatalf("created desc wrong: %v", ids(got))
	}
	got = SortAt(jobs, SortOrder{Field: SortByCreated}, models.StageLead, TabAll, sortNow)
	if !sameOrder(got, "old", "mid", "new") {
		t.Fatalf("created asc wrong: %v", ids(got))
	}
}

// Sorting an already sorted list with the same order is the identity.
func TestSortStableAndIdempotent(t *testing.T) {
	jobs := []models.Job{
		callbackJob("a", tp(sortNow.Add(2*time.Hour))),
		callbackJob("b", tp(sortNow.Add(2*time.Hour))), // equal date: original order preserved
		callbackJob("c", nil),
		callbackJob("d", tp(sortNow.Add(-3*time.Hour))),
	}
	order := SortOrder{}
	once := SortAt(jobs, order, models.StageLead, TabCallback, sortNow)
	twice := SortAt(once, order, models.StageLead, TabCallback, sortNow)
	if !sameOrder(twice, ids(once)...) {
		t.Fatalf("sort not idempotent: %v then %v", ids(once), ids(twice))
	}
	if !sameOrder(once, "a", "b", "d", "c") {
		t.Fatalf("stability violated: %v", ids(once))
	}
}

func TestParseSortOrderRoundTrip(t *testing.T) {
	for _, v := range []string{"created_asc", "created_desc", "quote_asc", "quote_desc"} {
		if got := ParseSortOrder(v).String(); got != v {
			t.Errorf("round trip %s -> %s", v, got)
		}
	}
	if def := ParseSortOrder("junk"); !def.Descending || def.Field != SortByCreated {
		t.Errorf("default order wrong: %#v", def)
	}
}
