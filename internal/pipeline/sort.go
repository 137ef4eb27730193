package pipeline

import (
	"sort"
	"time"

	"github.com/Reddyn-Wallace/insulhub-ui/internal/models"
)

type SortField int

const (
	SortByCreated SortField = iota
	SortByQuoteDate
)

type SortOrder struct {
	Field      SortField
	Descending bool
}

// ParseSortOrder maps the query-string value to an order, defaulting to
// newest-created first.
func ParseSortOrder(v string) SortOrder {
	switch v {
	case "created_asc":
		return SortOrder{Field: SortByCreated}
	case "created_desc":
		return SortOrder{Field: SortByCreated, Descending: true}
	case "quote_asc":
		return SortOrder{Field: SortByQuoteDate}
	case "quote_desc":
		return SortOrder{Field: SortByQuoteDate, Descending: true}
	default:
		return SortOrder{Field: SortByCreated, Descending: true}
	}
}

func (o SortOrder) String() string {
	switch {
	case o.Field == SortByQuoteDate && o.Descending:
		return "quote_desc"
	case o.Field == SortByQuoteDate:
		return "quote_asc"
	case o.Descending:
		return "created_desc"
	default:
		return "created_asc"
	}
}

// Sort returns a sorted copy of jobs. Sorting is stable, so re-sorting an
// already sorted list is a no-op.
func Sort(jobs []models.Job, order SortOrder, stage models.Stage, tab Tab) []models.Job {
	return SortAt(jobs, order, stage, tab, time.Now())
}

// SortAt is Sort with an explicit "now", used for the date-proximity views.
func SortAt(jobs []models.Job, order SortOrder, stage models.Stage, tab Tab, now time.Time) []models.Job {
	out := make([]models.Job, len(jobs))
	copy(out, jobs)

	switch {
	case tab == TabCallback || tab == TabQuoteBooked:
		// Order by the relevant appointment date: upcoming entries first
		// (soonest leading), then past entries (most recent leading),
		// undated last. Descending flips order within the dated blocks.
		date := func(j *models.Job) *time.Time {
			if j.Lead == nil {
				return nil
			}
			if tab == TabQuoteBooked {
				return j.Lead.QuoteBookingDate
			}
			return j.Lead.CallbackDate
		}
		sort.SliceStable(out, func(a, b int) bool {
			da, db := date(&out[a]), date(&out[b])
			ra, rb := proximityRank(da, now), proximityRank(db, now)
			if ra != rb {
				return ra < rb
			}
			if da == nil || db == nil {
				return false
			}
			if da.Equal(*db) {
				return false
			}
			var less bool
			if ra == rankFuture {
				less = da.Before(*db) // soonest first
			} else {
				less = da.After(*db) // most recent first
			}
			if order.Descending {
				less = !less
			}
			return less
		})
	case stage == models.StageQuote:
		// Quote stage default view: by quote date, undated first.
		sort.SliceStable(out, func(a, b int) bool {
			da, db := quoteDate(&out[a]), quoteDate(&out[b])
			if da == nil && db == nil {
				return false
			}
			if da == nil {
				return true
			}
			if db == nil {
				return false
			}
			if da.Equal(*db) {
				return false
			}
			if order.Descending {
				return da.After(*db)
			}
			return da.Before(*db)
		})
	default:
		sort.SliceStable(out, func(a, b int) bool {
			if out[a].CreatedAt.Equal(out[b].CreatedAt) {
				return false
			}
			if order.Descending {
				return out[a].CreatedAt.After(out[b].CreatedAt)
			}
			return out[a].CreatedAt.Before(out[b].CreatedAt)
		})
	}
	return out
}

const (
	rankFuture = iota
	rankPast
	rankUndated
)

func proximityRank(t *time.Time, now time.Time) int {
	if t == nil {
		return rankUndated
	}
	if t.After(now) {
		return rankFuture
	}
	return rankPast
}

func quoteDate(j *models.Job) *time.Time {
	if j.Quote == nil {
		return nil
	}
	return j.Quote.QuoteDate
}
