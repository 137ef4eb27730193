// Package pipeline is the job-list engine: it classifies jobs into
// sub-tabs, tallies per-tab counts, filters, sorts and paginates the
// working set for a stage, and caches full stage fetches per session.
package pipeline

import "github.com/Reddyn-Wallace/insulhub-ui/internal/models"

// Tab is a sub-tab bucket within a stage.
type Tab string

const (
	TabAll         Tab = "ALL"
	TabNew         Tab = "NEW"
	TabOpen        Tab = "OPEN"
	TabCallback    Tab = "CALLBACK"
	TabQuoteBooked Tab = "QUOTE_BOOKED"
	TabDead        Tab = "DEAD"
)

// Tabs returns the sub-tabs shown for a stage, ALL first. Stages past
// QUOTE have no sub-tabs.
func Tabs(stage models.Stage) []Tab {
	switch stage {
	case models.StageLead:
		return []Tab{TabAll, TabNew, TabCallback, TabQuoteBooked, TabDead}
	case models.StageQuote:
		return []Tab{TabAll, TabOpen, TabCallback, TabDead}
	default:
		return nil
	}
}

// Classify maps a job to exactly one sub-tab bucket for the stage.
// Precedence is fixed: DEAD beats everything, a quote booking beats a
// callback status, ON_HOLD counts as CALLBACK.
func Classify(j *models.Job, stage models.Stage) Tab {
	switch stage {
	case models.StageLead:
		if j.LeadStatus() == models.LeadStatusDead {
			return TabDead
		}
		if j.Lead != nil && j.Lead.QuoteBookingDate != nil {
			return TabQuoteBooked
		}
		if s := j.LeadStatus(); s == models.LeadStatusCallback || s == models.LeadStatusOnHold {
			return TabCallback
		}
		return TabNew
	case models.StageQuote:
		if j.LeadStatus() == models.LeadStatusDead || j.QuoteStatus() == models.QuoteStatusDeclined {
			return TabDead
		}
		if s := j.LeadStatus(); j.QuoteStatus() == models.QuoteStatusDeferred ||
			s == models.LeadStatusCallback || s == models.LeadStatusOnHold {
			return TabCallback
		}
		return TabOpen
	default:
		return TabAll
	}
}

// Counts tallies Classify across the full stage set. ALL is the size of
// the set; the remaining buckets are disjoint and sum to it.
func Counts(jobs []models.Job, stage models.Stage) map[Tab]int {
	counts := map[Tab]int{TabAll: len(jobs)}
	for _, tab := range Tabs(stage) {
		if tab != TabAll {
			counts[tab] = 0
		}
	}
	for i := range jobs {
		tab := Classify(&jobs[i], stage)
		if tab != TabAll {
			counts[tab]++
		}
	}
	return counts
}

// DropArchived removes soft-deleted jobs. Every server response passes
// through here before anything else looks at it.
func DropArchived(jobs []models.Job) []models.Job {
	active := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if !j.Archived() {
			active = append(active, j)
		}
	}
	return active
}

// Filter narrows the working set for display. An active search suspends
// sub-tab filtering (the full server-side result is shown); a salesperson
// filter restricts by allocation; otherwise jobs are matched against the
// selected sub-tab bucket.
func Filter(jobs []models.Job, stage models.Stage, tab Tab, searching bool, salespersonID string) []models.Job {
	if searching {
		return jobs
	}
	if salespersonID != "" {
		out := make([]models.Job, 0, len(jobs))
		for _, j := range jobs {
			if j.AllocatedID() == salespersonID {
				out = append(out, j)
			}
		}
		return out
	}
	if tab == "" || tab == TabAll {
		return jobs
	}
	out := make([]models.Job, 0, len(jobs))
	for i := range jobs {
		if Classify(&jobs[i], stage) == tab {
			out = append(out, jobs[i])
		}
	}
	return out
}
