package pipeline

import "github.com/Reddyn-Wallace/insulhub-ui/internal/models"

// PageSize is the fixed client-side page length.
const PageSize = 40

// Paginate slices one page out of the filtered/sorted list and returns the
// effective page index: a page that falls beyond the list (after a filter
// or sort change shrank it) resets to 0.
func Paginate(jobs []models.Job, page, size int) ([]models.Job, int) {
	if size <= 0 {
		size = PageSize
	}
	// Bound the page before multiplying so an arbitrarily large query value
	// cannot overflow past the guard.
	if page < 0 || page > (len(jobs)-1)/size {
		page = 0
	}
	start := page * size
	if start >= len(jobs) {
		return []models.Job{}, 0
	}
	end := start + size
	if end > len(jobs) {
		end = len(jobs)
	}
	return jobs[start:end], page
}
