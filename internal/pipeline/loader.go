package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/Reddyn-Wallace/insulhub-ui/internal/models"
)

// MaxStageFetch is the upper bound for a full-stage or search fetch. Tab
// counts need the whole set, so the engine pulls everything in one call
// instead of paging server-side.
const MaxStageFetch = 5000

// Fetcher issues the jobs query against the remote API.
type Fetcher interface {
	Jobs(ctx context.Context, token string, stages []models.Stage, skip, limit int, search string) ([]models.Job, int, error)
}

// CacheEntry is one cached full-stage fetch.
type CacheEntry struct {
	Jobs      []models.Job `json:"jobs"`
	Total     int          `json:"total"`
	Counts    map[Tab]int  `json:"counts"`
	FetchedAt time.Time    `json:"fetchedAt"`
}

// Cache stores entries per (session, stage). Implemented by the local store.
type Cache interface {
	GetStage(sessionID string, stage models.Stage) (CacheEntry, bool)
	PutStage(sessionID string, stage models.Stage, entry CacheEntry) error
}

// Loader serves stage job sets read-through: a fresh cache entry is served
// immediately while a background refresh runs; a missing or expired entry
// forces a synchronous fetch. A monotonically increasing request id per
// (session, stage) guards each cache entry against a stale in-flight fetch
// overwriting a newer one; loads for other sessions or stages never touch it.
type Loader struct {
	api   Fetcher
	cache Cache
	ttl   time.Duration
	mu    sync.Mutex
	reqID map[loadKey]uint64
	now   func() time.Time
}

type loadKey struct {
	sessionID string
	stage     models.Stage
}

func NewLoader(api Fetcher, cache Cache, ttl time.Duration) *Loader {
	return &Loader{api: api, cache: cache, ttl: ttl, reqID: map[loadKey]uint64{}, now: time.Now}
}

func (l *Loader) nextID(k loadKey) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reqID[k]++
	return l.reqID[k]
}

func (l *Loader) currentID(k loadKey) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reqID[k]
}

// Load returns the active (non-archived) job set for the stage with its
// tab counts.
func (l *Loader) Load(ctx context.Context, token, sessionID string, stage models.Stage) (CacheEntry, error) {
	id := l.nextID(loadKey{sessionID, stage})
	if entry, ok := l.cache.GetStage(sessionID, stage); ok && l.now().Sub(entry.FetchedAt) < l.ttl {
		go func() {
			rctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			_, _ = l.fetch(rctx, token, sessionID, stage, id)
		}()
		return entry, nil
	}
	return l.fetch(ctx, token, sessionID, stage, id)
}

// Search runs a server-side search across all stages. Results are not
// cached; the search view is transient.
func (l *Loader) Search(ctx context.Context, token, term string) ([]models.Job, int, error) {
	jobs, total, err := l.api.Jobs(ctx, token, nil, 0, MaxStageFetch, term)
	if err != nil {
		return nil, 0, err
	}
	return DropArchived(jobs), total, nil
}

func (l *Loader) fetch(ctx context.Context, token, sessionID string, stage models.Stage, id uint64) (CacheEntry, error) {
	jobs, total, err := l.api.Jobs(ctx, token, []models.Stage{stage}, 0, MaxStageFetch, "")
	if err != nil {
		return CacheEntry{}, err
	}
	active := DropArchived(jobs)
	entry := CacheEntry{
		Jobs:      active,
		Total:     total,
		Counts:    Counts(active, stage),
		FetchedAt: l.now(),
	}
	// Discard if a newer request for the same entry started while this one
	// was in flight.
	if l.currentID(loadKey{sessionID, stage}) == id {
		_ = l.cache.PutStage(sessionID, stage, entry)
	}
	return entry, nil
}
