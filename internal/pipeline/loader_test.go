package pipeline

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Reddyn-Wallace/insulhub-ui/internal/models"
)

type memCache struct {
	mu sync.Mutex
	m  map[string]CacheEntry
}

func newMemCache() *memCache { return &memCache{m: map[string]CacheEntry{}} }

func (c *memCache) GetStage(sessionID string, stage models.Stage) (CacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.m[sessionID+"/"+string(stage)]
	return e, ok
}

func (c *memCache) PutStage(sessionID string, stage models.Stage, e CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[sessionID+"/"+string(stage)] = e
	return nil
}

type stubFetcher struct {
	mu      sync.Mutex
	calls   int
	jobs    []models.Job
	total   int
	started chan struct{} // signalled on each call, if set
	release chan struct{} // first call blocks on this, if set
}

func (f *stubFetcher) Jobs(_ context.Context, _ string, _ []models.Stage, _, _ int, _ string) ([]models.Job, int, error) {
	f.mu.Lock()
	f.calls++
	first := f.calls == 1
	jobs, total := f.jobs, f.total
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if first && f.release != nil {
		<-f.release
	}
	return jobs, total, nil
}

func (f *stubFetcher) set(jobs []models.Job, total int) {
	f.mu.Lock()
	f.jobs, f.total = jobs, total
	f.mu.Unlock()
}

func TestLoaderFetchesAndCachesOnMiss(t *testing.T) {
	archived := time.Now()
	f := &stubFetcher{}
	f.set([]models.Job{
		{ID: "a", Stage: models.StageLead, Lead: &models.Lead{Status: "NEW"}},
		{ID: "zombie", Stage: models.StageLead, ArchivedAt: &archived},
	}, 2)
	cache := newMemCache()
	l := NewLoader(f, cache, 5*time.Minute)

	entry, err := l.Load(context.Background(), "tok", "sess", models.StageLead)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entry.Jobs) != 1 || entry.Jobs[0].ID != "a" {
		t.Fatalf("archived job not dropped: %#v", entry.Jobs)
	}
	if entry.Counts[TabAll] != 1 || entry.Counts[TabNew] != 1 {
		t.Fatalf("counts wrong: %#v", entry.Counts)
	}
	if _, ok := cache.GetStage("sess", models.StageLead); !ok {
		t.Fatal("entry not written to cache")
	}
}

func TestLoaderServesFreshCacheAndRefreshesInBackground(t *testing.T) {
	f := &stubFetcher{started: make(chan struct{}, 2)}
	f.set([]models.Job{{ID: "remote", Stage: models.StageLead}}, 1)
	cache := newMemCache()
	l := NewLoader(f, cache, 5*time.Minute)

	cached := CacheEntry{
		Jobs:      []models.Job{{ID: "cached", Stage: models.StageLead}},
		Total:     1,
		Counts:    map[Tab]int{TabAll: 1, TabNew: 1},
		FetchedAt: time.Now(),
	}
	_ = cache.PutStage("sess", models.StageLead, cached)

	entry, err := l.Load(context.Background(), "tok", "sess", models.StageLead)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entry.Jobs) != 1 || entry.Jobs[0].ID != "cached" {
		t.Fatalf("expected cached entry served first, got %#v", entry.Jobs)
	}

	// The background refresh still runs and replaces the cache.
	select {
	case <-f.started:
	case <-time.After(2 * time.Second):
		t.Fatal("background refresh never started")
	}
	deadline := time.Now().Add(2 * time.Second)
	for {
		if e, ok := cache.GetStage("sess", models.StageLead); ok && len(e.Jobs) == 1 && e.Jobs[0].ID == "remote" {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("cache never refreshed in background")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestLoaderRefetchesExpiredCache(t *testing.T) {
	f := &stubFetcher{}
	f.set([]models.Job{{ID: "fresh", Stage: models.StageLead}}, 1)
	cache := newMemCache()
	l := NewLoader(f, cache, time.Minute)

	_ = cache.PutStage("sess", models.StageLead, CacheEntry{
		Jobs:      []models.Job{{ID: "stale", Stage: models.StageLead}},
		FetchedAt: time.Now().Add(-10 * time.Minute),
	})

	entry, err := l.Load(context.Background(), "tok", "sess", models.StageLead)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entry.Jobs) != 1 || entry.Jobs[0].ID != "fresh" {
		t.Fatalf("expired cache should refetch, got %#v", entry.Jobs)
	}
}

// A slow first fetch must not clobber the cache written by a newer request.
func TestLoaderDiscardsStaleInFlightResult(t *testing.T) {
	f := &stubFetcher{started: make(chan struct{}, 2), release: make(chan struct{})}
	f.set([]models.Job{{ID: "old", Stage: models.StageLead}}, 1)
	cache := newMemCache()
	l := NewLoader(f, cache, time.Minute)

	done := make(chan CacheEntry, 1)
	go func() {
		e, _ := l.Load(context.Background(), "tok", "sess", models.StageLead)
		done <- e
	}()
	<-f.started // first fetch is now in flight and blocked

	f.set([]models.Job{{ID: "new", Stage: models.StageLead}}, 1)
	entry, err := l.Load(context.Background(), "tok", "sess", models.StageLead)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	<-f.started
	if entry.Jobs[0].ID != "new" {
		t.Fatalf("second load got %#v", entry.Jobs)
	}

	close(f.release)
	<-done

	e, ok := cache.GetStage("sess", models.StageLead)
	if !ok || len(e.Jobs) != 1 || e.Jobs[0].ID != "new" {
		t.Fatalf("stale in-flight fetch overwrote the cache: %#v", e.Jobs)
	}
}

// The stale-result guard is scoped per (session, stage): a load by an
// unrelated session must not discard another session's in-flight fetch.
func TestLoaderOtherSessionLoadKeepsInFlightResult(t *testing.T) {
	f := &stubFetcher{started: make(chan struct{}, 2), release: make(chan struct{})}
	f.set([]models.Job{{ID: "a", Stage: models.StageLead}}, 1)
	cache := newMemCache()
	l := NewLoader(f, cache, time.Minute)

	done := make(chan struct{})
	go func() {
		_, _ = l.Load(context.Background(), "tok", "alice", models.StageLead)
		close(done)
	}()
	<-f.started // alice's fetch is now in flight and blocked

	if _, err := l.Load(context.Background(), "tok", "bob", models.StageLead); err != nil {
		t.Fatalf("bob's Load: %v", err)
	}
	<-f.started

	close(f.release)
	<-done

	if _, ok := cache.GetStage("alice", models.StageLead); !ok {
		t.Fatal("alice's completed fetch was discarded after bob's load")
	}
	if _, ok := cache.GetStage("bob", models.StageLead); !ok {
		t.Fatal("bob's fetch was not cached")
	}
}

func TestLoaderSearchDropsArchived(t *testing.T) {
	archived := time.Now()
	f := &stubFetcher{}
	f.set([]models.Job{
		{ID: "hit"},
		{ID: "gone", ArchivedAt: &archived},
	}, 2)
	l := NewLoader(f, newMemCache(), time.Minute)

	jobs, total, err := l.Search(context.Background(), "tok", "smith")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want server total 2", total)
	}
	if len(jobs) != 1 || jobs[0].ID != "hit" {
		t.Fatalf("archived job leaked into search results: %#v", jobs)
	}
}
