package cdn

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"someicons/internal/store"
)

func newTestServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/index.json", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.Write([]byte(`{"icons":[{"id":"general-calendar","category":"general","files":{"outline":"icons/outline/general-calendar.svg"}}]}`))
	})
	mux.HandleFunc("/icons/outline/general-calendar.svg", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		time.Sleep(20 * time.Millisecond)
		w.Write([]byte(`<svg viewBox="0 0 16 16"><path d="M0 0h16v16H0z"/></svg>`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchIndex(t *testing.T) {
	t.Parallel()

	var hits int32
	srv := newTestServer(t, &hits)
	c := NewClient(srv.URL, 0, nil)

	index, err := c.FetchIndex()
	if err != nil {
		t.Fatalf("fetch index: %v", err)
	}
	if len(index.Icons) != 1 || index.Icons[0].ID != "general-calendar" {
		t.Fatalf("unexpected index: %+v", index)
	}
}

func TestFetchSVG_CachedAfterFirstFetch(t *testing.T) {
	t.Parallel()

	var hits int32
	srv := newTestServer(t, &hits)
	c := NewClient(srv.URL, 0, nil)

	const path = "icons/outline/general-calendar.svg"
	first, err := c.FetchSVG(path)
	if err != nil {
		t.Fatalf("fetch svg: %v", err)
	}
	second, err := c.FetchSVG(path)
	if err != nil {
		t.Fatalf("fetch svg again: %v", err)
	}
	if first != second {
		t.Fatalf("cache returned different body")
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("network hits want=1 got=%d", got)
	}
}

func TestFetchSVG_ConcurrentRequestsCoalesce(t *testing.T) {
	t.Parallel()

	var hits int32
	srv := newTestServer(t, &hits)
	c := NewClient(srv.URL, 0, nil)

	const path = "icons/outline/general-calendar.svg"
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.FetchSVG(path); err != nil {
				t.Errorf("fetch svg: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("concurrent fetches not coalesced: hits=%d", got)
	}
}

func TestFetchSVG_PersistentCacheSurvivesRestart(t *testing.T) {
	t.Parallel()

	var hits int32
	srv := newTestServer(t, &hits)

	dbPath := filepath.Join(t.TempDir(), "cache.db")
	st, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	const path = "icons/outline/general-calendar.svg"

	c1 := NewClient(srv.URL, 0, st)
	if _, err := c1.FetchSVG(path); err != nil {
		t.Fatalf("first fetch: %v", err)
	}

	// 新客户端模拟重启：应命中 SQLite 缓存而非网络
	c2 := NewClient(srv.URL, 0, st)
	if _, err := c2.FetchSVG(path); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("persistent cache missed: hits=%d", got)
	}
}

func TestFetchIndex_FallsBackToSnapshot(t *testing.T) {
	t.Parallel()

	var hits int32
	srv := newTestServer(t, &hits)

	dbPath := filepath.Join(t.TempDir(), "cache.db")
	st, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	c := NewClient(srv.URL, 0, st)
	if _, err := c.FetchIndex(); err != nil {
		t.Fatalf("initial fetch: %v", err)
	}

	srv.Close()

	c2 := NewClient(srv.URL, time.Second, st)
	index, err := c2.FetchIndex()
	if err != nil {
		t.Fatalf("snapshot fallback failed: %v", err)
	}
	if len(index.Icons) != 1 {
		t.Fatalf("unexpected snapshot index: %+v", index)
	}
}
