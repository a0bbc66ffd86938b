package content

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/technomonkey-7/ugc-portfolio/internal/imageurl"
)

var errStoreDown = errors.New("dial tcp: connection refused")

// fakeFetcher answers queries from canned JSON. Unknown queries behave like an
// empty store and return null.
type fakeFetcher struct {
	mu      sync.Mutex
	results map[string]string
	errs    map[string]error
	calls   map[string]int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		results: make(map[string]string),
		errs:    make(map[string]error),
		calls:   make(map[string]int),
	}
}

func (f *fakeFetcher) Fetch(ctx context.Context, query string, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[query]++
	if err, ok := f.errs[query]; ok {
		return err
	}
	raw, ok := f.results[query]
	if !ok || raw == "null" {
		return nil
	}
	return json.Unmarshal([]byte(raw), out)
}

type failingFetcher struct{}

func (failingFetcher) Fetch(ctx context.Context, query string, out any) error {
	return errStoreDown
}

func newTestService(t *testing.T, f Fetcher) *Service {
	t.Helper()
	s := NewService(f, imageurl.New("abc123", "production"), MustBuiltinDefaults())
	s.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return s
}
