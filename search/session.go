// Package search holds the incremental search state machine: a
// debounced query, a paged, duplicate free result set and the
// triggering policy for loading further pages.
package search

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/lazyhash/tokenpick/checksum"
	"github.com/lazyhash/tokenpick/common"
	"github.com/lazyhash/tokenpick/tokens"
)

const (
	DefaultDebounce  = 300 * time.Millisecond
	DefaultCooldown  = 300 * time.Millisecond
	DefaultLookAhead = 5
)

type Options struct {
	// Debounce is how long the query input must be stable before a
	// search is issued.
	Debounce time.Duration
	// Cooldown is the minimum gap between two automatic load-mores,
	// bounding the request rate during fast scrolling.
	Cooldown time.Duration
	// LookAhead is how close to the end of the result set the visible
	// window may come before the next page is requested.
	LookAhead int
	// OnUpdate, when set, is called with a fresh snapshot after every
	// state change.
	OnUpdate func(Snapshot)
}

func (o Options) withDefaults() Options {
	if o.Debounce <= 0 {
		o.Debounce = DefaultDebounce
	}
	if o.Cooldown <= 0 {
		o.Cooldown = DefaultCooldown
	}
	if o.LookAhead <= 0 {
		o.LookAhead = DefaultLookAhead
	}
	return o
}

// Snapshot is the immutable view of the session state handed to the
// presentation layer.
type Snapshot struct {
	Query   string
	Results []common.SearchResult
	HasMore bool
	Loading bool
	// Err holds the last fetch failure. Searches are frequent, the
	// caller is expected to log it rather than interrupt the user.
	Err error
}

// Session accumulates paged search results for one query at a time.
// Queries are debounced, pages are merged duplicate free in first seen
// order and a response arriving for a superseded query is discarded.
// All methods are safe for concurrent use.
type Session struct {
	service tokens.Service
	opts    Options
	ctx     context.Context
	cancel  context.CancelFunc

	mu           sync.Mutex
	query        string
	page         int
	results      []common.SearchResult
	hasMore      bool
	loading      bool
	err          error
	version      uint64
	debounce     *time.Timer
	lastLoadMore time.Time
	closed       bool
}

func NewSession(ctx context.Context, service tokens.Service, opts Options) *Session {
	ctx, cancel := context.WithCancel(ctx)
	return &Session{
		service: service,
		opts:    opts.withDefaults(),
		ctx:     ctx,
		cancel:  cancel,
		results: []common.SearchResult{},
	}
}

// SetQuery feeds one keystroke worth of input to the session. The
// search fires once the input has been stable for the debounce window,
// every call before that resets the timer. A blank query clears the
// session immediately without asking the service.
func (s *Session) SetQuery(input string) {
	query := strings.TrimSpace(input)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}
	if query == "" {
		s.version++
		s.query = ""
		s.page = 0
		s.results = []common.SearchResult{}
		s.hasMore = false
		s.loading = false
		s.err = nil
		s.mu.Unlock()
		s.notify()
		return
	}
	s.debounce = time.AfterFunc(s.opts.Debounce, func() {
		s.startSearch(query)
	})
	s.mu.Unlock()
}

// startSearch runs the page 0 fetch for a settled query. Bumping the
// version first makes any response still in flight for an older query
// stale, it is dropped when it lands.
func (s *Session) startSearch(query string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.version++
	v := s.version
	s.query = query
	s.page = 0
	s.loading = true
	s.mu.Unlock()
	s.notify()

	page, err := s.service.SearchTokens(s.ctx, query, 0)

	s.mu.Lock()
	if s.closed || s.version != v {
		s.mu.Unlock()
		return
	}
	s.loading = false
	if err != nil {
		// the previous result set stays on screen
		s.err = err
		s.mu.Unlock()
		s.notify()
		return
	}
	s.err = nil
	s.results = append([]common.SearchResult{}, page.Results...)
	s.hasMore = page.HasMore
	s.mu.Unlock()
	s.notify()
}

// LoadMore fetches the next page and merges it into the result set. It
// is a no-op while a fetch is running or when the service reported no
// further pages. On failure the cursor is rolled back so the page can
// be retried.
func (s *Session) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if s.closed || !s.hasMore || s.loading {
		s.mu.Unlock()
		return nil
	}
	s.page++
	p, q, v := s.page, s.query, s.version
	s.loading = true
	s.lastLoadMore = time.Now()
	s.mu.Unlock()
	s.notify()

	page, err := s.service.SearchTokens(ctx, q, p)

	s.mu.Lock()
	if s.closed || s.version != v {
		s.mu.Unlock()
		return nil
	}
	s.loading = false
	if err != nil {
		s.page = p - 1
		s.err = err
		s.mu.Unlock()
		s.notify()
		return fmt.Errorf("loading page %d for '%s' failed: %w", p, q, err)
	}
	s.err = nil
	s.results = mergeResults(s.results, page.Results)
	s.hasMore = page.HasMore
	s.mu.Unlock()
	s.notify()
	return nil
}

// NotifyVisible tells the session the index of the last rendered
// entry. Coming within the look-ahead window of the end requests the
// next page, at most once per cooldown window.
func (s *Session) NotifyVisible(ctx context.Context, lastVisible int) error {
	s.mu.Lock()
	trigger := !s.closed && s.hasMore && !s.loading &&
		lastVisible >= len(s.results)-s.opts.LookAhead &&
		time.Since(s.lastLoadMore) >= s.opts.Cooldown
	s.mu.Unlock()
	if !trigger {
		return nil
	}
	return s.LoadMore(ctx)
}

// ToggleFavorite flips the favorite flag of the entry at index through
// the service. The displayed flag changes only after the service call
// succeeded, and it changes on every entry sharing the address since
// favorites are address scoped.
func (s *Session) ToggleFavorite(ctx context.Context, index int) error {
	s.mu.Lock()
	if s.closed || index < 0 || index >= len(s.results) {
		s.mu.Unlock()
		return fmt.Errorf("no result at index %d", index)
	}
	target := s.results[index]
	s.mu.Unlock()

	if err := s.service.ToggleFavorite(ctx, target.Address); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.results {
		if strings.EqualFold(s.results[i].Address, target.Address) {
			s.results[i].Favorite = !target.Favorite
		}
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

// Select records the entry at index as selected and returns its
// checksummed address for the clipboard. The address is returned even
// when recording the selection fails, the caller decides whether that
// failure is worth more than a log line.
func (s *Session) Select(ctx context.Context, index int) (string, error) {
	s.mu.Lock()
	if index < 0 || index >= len(s.results) {
		s.mu.Unlock()
		return "", fmt.Errorf("no result at index %d", index)
	}
	target := s.results[index]
	s.mu.Unlock()

	checksummed, err := checksum.Encode(target.Address)
	if err != nil {
		return "", err
	}
	return checksummed, s.service.UpdateLastSelected(ctx, target.Address)
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Query:   s.query,
		Results: append([]common.SearchResult{}, s.results...),
		HasMore: s.hasMore,
		Loading: s.loading,
		Err:     s.err,
	}
}

func (s *Session) notify() {
	if s.opts.OnUpdate == nil {
		return
	}
	s.opts.OnUpdate(s.Snapshot())
}

// Close tears the session down: the debounce timer is cancelled, the
// result set is cleared and responses still in flight are discarded.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}
	s.version++
	s.query = ""
	s.results = []common.SearchResult{}
	s.hasMore = false
	s.loading = false
	s.mu.Unlock()
	s.cancel()
}
