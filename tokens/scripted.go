package tokens

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/lazyhash/tokenpick/common"
)

// Scripted is a canned Service for tests. Configure the script fields
// before handing it to the code under test, then assert on the
// recorded calls.
type Scripted struct {
	// Script maps a lowercased query to its pages in order. Queries
	// outside the script and pages past the scripted ones return an
	// empty page with HasMore false.
	Script map[string][]Page
	// Errs fails SearchTokens for specific lowercased queries.
	Errs map[string]error
	// Delays holds a response back per lowercased query, long enough
	// for a newer query to overtake a stale one.
	Delays map[string]time.Duration

	InitErr   error
	ToggleErr error

	mu           sync.Mutex
	calls        []SearchCall
	toggled      []string
	lastSelected []string
}

type SearchCall struct {
	Query string
	Page  int
}

func (s *Scripted) Initialize(ctx context.Context) error {
	return s.InitErr
}

func (s *Scripted) SearchTokens(ctx context.Context, query string, page int) (Page, error) {
	key := strings.ToLower(strings.TrimSpace(query))

	s.mu.Lock()
	s.calls = append(s.calls, SearchCall{Query: query, Page: page})
	delay := s.Delays[key]
	err := s.Errs[key]
	pages := s.Script[key]
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return Page{}, ctx.Err()
		}
	}
	if err != nil {
		return Page{}, err
	}
	if page < 0 || page >= len(pages) {
		return Page{Results: []common.SearchResult{}}, nil
	}
	return pages[page], nil
}

func (s *Scripted) ToggleFavorite(ctx context.Context, address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ToggleErr != nil {
		return s.ToggleErr
	}
	s.toggled = append(s.toggled, strings.ToLower(address))
	return nil
}

func (s *Scripted) UpdateLastSelected(ctx context.Context, address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSelected = append(s.lastSelected, strings.ToLower(address))
	return nil
}

// SetErr makes SearchTokens fail for query from now on, or clears the
// failure again when err is nil. Unlike the script fields this is safe
// to call while the session under test is running.
func (s *Scripted) SetErr(query string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Errs == nil {
		s.Errs = map[string]error{}
	}
	key := strings.ToLower(strings.TrimSpace(query))
	if err == nil {
		delete(s.Errs, key)
		return
	}
	s.Errs[key] = err
}

func (s *Scripted) SearchCalls() []SearchCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SearchCall{}, s.calls...)
}

// CallsFor counts how often query was searched, across all pages.
func (s *Scripted) CallsFor(query string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, call := range s.calls {
		if strings.EqualFold(call.Query, query) {
			n++
		}
	}
	return n
}

func (s *Scripted) Toggled() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.toggled...)
}

func (s *Scripted) LastSelected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.lastSelected...)
}
