// Package tokens provides the token lookup service the search session
// is wired to: paged token search over the indexed catalog plus the
// per-user favorite and selection state.
package tokens

import (
	"context"
	"errors"

	"github.com/lazyhash/tokenpick/common"
)

var ErrNotInitialized = errors.New("token service is not initialized")

// Page is one bounded batch of search results. HasMore tells the
// caller whether requesting the next page can return anything.
type Page struct {
	Results []common.SearchResult `json:"results"`
	HasMore bool                  `json:"hasMore"`
}

// Service is the token lookup collaborator of the search session.
// Implementations synchronize internally, callers may share one
// instance across goroutines.
type Service interface {
	Initialize(ctx context.Context) error
	SearchTokens(ctx context.Context, query string, page int) (Page, error)
	ToggleFavorite(ctx context.Context, address string) error
	UpdateLastSelected(ctx context.Context, address string) error
}
