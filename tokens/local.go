package tokens

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lazyhash/tokenpick/bleve"
	"github.com/lazyhash/tokenpick/common"
	"github.com/lazyhash/tokenpick/db"
)

const searchCacheSize = 128

// cachedPage holds raw index output. Favorite flags are annotated per
// request so a toggle never serves stale flags out of the cache.
type cachedPage struct {
	tokens  []common.Token
	hasMore bool
}

// LocalService implements Service on top of the embedded catalog: a
// bleve index answers queries page by page and the profile supplies
// the favorite and selection state.
type LocalService struct {
	dataDir  string
	memIndex bool
	pageSize int
	chainID  int64

	mu      sync.Mutex
	idx     *bleve.TokenIndex
	profile *ProfileManager
	cache   *lru.Cache[string, cachedPage]
}

func NewLocalService(dataDir string, memIndex bool, pageSize int) *LocalService {
	return &LocalService{
		dataDir:  dataDir,
		memIndex: memIndex,
		pageSize: pageSize,
	}
}

// NewChainLocalService is NewLocalService restricted to one chain: only
// that chain's tokens are indexed and returned. The catalog fingerprint
// covers the restriction, so switching chains reindexes a persistent
// index on the next Initialize.
func NewChainLocalService(dataDir string, memIndex bool, pageSize int, chainID int64) *LocalService {
	return &LocalService{
		dataDir:  dataDir,
		memIndex: memIndex,
		pageSize: pageSize,
		chainID:  chainID,
	}
}

func (s *LocalService) catalog() []common.Token {
	if s.chainID != 0 {
		return db.TokensByChain(s.chainID)
	}
	return db.AllTokens()
}

// Initialize opens the token index and loads the profile. It is
// idempotent, later calls on an initialized service return nil.
func (s *LocalService) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.idx != nil {
		return nil
	}

	cache, err := lru.New[string, cachedPage](searchCacheSize)
	if err != nil {
		return err
	}

	var idx *bleve.TokenIndex
	profile := NewProfileManager(FileStore{Path: filepath.Join(s.dataDir, "profile.json")})
	err = common.RunParallel(
		func() error {
			var err error
			if s.memIndex {
				idx, err = bleve.NewMem(s.catalog())
			} else {
				idx, err = bleve.New(s.dataDir, s.catalog())
			}
			if err != nil {
				return fmt.Errorf("opening token index failed: %w", err)
			}
			return nil
		},
		func() error {
			if err := profile.Load(); err != nil {
				return fmt.Errorf("loading profile failed: %w", err)
			}
			return nil
		},
	)
	if err != nil {
		return err
	}

	s.idx = idx
	s.profile = profile
	s.cache = cache
	return nil
}

func (s *LocalService) handles() (*bleve.TokenIndex, *ProfileManager, *lru.Cache[string, cachedPage]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx, s.profile, s.cache
}

func (s *LocalService) SearchTokens(ctx context.Context, query string, page int) (Page, error) {
	idx, profile, cache := s.handles()
	if idx == nil {
		return Page{}, ErrNotInitialized
	}
	query = strings.TrimSpace(query)
	if query == "" || page < 0 {
		return Page{Results: []common.SearchResult{}}, nil
	}

	cacheKey := fmt.Sprintf("%s|%d", strings.ToLower(query), page)
	cached, found := cache.Get(cacheKey)
	if !found {
		matches, hasMore, err := idx.Search(ctx, query, page*s.pageSize, s.pageSize)
		if err != nil {
			return Page{}, err
		}
		cached = cachedPage{tokens: matches, hasMore: hasMore}
		cache.Add(cacheKey, cached)
	}

	results := make([]common.SearchResult, 0, len(cached.tokens))
	for _, tok := range cached.tokens {
		results = append(results, common.SearchResult{
			Token:    tok,
			Favorite: profile.IsFavorite(tok.Address),
		})
	}
	// favorites float to the front of the page, relative order kept
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Favorite && !results[j].Favorite
	})
	return Page{Results: results, HasMore: cached.hasMore}, nil
}

func (s *LocalService) ToggleFavorite(ctx context.Context, address string) error {
	_, profile, _ := s.handles()
	if profile == nil {
		return ErrNotInitialized
	}
	if !common.IsHexAddress(address) {
		return fmt.Errorf("'%s' is not a token address", address)
	}
	_, err := profile.Toggle(address)
	return err
}

func (s *LocalService) UpdateLastSelected(ctx context.Context, address string) error {
	_, profile, _ := s.handles()
	if profile == nil {
		return ErrNotInitialized
	}
	if !common.IsHexAddress(address) {
		return fmt.Errorf("'%s' is not a token address", address)
	}
	return profile.Touch(address)
}

// Favorites returns the favorite tokens resolved against the catalog,
// most recently selected address first. An address deployed on several
// chains contributes one entry per chain.
func (s *LocalService) Favorites(ctx context.Context) ([]common.SearchResult, error) {
	_, profile, _ := s.handles()
	if profile == nil {
		return nil, ErrNotInitialized
	}
	result := []common.SearchResult{}
	for _, addr := range profile.FavoriteAddresses() {
		for _, tok := range db.FindTokensByAddress(addr) {
			if s.chainID != 0 && tok.ChainID != s.chainID {
				continue
			}
			result = append(result, common.SearchResult{Token: tok, Favorite: true})
		}
	}
	return result, nil
}

// Profile exposes the loaded profile manager, nil before Initialize.
func (s *LocalService) Profile() *ProfileManager {
	_, profile, _ := s.handles()
	return profile
}

// Index exposes the opened token index, nil before Initialize.
func (s *LocalService) Index() *bleve.TokenIndex {
	idx, _, _ := s.handles()
	return idx
}

func (s *LocalService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.idx == nil {
		return nil
	}
	err := s.idx.Close()
	s.idx = nil
	return err
}
