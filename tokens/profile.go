package tokens

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Profile is the persisted per-user state: which addresses are
// favorites and when each address was last selected. Addresses are
// stored lowercased so the flags apply across chains.
type Profile struct {
	ID           string           `json:"id"`
	Favorites    map[string]bool  `json:"favorites"`
	LastSelected map[string]int64 `json:"lastSelected"`
}

func newProfile() *Profile {
	return &Profile{
		ID:           uuid.NewString(),
		Favorites:    map[string]bool{},
		LastSelected: map[string]int64{},
	}
}

// Store reads and writes the profile. The file backed implementation
// is the normal one, tests substitute failing or preloaded stores.
type Store interface {
	Load() (*Profile, error)
	Save(*Profile) error
}

type FileStore struct {
	Path string
}

func (fs FileStore) Load() (*Profile, error) {
	content, err := os.ReadFile(fs.Path)
	if os.IsNotExist(err) {
		return newProfile(), nil
	}
	if err != nil {
		return nil, err
	}
	result := &Profile{}
	if err = json.Unmarshal(content, result); err != nil {
		return nil, fmt.Errorf("profile file %s is corrupted: %w", fs.Path, err)
	}
	// hand edited files may miss fields
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	if result.Favorites == nil {
		result.Favorites = map[string]bool{}
	}
	if result.LastSelected == nil {
		result.LastSelected = map[string]int64{}
	}
	return result, nil
}

func (fs FileStore) Save(p *Profile) error {
	jsonData, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fs.Path, jsonData, 0644)
}

// ProfileManager guards the profile with a mutex and writes it through
// the store on every mutation, so a crash never loses more than the
// mutation in flight.
type ProfileManager struct {
	mu      sync.Mutex
	store   Store
	profile *Profile
}

func NewProfileManager(store Store) *ProfileManager {
	return &ProfileManager{store: store}
}

func (pm *ProfileManager) Load() error {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	profile, err := pm.store.Load()
	if err != nil {
		return err
	}
	pm.profile = profile
	return nil
}

func (pm *ProfileManager) ID() string {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	if pm.profile == nil {
		return ""
	}
	return pm.profile.ID
}

func (pm *ProfileManager) IsFavorite(address string) bool {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	if pm.profile == nil {
		return false
	}
	return pm.profile.Favorites[strings.ToLower(address)]
}

// Toggle flips the favorite flag for address and persists it. The flip
// only sticks when the save succeeds, on failure the previous state is
// restored so callers keep displaying what is actually stored.
func (pm *ProfileManager) Toggle(address string) (bool, error) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	if pm.profile == nil {
		return false, ErrNotInitialized
	}
	key := strings.ToLower(address)
	next := !pm.profile.Favorites[key]
	if next {
		pm.profile.Favorites[key] = true
	} else {
		delete(pm.profile.Favorites, key)
	}
	if err := pm.store.Save(pm.profile); err != nil {
		if next {
			delete(pm.profile.Favorites, key)
		} else {
			pm.profile.Favorites[key] = true
		}
		return !next, err
	}
	return next, nil
}

// Touch records address as selected now and persists it.
func (pm *ProfileManager) Touch(address string) error {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	if pm.profile == nil {
		return ErrNotInitialized
	}
	pm.profile.LastSelected[strings.ToLower(address)] = time.Now().UnixMilli()
	return pm.store.Save(pm.profile)
}

func (pm *ProfileManager) LastSelectedAt(address string) int64 {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	if pm.profile == nil {
		return 0
	}
	return pm.profile.LastSelected[strings.ToLower(address)]
}

// FavoriteAddresses returns the favorite addresses, most recently
// selected first. Addresses never selected come last in lexical order
// to keep the listing stable.
func (pm *ProfileManager) FavoriteAddresses() []string {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	if pm.profile == nil {
		return []string{}
	}
	result := []string{}
	for addr := range pm.profile.Favorites {
		result = append(result, addr)
	}
	sort.Slice(result, func(i, j int) bool {
		ti := pm.profile.LastSelected[result[i]]
		tj := pm.profile.LastSelected[result[j]]
		if ti != tj {
			return ti > tj
		}
		return result[i] < result[j]
	})
	return result
}
