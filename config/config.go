package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/lazyhash/tokenpick/networks"
)

// Settings for all tokenpick commands. cmd binds its persistent flags
// straight onto these vars; Load then fills in every setting the user
// did not pass explicitly, from (in order of increasing precedence)
// built-in defaults, config.toml in the data dir, and TOKENPICK_*
// environment variables.
var (
	Network            string
	DataDir            string
	PageSize           int
	DebounceMS         int
	LoadMoreCooldownMS int
	LookAhead          int
	MemIndex           bool
)

const (
	DefaultPageSize           = 10
	DefaultDebounceMS         = 300
	DefaultLoadMoreCooldownMS = 300
	DefaultLookAhead          = 5
)

// Flag names, shared with cmd so Load can tell which settings were
// given explicitly on the command line.
const (
	FlagNetwork   = "network"
	FlagDataDir   = "data-dir"
	FlagPageSize  = "page-size"
	FlagDebounce  = "debounce"
	FlagCooldown  = "cooldown"
	FlagLookAhead = "look-ahead"
	FlagMemIndex  = "mem-index"
)

// fileConfig mirrors the optional config.toml in the data dir. Pointer
// fields so absent keys leave the current value alone. The data dir
// itself is not configurable here since the file is found through it.
type fileConfig struct {
	Network            *string `toml:"network"`
	PageSize           *int    `toml:"page_size"`
	DebounceMS         *int    `toml:"debounce_ms"`
	LoadMoreCooldownMS *int    `toml:"load_more_cooldown_ms"`
	LookAhead          *int    `toml:"look_ahead"`
	MemIndex           *bool   `toml:"mem_index"`
}

// Load resolves all settings. changed reports whether a flag was set
// explicitly on the command line; a changed flag always wins and nil
// means no flags at all. Load creates the data dir if needed.
func Load(changed func(name string) bool) error {
	if changed == nil {
		changed = func(string) bool { return false }
	}

	// a .env next to the binary may carry TOKENPICK_* vars; real
	// environment variables still win over it
	_ = godotenv.Load()

	if !changed(FlagDataDir) {
		DataDir = os.Getenv("TOKENPICK_DATA_DIR")
		if DataDir == "" {
			home, err := homeDir()
			if err != nil {
				return fmt.Errorf("resolving home dir failed: %w", err)
			}
			DataDir = filepath.Join(home, ".tokenpick")
		}
	}
	DataDir = expandPath(DataDir)
	if err := os.MkdirAll(DataDir, 0755); err != nil {
		return fmt.Errorf("creating data dir %s failed: %w", DataDir, err)
	}

	if !changed(FlagNetwork) {
		Network = ""
	}
	if !changed(FlagPageSize) {
		PageSize = DefaultPageSize
	}
	if !changed(FlagDebounce) {
		DebounceMS = DefaultDebounceMS
	}
	if !changed(FlagCooldown) {
		LoadMoreCooldownMS = DefaultLoadMoreCooldownMS
	}
	if !changed(FlagLookAhead) {
		LookAhead = DefaultLookAhead
	}
	if !changed(FlagMemIndex) {
		MemIndex = false
	}

	if err := applyFile(filepath.Join(DataDir, "config.toml"), changed); err != nil {
		return err
	}
	if err := applyEnv(changed); err != nil {
		return err
	}
	return Validate()
}

func applyFile(path string, changed func(string) bool) error {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	var fc fileConfig
	if err = toml.Unmarshal(content, &fc); err != nil {
		return fmt.Errorf("parsing %s failed: %w", path, err)
	}

	if fc.Network != nil && !changed(FlagNetwork) {
		Network = *fc.Network
	}
	if fc.PageSize != nil && !changed(FlagPageSize) {
		PageSize = *fc.PageSize
	}
	if fc.DebounceMS != nil && !changed(FlagDebounce) {
		DebounceMS = *fc.DebounceMS
	}
	if fc.LoadMoreCooldownMS != nil && !changed(FlagCooldown) {
		LoadMoreCooldownMS = *fc.LoadMoreCooldownMS
	}
	if fc.LookAhead != nil && !changed(FlagLookAhead) {
		LookAhead = *fc.LookAhead
	}
	if fc.MemIndex != nil && !changed(FlagMemIndex) {
		MemIndex = *fc.MemIndex
	}
	return nil
}

func applyEnv(changed func(string) bool) error {
	if !changed(FlagNetwork) {
		if v := os.Getenv("TOKENPICK_NETWORK"); v != "" {
			Network = v
		}
	}
	if err := envInt("TOKENPICK_PAGE_SIZE", FlagPageSize, &PageSize, changed); err != nil {
		return err
	}
	if err := envInt("TOKENPICK_DEBOUNCE_MS", FlagDebounce, &DebounceMS, changed); err != nil {
		return err
	}
	if err := envInt("TOKENPICK_LOAD_MORE_COOLDOWN_MS", FlagCooldown, &LoadMoreCooldownMS, changed); err != nil {
		return err
	}
	if err := envInt("TOKENPICK_LOOK_AHEAD", FlagLookAhead, &LookAhead, changed); err != nil {
		return err
	}
	if !changed(FlagMemIndex) {
		switch os.Getenv("TOKENPICK_MEM_INDEX") {
		case "true", "1", "yes":
			MemIndex = true
		case "false", "0", "no":
			MemIndex = false
		}
	}
	return nil
}

func envInt(key, flag string, target *int, changed func(string) bool) error {
	if changed(flag) {
		return nil
	}
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s must be an integer, got '%s'", key, v)
	}
	*target = n
	return nil
}

// Validate checks ranges and resolves the network restriction. Load
// calls it last, so a successful Load means the settings are usable.
func Validate() error {
	if Network != "" {
		if _, err := networks.GetNetwork(Network); err != nil {
			return err
		}
	}
	if PageSize < 1 || PageSize > 100 {
		return fmt.Errorf("invalid page_size: %d (must be 1-100)", PageSize)
	}
	if DebounceMS < 0 || DebounceMS > 5000 {
		return fmt.Errorf("invalid debounce_ms: %d (must be 0-5000)", DebounceMS)
	}
	if LoadMoreCooldownMS < 0 || LoadMoreCooldownMS > 60000 {
		return fmt.Errorf("invalid load_more_cooldown_ms: %d (must be 0-60000)", LoadMoreCooldownMS)
	}
	if LookAhead < 0 || LookAhead > 50 {
		return fmt.Errorf("invalid look_ahead: %d (must be 0-50)", LookAhead)
	}
	return nil
}

// ChainID resolves the configured network restriction to its chain ID.
// Returns 0 when no network is configured, meaning all chains.
func ChainID() (int64, error) {
	if Network == "" {
		return 0, nil
	}
	n, err := networks.GetNetwork(Network)
	if err != nil {
		return 0, err
	}
	return n.GetChainID(), nil
}

// Debounce returns the keystroke debounce as a duration.
func Debounce() time.Duration {
	return time.Duration(DebounceMS) * time.Millisecond
}

// LoadMoreCooldown returns the auto load-more cooldown as a duration.
func LoadMoreCooldown() time.Duration {
	return time.Duration(LoadMoreCooldownMS) * time.Millisecond
}

func homeDir() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", err
	}
	return usr.HomeDir, nil
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := homeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
