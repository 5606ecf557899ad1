package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lazyhash/tokenpick/config"
	"github.com/lazyhash/tokenpick/networks"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TOKENPICK_DATA_DIR", t.TempDir())

	if err := config.Load(nil); err != nil {
		t.Fatalf("Load failed: %s", err)
	}
	if config.Network != "" {
		t.Errorf("default Network: want empty, got '%s'", config.Network)
	}
	if config.PageSize != config.DefaultPageSize {
		t.Errorf("default PageSize: want %d, got %d", config.DefaultPageSize, config.PageSize)
	}
	if config.DebounceMS != config.DefaultDebounceMS {
		t.Errorf("default DebounceMS: want %d, got %d", config.DefaultDebounceMS, config.DebounceMS)
	}
	if config.LookAhead != config.DefaultLookAhead {
		t.Errorf("default LookAhead: want %d, got %d", config.DefaultLookAhead, config.LookAhead)
	}
	if config.MemIndex {
		t.Error("default MemIndex: want false, got true")
	}
	if got := config.Debounce(); got != 300*time.Millisecond {
		t.Errorf("Debounce: want 300ms, got %s", got)
	}
	if id, err := config.ChainID(); err != nil || id != 0 {
		t.Errorf("ChainID with no network: want 0, got %d (err %v)", id, err)
	}
}

func TestLoadCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	t.Setenv("TOKENPICK_DATA_DIR", dir)

	if err := config.Load(nil); err != nil {
		t.Fatalf("Load failed: %s", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("data dir was not created: %s", err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", dir)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TOKENPICK_DATA_DIR", dir)
	content := "network = \"polygon\"\npage_size = 25\nmem_index = true\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := config.Load(nil); err != nil {
		t.Fatalf("Load failed: %s", err)
	}
	if config.Network != "polygon" {
		t.Errorf("Network: want 'polygon', got '%s'", config.Network)
	}
	if config.PageSize != 25 {
		t.Errorf("PageSize: want 25, got %d", config.PageSize)
	}
	if !config.MemIndex {
		t.Error("MemIndex: want true, got false")
	}
	// keys absent from the file keep their defaults
	if config.DebounceMS != config.DefaultDebounceMS {
		t.Errorf("DebounceMS: want %d, got %d", config.DefaultDebounceMS, config.DebounceMS)
	}
	id, err := config.ChainID()
	if err != nil {
		t.Fatalf("ChainID failed: %s", err)
	}
	if id != 137 {
		t.Errorf("ChainID: want 137, got %d", id)
	}
}

func TestLoadEnvOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TOKENPICK_DATA_DIR", dir)
	t.Setenv("TOKENPICK_PAGE_SIZE", "50")
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("page_size = 25\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := config.Load(nil); err != nil {
		t.Fatalf("Load failed: %s", err)
	}
	if config.PageSize != 50 {
		t.Errorf("PageSize: want 50 from env, got %d", config.PageSize)
	}
}

func TestLoadExplicitFlagWins(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TOKENPICK_DATA_DIR", dir)
	t.Setenv("TOKENPICK_PAGE_SIZE", "50")
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("page_size = 25\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// simulate cobra having written an explicit flag value already
	config.PageSize = 77
	changed := func(name string) bool { return name == config.FlagPageSize }

	if err := config.Load(changed); err != nil {
		t.Fatalf("Load failed: %s", err)
	}
	if config.PageSize != 77 {
		t.Errorf("PageSize: want 77 from flag, got %d", config.PageSize)
	}
}

func TestLoadRejectsUnknownNetwork(t *testing.T) {
	t.Setenv("TOKENPICK_DATA_DIR", t.TempDir())
	t.Setenv("TOKENPICK_NETWORK", "dogecoin")

	err := config.Load(nil)
	if err == nil {
		t.Fatal("expected Load to fail on unknown network")
	}
	if !errors.Is(err, networks.ErrNetworkNotFound) {
		t.Errorf("want ErrNetworkNotFound, got %s", err)
	}
}

func TestLoadRejectsMalformedInt(t *testing.T) {
	t.Setenv("TOKENPICK_DATA_DIR", t.TempDir())
	t.Setenv("TOKENPICK_PAGE_SIZE", "lots")

	err := config.Load(nil)
	if err == nil {
		t.Fatal("expected Load to fail on malformed TOKENPICK_PAGE_SIZE")
	}
	if !strings.Contains(err.Error(), "TOKENPICK_PAGE_SIZE") {
		t.Errorf("error should name the variable, got '%s'", err)
	}
}

func TestLoadRejectsOutOfRangeValues(t *testing.T) {
	t.Setenv("TOKENPICK_DATA_DIR", t.TempDir())
	t.Setenv("TOKENPICK_PAGE_SIZE", "0")

	if err := config.Load(nil); err == nil {
		t.Error("expected Load to reject page size 0")
	}
}
