package networks_test

import (
	"errors"
	"testing"

	"github.com/lazyhash/tokenpick/networks"
)

func TestGetNetwork(t *testing.T) {
	cases := []struct {
		name      string
		wantChain int64
	}{
		{"ethereum", 1},
		{"mainnet", 1},
		{"ETH", 1},
		{"matic", 137},
		{"avax", 43114},
	}
	for _, c := range cases {
		nw, err := networks.GetNetwork(c.name)
		if err != nil {
			t.Fatalf("GetNetwork(%q) returned error: %s", c.name, err)
		}
		if nw.GetChainID() != c.wantChain {
			t.Errorf("GetNetwork(%q) chain id = %d, want %d", c.name, nw.GetChainID(), c.wantChain)
		}
	}

	_, err := networks.GetNetwork("dogechain")
	if !errors.Is(err, networks.ErrNetworkNotFound) {
		t.Errorf("GetNetwork on unknown name returned %v, want ErrNetworkNotFound", err)
	}
}

func TestGetNetworkByID(t *testing.T) {
	nw, err := networks.GetNetworkByID(56)
	if err != nil {
		t.Fatalf("GetNetworkByID(56) returned error: %s", err)
	}
	if nw.GetName() != "bsc" {
		t.Errorf("GetNetworkByID(56) = %s, want bsc", nw.GetName())
	}

	_, err = networks.GetNetworkByID(999999)
	if !errors.Is(err, networks.ErrNetworkNotFound) {
		t.Errorf("GetNetworkByID on unknown id returned %v, want ErrNetworkNotFound", err)
	}
}

func TestChainName(t *testing.T) {
	if got := networks.ChainName(1); got != "ethereum" {
		t.Errorf("ChainName(1) = %q, want %q", got, "ethereum")
	}
	if got := networks.ChainName(777777); got != "777777" {
		t.Errorf("ChainName(777777) = %q, want %q", got, "777777")
	}
}

func TestExplorerAddressURL(t *testing.T) {
	addr := "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	want := "https://etherscan.io/address/" + addr
	if got := networks.ExplorerAddressURL(1, addr); got != want {
		t.Errorf("ExplorerAddressURL(1) = %q, want %q", got, want)
	}
	if got := networks.ExplorerAddressURL(999999, addr); got != "" {
		t.Errorf("unknown chains have no explorer, got %q", got)
	}
}
