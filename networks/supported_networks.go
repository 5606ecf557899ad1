package networks

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

var ErrNetworkNotFound = errors.New("network not found")

// genericNetwork is a data driven Network implementation. Supported
// chains are declared as values of this struct rather than one type per
// chain since only their display metadata matters here.
type genericNetwork struct {
	Name              string
	AlternativeNames  []string
	ChainID           int64
	NativeTokenSymbol string
	ExplorerDomain    string
}

func (n genericNetwork) GetName() string               { return n.Name }
func (n genericNetwork) GetAlternativeNames() []string { return n.AlternativeNames }
func (n genericNetwork) GetChainID() int64             { return n.ChainID }
func (n genericNetwork) GetNativeTokenSymbol() string  { return n.NativeTokenSymbol }
func (n genericNetwork) GetExplorerDomain() string     { return n.ExplorerDomain }

var supportedNetworks = []Network{
	genericNetwork{
		Name:              "ethereum",
		AlternativeNames:  []string{"mainnet", "eth"},
		ChainID:           1,
		NativeTokenSymbol: "ETH",
		ExplorerDomain:    "https://etherscan.io",
	},
	genericNetwork{
		Name:              "optimism",
		AlternativeNames:  []string{"op"},
		ChainID:           10,
		NativeTokenSymbol: "ETH",
		ExplorerDomain:    "https://optimistic.etherscan.io",
	},
	genericNetwork{
		Name:              "bsc",
		AlternativeNames:  []string{"binance", "bnb"},
		ChainID:           56,
		NativeTokenSymbol: "BNB",
		ExplorerDomain:    "https://bscscan.com",
	},
	genericNetwork{
		Name:              "polygon",
		AlternativeNames:  []string{"matic"},
		ChainID:           137,
		NativeTokenSymbol: "POL",
		ExplorerDomain:    "https://polygonscan.com",
	},
	genericNetwork{
		Name:              "base",
		AlternativeNames:  []string{},
		ChainID:           8453,
		NativeTokenSymbol: "ETH",
		ExplorerDomain:    "https://basescan.org",
	},
	genericNetwork{
		Name:              "arbitrum",
		AlternativeNames:  []string{"arb"},
		ChainID:           42161,
		NativeTokenSymbol: "ETH",
		ExplorerDomain:    "https://arbiscan.io",
	},
	genericNetwork{
		Name:              "avalanche",
		AlternativeNames:  []string{"avax"},
		ChainID:           43114,
		NativeTokenSymbol: "AVAX",
		ExplorerDomain:    "https://snowtrace.io",
	},
}

type registry struct {
	networks     map[string]Network
	networksByID map[int64]Network
}

func newRegistry(nws []Network) *registry {
	r := &registry{
		networks:     map[string]Network{},
		networksByID: map[int64]Network{},
	}
	for _, nw := range nws {
		r.add(nw)
	}
	return r
}

func (r *registry) add(nw Network) {
	names := append([]string{nw.GetName()}, nw.GetAlternativeNames()...)
	for _, name := range names {
		key := strings.ToLower(name)
		if _, found := r.networks[key]; found {
			panic(fmt.Sprintf("network name %s is registered twice", key))
		}
		r.networks[key] = nw
	}
	if _, found := r.networksByID[nw.GetChainID()]; found {
		panic(fmt.Sprintf("chain id %d is registered twice", nw.GetChainID()))
	}
	r.networksByID[nw.GetChainID()] = nw
}

var (
	sharedRegistry     *registry
	sharedRegistryOnce sync.Once
)

func getRegistry() *registry {
	sharedRegistryOnce.Do(func() {
		sharedRegistry = newRegistry(supportedNetworks)
	})
	return sharedRegistry
}

// GetNetwork looks a network up by its name or one of its alternative
// names, case insensitively.
func GetNetwork(name string) (Network, error) {
	nw, found := getRegistry().networks[strings.ToLower(name)]
	if !found {
		return nil, fmt.Errorf("%s: %w", name, ErrNetworkNotFound)
	}
	return nw, nil
}

func GetNetworkByID(chainID int64) (Network, error) {
	nw, found := getRegistry().networksByID[chainID]
	if !found {
		return nil, fmt.Errorf("chain %d: %w", chainID, ErrNetworkNotFound)
	}
	return nw, nil
}

func GetSupportedNetworks() []Network {
	return supportedNetworks
}

// ChainName returns the display name for a chain id, falling back to
// the numeric id for chains outside the supported table.
func ChainName(chainID int64) string {
	nw, err := GetNetworkByID(chainID)
	if err != nil {
		return strconv.FormatInt(chainID, 10)
	}
	return nw.GetName()
}

// ExplorerAddressURL returns the block explorer page for address on the
// given chain, empty when the chain is unknown or has no explorer.
func ExplorerAddressURL(chainID int64, address string) string {
	nw, err := GetNetworkByID(chainID)
	if err != nil || nw.GetExplorerDomain() == "" {
		return ""
	}
	return fmt.Sprintf("%s/address/%s", nw.GetExplorerDomain(), address)
}
