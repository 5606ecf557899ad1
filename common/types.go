package common

import (
	"fmt"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

// Token is one entry of token metadata. Identity is (ChainID, Address)
// with the address compared case-insensitively; two tokens with the same
// hex address on different chains are distinct entries.
type Token struct {
	ChainID int64  `json:"chainId"`
	Address string `json:"address"`
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	LogoURI string `json:"logoUri,omitempty"`
}

// Key returns the canonical identity key of the token, also used by the
// presentation layer as the stable list identity of a row.
func (t Token) Key() string {
	return ResultKey(t.ChainID, t.Address)
}

// SearchResult is a Token plus the user-scoped favorite flag as reported
// by the token service at search time.
type SearchResult struct {
	Token
	Favorite bool `json:"favorite"`
}

// ResultKey builds the "<chainId>-<lowercase address>" identity key under
// which search results are deduplicated.
func ResultKey(chainID int64, address string) string {
	return fmt.Sprintf("%d-%s", chainID, strings.ToLower(address))
}

// IsHexAddress reports whether s is a 20-byte hex address with or without
// the 0x prefix.
func IsHexAddress(s string) bool {
	return ethcommon.IsHexAddress(s)
}
