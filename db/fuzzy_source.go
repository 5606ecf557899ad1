package db

import (
	"fmt"
	"strings"

	"github.com/lazyhash/tokenpick/common"
)

type FuzzySource []common.Token

func (self FuzzySource) Len() int {
	return len(self)
}

func (self FuzzySource) String(i int) string {
	t := self[i]
	return fmt.Sprintf(
		"%s_%s_%s",
		strings.Replace(t.Symbol, " ", "_", -1),
		strings.Replace(t.Name, " ", "_", -1),
		strings.ToLower(t.Address),
	)
}

func NewFuzzySource() FuzzySource {
	return FuzzySource(AllTokens())
}

// NewChainFuzzySource restricts matching to tokens deployed on one
// chain.
func NewChainFuzzySource(chainID int64) FuzzySource {
	return FuzzySource(TokensByChain(chainID))
}
