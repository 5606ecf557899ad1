package db

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/lazyhash/tokenpick/common"
)

func getTokenMatches(input string, source FuzzySource) ([]common.Token, []int) {
	matches := fuzzy.FindFrom(strings.Replace(input, " ", "_", -1), source)
	result := []common.Token{}
	scores := []int{}
	for i := 0; i < 10; i++ {
		if i < len(matches) {
			result = append(result, source[matches[i].Index])
			scores = append(scores, matches[i].Score)
		} else {
			break
		}
	}
	return result, scores
}

// GetTokens returns up to 10 catalog tokens fuzzily matching input,
// best match first, together with their match scores.
func GetTokens(input string) ([]common.Token, []int) {
	source := NewFuzzySource()
	return getTokenMatches(input, source)
}

func GetToken(input string) (common.Token, error) {
	source := NewFuzzySource()
	matches, _ := getTokenMatches(input, source)
	if len(matches) == 0 {
		return common.Token{}, fmt.Errorf("No token is found with '%s'", input)
	}
	return matches[0], nil
}

// GetChainToken is GetToken limited to tokens deployed on chainID.
func GetChainToken(chainID int64, input string) (common.Token, error) {
	source := NewChainFuzzySource(chainID)
	matches, _ := getTokenMatches(input, source)
	if len(matches) == 0 {
		return common.Token{}, fmt.Errorf("No token is found with '%s' on chain %d", input, chainID)
	}
	return matches[0], nil
}

func AllTokens() []common.Token {
	return TOKENS
}

func TokensByChain(chainID int64) []common.Token {
	result := []common.Token{}
	for _, t := range TOKENS {
		if t.ChainID == chainID {
			result = append(result, t)
		}
	}
	return result
}

// FindTokensByAddress returns every catalog entry at address, one per
// chain the address is deployed on. Matching ignores case.
func FindTokensByAddress(address string) []common.Token {
	needle := strings.ToLower(address)
	result := []common.Token{}
	for _, t := range TOKENS {
		if strings.ToLower(t.Address) == needle {
			result = append(result, t)
		}
	}
	return result
}
