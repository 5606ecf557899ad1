package search

import (
	"strings"
	"testing"

	"github.com/lazyhash/tokenpick/common"
)

func entry(chainID int64, address, symbol string) common.SearchResult {
	return common.SearchResult{
		Token: common.Token{
			ChainID: chainID,
			Address: address,
			Symbol:  symbol,
			Name:    symbol,
		},
	}
}

func keysOf(results []common.SearchResult) []string {
	keys := []string{}
	for _, r := range results {
		keys = append(keys, r.Key())
	}
	return keys
}

func assertKeys(t *testing.T, got []common.SearchResult, want ...string) {
	t.Helper()
	gotKeys := keysOf(got)
	if len(gotKeys) != len(want) {
		t.Fatalf("got keys %v, want %v", gotKeys, want)
	}
	for i := range want {
		if gotKeys[i] != want[i] {
			t.Fatalf("got keys %v, want %v", gotKeys, want)
		}
	}
}

var (
	addrA = "0x" + strings.Repeat("aa", 19) + "01"
	addrB = "0x" + strings.Repeat("bb", 19) + "02"
	addrC = "0x" + strings.Repeat("cc", 19) + "03"
)

func TestMergeResultsAppendsOnlyNewKeys(t *testing.T) {
	existing := []common.SearchResult{entry(1, addrA, "AAA"), entry(1, addrB, "BBB")}
	incoming := []common.SearchResult{entry(1, addrA, "AAA"), entry(1, addrC, "CCC")}

	merged := mergeResults(existing, incoming)
	assertKeys(t, merged,
		common.ResultKey(1, addrA),
		common.ResultKey(1, addrB),
		common.ResultKey(1, addrC),
	)
}

func TestMergeResultsIdempotent(t *testing.T) {
	existing := []common.SearchResult{entry(1, addrA, "AAA")}
	incoming := []common.SearchResult{entry(1, addrB, "BBB"), entry(1, addrC, "CCC")}

	once := mergeResults(existing, incoming)
	twice := mergeResults(once, incoming)
	assertKeys(t, twice, keysOf(once)...)
}

func TestMergeResultsFirstOccurrenceWins(t *testing.T) {
	existing := []common.SearchResult{entry(1, addrA, "ORIGINAL")}
	duplicate := entry(1, addrA, "REPLACEMENT")
	duplicate.Favorite = true

	merged := mergeResults(existing, []common.SearchResult{duplicate})
	if len(merged) != 1 {
		t.Fatalf("merged %d entries, want 1", len(merged))
	}
	if merged[0].Symbol != "ORIGINAL" || merged[0].Favorite {
		t.Errorf("duplicate overwrote the first occurrence: %+v", merged[0])
	}
}

func TestMergeResultsKeyIgnoresAddressCase(t *testing.T) {
	upper := "0x" + strings.ToUpper(addrA[2:])
	existing := []common.SearchResult{entry(1, strings.ToLower(addrA), "AAA")}
	incoming := []common.SearchResult{entry(1, upper, "AAA")}

	merged := mergeResults(existing, incoming)
	if len(merged) != 1 {
		t.Errorf("differently cased addresses should share one key, got %d entries", len(merged))
	}
}

func TestMergeResultsKeepsChainsApart(t *testing.T) {
	existing := []common.SearchResult{entry(1, addrA, "AAA")}
	incoming := []common.SearchResult{entry(137, addrA, "AAA")}

	merged := mergeResults(existing, incoming)
	if len(merged) != 2 {
		t.Errorf("the same address on two chains is two entries, got %d", len(merged))
	}
}

func TestMergeResultsEmptyInputs(t *testing.T) {
	if got := mergeResults(nil, nil); len(got) != 0 {
		t.Errorf("merging nothing should yield nothing, got %v", got)
	}
	incoming := []common.SearchResult{entry(1, addrA, "AAA")}
	assertKeys(t, mergeResults(nil, incoming), common.ResultKey(1, addrA))
	assertKeys(t, mergeResults(incoming, nil), common.ResultKey(1, addrA))
}
