package search

import "github.com/lazyhash/tokenpick/common"

// mergeResults folds a freshly fetched page into the accumulated
// result set. Existing entries keep their original positions, incoming
// entries are appended in their returned order, and an incoming entry
// whose key is already present is dropped: the first occurrence of a
// key wins, later pages never overwrite it.
func mergeResults(existing, incoming []common.SearchResult) []common.SearchResult {
	seen := map[string]bool{}
	for _, r := range existing {
		seen[r.Key()] = true
	}
	merged := append([]common.SearchResult{}, existing...)
	for _, r := range incoming {
		if seen[r.Key()] {
			continue
		}
		seen[r.Key()] = true
		merged = append(merged, r)
	}
	return merged
}
