package bleve

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/analysis/lang/en"
	"github.com/blevesearch/bleve/mapping"

	"github.com/lazyhash/tokenpick/common"
	"github.com/lazyhash/tokenpick/networks"
)

const batchSize = 1000

// tokenDoc is the indexed projection of a catalog token. Chain carries
// the network display name so queries like "polygon" narrow results to
// that chain.
type tokenDoc struct {
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Chain   string `json:"chain"`
	Address string `json:"address"`
}

// TokenIndex is a full text index over the token catalog, searched with
// offset/limit paging. Hash fingerprints the catalog that was indexed
// so that opening the index with a changed catalog reindexes it.
type TokenIndex struct {
	index    bleve.Index
	tokens   map[string]common.Token
	metaPath string

	Hash string `json:"hash"`
}

// CatalogHash fingerprints the catalog content the index depends on.
func CatalogHash(catalog []common.Token) string {
	h := fnv.New64a()
	for _, tok := range catalog {
		fmt.Fprintf(h, "%s|%s|%s\n", tok.Key(), tok.Symbol, tok.Name)
	}
	return fmt.Sprintf("%d-%x", len(catalog), h.Sum64())
}

func buildIndexMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = en.AnalyzerName

	// addresses are opaque hex strings, stemming them buys nothing
	addressFieldMapping := bleve.NewTextFieldMapping()
	addressFieldMapping.Analyzer = standard.Name

	defaultMapping := bleve.NewDocumentMapping()
	defaultMapping.AddFieldMappingsAt("symbol", textFieldMapping)
	defaultMapping.AddFieldMappingsAt("name", textFieldMapping)
	defaultMapping.AddFieldMappingsAt("chain", textFieldMapping)
	defaultMapping.AddFieldMappingsAt("address", addressFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", defaultMapping)
	indexMapping.DefaultAnalyzer = "en"

	return indexMapping
}

func tokenMap(catalog []common.Token) map[string]common.Token {
	result := map[string]common.Token{}
	for _, tok := range catalog {
		result[tok.Key()] = tok
	}
	return result
}

func loadMeta(path string) *TokenIndex {
	result := &TokenIndex{metaPath: path}
	content, err := os.ReadFile(path)
	if err != nil {
		return result
	}
	if err = json.Unmarshal(content, result); err != nil {
		return &TokenIndex{metaPath: path}
	}
	return result
}

// New opens the persistent token index under dir, creating and indexing
// it on first use. When the catalog fingerprint changed the index is
// dropped and rebuilt, documents of removed tokens must not survive.
func New(dir string, catalog []common.Token) (*TokenIndex, error) {
	ti := loadMeta(filepath.Join(dir, "index.meta.json"))
	dataPath := filepath.Join(dir, "tokens.bleve")
	wantHash := CatalogHash(catalog)

	index, err := bleve.Open(dataPath)
	if err != nil && err != bleve.ErrorIndexPathDoesNotExist {
		return nil, err
	}
	fresh := err == bleve.ErrorIndexPathDoesNotExist
	if !fresh && ti.Hash != wantHash {
		if err = index.Close(); err != nil {
			return nil, err
		}
		if err = os.RemoveAll(dataPath); err != nil {
			return nil, err
		}
		fresh = true
	}
	if fresh {
		index, err = bleve.New(dataPath, buildIndexMapping())
		if err != nil {
			return nil, err
		}
		ti.Hash = ""
	}
	ti.index = index
	ti.tokens = tokenMap(catalog)

	if ti.Hash != wantHash {
		if err = indexTokens(ti.index, catalog); err != nil {
			return nil, err
		}
		ti.Hash = wantHash
		if err = ti.persistMeta(); err != nil {
			return nil, err
		}
	}
	return ti, nil
}

// Rebuild drops the persistent index under dir and indexes the catalog
// from scratch.
func Rebuild(dir string, catalog []common.Token) (*TokenIndex, error) {
	if err := os.RemoveAll(filepath.Join(dir, "tokens.bleve")); err != nil {
		return nil, err
	}
	if err := os.Remove(filepath.Join(dir, "index.meta.json")); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return New(dir, catalog)
}

// NewMem builds an in-memory index over catalog. Used by tests and the
// mem-index mode where nothing should touch the data dir.
func NewMem(catalog []common.Token) (*TokenIndex, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, err
	}
	ti := &TokenIndex{
		index:  index,
		tokens: tokenMap(catalog),
		Hash:   CatalogHash(catalog),
	}
	if err = indexTokens(index, catalog); err != nil {
		return nil, err
	}
	return ti, nil
}

func (ti *TokenIndex) persistMeta() error {
	if ti.metaPath == "" {
		return nil
	}
	jsonData, err := json.MarshalIndent(ti, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(ti.metaPath, jsonData, 0644)
}

// Search runs input against the index and returns the catalog tokens
// for the hits in [from, from+size), in relevance order, along with
// whether more hits exist past that window.
func (ti *TokenIndex) Search(ctx context.Context, input string, from, size int) ([]common.Token, bool, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return []common.Token{}, false, nil
	}

	matchQuery := bleve.NewMatchPhraseQuery(input)
	prefixQuery := bleve.NewPrefixQuery(strings.ToLower(input))
	fuzzyQuery := bleve.NewFuzzyQuery(strings.ToLower(input))
	fuzzyQuery.Fuzziness = 1
	query := bleve.NewDisjunctionQuery(matchQuery, prefixQuery, fuzzyQuery)

	request := bleve.NewSearchRequest(query)
	request.From = from
	request.Size = size
	searchResults, err := ti.index.SearchInContext(ctx, request)
	if err != nil {
		return nil, false, fmt.Errorf("token index search failed: %w", err)
	}

	results := []common.Token{}
	for _, hit := range searchResults.Hits {
		tok, found := ti.tokens[hit.ID]
		if !found {
			log.Printf("token index: document %s has no catalog entry, skipped", hit.ID)
			continue
		}
		results = append(results, tok)
	}
	hasMore := uint64(from+len(searchResults.Hits)) < searchResults.Total
	return results, hasMore, nil
}

// Count returns the number of indexed documents.
func (ti *TokenIndex) Count() (uint64, error) {
	return ti.index.DocCount()
}

func (ti *TokenIndex) Close() error {
	return ti.index.Close()
}

func indexTokens(i bleve.Index, catalog []common.Token) error {
	batch := i.NewBatch()
	batchCount := 0
	for _, tok := range catalog {
		err := batch.Index(tok.Key(), tokenDoc{
			Symbol:  tok.Symbol,
			Name:    tok.Name,
			Chain:   networks.ChainName(tok.ChainID),
			Address: strings.ToLower(tok.Address),
		})
		if err != nil {
			return err
		}
		batchCount++

		if batchCount >= batchSize {
			if err = i.Batch(batch); err != nil {
				return err
			}
			batch = i.NewBatch()
			batchCount = 0
		}
	}
	// flush the last batch
	if batchCount > 0 {
		if err := i.Batch(batch); err != nil {
			return err
		}
	}
	return nil
}
