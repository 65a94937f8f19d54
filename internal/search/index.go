// Package search answers symbol queries from the search bar. A Bluge
// in-memory index over symbol names carries the full-text side; a substring
// scan over the catalog backs it so that any query contained in a symbol
// name matches, even partial tokens the analyzer splits away.
package search

import (
	"context"
	"fmt"
	"strings"

	"charboard/internal/catalog"
	"charboard/internal/logger"

	"github.com/blugelabs/bluge"
)

// Index is built once from the catalog at startup.
type Index struct {
	writer     *bluge.Writer
	cat        *catalog.Catalog
	log        logger.Logger
	maxResults int
}

// NewIndex indexes every distinct catalog symbol in memory.
func NewIndex(cat *catalog.Catalog, log logger.Logger, maxResults int) (*Index, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, fmt.Errorf("opening search index: %w", err)
	}

	batch := bluge.NewBatch()
	for _, sym := range cat.Symbols() {
		doc := bluge.NewDocument(sym.CodeHex()).
			AddField(bluge.NewTextField("name", strings.ToLower(sym.Name)).StoreValue()).
			AddField(bluge.NewKeywordField("char", string(sym.Char)).StoreValue()).
			AddField(bluge.NewKeywordField("category", sym.Category).StoreValue())
		batch.Update(doc.ID(), doc)
	}
	if err := writer.Batch(batch); err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("indexing catalog: %w", err)
	}

	log.Info("search", "index built", map[string]interface{}{
		"symbols": cat.Len(),
	})

	return &Index{
		writer:     writer,
		cat:        cat,
		log:        log,
		maxResults: maxResults,
	}, nil
}

// Search returns every symbol whose name contains the query
// (case-insensitive) or whose character equals it, in catalog order, capped
// at the configured maximum. An empty query returns nothing.
func (i *Index) Search(ctx context.Context, query string) ([]catalog.Symbol, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	matched, err := i.indexHits(ctx, q)
	if err != nil {
		return nil, err
	}

	// The substring guarantee: union the index hits with a direct scan.
	// The table is a few hundred entries, the scan costs nothing.
	var out []catalog.Symbol
	for _, sym := range i.cat.Symbols() {
		if len(out) >= i.maxResults {
			break
		}
		if matched[sym.Char] ||
			strings.Contains(strings.ToLower(sym.Name), q) ||
			strings.ToLower(string(sym.Char)) == q {
			out = append(out, sym)
		}
	}

	i.log.Debug("search", "query executed", map[string]interface{}{
		"query":   q,
		"results": len(out),
	})
	return out, nil
}

// indexHits collects codepoints the full-text index matches for q.
func (i *Index) indexHits(ctx context.Context, q string) (map[rune]bool, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("opening index reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	nameQuery := bluge.NewWildcardQuery("*" + wildcardEscape(q) + "*")
	nameQuery.SetField("name")
	charQuery := bluge.NewTermQuery(q)
	charQuery.SetField("char")

	boolQuery := bluge.NewBooleanQuery().
		AddShould(nameQuery).
		AddShould(charQuery)

	request := bluge.NewTopNSearch(i.maxResults, boolQuery)
	iter, err := reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}

	matched := make(map[rune]bool)
	for {
		next, err := iter.Next()
		if err != nil {
			return nil, fmt.Errorf("iterating results: %w", err)
		}
		if next == nil {
			break
		}
		err = next.VisitStoredFields(func(field string, value []byte) bool {
			if field == "char" {
				for _, r := range string(value) {
					matched[r] = true
					break
				}
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return matched, nil
}

// wildcardEscape quotes wildcard metacharacters so user input only ever
// matches literally. Without it a query like "*" would match every name.
func wildcardEscape(q string) string {
	var b strings.Builder
	for _, r := range q {
		switch r {
		case '*', '?', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Close releases the index.
func (i *Index) Close() error {
	return i.writer.Close()
}
