package search

import (
	"context"
	"strings"
	"testing"

	"charboard/internal/catalog"
	"charboard/internal/logger"

	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T) (*Index, *catalog.Catalog) {
	t.Helper()
	cat := catalog.New()
	idx, err := NewIndex(cat, logger.NewConsoleLogger(logger.ErrorLevel), 500)
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })
	return idx, cat
}

func TestSearch_SubstringOnName(t *testing.T) {
	req := require.New(t)
	idx, cat := newTestIndex(t)

	results, err := idx.Search(context.Background(), "arrow")
	req.NoError(err)
	req.NotEmpty(results)

	// Every catalog entry whose name contains "arrow" must be present.
	want := make(map[rune]bool)
	for _, sym := range cat.Symbols() {
		if strings.Contains(strings.ToLower(sym.Name), "arrow") {
			want[sym.Char] = true
		}
	}
	req.Len(results, len(want))
	for _, sym := range results {
		req.True(want[sym.Char], "unexpected hit %U %s", sym.Char, sym.Name)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	req := require.New(t)
	idx, _ := newTestIndex(t)

	lower, err := idx.Search(context.Background(), "euro")
	req.NoError(err)
	upper, err := idx.Search(context.Background(), "EURO")
	req.NoError(err)
	req.Equal(lower, upper)
	req.NotEmpty(lower)
}

func TestSearch_PartialToken(t *testing.T) {
	req := require.New(t)
	idx, _ := newTestIndex(t)

	// "arro" is not a full analyzer token; the substring guarantee still
	// has to surface the arrows.
	results, err := idx.Search(context.Background(), "arro")
	req.NoError(err)
	req.NotEmpty(results)

	var hasRightwards bool
	for _, sym := range results {
		if sym.Char == '→' {
			hasRightwards = true
		}
	}
	req.True(hasRightwards)
}

func TestSearch_ByCharacter(t *testing.T) {
	req := require.New(t)
	idx, _ := newTestIndex(t)

	results, err := idx.Search(context.Background(), "→")
	req.NoError(err)
	req.Len(results, 1)
	req.Equal('→', results[0].Char)
}

func TestSearch_EmptyQuery(t *testing.T) {
	req := require.New(t)
	idx, _ := newTestIndex(t)

	results, err := idx.Search(context.Background(), "   ")
	req.NoError(err)
	req.Empty(results)
}

func TestSearch_NoMatches(t *testing.T) {
	req := require.New(t)
	idx, _ := newTestIndex(t)

	results, err := idx.Search(context.Background(), "zzzzzz")
	req.NoError(err)
	req.Empty(results)
}

func TestSearch_WildcardMetacharactersMatchLiterally(t *testing.T) {
	req := require.New(t)
	idx, _ := newTestIndex(t)

	// No symbol name contains these characters and none of them is in the
	// table, so each query must return nothing instead of everything.
	for _, query := range []string{"*", "?", "***", "a*", `\`} {
		results, err := idx.Search(context.Background(), query)
		req.NoError(err)
		req.Empty(results, "query %q", query)
	}
}

func TestSearch_HonorsMaxResults(t *testing.T) {
	req := require.New(t)
	cat := catalog.New()
	idx, err := NewIndex(cat, logger.NewConsoleLogger(logger.ErrorLevel), 5)
	req.NoError(err)
	defer idx.Close()

	// "sign" matches many currency and punctuation names.
	results, err := idx.Search(context.Background(), "sign")
	req.NoError(err)
	req.Len(results, 5)
}
