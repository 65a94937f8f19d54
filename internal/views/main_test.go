package views

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"charboard/internal/catalog"
)

func newTestView(t *testing.T) *MainView {
	t.Helper()
	test.NewApp()
	return NewMainView(test.NewWindow(nil), catalog.New())
}

func TestMainView_SearchResultsSetTabAndStatus(t *testing.T) {
	req := require.New(t)
	mv := newTestView(t)

	results := []catalog.Symbol{
		{Char: '→', Name: "RIGHTWARDS ARROW", Category: "Arrows"},
		{Char: '←', Name: "LEFTWARDS ARROW", Category: "Arrows"},
	}
	mv.ShowSearchResults("arrow", results)

	req.True(mv.HasSearchResults())
	req.Equal("Search: 'arrow' (2 results)", mv.searchTab.Text)
	req.Equal("Search: 'arrow' (2 results)", mv.statusBar.GetStatus())
}

func TestMainView_SearchResultsSingular(t *testing.T) {
	req := require.New(t)
	mv := newTestView(t)

	mv.ShowSearchResults("euro", []catalog.Symbol{
		{Char: '€', Name: "EURO SIGN", Category: "Currency"},
	})

	req.Equal("Search: 'euro' (1 result)", mv.searchTab.Text)
	req.Equal("Search: 'euro' (1 result)", mv.statusBar.GetStatus())
}

func TestMainView_ClearSearchResultsRemovesTab(t *testing.T) {
	req := require.New(t)
	mv := newTestView(t)

	mv.ShowSearchResults("arrow", nil)
	req.True(mv.HasSearchResults())

	mv.ClearSearchResults()
	req.False(mv.HasSearchResults())
}
