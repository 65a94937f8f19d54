package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"charboard/internal/catalog"
)

// RecentStrip shows the most recently used symbols as a single row of
// buttons. Clicking one copies it again.
type RecentStrip struct {
	container *fyne.Container
	row       *fyne.Container
	label     *widget.Label

	onCopy func(catalog.Symbol)
}

// NewRecentStrip creates an empty strip.
func NewRecentStrip(onCopy func(catalog.Symbol)) *RecentStrip {
	rs := &RecentStrip{onCopy: onCopy}
	rs.label = widget.NewLabel("Recent:")
	rs.row = container.NewHBox()
	rs.container = container.NewBorder(nil, nil, rs.label, nil, container.NewHScroll(rs.row))
	return rs
}

// SetSymbols replaces the strip contents, newest first.
func (rs *RecentStrip) SetSymbols(symbols []catalog.Symbol) {
	fyne.Do(func() {
		rs.row.RemoveAll()
		for _, sym := range symbols {
			sym := sym
			rs.row.Add(widget.NewButton(sym.String(), func() {
				if rs.onCopy != nil {
					rs.onCopy(sym)
				}
			}))
		}
		rs.row.Refresh()
	})
}

// Len reports how many symbols the strip currently shows.
func (rs *RecentStrip) Len() int {
	return len(rs.row.Objects)
}

// GetContainer returns the strip container.
func (rs *RecentStrip) GetContainer() *fyne.Container {
	return rs.container
}
