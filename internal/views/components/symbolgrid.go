package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"charboard/internal/catalog"
)

const gridColumns = 14

// SymbolGrid renders one category as a scrollable grid of symbol buttons.
// Plain click copies, shift-click or right-click appends.
type SymbolGrid struct {
	scroll *container.Scroll

	onCopy   func(catalog.Symbol)
	onAppend func(catalog.Symbol)
}

// NewSymbolGrid builds the grid for the given symbols.
func NewSymbolGrid(symbols []catalog.Symbol, onCopy, onAppend func(catalog.Symbol)) *SymbolGrid {
	g := &SymbolGrid{
		onCopy:   onCopy,
		onAppend: onAppend,
	}

	buttons := make([]fyne.CanvasObject, 0, len(symbols))
	for _, sym := range symbols {
		sym := sym
		btn := newSymbolButton(sym.String(),
			func() {
				if g.onCopy != nil {
					g.onCopy(sym)
				}
			},
			func() {
				if g.onAppend != nil {
					g.onAppend(sym)
				}
			})
		buttons = append(buttons, btn)
	}

	grid := container.NewGridWithColumns(gridColumns, buttons...)
	g.scroll = container.NewVScroll(grid)
	return g
}

// GetContainer returns the scrollable grid.
func (g *SymbolGrid) GetContainer() fyne.CanvasObject {
	return g.scroll
}

// symbolButton is a button that distinguishes plain taps from shift-taps and
// offers the append action on secondary tap as well.
type symbolButton struct {
	widget.Button

	shiftHeld bool
	onAltTap  func()
}

func newSymbolButton(label string, onTap, onAltTap func()) *symbolButton {
	b := &symbolButton{onAltTap: onAltTap}
	b.Text = label
	b.OnTapped = onTap
	b.ExtendBaseWidget(b)
	return b
}

// MouseDown records the shift modifier before the tap fires.
func (b *symbolButton) MouseDown(e *desktop.MouseEvent) {
	b.shiftHeld = e.Modifier&fyne.KeyModifierShift != 0
}

// MouseUp is required alongside MouseDown to satisfy desktop.Mouseable.
func (b *symbolButton) MouseUp(*desktop.MouseEvent) {}

// Tapped routes shift-taps to the append action.
func (b *symbolButton) Tapped(e *fyne.PointEvent) {
	if b.shiftHeld {
		b.shiftHeld = false
		if b.onAltTap != nil {
			b.onAltTap()
		}
		return
	}
	b.Button.Tapped(e)
}

// TappedSecondary appends, for mice without an easy shift reach.
func (b *symbolButton) TappedSecondary(*fyne.PointEvent) {
	if b.onAltTap != nil {
		b.onAltTap()
	}
}
