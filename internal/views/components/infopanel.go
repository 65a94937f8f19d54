package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"charboard/internal/catalog"
)

// InfoPanel shows the selected symbol: the glyph itself plus every format a
// user might want to paste somewhere (codepoint, HTML entities, Alt code).
// Fields are read-only entries so their text can be selected and copied.
type InfoPanel struct {
	container *fyne.Container

	glyph     *canvas.Text
	nameEntry *widget.Entry
	hexEntry  *widget.Entry
	decEntry  *widget.Entry
	htmlDec   *widget.Entry
	htmlHex   *widget.Entry
	altEntry  *widget.Entry

	copyButton   *widget.Button
	appendButton *widget.Button

	// Event handlers
	copyHandler   func()
	appendHandler func()
}

// NewInfoPanel creates the symbol info component.
func NewInfoPanel() *InfoPanel {
	ip := &InfoPanel{}
	ip.createComponents()
	ip.buildLayout()
	ip.setupEventHandlers()
	return ip
}

func (ip *InfoPanel) createComponents() {
	ip.glyph = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	ip.glyph.TextSize = 48
	ip.glyph.Alignment = fyne.TextAlignCenter

	ip.nameEntry = widget.NewEntry()
	ip.hexEntry = widget.NewEntry()
	ip.decEntry = widget.NewEntry()
	ip.htmlDec = widget.NewEntry()
	ip.htmlHex = widget.NewEntry()
	ip.altEntry = widget.NewEntry()

	ip.copyButton = widget.NewButton("Copy Symbol", nil)
	ip.appendButton = widget.NewButton("Append to Builder", nil)
}

func (ip *InfoPanel) buildLayout() {
	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Name"), ip.nameEntry,
		widget.NewLabel("Unicode"), ip.hexEntry,
		widget.NewLabel("Code (dec)"), ip.decEntry,
		widget.NewLabel("HTML &#;"), ip.htmlDec,
		widget.NewLabel("HTML &#x;"), ip.htmlHex,
		widget.NewLabel("Keyboard (Win Alt)"), ip.altEntry,
	)

	buttons := container.NewHBox(ip.copyButton, ip.appendButton)

	ip.container = container.NewBorder(
		nil, buttons, ip.glyph, nil,
		form,
	)
}

func (ip *InfoPanel) setupEventHandlers() {
	ip.copyButton.OnTapped = func() {
		if ip.copyHandler != nil {
			ip.copyHandler()
		}
	}
	ip.appendButton.OnTapped = func() {
		if ip.appendHandler != nil {
			ip.appendHandler()
		}
	}
}

// SetCopyHandler sets the handler for the Copy Symbol button.
func (ip *InfoPanel) SetCopyHandler(handler func()) {
	ip.copyHandler = handler
}

// SetAppendHandler sets the handler for the Append to Builder button.
func (ip *InfoPanel) SetAppendHandler(handler func()) {
	ip.appendHandler = handler
}

// SetSymbol updates the panel for a newly selected symbol.
func (ip *InfoPanel) SetSymbol(sym catalog.Symbol) {
	fyne.Do(func() {
		ip.glyph.Text = sym.String()
		ip.glyph.Refresh()
		ip.nameEntry.SetText(sym.Name)
		ip.hexEntry.SetText(sym.CodeHex())
		ip.decEntry.SetText(sym.CodeDec())
		ip.htmlDec.SetText(sym.HTMLDec())
		ip.htmlHex.SetText(sym.HTMLHex())
		ip.altEntry.SetText(sym.AltHint())
	})
}

// Reset clears the panel.
func (ip *InfoPanel) Reset() {
	fyne.Do(func() {
		ip.glyph.Text = ""
		ip.glyph.Refresh()
		for _, e := range []*widget.Entry{
			ip.nameEntry, ip.hexEntry, ip.decEntry,
			ip.htmlDec, ip.htmlHex, ip.altEntry,
		} {
			e.SetText("")
		}
	})
}

// Name returns the currently displayed symbol name.
func (ip *InfoPanel) Name() string {
	return ip.nameEntry.Text
}

// GetContainer returns the info panel container.
func (ip *InfoPanel) GetContainer() *fyne.Container {
	return ip.container
}
