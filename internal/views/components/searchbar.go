package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SearchBar is the query entry with Find and Clear buttons. Submitting the
// entry behaves like pressing Find.
type SearchBar struct {
	container *fyne.Container
	entry     *widget.Entry

	findButton  *widget.Button
	clearButton *widget.Button

	// Event handlers
	searchHandler func(string)
	clearHandler  func()
}

// NewSearchBar creates the search component.
func NewSearchBar() *SearchBar {
	sb := &SearchBar{}
	sb.createComponents()
	sb.buildLayout()
	sb.setupEventHandlers()
	return sb
}

func (sb *SearchBar) createComponents() {
	sb.entry = widget.NewEntry()
	sb.entry.SetPlaceHolder("Search by name or character")
	sb.findButton = widget.NewButton("Find", nil)
	sb.clearButton = widget.NewButton("Clear", nil)
}

func (sb *SearchBar) buildLayout() {
	buttons := container.NewHBox(sb.findButton, sb.clearButton)
	sb.container = container.NewBorder(nil, nil, widget.NewLabel("Search:"), buttons, sb.entry)
}

func (sb *SearchBar) setupEventHandlers() {
	submit := func() {
		if sb.searchHandler != nil {
			sb.searchHandler(sb.entry.Text)
		}
	}
	sb.findButton.OnTapped = submit
	sb.entry.OnSubmitted = func(string) { submit() }

	sb.clearButton.OnTapped = func() {
		sb.entry.SetText("")
		if sb.clearHandler != nil {
			sb.clearHandler()
		}
	}
}

// SetSearchHandler sets the handler invoked with the query text.
func (sb *SearchBar) SetSearchHandler(handler func(string)) {
	sb.searchHandler = handler
}

// SetClearHandler sets the handler invoked when the search is cleared.
func (sb *SearchBar) SetClearHandler(handler func()) {
	sb.clearHandler = handler
}

// Query returns the current query text.
func (sb *SearchBar) Query() string {
	return sb.entry.Text
}

// GetContainer returns the search bar container.
func (sb *SearchBar) GetContainer() *fyne.Container {
	return sb.container
}
