package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// BuilderPanel is the text buffer the user assembles before copying or
// exporting it.
type BuilderPanel struct {
	container *fyne.Container
	entry     *widget.Entry

	copyAllButton *widget.Button
	clearButton   *widget.Button
	saveButton    *widget.Button

	// Event handlers
	copyAllHandler func()
	clearHandler   func()
	saveHandler    func()
	changedHandler func(string)
}

// NewBuilderPanel creates the builder component.
func NewBuilderPanel() *BuilderPanel {
	bp := &BuilderPanel{}
	bp.createComponents()
	bp.buildLayout()
	bp.setupEventHandlers()
	return bp
}

func (bp *BuilderPanel) createComponents() {
	bp.entry = widget.NewMultiLineEntry()
	bp.entry.Wrapping = fyne.TextWrapWord
	bp.entry.SetPlaceHolder("Shift-click symbols to append them here")

	bp.copyAllButton = widget.NewButton("Copy All", nil)
	bp.clearButton = widget.NewButton("Clear", nil)
	bp.saveButton = widget.NewButton("Save to .txt", nil)
	bp.saveButton.Importance = widget.HighImportance
}

func (bp *BuilderPanel) buildLayout() {
	buttons := container.NewHBox(bp.copyAllButton, bp.clearButton, bp.saveButton)
	bp.container = container.NewBorder(nil, buttons, nil, nil, bp.entry)
}

func (bp *BuilderPanel) setupEventHandlers() {
	bp.copyAllButton.OnTapped = func() {
		if bp.copyAllHandler != nil {
			bp.copyAllHandler()
		}
	}
	bp.clearButton.OnTapped = func() {
		if bp.clearHandler != nil {
			bp.clearHandler()
		}
	}
	bp.saveButton.OnTapped = func() {
		if bp.saveHandler != nil {
			bp.saveHandler()
		}
	}
	bp.entry.OnChanged = func(text string) {
		if bp.changedHandler != nil {
			bp.changedHandler(text)
		}
	}
}

// SetCopyAllHandler sets the Copy All button handler.
func (bp *BuilderPanel) SetCopyAllHandler(handler func()) {
	bp.copyAllHandler = handler
}

// SetClearHandler sets the Clear button handler.
func (bp *BuilderPanel) SetClearHandler(handler func()) {
	bp.clearHandler = handler
}

// SetSaveHandler sets the Save button handler.
func (bp *BuilderPanel) SetSaveHandler(handler func()) {
	bp.saveHandler = handler
}

// SetChangedHandler is notified when the user edits the buffer directly.
func (bp *BuilderPanel) SetChangedHandler(handler func(string)) {
	bp.changedHandler = handler
}

// Append adds text at the end of the buffer.
func (bp *BuilderPanel) Append(text string) {
	fyne.Do(func() {
		bp.entry.SetText(bp.entry.Text + text)
	})
}

// SetText replaces the buffer contents.
func (bp *BuilderPanel) SetText(text string) {
	fyne.Do(func() {
		bp.entry.SetText(text)
	})
}

// Text returns the buffer contents.
func (bp *BuilderPanel) Text() string {
	return bp.entry.Text
}

// Clear empties the buffer.
func (bp *BuilderPanel) Clear() {
	bp.SetText("")
}

// GetContainer returns the builder container.
func (bp *BuilderPanel) GetContainer() *fyne.Container {
	return bp.container
}
