package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const readyStatus = "Ready. Click a symbol to copy. Shift-click to append."

// StatusBar displays the status line and catalog information.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	catalogInfo *widget.Label
}

// NewStatusBar creates a new status bar component.
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel(readyStatus)
	sb.catalogInfo = widget.NewLabel("")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.catalogInfo,
	)
}

// SetStatus updates the status message.
func (sb *StatusBar) SetStatus(status string) {
	fyne.Do(func() {
		sb.statusLabel.SetText(status)
	})
}

// GetStatus returns the current status message.
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetCatalogInfo updates the catalog statistics display.
func (sb *StatusBar) SetCatalogInfo(categories, symbols int) {
	fyne.Do(func() {
		sb.catalogInfo.SetText(fmt.Sprintf("%d categories, %d symbols", categories, symbols))
	})
}

// Reset restores the initial status line.
func (sb *StatusBar) Reset() {
	fyne.Do(func() {
		sb.statusLabel.SetText(readyStatus)
	})
}

// GetContainer returns the status bar container.
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
