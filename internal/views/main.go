package views

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"charboard/internal/catalog"
	"charboard/internal/views/components"
)

// MainView is the application window: category tabs on the left, symbol info
// and the builder on the right, search on top, status at the bottom.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container

	searchBar    *components.SearchBar
	tabs         *container.AppTabs
	infoPanel    *components.InfoPanel
	builderPanel *components.BuilderPanel
	recentStrip  *components.RecentStrip
	statusBar    *components.StatusBar

	searchTab    *container.TabItem
	favoritesTab *container.TabItem

	// Event handlers - connected to the controller
	copySymbolHandler    func(catalog.Symbol)
	appendSymbolHandler  func(catalog.Symbol)
	copyCurrentHandler   func()
	appendCurrentHandler func()
	copyAllHandler       func()
	clearBuilderHandler  func()
	saveBuilderHandler   func()
	searchHandler        func(string)
	clearSearchHandler   func()
	builderEditHandler   func(string)
}

// NewMainView creates the main view over the given catalog.
func NewMainView(window fyne.Window, cat *catalog.Catalog) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents(cat)
	view.buildLayout()
	view.setupEventHandlers()
	view.statusBar.SetCatalogInfo(len(cat.Categories()), cat.Len())

	return view
}

func (mv *MainView) initializeComponents(cat *catalog.Catalog) {
	mv.searchBar = components.NewSearchBar()
	mv.infoPanel = components.NewInfoPanel()
	mv.builderPanel = components.NewBuilderPanel()
	mv.statusBar = components.NewStatusBar()
	mv.recentStrip = components.NewRecentStrip(func(sym catalog.Symbol) {
		if mv.copySymbolHandler != nil {
			mv.copySymbolHandler(sym)
		}
	})

	mv.tabs = container.NewAppTabs()
	for _, category := range cat.Categories() {
		mv.tabs.Append(container.NewTabItem(category.Name, mv.symbolGrid(category.Symbols)))
	}

	mv.favoritesTab = container.NewTabItem("Favorites", mv.symbolGrid(nil))
	mv.tabs.Append(mv.favoritesTab)
}

// symbolGrid builds a grid wired to the copy/append handlers.
func (mv *MainView) symbolGrid(symbols []catalog.Symbol) fyne.CanvasObject {
	grid := components.NewSymbolGrid(symbols,
		func(sym catalog.Symbol) {
			if mv.copySymbolHandler != nil {
				mv.copySymbolHandler(sym)
			}
		},
		func(sym catalog.Symbol) {
			if mv.appendSymbolHandler != nil {
				mv.appendSymbolHandler(sym)
			}
		})
	return grid.GetContainer()
}

func (mv *MainView) buildLayout() {
	rightPanel := container.NewVSplit(
		mv.infoPanel.GetContainer(),
		mv.builderPanel.GetContainer(),
	)
	rightPanel.SetOffset(0.45)

	contentArea := container.NewHSplit(mv.tabs, rightPanel)
	contentArea.SetOffset(0.68)

	topArea := container.NewVBox(
		mv.searchBar.GetContainer(),
		mv.recentStrip.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		topArea,                      // top
		mv.statusBar.GetContainer(),  // bottom
		nil,                          // left
		nil,                          // right
		contentArea,                  // center
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.infoPanel.SetCopyHandler(func() {
		if mv.copyCurrentHandler != nil {
			mv.copyCurrentHandler()
		}
	})
	mv.infoPanel.SetAppendHandler(func() {
		if mv.appendCurrentHandler != nil {
			mv.appendCurrentHandler()
		}
	})

	mv.builderPanel.SetCopyAllHandler(func() {
		if mv.copyAllHandler != nil {
			mv.copyAllHandler()
		}
	})
	mv.builderPanel.SetClearHandler(func() {
		if mv.clearBuilderHandler != nil {
			mv.clearBuilderHandler()
		}
	})
	mv.builderPanel.SetSaveHandler(func() {
		if mv.saveBuilderHandler != nil {
			mv.saveBuilderHandler()
		}
	})
	mv.builderPanel.SetChangedHandler(func(text string) {
		if mv.builderEditHandler != nil {
			mv.builderEditHandler(text)
		}
	})

	mv.searchBar.SetSearchHandler(func(query string) {
		if mv.searchHandler != nil {
			mv.searchHandler(query)
		}
	})
	mv.searchBar.SetClearHandler(func() {
		if mv.clearSearchHandler != nil {
			mv.clearSearchHandler()
		}
	})
}

// Event handler setters - called by the controller

func (mv *MainView) SetCopySymbolHandler(handler func(catalog.Symbol)) {
	mv.copySymbolHandler = handler
}

func (mv *MainView) SetAppendSymbolHandler(handler func(catalog.Symbol)) {
	mv.appendSymbolHandler = handler
}

func (mv *MainView) SetCopyCurrentHandler(handler func()) {
	mv.copyCurrentHandler = handler
}

func (mv *MainView) SetAppendCurrentHandler(handler func()) {
	mv.appendCurrentHandler = handler
}

func (mv *MainView) SetCopyAllHandler(handler func()) {
	mv.copyAllHandler = handler
}

func (mv *MainView) SetClearBuilderHandler(handler func()) {
	mv.clearBuilderHandler = handler
}

func (mv *MainView) SetSaveBuilderHandler(handler func()) {
	mv.saveBuilderHandler = handler
}

func (mv *MainView) SetSearchHandler(handler func(string)) {
	mv.searchHandler = handler
}

func (mv *MainView) SetClearSearchHandler(handler func()) {
	mv.clearSearchHandler = handler
}

func (mv *MainView) SetBuilderEditHandler(handler func(string)) {
	mv.builderEditHandler = handler
}

// UI update methods - called by the controller

// ShowSymbolInfo updates the info panel for a selection.
func (mv *MainView) ShowSymbolInfo(sym catalog.Symbol) {
	mv.infoPanel.SetSymbol(sym)
}

// AppendToBuilder adds text to the builder widget.
func (mv *MainView) AppendToBuilder(text string) {
	mv.builderPanel.Append(text)
}

// SetBuilderText replaces the builder widget contents.
func (mv *MainView) SetBuilderText(text string) {
	mv.builderPanel.SetText(text)
}

// BuilderText returns the builder widget contents.
func (mv *MainView) BuilderText() string {
	return mv.builderPanel.Text()
}

// UpdateStatus updates the status line.
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// SetRecentSymbols refreshes the recent strip.
func (mv *MainView) SetRecentSymbols(symbols []catalog.Symbol) {
	mv.recentStrip.SetSymbols(symbols)
}

// ShowSearchResults replaces the results tab with a fresh grid and selects
// it. The query and hit count become both the tab label and the status line.
func (mv *MainView) ShowSearchResults(query string, results []catalog.Symbol) {
	fyne.Do(func() {
		mv.removeSearchTab()

		label := searchResultsLabel(query, len(results))
		mv.searchTab = container.NewTabItem(label, mv.symbolGrid(results))
		mv.tabs.Append(mv.searchTab)
		mv.tabs.Select(mv.searchTab)
		mv.statusBar.SetStatus(label)
	})
}

func searchResultsLabel(query string, count int) string {
	plural := "s"
	if count == 1 {
		plural = ""
	}
	return fmt.Sprintf("Search: '%s' (%d result%s)", query, count, plural)
}

// SetFavorites rebuilds the Favorites tab contents.
func (mv *MainView) SetFavorites(symbols []catalog.Symbol) {
	fyne.Do(func() {
		mv.favoritesTab.Content = mv.symbolGrid(symbols)
		mv.tabs.Refresh()
	})
}

// ClearSearchResults drops the results tab, if any.
func (mv *MainView) ClearSearchResults() {
	fyne.Do(func() {
		mv.removeSearchTab()
	})
}

func (mv *MainView) removeSearchTab() {
	if mv.searchTab != nil {
		mv.tabs.Remove(mv.searchTab)
		mv.searchTab = nil
	}
}

// HasSearchResults reports whether a results tab is showing.
func (mv *MainView) HasSearchResults() bool {
	return mv.searchTab != nil
}

// ShowError displays an error dialog.
func (mv *MainView) ShowError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, mv.window)
	})
}

// ShowInfo displays an information dialog.
func (mv *MainView) ShowInfo(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, mv.window)
	})
}

// ShowConfirm displays a confirmation dialog.
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, callback, mv.window)
	})
}

// ShowSaveDialog displays the file save dialog preconfigured for .txt.
func (mv *MainView) ShowSaveDialog(callback func(fyne.URIWriteCloser, error)) {
	fyne.Do(func() {
		d := dialog.NewFileSave(callback, mv.window)
		d.SetFileName("symbols.txt")
		d.Show()
	})
}

// GetWindow returns the main window.
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// Show displays the view.
func (mv *MainView) Show() {
	fyne.Do(func() {
		mv.window.Show()
	})
}
