package controllers

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"charboard/internal/catalog"
	"charboard/internal/logger"
	"charboard/internal/models"
	"charboard/internal/search"
	"charboard/internal/services"
	"charboard/internal/storage"
	"charboard/internal/views"

	"fyne.io/fyne/v2"
)

// MainController connects the symbol table, the repositories and the
// services to the view.
type MainController struct {
	cat         *catalog.Catalog
	searchIndex *search.Index

	builderRepo   *models.BuilderRepository
	selectionRepo *models.SelectionRepository
	historyRepo   *storage.HistoryRepository
	favoritesRepo *storage.FavoritesRepository

	clipboardService *services.ClipboardService
	exportService    *services.ExportService

	mainView *views.MainView
	log      logger.Logger

	recentLimit int

	mu sync.RWMutex
}

// NewMainController creates the controller. The view is attached separately
// because view construction needs the window, which needs the app, which the
// entry point owns.
func NewMainController(
	cat *catalog.Catalog,
	searchIndex *search.Index,
	builderRepo *models.BuilderRepository,
	selectionRepo *models.SelectionRepository,
	historyRepo *storage.HistoryRepository,
	favoritesRepo *storage.FavoritesRepository,
	clipboardService *services.ClipboardService,
	exportService *services.ExportService,
	log logger.Logger,
	recentLimit int,
) *MainController {
	return &MainController{
		cat:              cat,
		searchIndex:      searchIndex,
		builderRepo:      builderRepo,
		selectionRepo:    selectionRepo,
		historyRepo:      historyRepo,
		favoritesRepo:    favoritesRepo,
		clipboardService: clipboardService,
		exportService:    exportService,
		log:              log,
		recentLimit:      recentLimit,
	}
}

// SetMainView associates the view and wires its events.
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mu.Lock()
	mc.mainView = view
	mc.mu.Unlock()
	mc.setupViewEventHandlers()
}

func (mc *MainController) view() *views.MainView {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.mainView
}

func (mc *MainController) setupViewEventHandlers() {
	view := mc.view()
	if view == nil {
		return
	}

	view.SetCopySymbolHandler(mc.CopySymbol)
	view.SetAppendSymbolHandler(mc.AppendSymbol)
	view.SetCopyCurrentHandler(mc.CopyCurrent)
	view.SetAppendCurrentHandler(mc.AppendCurrent)
	view.SetCopyAllHandler(mc.CopyAll)
	view.SetClearBuilderHandler(mc.ClearBuilder)
	view.SetSaveBuilderHandler(mc.SaveBuilder)
	view.SetSearchHandler(mc.Search)
	view.SetClearSearchHandler(mc.ClearSearch)
	view.SetBuilderEditHandler(mc.builderEdited)
}

// Start loads persisted state into the view: the recent strip and the
// favorites tab.
func (mc *MainController) Start() {
	mc.refreshRecent()
	mc.refreshFavorites()
}

// CopySymbol handles a plain click on a symbol: copy to clipboard, select,
// record the use.
func (mc *MainController) CopySymbol(sym catalog.Symbol) {
	if err := mc.clipboardService.Copy(sym.String()); err != nil {
		mc.handleError(err)
		return
	}

	mc.selectionRepo.Set(sym)

	if view := mc.view(); view != nil {
		view.ShowSymbolInfo(sym)
		view.UpdateStatus(fmt.Sprintf("Copied: '%s' to clipboard.", sym))
	}

	mc.recordUse(sym)
}

// AppendSymbol handles a shift-click: append to the builder, select, record.
func (mc *MainController) AppendSymbol(sym catalog.Symbol) {
	mc.builderRepo.Append(sym.String())
	mc.selectionRepo.Set(sym)

	if view := mc.view(); view != nil {
		view.AppendToBuilder(sym.String())
		view.ShowSymbolInfo(sym)
		view.UpdateStatus(fmt.Sprintf("Appended: '%s' to builder.", sym))
	}

	mc.recordUse(sym)
}

// CopyCurrent copies the info-panel selection again.
func (mc *MainController) CopyCurrent() {
	sym, ok := mc.selectionRepo.Current()
	if !ok {
		mc.notifyNothingSelected()
		return
	}
	mc.CopySymbol(sym)
}

// AppendCurrent appends the info-panel selection.
func (mc *MainController) AppendCurrent() {
	sym, ok := mc.selectionRepo.Current()
	if !ok {
		mc.notifyNothingSelected()
		return
	}
	mc.AppendSymbol(sym)
}

func (mc *MainController) notifyNothingSelected() {
	if view := mc.view(); view != nil {
		view.ShowInfo("Nothing Selected", "Click a symbol first.")
	}
}

// CopyAll copies the whole builder buffer to the clipboard.
func (mc *MainController) CopyAll() {
	if err := mc.clipboardService.Copy(mc.builderRepo.Text()); err != nil {
		mc.handleError(err)
		return
	}
	if view := mc.view(); view != nil {
		view.UpdateStatus("Builder contents copied to clipboard.")
	}
}

// ClearBuilder empties the builder buffer and widget.
func (mc *MainController) ClearBuilder() {
	mc.builderRepo.Clear()
	if view := mc.view(); view != nil {
		view.SetBuilderText("")
		view.UpdateStatus("Builder cleared.")
	}
}

// SaveBuilder exports the builder to a .txt file chosen by the user. An
// empty builder asks for confirmation first.
func (mc *MainController) SaveBuilder() {
	text := mc.builderRepo.Text()

	view := mc.view()
	if view == nil {
		return
	}

	if strings.TrimSpace(text) == "" {
		view.ShowConfirm("Empty Text", "Builder is empty. Save an empty file?", func(confirmed bool) {
			if confirmed {
				mc.showSaveDialog(text)
			}
		})
		return
	}
	mc.showSaveDialog(text)
}

func (mc *MainController) showSaveDialog(text string) {
	view := mc.view()
	view.ShowSaveDialog(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mc.handleError(err)
			return
		}
		if writer == nil {
			return // cancelled
		}

		location := writer.URI().String()

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := mc.exportService.SaveText(ctx, writer, text); err != nil {
				mc.handleError(err)
				return
			}
			view.UpdateStatus(fmt.Sprintf("Saved: %s", location))
		}()
	})
}

// Search runs a query and shows the results tab. An empty query clears any
// previous results instead.
func (mc *MainController) Search(query string) {
	if strings.TrimSpace(query) == "" {
		mc.ClearSearch()
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		results, err := mc.searchIndex.Search(ctx, query)
		if err != nil {
			mc.handleError(err)
			return
		}

		if view := mc.view(); view != nil {
			view.ShowSearchResults(query, results)
		}
	}()
}

// ClearSearch drops the results tab.
func (mc *MainController) ClearSearch() {
	if view := mc.view(); view != nil {
		view.ClearSearchResults()
		view.UpdateStatus("Search cleared.")
	}
}

// ToggleFavorite pins or unpins the current selection.
func (mc *MainController) ToggleFavorite() {
	sym, ok := mc.selectionRepo.Current()
	if !ok {
		mc.notifyNothingSelected()
		return
	}

	pinned, err := mc.favoritesRepo.Toggle(sym)
	if err != nil {
		mc.handleError(err)
		return
	}

	if view := mc.view(); view != nil {
		if pinned {
			view.UpdateStatus(fmt.Sprintf("Pinned: '%s' to favorites.", sym))
		} else {
			view.UpdateStatus(fmt.Sprintf("Unpinned: '%s' from favorites.", sym))
		}
	}
	mc.refreshFavorites()
}

// builderEdited keeps the repository in sync with direct widget edits.
func (mc *MainController) builderEdited(text string) {
	mc.builderRepo.Set(text)
}

// recordUse persists a usage entry in the background; storage failures are
// logged, never surfaced.
func (mc *MainController) recordUse(sym catalog.Symbol) {
	go func() {
		if err := mc.historyRepo.RecordUse(sym, time.Now()); err != nil {
			mc.log.Error("history", err, map[string]interface{}{
				"codepoint": sym.CodeHex(),
			})
			return
		}
		mc.refreshRecent()
	}()
}

func (mc *MainController) refreshRecent() {
	runes, err := mc.historyRepo.Recent(mc.recentLimit)
	if err != nil {
		mc.log.Error("history", err, nil)
		return
	}
	if view := mc.view(); view != nil {
		view.SetRecentSymbols(mc.resolve(runes))
	}
}

func (mc *MainController) refreshFavorites() {
	runes, err := mc.favoritesRepo.List()
	if err != nil {
		mc.log.Error("favorites", err, nil)
		return
	}
	if view := mc.view(); view != nil {
		view.SetFavorites(mc.resolve(runes))
	}
}

// resolve maps stored codepoints back onto catalog symbols, dropping any the
// table no longer carries.
func (mc *MainController) resolve(runes []rune) []catalog.Symbol {
	out := make([]catalog.Symbol, 0, len(runes))
	for _, r := range runes {
		if sym, ok := mc.cat.Lookup(r); ok {
			out = append(out, sym)
		}
	}
	return out
}

func (mc *MainController) handleError(err error) {
	mc.log.Error("ui", err, nil)
	if view := mc.view(); view != nil {
		view.ShowError(err)
	}
}

// Shutdown releases controller-held resources.
func (mc *MainController) Shutdown() {
	mc.log.Info("controller", "shutdown", nil)
}
