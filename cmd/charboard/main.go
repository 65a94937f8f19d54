package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"charboard/internal/catalog"
	"charboard/internal/config"
	"charboard/internal/controllers"
	"charboard/internal/logger"
	"charboard/internal/models"
	"charboard/internal/search"
	"charboard/internal/services"
	"charboard/internal/storage"
	"charboard/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	badger "github.com/dgraph-io/badger/v4"
)

const (
	AppName    = "Charboard"
	AppID      = "com.charboard.app"
	AppVersion = "1.0.0"
)

// Application wires the catalog, storage and MVC components together and
// owns their lifecycle.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	cfg     *config.Config

	controller *controllers.MainController
	view       *views.MainView

	cat         *catalog.Catalog
	searchIndex *search.Index
	db          *badger.DB

	ctx          context.Context
	cancel       context.CancelFunc
	shutdownOnce sync.Once
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := NewApplication(ctx)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	setupGracefulShutdown(application, cancel)

	if err := application.Run(ctx); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}

// NewApplication builds the full dependency graph: config, logger, symbol
// catalog, search index, badger store, repositories, services and the MVC
// pair.
func NewApplication(ctx context.Context) (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	appLogger := logger.NewConsoleLogger(logger.ParseLevel(cfg.Log.Level))

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	window.CenterOnScreen()

	appCtx, appCancel := context.WithCancel(ctx)

	cat := catalog.New()

	appLogger.Info("application", "starting", map[string]interface{}{
		"version":    AppVersion,
		"categories": len(cat.Categories()),
		"symbols":    cat.Len(),
		"data_dir":   cfg.Storage.DataDir,
		"log_level":  cfg.Log.Level,
	})

	searchIndex, err := search.NewIndex(cat, appLogger, cfg.Search.MaxResults)
	if err != nil {
		appCancel()
		return nil, err
	}

	db, err := storage.Open(cfg.Storage.DataDir)
	if err != nil {
		appCancel()
		return nil, err
	}

	builderRepo := models.NewBuilderRepository()
	selectionRepo := models.NewSelectionRepository()
	historyRepo := storage.NewHistoryRepository(db, appLogger)
	favoritesRepo := storage.NewFavoritesRepository(db, appLogger)

	clipboardService := services.NewClipboardService(window.Clipboard(), appLogger)
	exportService := services.NewExportService(appLogger)

	mainController := controllers.NewMainController(
		cat, searchIndex,
		builderRepo, selectionRepo, historyRepo, favoritesRepo,
		clipboardService, exportService,
		appLogger, cfg.History.RecentLimit,
	)
	mainView := views.NewMainView(window, cat)
	mainController.SetMainView(mainView)

	application := &Application{
		fyneApp:     fyneApp,
		window:      window,
		logger:      appLogger,
		cfg:         cfg,
		controller:  mainController,
		view:        mainView,
		cat:         cat,
		searchIndex: searchIndex,
		db:          db,
		ctx:         appCtx,
		cancel:      appCancel,
	}

	application.setupMainMenu()
	application.setupWindowEvents()

	return application, nil
}

// Run shows the window and blocks in the Fyne event loop.
func (app *Application) Run(ctx context.Context) error {
	go func() {
		select {
		case <-ctx.Done():
			app.initiateShutdown()
		case <-app.ctx.Done():
		}
	}()

	app.controller.Start()
	app.view.Show()
	app.fyneApp.Run()
	return nil
}

func (app *Application) setupMainMenu() {
	saveItem := fyne.NewMenuItem("Save Builder...", app.controller.SaveBuilder)
	quitItem := fyne.NewMenuItem("Quit", app.fyneApp.Quit)
	quitItem.IsQuit = true
	fileMenu := fyne.NewMenu("File", saveItem, fyne.NewMenuItemSeparator(), quitItem)

	favoriteItem := fyne.NewMenuItem("Toggle Favorite", app.controller.ToggleFavorite)
	symbolMenu := fyne.NewMenu("Symbol", favoriteItem)

	aboutItem := fyne.NewMenuItem("About", func() {
		app.view.ShowInfo(AppName,
			"Click a symbol to copy it to the clipboard.\n"+
				"Shift-click or right-click to append it to the builder.")
	})
	helpMenu := fyne.NewMenu("Help", aboutItem)

	app.window.SetMainMenu(fyne.NewMainMenu(fileMenu, symbolMenu, helpMenu))
}

func (app *Application) setupWindowEvents() {
	app.window.SetOnClosed(func() {
		app.logger.Info("application", "window closed", nil)
		app.initiateShutdown()
	})
}

func setupGracefulShutdown(application *Application, cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		application.logger.Info("application", "signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		cancel()
		fyne.Do(application.window.Close)
	}()
}

// initiateShutdown runs the shutdown sequence exactly once. A signal and the
// window close callback can both arrive; the second caller finds nothing to
// do.
func (app *Application) initiateShutdown() {
	app.cancel()
	app.shutdownOnce.Do(app.runShutdownSteps)
}

func (app *Application) runShutdownSteps() {
	ctx, cancelTimeout := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelTimeout()

	steps := []struct {
		name string
		fn   func() error
	}{
		{"controller", func() error { app.controller.Shutdown(); return nil }},
		{"search index", app.searchIndex.Close},
		{"storage", app.db.Close},
	}

	for _, step := range steps {
		select {
		case <-ctx.Done():
			app.logger.Warning("application", "shutdown timeout exceeded", map[string]interface{}{
				"step": step.name,
			})
			return
		default:
		}

		if err := step.fn(); err != nil {
			app.logger.Error("application", err, map[string]interface{}{
				"step": step.name,
			})
			continue
		}
		app.logger.Debug("application", "shutdown step completed", map[string]interface{}{
			"step": step.name,
		})
	}

	app.logger.Info("application", "shutdown complete", nil)
}
