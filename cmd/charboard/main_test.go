package main

import (
	"context"
	"testing"

	"charboard/internal/catalog"
	"charboard/internal/controllers"
	"charboard/internal/logger"
	"charboard/internal/models"
	"charboard/internal/search"
	"charboard/internal/services"
	"charboard/internal/storage"

	"github.com/stretchr/testify/require"
)

// newTestApplication builds an Application with real search and storage
// resources but no window, enough to exercise the shutdown path.
func newTestApplication(t *testing.T) *Application {
	t.Helper()
	req := require.New(t)

	log := logger.NewConsoleLogger(logger.ErrorLevel)
	cat := catalog.New()

	idx, err := search.NewIndex(cat, log, 10)
	req.NoError(err)

	db, err := storage.Open(t.TempDir())
	req.NoError(err)

	controller := controllers.NewMainController(
		cat, idx,
		models.NewBuilderRepository(), models.NewSelectionRepository(),
		storage.NewHistoryRepository(db, log), storage.NewFavoritesRepository(db, log),
		services.NewClipboardService(nil, log), services.NewExportService(log),
		log, 5,
	)

	ctx, cancel := context.WithCancel(context.Background())
	return &Application{
		logger:      log,
		controller:  controller,
		cat:         cat,
		searchIndex: idx,
		db:          db,
		ctx:         ctx,
		cancel:      cancel,
	}
}

func TestApplication_ShutdownRunsOnce(t *testing.T) {
	req := require.New(t)
	app := newTestApplication(t)

	// A signal and the window close callback can both trigger this.
	app.initiateShutdown()
	app.initiateShutdown()

	req.True(app.db.IsClosed())
	req.Error(app.ctx.Err())
}
