package storage

import (
	"testing"
	"time"

	"charboard/internal/catalog"
	"charboard/internal/logger"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testLogger() logger.Logger {
	return logger.NewConsoleLogger(logger.ErrorLevel)
}

func sym(r rune, category string) catalog.Symbol {
	return catalog.Symbol{Char: r, Category: category}
}

func TestHistoryRepository_RecentNewestFirst(t *testing.T) {
	req := require.New(t)
	repo := NewHistoryRepository(openTestDB(t), testLogger())

	now := time.Now()
	uses := []rune{'→', '★', '€', '±'}
	for i, r := range uses {
		req.NoError(repo.RecordUse(sym(r, "test"), now.Add(time.Duration(i)*time.Millisecond)))
	}

	recent, err := repo.Recent(10)
	req.NoError(err)
	req.Equal([]rune{'±', '€', '★', '→'}, recent)
}

func TestHistoryRepository_RecentCollapsesDuplicates(t *testing.T) {
	req := require.New(t)
	repo := NewHistoryRepository(openTestDB(t), testLogger())

	now := time.Now()
	sequence := []rune{'→', '★', '→', '→', '€', '★'}
	for i, r := range sequence {
		req.NoError(repo.RecordUse(sym(r, "test"), now.Add(time.Duration(i)*time.Millisecond)))
	}

	recent, err := repo.Recent(10)
	req.NoError(err)
	req.Equal([]rune{'★', '€', '→'}, recent)

	count, err := repo.Count()
	req.NoError(err)
	req.Equal(len(sequence), count)
}

func TestHistoryRepository_RecentHonorsLimit(t *testing.T) {
	req := require.New(t)
	repo := NewHistoryRepository(openTestDB(t), testLogger())

	now := time.Now()
	for i, r := range []rune{'a', 'b', 'c', 'd', 'e'} {
		req.NoError(repo.RecordUse(sym(r, "test"), now.Add(time.Duration(i)*time.Millisecond)))
	}

	recent, err := repo.Recent(2)
	req.NoError(err)
	req.Equal([]rune{'e', 'd'}, recent)
}

func TestFavoritesRepository_ToggleAndList(t *testing.T) {
	req := require.New(t)
	repo := NewFavoritesRepository(openTestDB(t), testLogger())

	pinned, err := repo.Toggle(sym('→', "Arrows"))
	req.NoError(err)
	req.True(pinned)

	pinned, err = repo.Toggle(sym('★', "Bullets & Stars"))
	req.NoError(err)
	req.True(pinned)

	ok, err := repo.IsFavorite('→')
	req.NoError(err)
	req.True(ok)

	list, err := repo.List()
	req.NoError(err)
	req.Equal([]rune{'→', '★'}, list) // U+2192 before U+2605

	// Toggling again unpins.
	pinned, err = repo.Toggle(sym('→', "Arrows"))
	req.NoError(err)
	req.False(pinned)

	ok, err = repo.IsFavorite('→')
	req.NoError(err)
	req.False(ok)
}
