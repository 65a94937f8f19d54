package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"charboard/internal/catalog"
	"charboard/internal/logger"

	"github.com/dgraph-io/badger/v4"
)

// FavoritesRepository stores the symbols the user pinned. One key per
// codepoint, keyed "fav:{U+hex}", so toggling is idempotent.
type FavoritesRepository struct {
	db  *badger.DB
	log logger.Logger
}

func NewFavoritesRepository(db *badger.DB, log logger.Logger) *FavoritesRepository {
	return &FavoritesRepository{db: db, log: log}
}

func favKey(r rune) []byte {
	return []byte(fmt.Sprintf("fav:%04X", r))
}

// Toggle flips the favorite state of a symbol and reports the new state.
func (f *FavoritesRepository) Toggle(sym catalog.Symbol) (bool, error) {
	var pinned bool
	err := f.db.Update(func(txn *badger.Txn) error {
		key := favKey(sym.Char)
		_, err := txn.Get(key)
		switch {
		case err == nil:
			pinned = false
			return txn.Delete(key)
		case errors.Is(err, badger.ErrKeyNotFound):
			value, err := json.Marshal(usageRecord{
				Codepoint: sym.Char,
				Category:  sym.Category,
				At:        time.Now().UTC(),
			})
			if err != nil {
				return err
			}
			pinned = true
			return txn.Set(key, value)
		default:
			return err
		}
	})
	if err == nil {
		f.log.Debug("storage", "favorite toggled", map[string]interface{}{
			"codepoint": sym.CodeHex(),
			"pinned":    pinned,
		})
	}
	return pinned, err
}

// IsFavorite reports whether a codepoint is pinned.
func (f *FavoritesRepository) IsFavorite(r rune) (bool, error) {
	err := f.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(favKey(r))
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	return err == nil, err
}

// List returns all pinned codepoints in codepoint order.
func (f *FavoritesRepository) List() ([]rune, error) {
	var out []rune
	err := f.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("fav:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var rec usageRecord
				if err := json.Unmarshal(value, &rec); err != nil {
					return err
				}
				out = append(out, rec.Codepoint)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}
