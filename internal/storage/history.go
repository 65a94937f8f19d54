package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"charboard/internal/catalog"
	"charboard/internal/logger"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// usageRecord is the stored form of one copy/append action.
type usageRecord struct {
	Codepoint rune      `json:"codepoint"`
	Category  string    `json:"category"`
	At        time.Time `json:"at"`
}

// HistoryRepository records every symbol use and answers "what did I use
// recently" queries for the recent strip.
type HistoryRepository struct {
	db  *badger.DB
	log logger.Logger
}

func NewHistoryRepository(db *badger.DB, log logger.Logger) *HistoryRepository {
	return &HistoryRepository{db: db, log: log}
}

// RecordUse persists one usage entry.
// The key is formatted as "use:{timestamp_padded}:{uuid}" so that:
//  1. A reverse prefix scan yields entries most-recent-first (19-digit zero
//     padding keeps lexicographic and chronological order aligned).
//  2. Two uses in the same nanosecond cannot collide, the UUID splits them.
func (h *HistoryRepository) RecordUse(sym catalog.Symbol, at time.Time) error {
	key := fmt.Sprintf("use:%019d:%s", at.UnixNano(), uuid.New())

	value, err := json.Marshal(usageRecord{
		Codepoint: sym.Char,
		Category:  sym.Category,
		At:        at.UTC(),
	})
	if err != nil {
		return err
	}

	return h.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// Recent returns the most recently used distinct codepoints, newest first,
// capped at limit.
func (h *HistoryRepository) Recent(limit int) ([]rune, error) {
	var ordered []rune

	err := h.db.View(func(txn *badger.Txn) error {
		prefix := []byte("use:")
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration needs a seek key past every "use:" entry.
		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999:~")...)

		// Scan more entries than the limit: duplicates collapse below.
		scanCap := limit * 8
		for it.Seek(seekKey); it.ValidForPrefix(prefix) && len(ordered) < scanCap; it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var rec usageRecord
				if err := json.Unmarshal(value, &rec); err != nil {
					return err
				}
				ordered = append(ordered, rec.Codepoint)
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

	distinct := lo.Uniq(ordered)
	if len(distinct) > limit {
		distinct = distinct[:limit]
	}
	h.log.Debug("storage", "recent symbols loaded", map[string]interface{}{
		"scanned":  len(ordered),
		"distinct": len(distinct),
	})
	return distinct, nil
}

// Count reports the total number of stored usage entries.
func (h *HistoryRepository) Count() (int, error) {
	count := 0
	err := h.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte("use:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}
