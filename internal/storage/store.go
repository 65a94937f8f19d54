// Package storage persists symbol usage across sessions in a BadgerDB store
// under the configured data directory. Losing this store never breaks the
// keyboard itself; callers log failures and move on.
package storage

import (
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// Open opens (creating if needed) the usage store at dir.
func Open(dir string) (*badger.DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening usage store: %w", err)
	}
	return db, nil
}
