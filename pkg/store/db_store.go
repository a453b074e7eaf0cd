// Package store defines the permanent storage service.
package store

import (
	"fmt"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"
	"src.prismdeck.dev/pkg/logutil"
	"src.prismdeck.dev/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")
var initDB = map[string](func(*bolt.Tx) error){}

// DBStore is the permanent storage backend.
type DBStore interface {
	storedefs.Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// Time to wait for other processes to release the database.
const openTimeout = time.Second

// NewStore creates a new Store from the given file.
func NewStore(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0644, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, err
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a new Store from a bolt DB.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Println("initializing store")
	defer logger.Println("initialized store")
	st := &dbStore{db}

	// Run the initializers in a stable order.
	names := make([]string, 0, len(initDB))
	for name := range initDB {
		names = append(names, name)
	}
	sort.Strings(names)

	err := db.Update(func(tx *bolt.Tx) error {
		for _, name := range names {
			if err := initDB[name](tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// Close closes the underlying database.
func (s *dbStore) Close() error {
	return s.db.Close()
}
