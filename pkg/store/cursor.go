package store

import (
	"strconv"

	bolt "go.etcd.io/bbolt"
	. "src.prismdeck.dev/pkg/store/storedefs"
)

func init() {
	initDB["initialize cursor table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCursor))
		return err
	}
}

// Cursor returns the saved cursor of a deck.
func (s *dbStore) Cursor(deck string) (int, error) {
	var cursor int
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketCursor)).Get([]byte(deck))
		if v == nil {
			return ErrNoValue
		}
		var err error
		cursor, err = strconv.Atoi(string(v))
		return err
	})
	return cursor, err
}

// SetCursor saves the cursor of a deck.
func (s *dbStore) SetCursor(deck string, cursor int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCursor))
		return b.Put([]byte(deck), []byte(strconv.Itoa(cursor)))
	})
}
