package store

import (
	"encoding/json"

	bolt "go.etcd.io/bbolt"
	. "src.prismdeck.dev/pkg/store/storedefs"
)

func init() {
	initDB["initialize todo table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketTodo))
		return err
	}
}

// TodoItems returns the saved items of a todo list.
func (s *dbStore) TodoItems(list string) ([]TodoItem, error) {
	var items []TodoItem
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketTodo)).Get([]byte(list))
		if v == nil {
			return ErrNoValue
		}
		return json.Unmarshal(v, &items)
	})
	return items, err
}

// SetTodoItems saves the items of a todo list, replacing any saved before.
func (s *dbStore) SetTodoItems(list string, items []TodoItem) error {
	if items == nil {
		items = []TodoItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketTodo)).Put([]byte(list), data)
	})
}

// DelTodoItems deletes the saved items of a todo list.
func (s *dbStore) DelTodoItems(list string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketTodo)).Delete([]byte(list))
	})
}

// TodoLists returns the names of all saved todo lists.
func (s *dbStore) TodoLists() ([]string, error) {
	var lists []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketTodo)).ForEach(func(k, _ []byte) error {
			lists = append(lists, string(k))
			return nil
		})
	})
	return lists, err
}
