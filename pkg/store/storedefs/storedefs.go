// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// does not need to depend on the concrete implementation.
package storedefs

import "errors"

// ErrNoValue is returned when the queried record doesn't exist.
var ErrNoValue = errors.New("no such record")

// Store is an interface satisfied by the storage service.
type Store interface {
	// Cursor returns the saved position in the named deck.
	Cursor(deck string) (int, error)
	SetCursor(deck string, cursor int) error

	// TodoItems returns the saved items of the named todo list.
	TodoItems(list string) ([]TodoItem, error)
	SetTodoItems(list string, items []TodoItem) error
	DelTodoItems(list string) error
	// TodoLists returns the names of all todo lists with saved items, in
	// lexicographical order.
	TodoLists() ([]string, error)
}

// TodoItem is a saved entry of a todo list.
type TodoItem struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}
