// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	. "src.prismdeck.dev/pkg/store/storedefs"
)

// TestCursor tests the cursor functionality of a Store.
func TestCursor(t *testing.T, store Store) {
	if _, err := store.Cursor("deck"); err != ErrNoValue {
		t.Errorf("Cursor of unsaved deck -> %v, want ErrNoValue", err)
	}
	for _, cursor := range []int{3, 0, 27} {
		if err := store.SetCursor("deck", cursor); err != nil {
			t.Errorf("SetCursor(%d) -> %v", cursor, err)
		}
		if got, err := store.Cursor("deck"); got != cursor || err != nil {
			t.Errorf("Cursor -> (%d, %v), want (%d, nil)", got, err, cursor)
		}
	}
	store.SetCursor("other deck", 5)
	if got, _ := store.Cursor("deck"); got != 27 {
		t.Errorf("saving another deck changed the cursor to %d", got)
	}
}

// TestTodoItems tests the todo list functionality of a Store.
func TestTodoItems(t *testing.T, store Store) {
	if _, err := store.TodoItems("groceries"); err != ErrNoValue {
		t.Errorf("TodoItems of unsaved list -> %v, want ErrNoValue", err)
	}

	items := []TodoItem{{Text: "milk", Completed: false}, {Text: "eggs", Completed: true}, {Text: "日本語", Completed: false}}
	if err := store.SetTodoItems("groceries", items); err != nil {
		t.Errorf("SetTodoItems -> %v", err)
	}
	got, err := store.TodoItems("groceries")
	if err != nil {
		t.Errorf("TodoItems -> error %v", err)
	}
	if diff := cmp.Diff(items, got); diff != "" {
		t.Errorf("TodoItems (-want +got):\n%s", diff)
	}

	if err := store.SetTodoItems("chores", nil); err != nil {
		t.Errorf("SetTodoItems(nil) -> %v", err)
	}
	if got, err := store.TodoItems("chores"); len(got) != 0 || err != nil {
		t.Errorf("TodoItems of empty list -> (%v, %v), want (empty, nil)", got, err)
	}

	lists, err := store.TodoLists()
	if diff := cmp.Diff([]string{"chores", "groceries"}, lists); diff != "" || err != nil {
		t.Errorf("TodoLists -> error %v, (-want +got):\n%s", err, diff)
	}

	if err := store.DelTodoItems("chores"); err != nil {
		t.Errorf("DelTodoItems -> %v", err)
	}
	if _, err := store.TodoItems("chores"); err != ErrNoValue {
		t.Errorf("TodoItems of deleted list -> %v, want ErrNoValue", err)
	}
	if err := store.DelTodoItems("never saved"); err != nil {
		t.Errorf("DelTodoItems of unsaved list -> %v", err)
	}
}
