package comps

import (
	"src.prismdeck.dev/pkg/comp"
	"src.prismdeck.dev/pkg/ui"
	"src.prismdeck.dev/pkg/vdom"
)

// TodoItemState is the state of a TodoItem, detached from its owner.
type TodoItemState struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// TodoItem is an entry of a TodoList. Its text can't be changed after
// creation.
type TodoItem struct {
	text      string
	completed bool
	remove    comp.Remover
}

// Text returns the text of the item.
func (it *TodoItem) Text() string { return it.text }

// Completed returns whether the item is completed.
func (it *TodoItem) Completed() bool { return it.completed }

// State returns a copy of the state of the item.
func (it *TodoItem) State() TodoItemState {
	return TodoItemState{it.text, it.completed}
}

// ToggleComplete flips the completed flag.
func (it *TodoItem) ToggleComplete() { it.completed = !it.completed }

// RequestRemoval asks the list owning the item to remove it.
func (it *TodoItem) RequestRemoval() error {
	if it.remove == nil {
		return comp.ErrOwnerMismatch
	}
	return it.remove()
}

// Render renders the item as a row with a checkbox, the text and a trash
// button.
func (it *TodoItem) Render() *vdom.Node {
	check := " "
	if it.completed {
		check = "x"
	}
	box := vdom.Btn(check, vdom.Call(comp.Op0(it.ToggleComplete))).WithClass("complete")
	text := vdom.T(it.text).WithClass("text")
	if it.completed {
		box.WithStyle(ui.Style{Fg: ui.Green})
		text.WithStyle(ui.Style{Dim: true})
	}
	return vdom.Div("todo-item row",
		box,
		text,
		vdom.Btn("trash", vdom.Call(comp.Op0E(it.RequestRemoval))).WithClass("trash"),
	)
}

// TodoList is a slide with a draft input and a list of items.
type TodoList struct {
	draft string
	items comp.Collection[*TodoItem]
}

// NewTodoList creates a TodoList seeded with the given items.
func NewTodoList(initial ...TodoItemState) *TodoList {
	l := &TodoList{}
	for _, st := range initial {
		l.add(st)
	}
	return l
}

func (l *TodoList) add(st TodoItemState) {
	l.items.Create(func(remove comp.Remover) *TodoItem {
		return &TodoItem{st.Text, st.Completed, remove}
	})
}

// Draft returns the text of the draft.
func (l *TodoList) Draft() string { return l.draft }

// SetDraft replaces the text of the draft.
func (l *TodoList) SetDraft(text string) { l.draft = text }

// SubmitDraft turns a non-empty draft into a new item and clears the draft.
// It does nothing when the draft is empty.
func (l *TodoList) SubmitDraft() {
	if l.draft == "" {
		return
	}
	l.add(TodoItemState{Text: l.draft})
	l.draft = ""
}

// HandleKey submits the draft on Enter. For any other key, it replaces the
// draft with value, the current value of the input.
func (l *TodoList) HandleKey(key, value string) {
	if key == "Enter" {
		l.SubmitDraft()
	} else {
		l.SetDraft(value)
	}
}

// RemoveCompleted removes all completed items.
func (l *TodoList) RemoveCompleted() {
	l.items.RemoveAll((*TodoItem).Completed)
}

// Items returns the items in display order.
func (l *TodoList) Items() []*TodoItem { return l.items.Items() }

// Snapshot returns the states of all items in display order.
func (l *TodoList) Snapshot() []TodoItemState {
	items := l.items.Items()
	states := make([]TodoItemState, len(items))
	for i, it := range items {
		states[i] = it.State()
	}
	return states
}

// Render renders the slide.
func (l *TodoList) Render() *vdom.Node {
	input := vdom.In(l.draft).
		On(vdom.KeyDown, vdom.Call(comp.Op2(l.HandleKey)).WithEventKey().WithTargetValue().Stop()).
		On(vdom.InputChange, vdom.Call(comp.Op1(l.SetDraft)).WithTargetValue().Stop())
	return slide("",
		vdom.Div("todo-list",
			vdom.Img("assets/todo-static.svg"),
			vdom.Div("drawn-input", input),
			vdom.Div("todo-list-items", vdom.MountAll(l.items.Items())...),
			vdom.Btn("clear completed", vdom.Call(comp.Op0(l.RemoveCompleted))).
				HideIf(!l.anyCompleted()),
		),
	)
}

func (l *TodoList) anyCompleted() bool {
	for _, it := range l.items.Items() {
		if it.completed {
			return true
		}
	}
	return false
}
