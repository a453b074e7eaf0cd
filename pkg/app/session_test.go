package app

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"src.prismdeck.dev/pkg/comps"
	"src.prismdeck.dev/pkg/logutil"
	"src.prismdeck.dev/pkg/term"
	"src.prismdeck.dev/pkg/ui"
	"src.prismdeck.dev/pkg/vdom"
)

// Records keys that reach the document.
func recordDocument(s *Session) *[]string {
	var keys []string
	s.Document().OnKeyDown(func(key string) { keys = append(keys, key) })
	return &keys
}

func handle(s *Session, events ...term.Event) {
	for _, e := range events {
		s.Handle(e)
	}
}

func TestSession_KeysReachDocumentWithoutFocus(t *testing.T) {
	s := NewSession(static(vdom.T("x")), NewDocument())
	keys := recordDocument(s)
	handle(s, term.K(ui.Right), term.K(' '), term.K('q'), term.K(ui.Esc),
		term.K('x', ui.Ctrl), term.PasteSetting(true))
	if diff := cmp.Diff([]string{"ArrowRight", " ", "q", "Escape"}, *keys); diff != "" {
		t.Errorf("document keys (-want +got):\n%s", diff)
	}
}

func TestSession_Focus(t *testing.T) {
	s := NewSession(static(vdom.Div("",
		vdom.In("abc"),
		vdom.Div("row", vdom.Btn("x", nop), vdom.Btn("y", nop)),
	)), NewDocument())
	focused := func() string {
		if n := s.Focused(); n != nil {
			return n.Text
		}
		return ""
	}

	tests := []struct {
		key  term.Event
		want string
	}{
		{term.K(ui.Tab), "abc"},
		{term.K(ui.Tab), "x"},
		{term.K(ui.Tab), "y"},
		{term.K(ui.Tab), "abc"},
		{term.K(ui.Tab, ui.Shift), "y"},
		{term.K(ui.Esc), ""},
		{term.K(ui.Tab, ui.Shift), "y"},
	}
	for i, test := range tests {
		s.Handle(test.key)
		if got := focused(); got != test.want {
			t.Errorf("after key %d (%v), focused %q, want %q", i, test.key, got, test.want)
		}
	}
}

func TestSession_RenderFocus(t *testing.T) {
	s := NewSession(static(vdom.Div("",
		vdom.T("title"),
		vdom.In("abc"),
		vdom.Div("row", vdom.Btn("x", nop), vdom.Btn("y", nop)),
	)), NewDocument())

	s.Handle(term.K(ui.Tab))
	buf := s.Render(20, 3)
	if buf.Dot != (term.Pos{Line: 1, Col: 3}) {
		t.Errorf("dot on focused input = %v, want (1, 3)", buf.Dot)
	}
	if buf.Lines[1][0].Style != "1;4" {
		t.Errorf("focused input has style %q", buf.Lines[1][0].Style)
	}

	handle(s, term.K(ui.Tab), term.K(ui.Tab))
	buf = s.Render(20, 3)
	if buf.Dot != (term.Pos{Line: 2, Col: 4}) {
		t.Errorf("dot on focused button = %v, want (2, 4)", buf.Dot)
	}
	if buf.Lines[2][4].Style != "7" || buf.Lines[2][0].Style != "" {
		t.Errorf("focused button not highlighted:\n%s", buf.TTYString())
	}
}

func TestSession_FocusClampedWhenNodesDisappear(t *testing.T) {
	n := 3
	s := NewSession(compFunc(func() *vdom.Node {
		row := vdom.Div("row")
		for i := 0; i < n; i++ {
			row.Children = append(row.Children, vdom.Btn(strings.Repeat("b", i+1), nop))
		}
		return row
	}), NewDocument())
	handle(s, term.K(ui.Tab, ui.Shift))
	if s.Focused().Text != "bbb" {
		t.Fatalf("focused %q, want bbb", s.Focused().Text)
	}
	n = 2
	if s.Focused().Text != "bb" {
		t.Errorf("focused %q, want bb", s.Focused().Text)
	}
	n = 0
	if s.Focused() != nil {
		t.Errorf("focused %v, want nil", s.Focused())
	}
	s.Handle(term.K(ui.Tab))
	if s.Focused() != nil {
		t.Errorf("focused %v after Tab without focusables", s.Focused())
	}
}

func TestSession_EnterClicksFocused(t *testing.T) {
	l := comps.NewCounterList()
	s := NewSession(l, NewDocument())
	keys := recordDocument(s)

	// Focus "add counter" and click it.
	handle(s, term.K(ui.Tab), term.K(ui.Enter))
	if len(l.Counters()) != 2 {
		t.Fatalf("%d counters, want 2", len(l.Counters()))
	}
	// Focus "+" of the first counter and click it twice.
	handle(s, term.K(ui.Tab), term.K(ui.Enter), term.K(ui.Enter))
	if got := l.Counters()[0].Count(); got != 2 {
		t.Errorf("count = %d, want 2", got)
	}
	// Keys other than Enter go to the document.
	handle(s, term.K(ui.Right))
	if diff := cmp.Diff([]string{"ArrowRight"}, *keys); diff != "" {
		t.Errorf("document keys (-want +got):\n%s", diff)
	}
}

func TestSession_Input(t *testing.T) {
	l := comps.NewTodoList()
	s := NewSession(l, NewDocument())
	keys := recordDocument(s)

	handle(s, term.K(ui.Tab), term.K('m'), term.K('i'), term.K('l'), term.K('x'),
		term.K(ui.Backspace), term.K('k'))
	if l.Draft() != "milk" {
		t.Errorf("Draft() = %q, want milk", l.Draft())
	}
	if n := s.Focused(); n == nil || n.Text != "milk" {
		t.Errorf("focused %v, want the input", n)
	}
	handle(s, term.K(ui.Enter))
	if diff := cmp.Diff([]comps.TodoItemState{{Text: "milk"}}, l.Snapshot()); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
	if len(*keys) != 0 {
		t.Errorf("keys typed into the input reached the document: %q", *keys)
	}

	// Arrow keys are stopped by the input too; Escape releases the focus.
	handle(s, term.K(ui.Right), term.K(ui.Esc), term.K(ui.Right))
	if diff := cmp.Diff([]string{"ArrowRight"}, *keys); diff != "" {
		t.Errorf("document keys (-want +got):\n%s", diff)
	}
}

func TestSession_InputBindingsSeeValuesAroundEdit(t *testing.T) {
	var calls []string
	record := func(event string) vdom.Binding {
		return vdom.Call(func(args []any) error {
			calls = append(calls, event+":"+args[0].(string)+":"+args[1].(string))
			return nil
		}).WithEventKey().WithTargetValue()
	}
	value := "ab"
	s := NewSession(compFunc(func() *vdom.Node {
		return vdom.In(value).On(vdom.KeyDown, record("keydown")).On(vdom.InputChange, record("input"))
	}), NewDocument())
	keys := recordDocument(s)

	handle(s, term.K(ui.Tab), term.K('c'), term.K(ui.Left))
	want := []string{"keydown:c:ab", "input:c:abc", "keydown:ArrowLeft:ab"}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
	// Neither binding stops propagation.
	if diff := cmp.Diff([]string{"c", "ArrowLeft"}, *keys); diff != "" {
		t.Errorf("document keys (-want +got):\n%s", diff)
	}
}

func TestSession_BindingErrorsAreLogged(t *testing.T) {
	var log bytes.Buffer
	logutil.SetOutput(&log)
	t.Cleanup(func() { logutil.SetOutput(io.Discard) })

	errBroken := errors.New("broken")
	s := NewSession(static(vdom.Btn("b", vdom.Call(func([]any) error { return errBroken }))), NewDocument())
	handle(s, term.K(ui.Tab), term.K(ui.Enter))

	if !strings.Contains(log.String(), `[app] `) || !strings.Contains(log.String(), "broken") {
		t.Errorf("log = %q, want binding error", log.String())
	}
}

// A component with controls that hide themselves at the boundaries.
type pager struct{ cursor, n int }

func (p *pager) Render() *vdom.Node {
	return vdom.Div("row",
		vdom.Btn("<", vdom.Call(func([]any) error { p.cursor--; return nil })).HideIf(p.cursor == 0),
		vdom.T(strconv.Itoa(p.cursor+1)),
		vdom.Btn(">", vdom.Call(func([]any) error { p.cursor++; return nil })).HideIf(p.cursor == p.n-1),
	)
}

func TestSession_FocusFollowsNodeWhenSiblingsAppear(t *testing.T) {
	p := &pager{n: 4}
	s := NewSession(p, NewDocument())

	s.Handle(term.K(ui.Tab))
	for want := 1; want < 3; want++ {
		s.Handle(term.K(ui.Enter))
		if p.cursor != want {
			t.Fatalf("cursor = %d, want %d", p.cursor, want)
		}
		if n := s.Focused(); n == nil || n.Text != ">" {
			t.Fatalf("at %d, focused %v, want >", want, n)
		}
	}
	// Shift-Tab reaches "<", which now keeps the focus until it hides.
	handle(s, term.K(ui.Tab, ui.Shift), term.K(ui.Enter))
	if p.cursor != 1 || s.Focused().Text != "<" {
		t.Errorf("cursor = %d, focused %q; want 1, <", p.cursor, s.Focused().Text)
	}
	s.Handle(term.K(ui.Enter))
	// "<" is hidden on the first page and the focus moves to its position.
	if p.cursor != 0 || s.Focused().Text != ">" {
		t.Errorf("cursor = %d, focused %q; want 0, >", p.cursor, s.Focused().Text)
	}
}

func TestSession_FocusFollowsNodeWhenSiblingsRemoved(t *testing.T) {
	l := comps.NewCounterList()
	l.Add()
	s := NewSession(l, NewDocument())
	second := l.Counters()[1]

	// "add counter", then the four buttons of the first counter, then "+" of
	// the second.
	for i := 0; i < 6; i++ {
		s.Handle(term.K(ui.Tab))
	}
	s.Handle(term.K(ui.Enter))
	if second.Count() != 1 {
		t.Fatalf("second count = %d, want 1", second.Count())
	}
	if err := l.Counters()[0].RequestRemoval(); err != nil {
		t.Fatal(err)
	}
	s.Handle(term.K(ui.Enter))
	if second.Count() != 2 {
		t.Errorf("second count = %d after removing the first, want 2", second.Count())
	}
}
