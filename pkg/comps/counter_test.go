package comps

import (
	"errors"
	"testing"

	"src.prismdeck.dev/pkg/comp"
	"src.prismdeck.dev/pkg/vdom"
)

func TestCounter_ChangeAndReset(t *testing.T) {
	c := NewCounter(10, nil)
	sum := 10
	for _, a := range []int{3, -7, 0, 100, -1000} {
		c.Change(a)
		sum += a
		if c.Count() != sum {
			t.Errorf("after Change(%d), Count() = %d, want %d", a, c.Count(), sum)
		}
	}
	c.Reset()
	if c.Count() != 0 {
		t.Errorf("after Reset, Count() = %d, want 0", c.Count())
	}
}

func TestCounter_RequestRemovalWithoutOwner(t *testing.T) {
	err := NewCounter(0, nil).RequestRemoval()
	if !errors.Is(err, comp.ErrOwnerMismatch) {
		t.Errorf("RequestRemoval -> %v, want ErrOwnerMismatch", err)
	}
}

func TestCounter_Bindings(t *testing.T) {
	c := NewCounter(0, nil)
	for _, label := range []string{"+", "+", "-"} {
		if err := click(t, c, label); err != nil {
			t.Fatal(err)
		}
	}
	if c.Count() != 1 {
		t.Errorf("Count() = %d, want 1", c.Count())
	}
	if n := find(c.Render(), func(n *vdom.Node) bool { return n.Kind == vdom.Text }); n.Text != "1" {
		t.Errorf("rendered count = %q, want 1", n.Text)
	}
	if err := click(t, c, "Reset"); err != nil {
		t.Fatal(err)
	}
	if c.Count() != 0 {
		t.Errorf("Count() = %d, want 0", c.Count())
	}
}

func TestCounter_ChangeRejectsNonInteger(t *testing.T) {
	c := NewCounter(5, nil)
	b := vdom.Call(comp.Op1(c.Change)).With("1")
	if err := b.Invoke(vdom.Event{}); !errors.Is(err, comp.ErrInvalidArgument) {
		t.Errorf("Invoke -> %v, want ErrInvalidArgument", err)
	}
	if c.Count() != 5 {
		t.Errorf("Count() = %d, want 5", c.Count())
	}
}

func TestCounterList(t *testing.T) {
	l := NewCounterList()
	if len(l.Counters()) != 1 {
		t.Fatalf("starts with %d counters, want 1", len(l.Counters()))
	}
	first := l.Counters()[0]
	first.Change(+1)
	first.Change(+1)
	first.Change(-1)
	if first.Count() != 1 {
		t.Errorf("Count() = %d, want 1", first.Count())
	}
	first.Reset()
	if first.Count() != 0 {
		t.Errorf("Count() = %d, want 0", first.Count())
	}

	if err := click(t, l, "add counter"); err != nil {
		t.Fatal(err)
	}
	l.Add()
	counters := l.Counters()
	if len(counters) != 3 {
		t.Fatalf("%d counters, want 3", len(counters))
	}
	counters[1].Change(42)

	if err := counters[1].RequestRemoval(); err != nil {
		t.Fatal(err)
	}
	got := l.Counters()
	if len(got) != 2 || got[0] != counters[0] || got[1] != counters[2] {
		t.Errorf("after removing the middle counter, counters = %v", got)
	}
	if err := counters[1].RequestRemoval(); !errors.Is(err, comp.ErrOwnerMismatch) {
		t.Errorf("second RequestRemoval -> %v, want ErrOwnerMismatch", err)
	}

	if err := first.RequestRemoval(); err != nil {
		t.Fatal(err)
	}
	if got := l.Counters(); len(got) != 1 || got[0] != counters[2] {
		t.Errorf("counters = %v, want only the last one", got)
	}
}

func TestCounterList_DeleteButton(t *testing.T) {
	l := NewCounterList()
	if err := click(t, l, "Delete"); err != nil {
		t.Fatal(err)
	}
	if len(l.Counters()) != 0 {
		t.Errorf("%d counters after Delete, want 0", len(l.Counters()))
	}
	if find(l.Render(), button("Delete")) != nil {
		t.Errorf("removed counter is still rendered")
	}
}
