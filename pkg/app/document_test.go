package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDocument(t *testing.T) {
	d := NewDocument()
	var got []string
	record := func(prefix string) func(string) {
		return func(key string) { got = append(got, prefix+key) }
	}

	unsubA := d.OnKeyDown(record("a:"))
	unsubB := d.OnKeyDown(record("b:"))
	d.Dispatch("x")
	unsubA()
	unsubA()
	d.Dispatch("y")
	unsubB()
	d.Dispatch("z")

	if diff := cmp.Diff([]string{"a:x", "b:x", "b:y"}, got); diff != "" {
		t.Errorf("dispatched (-want +got):\n%s", diff)
	}
	if d.Subscribers() != 0 {
		t.Errorf("%d subscribers left", d.Subscribers())
	}
}

func TestDocument_UnsubscribeDuringDispatch(t *testing.T) {
	d := NewDocument()
	var got []string
	var unsubSelf func()
	unsubSelf = d.OnKeyDown(func(key string) {
		got = append(got, "self:"+key)
		unsubSelf()
	})
	d.OnKeyDown(func(key string) { got = append(got, "other:"+key) })

	d.Dispatch("x")
	d.Dispatch("y")
	if diff := cmp.Diff([]string{"self:x", "other:x", "other:y"}, got); diff != "" {
		t.Errorf("dispatched (-want +got):\n%s", diff)
	}
}
