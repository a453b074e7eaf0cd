package vdom

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBinding_Resolve(t *testing.T) {
	b := Call(nil).With(1).WithEventKey().WithTargetValue().With("lit")
	got := b.Resolve(Event{Key: "Enter", TargetValue: "draft"})
	want := []any{1, "Enter", "draft", "lit"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve (-want +got):\n%s", diff)
	}
}

func TestBinding_BuildersDoNotAlias(t *testing.T) {
	base := Call(nil).With(1)
	a := base.With("a")
	b := base.With("b")
	if a.Args[1].Value != "a" || b.Args[1].Value != "b" {
		t.Errorf("derived bindings share arguments: %v, %v", a.Args, b.Args)
	}
	if len(base.Args) != 1 {
		t.Errorf("base binding modified: %v", base.Args)
	}
	if base.StopPropagation || !base.Stop().StopPropagation {
		t.Errorf("Stop modifies the receiver or does not set StopPropagation")
	}
}

func TestBinding_Invoke(t *testing.T) {
	var got []any
	errOp := errors.New("op error")
	b := Call(func(args []any) error {
		got = args
		return errOp
	}).WithEventKey()

	err := b.Invoke(Event{Key: "x"})
	if err != errOp {
		t.Errorf("Invoke -> %v, want %v", err, errOp)
	}
	if diff := cmp.Diff([]any{"x"}, got); diff != "" {
		t.Errorf("args (-want +got):\n%s", diff)
	}

	if err := (Binding{}).Invoke(Event{}); err != nil {
		t.Errorf("Invoke on a binding without op -> %v, want nil", err)
	}
}
