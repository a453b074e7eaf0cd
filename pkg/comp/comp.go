// Package comp implements the ownership model of stateful components.
//
// A component owns private state and exposes operations that mutate it. The
// runtime invokes operations through [vdom.Binding]s; the adapters in this
// package turn typed methods into [vdom.Op]s and reject arguments of the wrong
// type with [ErrInvalidArgument] before any state is touched.
//
// A parent that owns a dynamic list of children keeps them in a
// [Collection]. Each child receives a [Remover] when it is created; invoking
// it removes exactly that child, regardless of where it currently is in the
// list.
package comp

import (
	"errors"
	"fmt"

	"src.prismdeck.dev/pkg/vdom"
)

// Errors returned by operations.
var (
	// ErrInvalidArgument is returned when an operation receives an argument
	// outside its domain. The operation leaves state unchanged.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOwnerMismatch is returned when a Remover is invoked for a child that
	// is no longer in the collection that created it.
	ErrOwnerMismatch = errors.New("child is not owned by the collection")
)

// Component is an alias of vdom.Component, for convenience.
type Component = vdom.Component

// Op0 adapts a method without arguments.
func Op0(f func()) vdom.Op {
	return func(args []any) error {
		if err := checkArity(args, 0); err != nil {
			return err
		}
		f()
		return nil
	}
}

// Op0E adapts a method without arguments that may fail.
func Op0E(f func() error) vdom.Op {
	return func(args []any) error {
		if err := checkArity(args, 0); err != nil {
			return err
		}
		return f()
	}
}

// Op1 adapts a method with one argument.
func Op1[T any](f func(T)) vdom.Op {
	return func(args []any) error {
		if err := checkArity(args, 1); err != nil {
			return err
		}
		a, err := arg[T](args, 0)
		if err != nil {
			return err
		}
		f(a)
		return nil
	}
}

// Op1E adapts a method with one argument that may fail.
func Op1E[T any](f func(T) error) vdom.Op {
	return func(args []any) error {
		if err := checkArity(args, 1); err != nil {
			return err
		}
		a, err := arg[T](args, 0)
		if err != nil {
			return err
		}
		return f(a)
	}
}

// Op2 adapts a method with two arguments.
func Op2[A, B any](f func(A, B)) vdom.Op {
	return func(args []any) error {
		if err := checkArity(args, 2); err != nil {
			return err
		}
		a, err := arg[A](args, 0)
		if err != nil {
			return err
		}
		b, err := arg[B](args, 1)
		if err != nil {
			return err
		}
		f(a, b)
		return nil
	}
}

func checkArity(args []any, want int) error {
	if len(args) != want {
		return fmt.Errorf("%w: want %d arguments, got %d", ErrInvalidArgument, want, len(args))
	}
	return nil
}

func arg[T any](args []any, i int) (T, error) {
	v, ok := args[i].(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: argument %d must be %T, got %T",
			ErrInvalidArgument, i+1, zero, args[i])
	}
	return v, nil
}
