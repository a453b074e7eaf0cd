package comps

import (
	"strconv"

	"src.prismdeck.dev/pkg/comp"
	"src.prismdeck.dev/pkg/vdom"
)

// Counter holds an unbounded integer.
type Counter struct {
	count  int
	remove comp.Remover
}

// NewCounter creates a Counter with the given initial count. The remover is
// invoked by RequestRemoval; it may be nil for counters without an owner.
func NewCounter(count int, remove comp.Remover) *Counter {
	return &Counter{count, remove}
}

// Count returns the current count.
func (c *Counter) Count() int { return c.count }

// Change adds amount to the count.
func (c *Counter) Change(amount int) { c.count += amount }

// Reset sets the count to 0.
func (c *Counter) Reset() { c.count = 0 }

// RequestRemoval asks the owner of the counter to remove it.
func (c *Counter) RequestRemoval() error {
	if c.remove == nil {
		return comp.ErrOwnerMismatch
	}
	return c.remove()
}

// Render renders the counter as a row of its count and its controls.
func (c *Counter) Render() *vdom.Node {
	change := vdom.Call(comp.Op1(c.Change))
	return vdom.Div("counter row",
		vdom.T(strconv.Itoa(c.count)),
		vdom.Btn("+", change.With(+1)),
		vdom.Btn("-", change.With(-1)),
		vdom.Btn("Reset", vdom.Call(comp.Op0(c.Reset))),
		vdom.Btn("Delete", vdom.Call(comp.Op0E(c.RequestRemoval))),
	)
}

// CounterList is a slide with a dynamic list of counters.
type CounterList struct {
	counters comp.Collection[*Counter]
}

// NewCounterList creates a CounterList with one counter at 0.
func NewCounterList() *CounterList {
	l := &CounterList{}
	l.Add()
	return l
}

// Add appends a new counter at 0.
func (l *CounterList) Add() {
	l.counters.Create(func(remove comp.Remover) *Counter {
		return NewCounter(0, remove)
	})
}

// Counters returns the counters in the order they were added.
func (l *CounterList) Counters() []*Counter { return l.counters.Items() }

// Render renders the slide.
func (l *CounterList) Render() *vdom.Node {
	return slide("",
		vdom.Div("counter-list",
			vdom.Div("controls", vdom.Btn("add counter", vdom.Call(comp.Op0(l.Add)))),
			vdom.Div("counters", vdom.MountAll(l.counters.Items())...),
		),
	)
}
