package comp

// Remover removes the child it was created for from its owning collection. It
// returns ErrOwnerMismatch if the child has already been removed.
type Remover func() error

// Collection is an ordered list of children owned by a parent component.
//
// Children are identified by keys that are assigned at creation and never
// reused or exposed; positions are never used to address a child. The zero
// value is an empty Collection ready to use. Collection is not safe for
// concurrent use; the runtime invokes operations sequentially.
type Collection[C any] struct {
	entries []entry[C]
	nextKey uint64
}

type entry[C any] struct {
	key   uint64
	child C
}

// Create builds a child and appends it to the collection. The build function
// receives a Remover bound to the new child; it must not invoke it before
// Create returns.
func (c *Collection[C]) Create(build func(remove Remover) C) C {
	key := c.nextKey
	c.nextKey++
	child := build(func() error { return c.remove(key) })
	c.entries = append(c.entries, entry[C]{key, child})
	return child
}

func (c *Collection[C]) remove(key uint64) error {
	for i, e := range c.entries {
		if e.key == key {
			copy(c.entries[i:], c.entries[i+1:])
			var zero entry[C]
			c.entries[len(c.entries)-1] = zero
			c.entries = c.entries[:len(c.entries)-1]
			return nil
		}
	}
	return ErrOwnerMismatch
}

// RemoveAll removes all children for which pred returns true, preserving the
// relative order of the rest. It returns the number of removed children.
func (c *Collection[C]) RemoveAll(pred func(C) bool) int {
	kept := c.entries[:0]
	for _, e := range c.entries {
		if !pred(e.child) {
			kept = append(kept, e)
		}
	}
	removed := len(c.entries) - len(kept)
	var zero entry[C]
	for i := len(kept); i < len(c.entries); i++ {
		c.entries[i] = zero
	}
	c.entries = kept
	return removed
}

// Items returns the children in creation order. The returned slice is a copy.
func (c *Collection[C]) Items() []C {
	items := make([]C, len(c.entries))
	for i, e := range c.entries {
		items[i] = e.child
	}
	return items
}

// Len returns the number of children.
func (c *Collection[C]) Len() int { return len(c.entries) }
