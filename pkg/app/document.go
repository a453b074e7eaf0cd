package app

// Document is the process-wide stream of keydown events. Key events that no
// element stops reach every subscriber.
type Document struct {
	subs []*subscriber
}

type subscriber struct{ f func(key string) }

// NewDocument creates a Document without subscribers.
func NewDocument() *Document { return &Document{} }

// OnKeyDown registers f to be called with the name of every key that reaches
// the document. It returns a function that unregisters f; calling it more than
// once has no further effect.
func (d *Document) OnKeyDown(f func(key string)) func() {
	s := &subscriber{f}
	d.subs = append(d.subs, s)
	return func() {
		for i, s2 := range d.subs {
			if s2 == s {
				d.subs = append(d.subs[:i:i], d.subs[i+1:]...)
				return
			}
		}
	}
}

// Dispatch calls all current subscribers with key, in the order they
// subscribed.
func (d *Document) Dispatch(key string) {
	for _, s := range append([]*subscriber(nil), d.subs...) {
		s.f(key)
	}
}

// Subscribers returns the number of current subscribers.
func (d *Document) Subscribers() int { return len(d.subs) }
