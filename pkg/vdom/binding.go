package vdom

// Source identifies where the runtime takes an argument of a bound operation
// from.
type Source uint8

// Possible values of Source.
const (
	// A fixed value stored in the binding.
	Literal Source = iota
	// The identifier of the key that triggered the event, like "Enter" or
	// "ArrowRight".
	EventKey
	// The value of the element the event happened on, at the time of the
	// event.
	TargetValue
)

// Arg describes how to resolve one argument of a bound operation.
type Arg struct {
	Source Source
	// Used when Source is Literal.
	Value any
}

// Event carries the data of a UI event that arguments can be resolved from.
type Event struct {
	Key         string
	TargetValue string
}

// Op is an operation that can be bound to an event. It receives the resolved
// arguments. See the comp package for adapters from typed methods.
type Op func(args []any) error

// Binding binds an operation to an event on a Node.
//
// Bindings are values; the builder methods return modified copies.
type Binding struct {
	Op   Op
	Args []Arg
	// Whether the event should stop propagating to the document after the
	// binding is invoked.
	StopPropagation bool
}

// Call returns a Binding that invokes op with no arguments.
func Call(op Op) Binding { return Binding{Op: op} }

func (b Binding) withArg(a Arg) Binding {
	args := make([]Arg, len(b.Args), len(b.Args)+1)
	copy(args, b.Args)
	b.Args = append(args, a)
	return b
}

// With returns a copy of b with a literal argument appended.
func (b Binding) With(v any) Binding { return b.withArg(Arg{Literal, v}) }

// WithEventKey returns a copy of b with the event's key appended as an
// argument.
func (b Binding) WithEventKey() Binding { return b.withArg(Arg{Source: EventKey}) }

// WithTargetValue returns a copy of b with the target's value appended as an
// argument.
func (b Binding) WithTargetValue() Binding { return b.withArg(Arg{Source: TargetValue}) }

// Stop returns a copy of b that stops the event from propagating.
func (b Binding) Stop() Binding {
	b.StopPropagation = true
	return b
}

// Resolve resolves the arguments of b against an event.
func (b Binding) Resolve(e Event) []any {
	args := make([]any, len(b.Args))
	for i, a := range b.Args {
		switch a.Source {
		case EventKey:
			args[i] = e.Key
		case TargetValue:
			args[i] = e.TargetValue
		default:
			args[i] = a.Value
		}
	}
	return args
}

// Invoke resolves the arguments of b and calls its operation.
func (b Binding) Invoke(e Event) error {
	if b.Op == nil {
		return nil
	}
	return b.Op(b.Resolve(e))
}
