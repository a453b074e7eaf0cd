// Package errutil contains utilities for working with errors.
package errutil

import "strings"

// Multi combines errors into one. Nil errors are dropped. It returns nil when
// nothing is left and the sole error when one is left. Otherwise the result
// reports all the messages and unwraps to all the errors, so errors.Is and
// errors.As look into it. A combined error passed to Multi again is flattened.
func Multi(errs ...error) error {
	var all multiError
	for _, err := range errs {
		switch err := err.(type) {
		case nil:
		case multiError:
			all = append(all, err...)
		default:
			all = append(all, err)
		}
	}
	if len(all) == 0 {
		return nil
	} else if len(all) == 1 {
		return all[0]
	}
	return all
}

type multiError []error

func (me multiError) Error() string {
	msgs := make([]string, len(me))
	for i, err := range me {
		msgs[i] = err.Error()
	}
	return "multiple errors: " + strings.Join(msgs, "; ")
}

func (me multiError) Unwrap() []error { return me }
