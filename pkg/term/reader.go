// Package term talks to the terminal. It decodes typed bytes into key events
// and writes Buffers with VT escape sequences, sending only what changed.
package term

import (
	"errors"
	"fmt"
)

// ErrStopped is returned by Reader.ReadEvent when Close is called while it
// waits.
var ErrStopped = errors.New("stopped")

var errTimeout = errors.New("timed out")

// Error for a sequence that could not be decoded.
type seqError struct {
	msg string
	seq string
}

func (err seqError) Error() string {
	return fmt.Sprintf("%s: %q", err.msg, err.seq)
}

// IsReadErrorRecoverable returns whether reading can go on after the Reader
// returns err.
func IsReadErrorRecoverable(err error) bool {
	var se seqError
	return errors.As(err, &se) || err == ErrStopped || err == errTimeout
}
