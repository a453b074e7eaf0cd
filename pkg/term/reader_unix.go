//go:build unix

package term

import (
	"io"
	"os"
	"sync"
	"syscall"
	"time"

	"src.prismdeck.dev/pkg/sys/eunix"
)

// Reader reads key events from a terminal. Close interrupts a pending read.
type Reader struct {
	in *os.File
	// Writing to stop wakes up a read waiting on in.
	stop, stopW *os.File
	// Held while a read is in progress.
	reading sync.Mutex
}

// NewReader returns a Reader for the terminal in.
func NewReader(in *os.File) (*Reader, error) {
	stop, stopW, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	return &Reader{in: in, stop: stop, stopW: stopW}, nil
}

// ReadEvent waits for and decodes the next event.
func (r *Reader) ReadEvent() (Event, error) {
	return decodeEvent(r)
}

// ReadByteWithTimeout reads one byte from the terminal, returning ErrStopped
// if Close is called first.
func (r *Reader) ReadByteWithTimeout(timeout time.Duration) (byte, error) {
	r.reading.Lock()
	defer r.reading.Unlock()
	for {
		ready, err := eunix.WaitForRead(timeout, r.in, r.stop)
		if err == syscall.EINTR {
			continue
		} else if err != nil {
			return 0, err
		}
		var b [1]byte
		switch {
		case ready[1]:
			r.stop.Read(b[:])
			return 0, ErrStopped
		case !ready[0]:
			return 0, errTimeout
		}
		n, err := r.in.Read(b[:])
		if err != nil {
			return 0, err
		}
		if n != 1 {
			return 0, io.ErrNoProgress
		}
		return b[0], nil
	}
}

// Close stops any pending read, waits for it to return and releases the stop
// pipe. It does not close the terminal.
func (r *Reader) Close() {
	r.stopW.Write([]byte{'q'})
	// Acquiring the lock means the read has returned.
	r.reading.Lock()
	r.reading.Unlock()
	r.stop.Close()
	r.stopW.Close()
}
