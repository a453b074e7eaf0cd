//go:build unix

// Package eunix provides extra Unix-specific system utilities.
package eunix

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// WaitForRead blocks until at least one of files can be read from, or until
// timeout has passed. A negative timeout waits forever. The returned slice
// tells which of files are ready.
func WaitForRead(timeout time.Duration, files ...*os.File) ([]bool, error) {
	var set unix.FdSet
	nfd := 0
	for _, f := range files {
		fd := int(f.Fd())
		set.Set(fd)
		nfd = max(nfd, fd+1)
	}
	var tv *unix.Timeval
	if timeout >= 0 {
		t := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &t
	}
	_, err := unix.Select(nfd, &set, nil, nil, tv)
	ready := make([]bool, len(files))
	for i, f := range files {
		ready[i] = set.IsSet(int(f.Fd()))
	}
	return ready, err
}
