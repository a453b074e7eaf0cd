//go:build unix

package sys

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

const sigWINCH = unix.SIGWINCH

func notifySignals() (chan os.Signal, func()) {
	sigCh := make(chan os.Signal, sigsChanBufferSize)
	signal.Notify(sigCh, unix.SIGWINCH, unix.SIGINT, unix.SIGTERM, unix.SIGHUP)
	return sigCh, func() { signal.Stop(sigCh) }
}
