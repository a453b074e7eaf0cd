// Package testutil contains common test utilities.
package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Cleanuper wraps the Cleanup method. It is a subset of [testing.TB], thus
// satisfied by [*testing.T] and [*testing.B].
type Cleanuper interface {
	Cleanup(func())
}

// Set sets *p to v and restores the old value when the test finishes.
func Set[T any](c Cleanuper, p *T, v T) {
	old := *p
	*p = v
	c.Cleanup(func() { *p = old })
}

// TempDirer wraps the TempDir method. It is a subset of [testing.TB].
type TempDirer interface {
	TempDir() string
}

// TempFile returns the path of a file named name inside a fresh temporary
// directory. The file is not created.
func TempFile(t TempDirer, name string) string {
	return filepath.Join(t.TempDir(), name)
}

// Setenv sets an environment variable for the duration of a test.
func Setenv(c Cleanuper, name, value string) {
	oldValue, existed := os.LookupEnv(name)
	if existed {
		c.Cleanup(func() { os.Setenv(name, oldValue) })
	} else {
		c.Cleanup(func() { os.Unsetenv(name) })
	}
	os.Setenv(name, value)
}

// TempDirCleanuper wraps the TempDir and Cleanup methods.
type TempDirCleanuper interface {
	TempDirer
	Cleanuper
}

// InTempDir changes into a fresh temporary directory and changes back when
// the test finishes. It returns the path of the directory.
func InTempDir(c TempDirCleanuper) string {
	dir := c.TempDir()
	oldWd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
	c.Cleanup(func() {
		if err := os.Chdir(oldWd); err != nil {
			panic(err)
		}
	})
	return dir
}

// Scaled returns d scaled by the factor in $PRESO_TEST_TIME_SCALE, which
// defaults to 1. It is used for timeouts in tests that run on slow machines.
func Scaled(d time.Duration) time.Duration {
	scale, err := strconv.ParseFloat(os.Getenv("PRESO_TEST_TIME_SCALE"), 64)
	if err != nil || scale <= 0 {
		scale = 1
	}
	return time.Duration(float64(d) * scale)
}
