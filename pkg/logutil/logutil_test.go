package logutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	logger := GetLogger("foo ")
	t.Cleanup(func() { SetOutput(io.Discard) })

	var sb strings.Builder
	SetOutput(&sb)
	logger.Println("out 1")
	if got := sb.String(); !strings.Contains(got, "foo ") || !strings.HasSuffix(got, "out 1\n") {
		t.Errorf("got %q, want prefix %q and suffix %q", got, "foo ", "out 1\n")
	}

	SetOutput(io.Discard)
	sb.Reset()
	logger.Println("out 2")
	if sb.Len() != 0 {
		t.Errorf("got %q after discarding, want empty", sb.String())
	}
}

func TestSetOutputFile(t *testing.T) {
	logger := GetLogger("bar ")
	t.Cleanup(func() { SetOutput(io.Discard) })

	name := filepath.Join(t.TempDir(), "log")
	if err := SetOutputFile(name); err != nil {
		t.Fatal(err)
	}
	logger.Println("to file")
	// Closes the file.
	if err := SetOutputFile(""); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "to file") {
		t.Errorf("log file has %q, want it to contain %q", content, "to file")
	}
}

func TestSetOutputFile_BadPath(t *testing.T) {
	err := SetOutputFile(filepath.Join(t.TempDir(), "no", "such", "dir", "log"))
	if err == nil {
		t.Errorf("want error for bad path")
	}
}
