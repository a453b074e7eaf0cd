// Package prog provides the entry point to preso. A binary is made of
// subprograms, which are tried in order until one of them decides to run.
package prog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"src.prismdeck.dev/pkg/logutil"
)

// Program represents a subprogram.
type Program interface {
	// RegisterFlags registers the flags the subprogram understands.
	RegisterFlags(fs *FlagSet)
	// Run runs the subprogram. It returns the error from NextProgram to let
	// the next subprogram run instead.
	Run(fds [3]*os.File, args []string) error
}

// FlagSet wraps a flag.FlagSet and provides flags shared by several
// subprograms.
type FlagSet struct {
	*flag.FlagSet
	json *bool
}

// JSON returns a pointer to the value of the -json flag, registering it on
// first use.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false, "Show the output from -buildinfo or -list in JSON")
		fs.json = &json
	}
	return fs.json
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: preso [flags]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	fs := &FlagSet{FlagSet: flag.NewFlagSet("preso", flag.ContinueOnError)}
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)
	var (
		log  string
		help bool
	)
	fs.StringVar(&log, "log", "", "A file to write debug log to")
	fs.BoolVar(&help, "help", false, "Show usage help and quit")
	p.RegisterFlags(fs)

	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h or -help was
			// requested but *not* defined. We define -help, but not -h; so
			// this means that -h has been requested. Handle this by printing
			// the same message as an undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs.FlagSet)
		return 2
	}

	if log != "" {
		if err := logutil.SetOutputFile(log); err != nil {
			fmt.Fprintln(fds[2], err)
		} else {
			defer logutil.SetOutputFile("")
		}
	}

	if help {
		usage(fds[1], fs.FlagSet)
		return 0
	}

	err = p.Run(fds, fs.Args())
	if err == nil {
		return 0
	}
	fmt.Fprintln(fds[2], err)
	var badUsage badUsageError
	if errors.As(err, &badUsage) {
		usage(fds[2], fs.FlagSet)
	}
	return 2
}

// Composite returns a Program made up of the given subprograms. Flags of all
// subprograms are registered, and the subprograms are run in turn until one of
// them returns an error other than the one from NextProgram.
func Composite(programs ...Program) Program {
	return composite(programs)
}

type composite []Program

func (cp composite) RegisterFlags(fs *FlagSet) {
	for _, p := range cp {
		p.RegisterFlags(fs)
	}
}

func (cp composite) Run(fds [3]*os.File, args []string) error {
	for _, p := range cp {
		if err := p.Run(fds, args); err != errNextProgram {
			return err
		}
	}
	// If we have reached here, all subprograms have returned errNextProgram.
	return errNextProgram
}

var errNextProgram = errors.New("internal error: no suitable subprogram")

// NextProgram returns a special error that may be returned by Program.Run in a
// Composite to let the next subprogram run instead.
func NextProgram() error { return errNextProgram }

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }
