// Command standalone opens a 900x500 window with a vertical tab list, a few
// widgets, an optional floating window and the gui demo window.
//
// Usage:
//
//	standalone [-width 900] [-height 500] [-title name] [-vsync=true] [-debug] [-log-json]
//
// Press Ctrl+Q or close the window to quit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/go-theft-auto/standalone/internal/logging"
	"github.com/go-theft-auto/standalone/internal/shell"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

type flags struct {
	debug   bool
	logJSON bool
}

func newFlagSet(cfg *shell.Config, f *flags) *flag.FlagSet {
	fs := flag.NewFlagSet("standalone", flag.ContinueOnError)
	// Errors and usage are printed explicitly.
	fs.SetOutput(io.Discard)

	cfg.RegisterFlags(fs)
	fs.BoolVar(&f.debug, "debug", false, "log at debug level")
	fs.BoolVar(&f.logJSON, "log-json", false, "write logs as JSON lines")
	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: standalone [flags]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// run returns the process exit status.
func run(args []string, stderr *os.File) int {
	cfg := shell.DefaultConfig()
	var f flags
	fs := newFlagSet(&cfg, &f)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage(stderr, fs)
			return 0
		}
		fmt.Fprintln(stderr, err)
		usage(stderr, fs)
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(stderr, "unexpected arguments:", fs.Args())
		usage(stderr, fs)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log := newLogger(stderr, f)
	sh := shell.New(cfg, newPlatform(log), shell.WithLogger(log))
	if err := sh.Run(); err != nil {
		log.Error().Err(err).Msg("exiting")
		return 1
	}
	return 0
}

func newLogger(stderr *os.File, f flags) zerolog.Logger {
	level := logging.Level(f.debug)
	if f.logJSON {
		return logging.New(stderr, level)
	}
	return logging.NewConsole(stderr, level)
}
