package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/image-reencode/internal/reencode"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const usage = "Usage: reencode-png [--] <file1> [file2 ...]"

func main() {
	// Diagnostics go to stderr; stdout carries the per-file report
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
// Per-file failures are reported but never change the status.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, usage)
		return 1
	}

	// Handle --version and --help flags; "--" ends flag handling
	switch args[0] {
	case "--":
		args = args[1:]
		if len(args) == 0 {
			fmt.Fprintln(stderr, usage)
			return 1
		}
	case "--version", "-v", "version":
		fmt.Fprintf(stdout, "reencode-png %s\n", Version)
		fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
		return 0
	case "--help", "-h", "help":
		fmt.Fprintln(stdout, "reencode-png - re-encode images in place as PNG")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, usage)
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Each file is first preserved as <file>.bak (an existing .bak is")
		fmt.Fprintln(stdout, "reused, never replaced), then decoded from the backup and written")
		fmt.Fprintln(stdout, "back to <file> as PNG.")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "A first argument of -v, --version, version, -h, --help or help is")
		fmt.Fprintln(stdout, "read as an option. Put -- first to treat every argument as a file:")
		fmt.Fprintln(stdout, "  reencode-png -- -v")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Environment variables:")
		fmt.Fprintln(stdout, "  REENCODE_LOG_LEVEL=debug    Enable debug logging")
		return 0
	}

	debug := os.Getenv("REENCODE_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("reencode-png v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	r := reencode.New(nil, stdout, stderr)
	r.Debug = debug
	r.Run(args)
	return 0
}
