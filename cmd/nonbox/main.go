// nonbox CLI - inspects and produces boxed words
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/chazu/nonbox/f62"
	"github.com/chazu/nonbox/internal/vectors"
	"github.com/chazu/nonbox/n64"
	"github.com/chazu/nonbox/nanbox"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("nonbox")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("nonbox", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "Verbose output")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: nonbox [options] <command> [args...]\n\n")
		fmt.Fprintf(stderr, "Commands:\n")
		fmt.Fprintf(stderr, "  inspect <word>...               Decode words under every encoding\n")
		fmt.Fprintf(stderr, "  box <family> <kind> <value>     Print the word encoding a value\n")
		fmt.Fprintf(stderr, "  check [file]                    Verify a golden vector file\n")
		fmt.Fprintf(stderr, "\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  nonbox inspect 0x7ffe000000000005\n")
		fmt.Fprintf(stderr, "  nonbox box f62 float 1.5\n")
		fmt.Fprintf(stderr, "  nonbox check ./vectors.toml\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *verbose {
		commonlog.Configure(2, nil)
	} else {
		commonlog.Configure(0, nil)
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	log.Debugf("command %s %v", cmd, rest)

	var err error
	switch cmd {
	case "inspect":
		err = inspect(rest, stdout)
	case "box":
		err = box(rest, stdout)
	case "check":
		var ok bool
		ok, err = check(rest, stdout)
		if err == nil && !ok {
			return 1
		}
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

func inspect(args []string, w io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("inspect: no words given")
	}
	for _, arg := range args {
		word, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			return fmt.Errorf("inspect: bad word %q: %w", arg, err)
		}
		describe(w, word)
	}
	return nil
}

func describe(w io.Writer, word uint64) {
	fmt.Fprintf(w, "%#016x\n", word)
	fmt.Fprintf(w, "  float64  %v\n", math.Float64frombits(word))

	if u, ok := nanbox.UnboxUnsigned(word); ok {
		s, _ := nanbox.UnboxSigned(word)
		fmt.Fprintf(w, "  nanbox   unsigned=%d signed=%d flag=%v\n", u, s, nanbox.IsFlagged(word))
	} else {
		fmt.Fprintf(w, "  nanbox   not boxed\n")
	}

	fmt.Fprintf(w, "  f62      %v\n", f62.FromBits(word))
	fmt.Fprintf(w, "  n64      %v\n", n64.FromBits(word))
}

func box(args []string, w io.Writer) error {
	if len(args) != 3 {
		return fmt.Errorf("box: want <family> <kind> <value>, got %d arguments", len(args))
	}
	family, kind, value := args[0], args[1], args[2]
	word, err := vectors.Encode(family, kind, value)
	if err != nil {
		if kinds := vectors.Kinds(family); len(kinds) > 0 {
			return fmt.Errorf("%w (kinds for %s: %s)", err, family, strings.Join(kinds, ", "))
		}
		return err
	}
	fmt.Fprintf(w, "%#016x\n", word)
	return nil
}

func check(args []string, w io.Writer) (bool, error) {
	var (
		file *vectors.File
		err  error
	)
	switch len(args) {
	case 0:
		file, err = vectors.Default()
	case 1:
		file, err = vectors.Load(args[0])
	default:
		return false, fmt.Errorf("check: want at most one file, got %d", len(args))
	}
	if err != nil {
		return false, err
	}
	log.Debugf("checking %d vectors from %s", file.Len(), file.Path)

	mismatches := file.Check()
	for _, m := range mismatches {
		fmt.Fprintf(w, "FAIL %s\n", m)
	}
	fmt.Fprintf(w, "%d/%d vectors passed\n", file.Len()-len(mismatches), file.Len())
	return len(mismatches) == 0, nil
}
