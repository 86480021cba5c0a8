// Package main is a diagnostic CLI over the stubbed compatibility surface.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/figly/wasiunix"
)

func main() {
	doMain(os.Stdout, os.Stderr, os.Exit)
}

// doMain is separated out for the purpose of unit testing.
func doMain(stdOut io.Writer, stdErr io.Writer, exit func(code int)) {
	flags := flag.NewFlagSet("wasiunix", flag.ContinueOnError)
	flags.SetOutput(stdErr)

	var help bool
	flags.BoolVar(&help, "h", false, "print usage")

	if err := flags.Parse(os.Args[1:]); err != nil {
		printUsage(stdErr)
		exit(1)
		return
	}

	if help || flags.NArg() == 0 {
		printUsage(stdErr)
		exit(0)
		return
	}

	subCmd := flags.Arg(0)
	switch subCmd {
	case "catalog":
		doCatalog(stdOut)
	case "probe":
		doProbe(stdOut, stdErr, exit)
	case "version":
		fmt.Fprintln(stdOut, wasiunix.Version)
	default:
		fmt.Fprintln(stdErr, "invalid command")
		printUsage(stdErr)
		exit(1)
	}
}

// doCatalog lists every cataloged primitive and the argument count of its C
// call surface.
func doCatalog(stdOut io.Writer) {
	w := tabwriter.NewWriter(stdOut, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tARITY")
	for _, p := range wasiunix.Primitives() {
		fmt.Fprintf(w, "%s\t%d\n", p.Name, p.Arity)
	}
	_ = w.Flush()
}

// doProbe calls every stub and prints the message it failed with. Exits
// nonzero if any catalog entry has no probe, or any probe doesn't fail the
// way the catalog promises.
func doProbe(stdOut io.Writer, stdErr io.Writer, exit func(code int)) {
	byName := make(map[string]func() error, len(probes))
	for _, p := range probes {
		byName[p.name] = p.call
	}

	failed := false
	for _, p := range wasiunix.Primitives() {
		call, ok := byName[p.Name]
		if !ok {
			fmt.Fprintf(stdErr, "%s: no probe\n", p.Name)
			failed = true
			continue
		}
		err := call()
		if err == nil {
			fmt.Fprintf(stdErr, "%s: unexpectedly succeeded\n", p.Name)
			failed = true
			continue
		}
		fmt.Fprintf(stdOut, "%s: %v\n", p.Name, err)
	}
	if failed {
		exit(1)
	}
}

func printUsage(stdErr io.Writer) {
	fmt.Fprintln(stdErr, "wasiunix CLI")
	fmt.Fprintln(stdErr)
	fmt.Fprintln(stdErr, "Usage:\n  wasiunix <command>")
	fmt.Fprintln(stdErr)
	fmt.Fprintln(stdErr, "Commands:")
	fmt.Fprintln(stdErr, "  catalog\tLists the stubbed primitives and their arity")
	fmt.Fprintln(stdErr, "  probe\t\tCalls every stub and prints its failure message")
	fmt.Fprintln(stdErr, "  version\tDisplays the version of wasiunix CLI")
}
