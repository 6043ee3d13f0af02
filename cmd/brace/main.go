// Command brace runs brace programs.
//
//	brace <path> [arg ...]        run a program file
//	brace -c "<source>" [arg ...] run an inline program
//	brace                         start the REPL
//
// Trailing arguments are exposed to the program as the args list. Exit code
// is 0 on success, 1 on a parse or evaluation error (reported to stderr),
// 2 on usage errors.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	brace "github.com/Frawstcrabs/IndividualProject"
)

const (
	appName     = "brace"
	historyFile = ".brace_history"
	promptMain  = "==> "
)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	inline := flag.String("c", "", "run the given program `source` instead of a file")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Println(brace.Version)
		return
	}

	if *inline != "" {
		os.Exit(runSource("<cmdline>", *inline, flag.Args()))
	}

	args := flag.Args()
	if len(args) == 0 {
		os.Exit(repl())
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
		os.Exit(1)
	}
	os.Exit(runSource(args[0], string(src), args[1:]))
}

func usage() {
	fmt.Fprintf(os.Stderr, `brace %s

Usage:
  %s <path> [arg ...]          Run a program file.
  %s -c "<source>" [arg ...]   Run an inline program.
  %s                           Start the REPL.
`, brace.Version, appName, appName, appName)
}

func runSource(name, src string, argv []string) int {
	prog, err := brace.Parse(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, brace.WrapErrorWithName(err, name, src).Error())
		return 1
	}

	ip := brace.NewInterpreter()
	ip.SetArgs(argv)
	if err := ip.RunProgram(prog, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, brace.WrapErrorWithName(err, name, src).Error())
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func repl() int {
	fmt.Printf("brace %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.\n", brace.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := brace.NewInterpreter()
	ip.SetArgs(nil)

	for {
		line, err := ln.Prompt(promptMain)
		if err != nil {
			fmt.Println()
			return 0
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			return 0
		}
		ln.AppendHistory(line)

		var buf strings.Builder
		if err := ip.RunSource(line, &buf); err != nil {
			fmt.Fprintln(os.Stderr, red(brace.WrapErrorWithSource(err, line).Error()))
			continue
		}
		if buf.Len() > 0 {
			fmt.Println(blue(buf.String()))
		}
	}
}
