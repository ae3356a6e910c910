package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/moniker/internal/termfile"
	"github.com/funvibe/moniker/internal/typed"
)

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

func usage() {
	fmt.Fprint(os.Stderr, "usage: moniker (eval | check) file.yaml\n\n")
	fmt.Fprint(os.Stderr, "  eval   reduce the term to normal form\n")
	fmt.Fprint(os.Stderr, "  check  infer the term's type in an empty context\n")
	os.Exit(2)
}

func colorize(s, color string, f *os.File) string {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return color + s + colorReset
	}
	return s
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, colorize(err.Error(), colorRed, os.Stderr))
	os.Exit(1)
}

func main() {
	if len(os.Args) != 3 {
		usage()
	}

	data, err := os.ReadFile(os.Args[2])
	if err != nil {
		fail(err)
	}
	expr, err := termfile.Load(data)
	if err != nil {
		fail(fmt.Errorf("%s: %w", os.Args[2], err))
	}

	switch os.Args[1] {
	case "eval":
		fmt.Println(typed.Eval(expr))
	case "check":
		ty, err := typed.Infer(typed.NewContext(), expr)
		if err != nil {
			fail(fmt.Errorf("%s: %w", os.Args[2], err))
		}
		fmt.Println(colorize(ty.String(), colorGreen, os.Stdout))
	default:
		usage()
	}
}
