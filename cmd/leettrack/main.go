package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

func main() {
	s := streams{
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		interactive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
	if err := newApp(s).execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "leettrack failed: %v\n", err)
		os.Exit(1)
	}
}
