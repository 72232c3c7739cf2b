// Package main provides the entry point for playerstats.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mcdash/playerstats/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			fmt.Fprint(os.Stderr, exitErr.Message())
			os.Exit(exitErr.ExitCode())
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitGeneral)
	}
}
