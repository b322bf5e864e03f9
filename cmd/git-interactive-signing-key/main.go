// Package main provides the entry point for git-interactive-signing-key.
//
// It lists the GPG secret keys, lets the user pick one in an inline list
// and writes it to git's user.signingkey.
//
// Usage:
//
//	git-interactive-signing-key [--global | --local] [--config file]
//
// Installed on PATH it also runs as `git interactive-signing-key`.
package main

import (
	"fmt"
	"os"

	"github.com/riordanpawley/signingkey/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(cli.Run).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
