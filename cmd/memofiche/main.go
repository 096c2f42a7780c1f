// Package main implements the memofiche command-line tool, which generates
// a memo sheet from flags and local files using the same pipeline as the
// API server.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(defaultDeps()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}
