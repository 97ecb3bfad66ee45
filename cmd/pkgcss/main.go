// Package main provides the pkgcss CLI tool for generating the libSBML
// package stylesheet.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usageLine)
		}
		os.Exit(1)
	}
}
