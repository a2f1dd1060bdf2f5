// Package main is the entry point for padlint.
package main

import (
	"os"

	"github.com/padlint/padlint/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
