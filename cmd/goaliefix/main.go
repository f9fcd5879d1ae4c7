// Package main provides the CLI entry point for goaliefix.
package main

import (
	"goaliefix/internal/cli"
)

func main() {
	cli.Execute()
}
