// Package main is the entry point for the kanake CLI.
package main

import (
	"os"

	"github.com/peterjc/kana-chording-ke/cmd/kanake/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
