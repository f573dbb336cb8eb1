// Package main provides the taskman CLI, a single-user task tracker backed
// by a SQLite table with a full in-memory mirror.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
