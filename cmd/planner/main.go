// Package main provides the planner CLI.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "planner:", err)
		os.Exit(exitCode(err))
	}
}
