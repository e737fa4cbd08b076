// Package main provides the entry point for the ntree CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/forestrie/go-ntree/cmd/ntree/commands"
)

func main() {
	err := commands.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
