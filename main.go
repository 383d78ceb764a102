// Package main is the entry point for the Learnhub CLI application.
package main

import (
	"learnhub/cli/cmd"
)

func main() {
	cmd.Execute()
}
