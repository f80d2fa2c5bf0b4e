// The main package for the boardwatch executable.
package main

import "github.com/dhkim-dev/boardwatch/cmd"

// main is the entry point of the application.
// It defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}
