// Package main is the entry point of gprompt. It simply calls cli.Run()
// to print the prompt or run a subcommand.
package main

import "Gprompt/internal/cli"

// main renders the prompt.
func main() {
	cli.Run()
}
