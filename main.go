// Package main is the entry point for the bracemend CLI.
package main

import "github.com/mouse-blink/bracemend/cmd"

func main() {
	cmd.Execute()
}
