// Package main is the entry point for the routefinder CLI.
package main

import "routefinder.dev/pkg/routefinder/cmd"

func main() {
	cmd.Execute()
}
