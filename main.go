// Package main is the entry point for the checksyntax CLI.
package main

import "gooze.dev/pkg/checksyntax/cmd"

func main() {
	cmd.Execute()
}
