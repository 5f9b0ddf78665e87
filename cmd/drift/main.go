package main

import (
	"os"

	"drift/cmd/drift/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
