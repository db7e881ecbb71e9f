package main

import (
	"os"

	"dhx/cmd/dhx/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
