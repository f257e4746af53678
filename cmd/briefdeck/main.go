package main

import (
	"os"

	"briefdeck/cmd/briefdeck/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
