package main

import (
	"os"

	"primefrac/cmd/primefrac/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
