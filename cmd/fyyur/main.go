package main

import (
	"os"

	"github.com/cesargomez89/fyyur/cmd/fyyur/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
