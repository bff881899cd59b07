package main

import (
	"os"

	"github.com/dwikikusuma/bookstore/cmd/bookstore/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
