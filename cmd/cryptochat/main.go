package main

import (
	"os"

	"cryptochat/cmd/cryptochat/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
