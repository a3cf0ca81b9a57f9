package main

import (
	"os"

	"leafdesk/cmd/leafdesk/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
