package main

import (
	"os"

	"newsfeed-service/cmd/newsfeedctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
