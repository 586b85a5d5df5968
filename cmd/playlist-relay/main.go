package main

import (
	"os"

	"github.com/Kavirubc/playlist-relay/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
