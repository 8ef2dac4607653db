package main

import (
	"os"

	"github.com/apresai/repost/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
