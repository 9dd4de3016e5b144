package main

import (
	"os"

	"github.com/flakesmith/flakesmith/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
