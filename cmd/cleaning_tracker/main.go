package main

import (
	"os"

	"github.com/SscSPs/cleaning_tracker/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
