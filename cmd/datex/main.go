package main

import (
	"os"

	"github.com/msto63/datex/cmd/datex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
