package main

import (
	"os"

	"github.com/shabbyrobe/go-hugeint/cmd/hugeint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
