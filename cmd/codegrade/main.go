package main

import (
	"os"

	"github.com/codegrade/codegrade/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
