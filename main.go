package main

import (
	"os"

	"github.com/teichopsia/rancid2dot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
