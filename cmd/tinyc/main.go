package main

import (
	"os"

	"github.com/arnavsurve/tinyc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
