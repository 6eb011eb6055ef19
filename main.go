package main

import (
	"os"

	"github.com/abhisek/porschequiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
