package main

import (
	"os"

	"github.com/B-1P/ledtomato/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
