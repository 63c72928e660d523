package main

import (
	"os"

	"github.com/halc8312/shinwa-sub002/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
