package main

import (
	"os"

	"github.com/Sykander/Iterable-Async-Methods/internal/playground"
)

func main() {
	if err := playground.NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
