package main

import (
	"os"

	"github.com/piresc/boleias/internal/pkg/logger"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		logger.Error("Command failed", logger.Err(err))
		os.Exit(1)
	}
}
