package main

import (
	"os"

	"github.com/Dias221467/waseela/pkg/logger"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Log.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
