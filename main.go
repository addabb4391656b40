package main

import (
	"os"

	"github.com/compbio-workflows/flume/cmd"
	"github.com/compbio-workflows/flume/logger"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		logger.PrintSimpleError(err)
		os.Exit(1)
	}
}
