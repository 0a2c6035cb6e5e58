// Command linefit fits a straight line to a set of points by gradient descent.
//
// Usage:
//
//	linefit interactive [--config linefit.yaml]
//	linefit fit --data points.yaml [--config linefit.yaml] [--compare]
//	linefit encode --in points.yaml --out points.lfd [--compression zstd]
package main

import (
	"os"

	"github.com/arloliu/linefit/internal/logger"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
