// SPDX-License-Identifier: MIT
// Package: lotwheel/cmd/lotwheel
//
// main.go — process entry point.

// Command lotwheel builds lottery covering systems ("wheels") from the
// command line.
//
//	lotwheel generate --pool 3,8,12,19,23,31,36,42,44,47 --k 6 --g 3
//	lotwheel verify --pool 1,2,3,4,5,6,7 --g 3 --bets "1,2,3,4,5,6;2,3,4,5,6,7"
//	lotwheel designs
//	lotwheel batch --file requests.yaml
//	lotwheel fav list
package main

import (
	"os"

	"github.com/katalvlaran/lotwheel/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("lotwheel failed", "err", err)
		os.Exit(1)
	}
}
