// Command chesscore-uci runs the UCI driver over stdin/stdout.
package main

import (
	"flag"

	"github.com/lucasmendes/chesscore/internal/logging"
	"github.com/lucasmendes/chesscore/internal/perft"
	"github.com/lucasmendes/chesscore/internal/uci"
)

var cacheDir = flag.String("perft-cache", "", "directory for the perft memoization cache (empty disables it)")

func main() {
	flag.Parse()

	log := logging.GetLog()
	log.Infof("starting chesscore-uci")

	cache, err := perft.NewCache(*cacheDir)
	if err != nil {
		log.Fatalf("opening perft cache at %q: %v", *cacheDir, err)
	}
	defer cache.Close()

	protocol := uci.NewWithCache(cache)
	protocol.Run()
}
