// Command wyvern runs the engine as a UCI-speaking process communicating
// over stdin/stdout.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/wyvernchess/wyvern/internal/config"
	"github.com/wyvernchess/wyvern/uci"
)

func main() {
	configPath := flag.String("config", "wyvern.toml", "path to the TOML settings file")
	flag.Parse()

	cfg := config.Load(*configPath)
	engine := uci.New(cfg)

	if err := engine.Run(context.Background(), os.Stdin, os.Stdout); err != nil {
		os.Exit(1)
	}
}
