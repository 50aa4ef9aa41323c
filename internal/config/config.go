// Package config loads engine settings from a TOML file, falling back to
// sensible defaults when the file is absent or malformed — the engine must
// always start, configured or not.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the engine-wide settings that a UCI front end or the perft
// tool reads at startup.
type Config struct {
	// EngineName is reported in the UCI "id name" response.
	EngineName string
	// Author is reported in the UCI "id author" response.
	Author string
	// DefaultDepth is the fixed search depth used when a "go" command
	// gives no "depth" argument; time controls on "go" are not read.
	DefaultDepth int
	// CacheBytes bounds the transposition cache's memory footprint.
	CacheBytes int
}

// DefaultConfig returns the engine's built-in settings.
func DefaultConfig() Config {
	return Config{
		EngineName:   "Wyvern",
		Author:       "wyvernchess",
		DefaultDepth: 6,
		CacheBytes:   64 << 20,
	}
}

// file mirrors Config's shape for TOML (de)serialization.
type file struct {
	Engine struct {
		Name         string `toml:"name"`
		Author       string `toml:"author"`
		DefaultDepth int    `toml:"default_depth"`
		CacheBytes   int    `toml:"cache_bytes"`
	} `toml:"engine"`
}

func defaultFile() file {
	d := DefaultConfig()
	var f file
	f.Engine.Name = d.EngineName
	f.Engine.Author = d.Author
	f.Engine.DefaultDepth = d.DefaultDepth
	f.Engine.CacheBytes = d.CacheBytes
	return f
}

func (f file) toConfig() Config {
	return Config{
		EngineName:   f.Engine.Name,
		Author:       f.Engine.Author,
		DefaultDepth: f.Engine.DefaultDepth,
		CacheBytes:   f.Engine.CacheBytes,
	}
}

// Load reads path as a TOML config file and returns the resulting Config.
// If path doesn't exist or can't be parsed, Load returns the defaults: a
// missing or broken config file must never keep the engine from starting.
func Load(path string) Config {
	if _, err := os.Stat(path); err != nil {
		return DefaultConfig()
	}

	f := defaultFile()
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return DefaultConfig()
	}
	return f.toConfig()
}
