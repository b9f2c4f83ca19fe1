package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config describes one stldemo run.
type Config struct {
	// Values are appended to the vector in order.
	Values []int `toml:"values"`
	// Resize, when not negative, resizes the sorted vector.
	Resize int `toml:"resize"`
	// MemoryLimit bounds the bytes of element blocks; 0 means unlimited.
	MemoryLimit uint64 `toml:"memory_limit"`
	// LogLevel is a zap level name.
	LogLevel string `toml:"log_level"`
	// Development switches to the human readable zap encoder.
	Development bool `toml:"development"`
	// Metrics dumps the memory metrics after the run.
	Metrics bool `toml:"metrics"`
}

func defaultConfig() Config {
	return Config{
		Values:   []int{123, 13, 12, 1, 43, 3, 42, 11},
		Resize:   -1,
		LogLevel: "info",
	}
}

// loadConfig decodes the TOML file at path over cfg. Keys missing from the
// file keep their current values.
func loadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading config %s", path)
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return errors.Wrapf(err, "parsing config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.Newf("unknown config key %q in %s", undecoded[0].String(), path)
	}
	return nil
}

func (c Config) newLogger() (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
