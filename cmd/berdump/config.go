package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/slonegd/gober/ber"
)

// EnvLogLevel overrides the log level from the config file.
const EnvLogLevel = "BERDUMP_LOG_LEVEL"

const (
	inputRaw = "raw"
	inputHex = "hex"
)

type config struct {
	MaxDepth int
	Input    string
	Reencode bool
	LogLevel string
}

type fileConfig struct {
	MaxDepth int    `toml:"max_depth"`
	Input    string `toml:"input"`
	Reencode bool   `toml:"reencode"`
	LogLevel string `toml:"log_level"`
}

func defaultConfig() config {
	return config{
		MaxDepth: ber.DefaultMaxDepth,
		Input:    inputRaw,
		LogLevel: "warn",
	}
}

// loadConfig applies the keys defined in the TOML file at path on top of cfg.
func loadConfig(path string, cfg *config) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load berdump config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load berdump config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("max_depth") {
		cfg.MaxDepth = raw.MaxDepth
	}
	if meta.IsDefined("input") {
		cfg.Input = strings.ToLower(strings.TrimSpace(raw.Input))
	}
	if meta.IsDefined("reencode") {
		cfg.Reencode = raw.Reencode
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	return nil
}

func applyEnvOverrides(cfg *config) {
	if lvl := strings.TrimSpace(os.Getenv(EnvLogLevel)); lvl != "" {
		cfg.LogLevel = lvl
	}
}

func (c config) validate() error {
	if c.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	switch c.Input {
	case inputRaw, inputHex:
	default:
		return fmt.Errorf("input must be %q or %q, got %q", inputRaw, inputHex, c.Input)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

func (c config) level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log_level: %w", err)
	}
	return lvl, nil
}
