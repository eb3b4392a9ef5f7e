package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// config holds CLI settings that may come from a TOML file.
type config struct {
	// Format is the fmt verb for results.
	Format string `toml:"format"`
	// Prompt and History configure interactive mode.
	Prompt  string `toml:"prompt"`
	History string `toml:"history"`
	// Echo prints each parsed expression before its result.
	Echo bool `toml:"echo"`
}

func defaultConfig() config {
	return config{Format: "%g", Prompt: "> "}
}

// loadConfig reads a config file over the defaults. An empty name gives the
// defaults.
func loadConfig(name string) (config, error) {
	cfg := defaultConfig()
	if name == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(name, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", name, err)
	}
	if u := md.Undecoded(); len(u) > 0 {
		return cfg, fmt.Errorf("config %s: unknown keys %v", name, u)
	}
	return cfg, nil
}
