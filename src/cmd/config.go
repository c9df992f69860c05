package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// Config holds defaults read from the --config file. Command line flags take
// precedence.
type Config struct {
	Type     string `yaml:"type"`
	MetaURL  string `yaml:"meta-url"`
	LogLevel string `yaml:"log-level"`
}

func loadConfig(ctx *cli.Context) (*Config, error) {
	path := ctx.String("config")
	if path == "" {
		return &Config{}, nil
	}
	return readConfig(path)
}

func readConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	conf := &Config{}
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return conf, nil
}

// stringOpt returns the flag when it is set, then the config value, then the
// flag default.
func stringOpt(ctx *cli.Context, name, fromConfig string) string {
	if ctx.IsSet(name) || fromConfig == "" {
		return ctx.String(name)
	}
	return fromConfig
}
