package utils

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config mirrors the command line options that may be preset in a YAML
// file. Only options whose flags were left at their defaults are taken
// from the file.
type Config struct {
	Task          string `yaml:"task"`
	Program       string `yaml:"program"`
	Format        string `yaml:"format"`
	Output        string `yaml:"output"`
	MaxIterations uint   `yaml:"max-iterations"`
	Refine        bool   `yaml:"refine"`
	LogFixpoint   bool   `yaml:"log-fixpoint"`
	NoColorize    bool   `yaml:"no-colorize"`
	Verbose       bool   `yaml:"verbose"`
}

// LoadConfig reads and decodes a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	conf := &Config{}
	if err := yaml.UnmarshalStrict(buf, conf); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}

	return conf, nil
}

func (c *Config) apply(o *options) {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	if !set["task"] && c.Task != "" {
		o.task = c.Task
	}
	if !set["program"] && c.Program != "" {
		o.program = c.Program
	}
	if !set["format"] && c.Format != "" {
		o.format = c.Format
	}
	if !set["output"] && c.Output != "" {
		o.output = c.Output
	}
	if !set["max-iterations"] {
		o.maxIterations = c.MaxIterations
	}
	if !set["refine"] {
		o.refine = c.Refine
	}
	if !set["log-fixpoint"] {
		o.logFixpoint = c.LogFixpoint
	}
	if !set["no-colorize"] {
		o.noColorize = c.NoColorize
	}
	if !set["verbose"] {
		o.verbose = c.Verbose
	}
}
