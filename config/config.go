// Package config loads the posemap command configuration.
//
// Values are layered, later sources override earlier ones:
//
//  1. built in defaults
//  2. an optional YAML file
//  3. environment variables prefixed with POSEMAP_, eg: POSEMAP_USE_CPU=true
//  4. command line flags that were explicitly set
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/spf13/pflag"
	"github.com/swdee/go-posemap"
	"github.com/swdee/go-posemap/dnn"
)

// EnvPrefix is the prefix of environment variables read into the config
const EnvPrefix = "POSEMAP_"

// Config holds the settings of a prediction run
type Config struct {
	OutName           string `koanf:"out-name"`
	Scales            string `koanf:"scales"`
	Visualize         bool   `koanf:"visualize"`
	FolderImageSuffix string `koanf:"folder-image-suffix"`
	UseCPU            bool   `koanf:"use-cpu"`
	GPU               int    `koanf:"gpu"`
	CPUCores          string `koanf:"cpu-cores"`
	Prototxt          string `koanf:"prototxt"`
	Weights           string `koanf:"weights"`
	OutputLayer       string `koanf:"output-layer"`
	Workers           int    `koanf:"workers"`
	ContinueOnError   bool   `koanf:"continue-on-error"`
	Debug             bool   `koanf:"debug"`
}

// Defaults returns the built in configuration values
func Defaults() map[string]any {

	model := dnn.DeeperCutDefaultParams()

	return map[string]any{
		"out-name":            "",
		"scales":              "1.",
		"visualize":           true,
		"folder-image-suffix": ".png",
		"use-cpu":             false,
		"gpu":                 0,
		"cpu-cores":           "",
		"prototxt":            model.Prototxt,
		"weights":             model.Weights,
		"output-layer":        model.OutputLayer,
		"workers":             1,
		"continue-on-error":   false,
		"debug":               false,
	}
}

// Load builds the configuration from the defaults, the YAML file at path if
// path is not empty, the environment and the flag set
func Load(path string, flags *pflag.FlagSet) (*Config, error) {

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", "-")
	}), nil)

	if err != nil {
		return nil, err
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// Validate checks the configuration values
func (c *Config) Validate() error {

	if _, err := ParseScales(c.Scales); err != nil {
		return err
	}

	if _, err := ParseCores(c.CPUCores); err != nil {
		return err
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}

	if !c.UseCPU && c.GPU < 0 {
		return fmt.Errorf("invalid gpu device %d", c.GPU)
	}

	return nil
}

// Backend returns the compute backend selection
func (c *Config) Backend() posemap.Backend {

	cores, _ := ParseCores(c.CPUCores)

	return posemap.Backend{
		UseCPU:   c.UseCPU,
		Device:   c.GPU,
		CPUCores: cores,
	}
}

// Model returns the estimator model parameters
func (c *Config) Model() dnn.Params {

	p := dnn.DeeperCutDefaultParams()
	p.Prototxt = c.Prototxt
	p.Weights = c.Weights
	p.OutputLayer = c.OutputLayer

	return p
}

// ParseScales parses a comma separated list of positive scale factors, eg:
// "1.,0.8,1.2"
func ParseScales(s string) ([]float64, error) {

	var scales []float64

	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)

		if err != nil {
			return nil, fmt.Errorf("invalid scale %q: %w", part, err)
		}

		if v <= 0 {
			return nil, fmt.Errorf("scale must be positive, got %v", v)
		}

		scales = append(scales, v)
	}

	if len(scales) == 0 {
		return nil, errors.New("no scales given")
	}

	return scales, nil
}

// ParseCores parses a comma separated list of CPU core numbers, an empty
// string returns no cores
func ParseCores(s string) ([]int, error) {

	s = strings.TrimSpace(s)

	if s == "" {
		return nil, nil
	}

	var cores []int

	for _, part := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))

		if err != nil || v < 0 || v > 63 {
			return nil, fmt.Errorf("invalid cpu core %q", part)
		}

		cores = append(cores, v)
	}

	return cores, nil
}
