// Package config loads the settings of the viewcurve command.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override settings,
// such as VIEWCURVE_SIMILARITY_THRESHOLD.
const EnvPrefix = "VIEWCURVE"

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type GeometryConfig struct {
	DecimalPlaces int `mapstructure:"decimal_places"`
	SlopePlaces   int `mapstructure:"slope_places"`
	LengthPlaces  int `mapstructure:"length_places"`
}

type WeightsConfig struct {
	Parent    float64 `mapstructure:"parent"`
	Type      float64 `mapstructure:"type"`
	Length    float64 `mapstructure:"length"`
	Slope     float64 `mapstructure:"slope"`
	Endpoints float64 `mapstructure:"endpoints"`
}

func (w WeightsConfig) total() float64 {
	return w.Parent + w.Type + w.Length + w.Slope + w.Endpoints
}

type SimilarityConfig struct {
	Places    int           `mapstructure:"places"`
	Threshold float64       `mapstructure:"threshold"`
	Weights   WeightsConfig `mapstructure:"weights"`
}

type AdjacencyConfig struct {
	ProjectedArcOnly bool `mapstructure:"projected_arc_only"`
	UseArcOnly       bool `mapstructure:"use_arc_only"`
}

type OutputConfig struct {
	// Format is "text" or "json".
	Format       string `mapstructure:"format"`
	SVGPrecision int    `mapstructure:"svg_precision"`
}

type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	Geometry   GeometryConfig   `mapstructure:"geometry"`
	Similarity SimilarityConfig `mapstructure:"similarity"`
	Adjacency  AdjacencyConfig  `mapstructure:"adjacency"`
	Output     OutputConfig     `mapstructure:"output"`
}

// Flag names bound to config keys by [Load].
var flagKeys = map[string]string{
	"log-level": "log.level",
	"places":    "similarity.places",
	"threshold": "similarity.threshold",
	"format":    "output.format",
}

// RegisterFlags adds the flags understood by [Load] to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a config file (default $"+EnvPrefix+"_CONFIG)")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.Int("places", 2, "decimal places of similarity scores")
	fs.Float64("threshold", 0.9, "minimum similarity of reported pairs")
	fs.String("format", "text", "output format (text, json)")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)

	v.SetDefault("geometry.decimal_places", 4)
	v.SetDefault("geometry.slope_places", 2)
	v.SetDefault("geometry.length_places", 2)

	v.SetDefault("similarity.places", 2)
	v.SetDefault("similarity.threshold", 0.9)
	v.SetDefault("similarity.weights.parent", 0.1)
	v.SetDefault("similarity.weights.type", 0.3)
	v.SetDefault("similarity.weights.length", 0.5)
	v.SetDefault("similarity.weights.slope", 0.5)
	v.SetDefault("similarity.weights.endpoints", 0.02)

	v.SetDefault("adjacency.projected_arc_only", true)
	v.SetDefault("adjacency.use_arc_only", true)

	v.SetDefault("output.format", "text")
	v.SetDefault("output.svg_precision", 3)
}

// Load builds the configuration from defaults, an optional config file, the
// environment and fs, in increasing order of precedence. fs may be nil.
//
// The config file is taken from the --config flag or $VIEWCURVE_CONFIG. A
// missing file is not an error.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	configFile := os.Getenv(EnvPrefix + "_CONFIG")
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			configFile = f.Value.String()
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("viewcurve")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("error binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that all settings are within range.
func (c *Config) Validate() error {
	places := map[string]int{
		"geometry.decimal_places": c.Geometry.DecimalPlaces,
		"geometry.slope_places":   c.Geometry.SlopePlaces,
		"geometry.length_places":  c.Geometry.LengthPlaces,
		"similarity.places":       c.Similarity.Places,
		"output.svg_precision":    c.Output.SVGPrecision,
	}
	for key, n := range places {
		if n < 0 {
			return fmt.Errorf("invalid config: %s must not be negative, got %d", key, n)
		}
	}

	if t := c.Similarity.Threshold; t < 0 || t > 1 {
		return fmt.Errorf("invalid config: similarity.threshold must be in [0, 1], got %v", t)
	}
	w := c.Similarity.Weights
	if w.Parent < 0 || w.Type < 0 || w.Length < 0 || w.Slope < 0 || w.Endpoints < 0 {
		return fmt.Errorf("invalid config: similarity weights must not be negative")
	}
	if w.total() == 0 {
		return fmt.Errorf("invalid config: similarity weights must not all be zero")
	}

	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid config: unknown output.format %q", c.Output.Format)
	}
	return nil
}
