// Package config loads hwgraph settings from an optional file and the
// environment.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. HWGRAPH_LOG_LEVEL.
const EnvPrefix = "HWGRAPH"

// Export formats understood by the export command.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
)

// Formats lists every export format in display order.
var Formats = []string{FormatJSON, FormatTOML, FormatDOT, FormatSVG, FormatPDF, FormatPNG}

// Config holds all application configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Export ExportConfig `mapstructure:"export"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type ExportConfig struct {
	Format   string  `mapstructure:"format"`
	Detailed bool    `mapstructure:"detailed"`
	Scale    float64 `mapstructure:"scale"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Export: ExportConfig{Format: FormatJSON, Scale: 2.0},
	}
}

// LogLevel parses the configured log level, falling back to info.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Validate checks configuration for issues and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		warnings = append(warnings, fmt.Sprintf("log level %q is not recognised, using info", c.Log.Level))
	}
	if !slices.Contains(Formats, c.Export.Format) {
		warnings = append(warnings, fmt.Sprintf("export format %q is not one of %s", c.Export.Format, strings.Join(Formats, ", ")))
	}
	if c.Export.Scale <= 0 {
		warnings = append(warnings, fmt.Sprintf("export scale %.2f must be positive", c.Export.Scale))
	}

	return warnings
}

// Load reads configuration from the file at path, if given, and from
// HWGRAPH_* environment variables. Environment values win over the file;
// unset keys keep the values from [Default].
func Load(path string) (*Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("export.format", def.Export.Format)
	v.SetDefault("export.detailed", def.Export.Detailed)
	v.SetDefault("export.scale", def.Export.Scale)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}
