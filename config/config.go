// Package config resolves runtime configuration for the motifscan CLI from
// a config file, environment variables, and (ultimately) command-line
// flags, in that order of increasing precedence, following the teacher
// pack's viper-based resolution layer.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds file-, default- and environment-derived settings. The CLI
// reads only Log.Format from it; the enumerate, groups, switch and enrich
// flags take their defaults from their own flag definitions and do not
// consult the Enumerate, Enrich or Switch sections.
type Config struct {
	Enumerate EnumerateConfig `mapstructure:"enumerate"`
	Enrich    EnrichConfig    `mapstructure:"enrich"`
	Switch    SwitchConfig    `mapstructure:"switch"`
	Log       LogConfig       `mapstructure:"log"`
}

// EnumerateConfig holds defaults shared by the enumerate and groups commands.
type EnumerateConfig struct {
	MotifSize    int  `mapstructure:"motif_size"`
	Threads      int  `mapstructure:"threads"`
	IncludeLoops bool `mapstructure:"include_loops"`
	Undirected   bool `mapstructure:"undirected"`
}

// EnrichConfig holds defaults for the enrich command.
type EnrichConfig struct {
	RandomGraphs int   `mapstructure:"random_graphs"`
	Q            int   `mapstructure:"q"`
	Seed         int64 `mapstructure:"seed"`
	Threads      int   `mapstructure:"threads"`
}

// SwitchConfig holds defaults for the switch command.
type SwitchConfig struct {
	Q    int   `mapstructure:"q"`
	Seed int64 `mapstructure:"seed"`
}

// LogConfig controls the CLI's slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// Load reads configuration from the given path (if non-empty) or the
// standard search locations, falling back to defaults when no file is
// found. Environment variables prefixed MOTIFSCAN_ override file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("motifscan")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/motifscan")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// no config file, defaults stand
		} else if os.IsNotExist(err) {
			// explicit path didn't exist, defaults stand
		} else {
			return nil, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("motifscan")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}
	return &cfg, nil
}

// LoadFromReader loads configuration from raw bytes, useful for tests.
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("config: failed to read: %w", err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("enumerate.motif_size", 3)
	v.SetDefault("enumerate.threads", 1)
	v.SetDefault("enumerate.include_loops", false)
	v.SetDefault("enumerate.undirected", false)

	v.SetDefault("enrich.random_graphs", 100)
	v.SetDefault("enrich.q", 10)
	v.SetDefault("enrich.seed", 1)
	v.SetDefault("enrich.threads", 1)

	v.SetDefault("switch.q", 10)
	v.SetDefault("switch.seed", 1)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
