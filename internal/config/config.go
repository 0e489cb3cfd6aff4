// Package config loads paramdoc settings from flags, environment and an
// optional .paramdoc.yaml file through viper.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Keys understood by Load.
const (
	KeyFormat            = "format"
	KeyStrict            = "strict"
	KeyLogLevel          = "log-level"
	KeyIncludeUnexported = "include-unexported"
	KeyTests             = "tests"
)

// EnvPrefix is the prefix of environment variables, e.g. PARAMDOC_STRICT.
const EnvPrefix = "PARAMDOC"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the supported output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Config holds the settings for one run.
type Config struct {
	// Format of the report written to stdout.
	Format string
	// Strict turns any warning into a failing exit status.
	Strict bool
	// LogLevel is the zerolog level name. Warnings reach the log only at
	// "warn" or lower; the report already carries them.
	LogLevel string
	// IncludeUnexported documents unexported Go declarations too.
	IncludeUnexported bool
	// Tests also loads _test.go files.
	Tests bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Format:   FormatText,
		LogLevel: "error",
	}
}

// SetDefaults registers the default values with v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyStrict, d.Strict)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyIncludeUnexported, d.IncludeUnexported)
	v.SetDefault(KeyTests, d.Tests)
}

// New returns a viper instance with defaults and environment binding.
// When file is non-empty it is read as the config file; otherwise
// .paramdoc.yaml is looked up in the working directory and is optional.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".paramdoc")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return v, nil
}

// Load reads a Config from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Format:            strings.ToLower(v.GetString(KeyFormat)),
		Strict:            v.GetBool(KeyStrict),
		LogLevel:          v.GetString(KeyLogLevel),
		IncludeUnexported: v.GetBool(KeyIncludeUnexported),
		Tests:             v.GetBool(KeyTests),
	}

	if !slices.Contains(Formats, cfg.Format) {
		return cfg, fmt.Errorf("unsupported format %q (want one of %s)", cfg.Format, strings.Join(Formats, ", "))
	}

	return cfg, nil
}
