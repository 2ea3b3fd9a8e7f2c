package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// Root is the workspace root searched for ngtooling.{json,yaml,yml}, then for
	// vscode-ng-tooling.json; keys are case-insensitive, so an existing
	// {"svgsPath": ...} file is read as is
	Root string
	// File is an explicit configuration file, used exclusively when set
	File string
	// DotEnv loads <Root>/.env into the process environment before reading overrides
	DotEnv bool
}

// IsLegacy reports whether the resolved config file uses the editor extension's name
func IsLegacy(configFile string) bool {
	return strings.HasPrefix(filepath.Base(configFile), LegacyFileName+".")
}

// Load resolves configuration from defaults, config file and environment.
// It returns the config together with the resolved file path (empty when none was used).
func Load(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	if opts.DotEnv && opts.Root != "" {
		if err := godotenv.Load(filepath.Join(opts.Root, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("failed to load .env: %w", err)
		}
	}

	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("indent", defaults.Indent)
	v.SetDefault("svgsPath", defaults.SvgsPath)
	v.SetDefault("samplesPath", defaults.SamplesPath)
	v.SetDefault("extension", defaults.Extension)
	v.SetDefault("moduleMarker", defaults.ModuleMarker)
	v.SetDefault("indexName", defaults.IndexName)
	v.SetDefault("rootModule", defaults.RootModule)
	v.SetDefault("ignore", defaults.Ignore)
	v.SetDefault("sampleSkip", defaults.SampleSkip)
	v.SetDefault("svgPrefix", defaults.SvgPrefix)
	v.SetDefault("svgSkip", defaults.SvgSkip)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolved := ""
	switch {
	case opts.File != "":
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config %s: %w", opts.File, err)
		}
		resolved = opts.File
	case opts.Root != "":
		for _, name := range []string{FileName, LegacyFileName} {
			v.SetConfigName(name)
			err := v.ReadInConfig()
			if err == nil {
				resolved = v.ConfigFileUsed()
				break
			}
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, "", fmt.Errorf("failed to read config in %s: %w", opts.Root, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, resolved, nil
}
