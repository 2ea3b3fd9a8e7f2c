package config

import (
	"errors"
	"strings"
)

const (
	// FileName is the workspace configuration file name without extension
	FileName = "ngtooling"
	// LegacyFileName is read when no FileName config exists; workspaces set up for
	// the editor extension keep their settings in vscode-ng-tooling.json
	LegacyFileName = "vscode-ng-tooling"
	// EnvPrefix prefixes environment overrides, e.g. NGTOOLING_INDENT
	EnvPrefix = "NGTOOLING"
)

// Config represents generator configuration
type Config struct {
	Indent       string   `mapstructure:"indent" yaml:"indent"`
	SvgsPath     string   `mapstructure:"svgsPath" yaml:"svgsPath,omitempty"`
	SamplesPath  string   `mapstructure:"samplesPath" yaml:"samplesPath,omitempty"`
	Extension    string   `mapstructure:"extension" yaml:"extension"`
	ModuleMarker string   `mapstructure:"moduleMarker" yaml:"moduleMarker"`
	IndexName    string   `mapstructure:"indexName" yaml:"indexName"`
	RootModule   string   `mapstructure:"rootModule" yaml:"rootModule"`
	Ignore       []string `mapstructure:"ignore" yaml:"ignore"`
	SampleSkip   string   `mapstructure:"sampleSkip" yaml:"sampleSkip"`
	SvgPrefix    string   `mapstructure:"svgPrefix" yaml:"svgPrefix"`
	SvgSkip      string   `mapstructure:"svgSkip" yaml:"svgSkip"`
}

// DefaultConfig returns configuration used when no file or environment override is present
func DefaultConfig() *Config {
	return &Config{
		Indent:       "  ",
		Extension:    "ts",
		ModuleMarker: "module",
		IndexName:    "index",
		RootModule:   "app",
		Ignore:       []string{"**/node_modules/**"},
		SampleSkip:   "shared",
		SvgPrefix:    "Svg",
		SvgSkip:      "icon",
	}
}

// Validate checks required settings
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Extension) == "" {
		errs = append(errs, errors.New("extension is required"))
	}
	if strings.TrimSpace(c.ModuleMarker) == "" {
		errs = append(errs, errors.New("moduleMarker is required"))
	}
	if strings.TrimSpace(c.IndexName) == "" {
		errs = append(errs, errors.New("indexName is required"))
	}
	return errors.Join(errs...)
}

// BoundarySuffix returns the suffix of module boundary files, e.g. ".module.ts"
func (c *Config) BoundarySuffix() string {
	return "." + c.ModuleMarker + "." + c.Extension
}

// RootModuleFile returns the application's own top-level module file name
func (c *Config) RootModuleFile() string {
	return c.RootModule + c.BoundarySuffix()
}

// IndexFileName returns directory-local index file name, e.g. "index.ts"
func (c *Config) IndexFileName() string {
	return c.IndexName + "." + c.Extension
}

// GeneratedFileName returns the aggregator file name for the named boundary
func (c *Config) GeneratedFileName(name string) string {
	return name + "." + c.IndexName + "." + c.Extension
}

// SourceFileName returns a file name with the configured source extension
func (c *Config) SourceFileName(name string) string {
	return name + "." + c.Extension
}
