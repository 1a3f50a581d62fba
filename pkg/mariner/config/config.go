// Package config loads catalog overrides and engine settings from YAML
// files.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seaops/mariner/pkg/mariner/summarize"
)

// CatalogFile is the on-disk form of a pattern catalog
type CatalogFile struct {
	Categories []CategoryRule `yaml:"categories"`
}

// CategoryRule is one category's rule definition
type CategoryRule struct {
	Category           string   `yaml:"category"`
	Keywords           []string `yaml:"keywords"`
	EquipmentTerms     []string `yaml:"equipment_terms"`
	PriorityIndicators []string `yaml:"priority_indicators"`
	Weight             float64  `yaml:"weight"`
}

// LoadCatalogFile reads a catalog definition from a YAML file
func LoadCatalogFile(path string) (*CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	return &file, nil
}

// Settings holds tunable engine parameters
type Settings struct {
	MaxSummaryLength int    `yaml:"max_summary_length"`
	CacheSize        int    `yaml:"cache_size"`
	LogLevel         string `yaml:"log_level"`
	LogPretty        bool   `yaml:"log_pretty"`
}

// DefaultSettings returns the stock engine parameters
func DefaultSettings() Settings {
	return Settings{
		MaxSummaryLength: summarize.DefaultMaxLength,
		CacheSize:        0,
		LogLevel:         "info",
		LogPretty:        false,
	}
}

// LoadSettings reads engine settings from a YAML file; fields absent from
// the file keep their defaults
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}
