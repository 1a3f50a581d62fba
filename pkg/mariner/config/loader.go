package config

import (
	"fmt"

	"github.com/seaops/mariner/pkg/mariner/catalog"
)

// Loader loads configuration files and constructs validated components
type Loader struct {
	CatalogPath  string
	SettingsPath string
}

// Components holds the loaded configuration components
type Components struct {
	Catalog  *catalog.Catalog
	Settings Settings
}

// Load reads the configured files and returns initialized components.
// Empty paths fall back to the built-in catalog and default settings.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{Settings: DefaultSettings()}

	if l.CatalogPath != "" {
		file, err := LoadCatalogFile(l.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		cat, err := BuildCatalog(file)
		if err != nil {
			return nil, fmt.Errorf("build catalog: %w", err)
		}
		comp.Catalog = cat
	} else {
		comp.Catalog = catalog.Default()
	}

	if l.SettingsPath != "" {
		settings, err := LoadSettings(l.SettingsPath)
		if err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}
		comp.Settings = *settings
	}

	return comp, nil
}

// BuildCatalog turns a parsed catalog file into a validated Catalog,
// preserving file order as tie-break order.
func BuildCatalog(file *CatalogFile) (*catalog.Catalog, error) {
	entries := make([]catalog.Entry, 0, len(file.Categories))
	for _, rule := range file.Categories {
		cat, err := catalog.ParseCategory(rule.Category)
		if err != nil {
			return nil, err
		}
		entries = append(entries, catalog.Entry{
			Category: cat,
			Rule: catalog.Rule{
				Keywords:           rule.Keywords,
				EquipmentTerms:     rule.EquipmentTerms,
				PriorityIndicators: rule.PriorityIndicators,
				Weight:             rule.Weight,
			},
		})
	}
	return catalog.New(entries)
}
