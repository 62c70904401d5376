package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"rolematch/internal/models"
)

// YAMLConfig represents the structure of the config.yaml file.
// Synonym lists and taxonomy entries are easier to manage in YAML than env vars.
type YAMLConfig struct {
	// FieldSynonyms extends or overrides the built-in header synonyms per field.
	FieldSynonyms map[string][]string `yaml:"field_synonyms"`

	// Taxonomy entries appended to the built-in taxonomy.
	Taxonomy []models.TaxonomyEntry `yaml:"taxonomy"`

	// ReplaceTaxonomy drops the built-in taxonomy in favour of Taxonomy.
	ReplaceTaxonomy bool `yaml:"replace_taxonomy"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLConfigFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLConfigFile loads the YAML configuration from path.
func LoadYAMLConfigFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// TaxonomyEntries returns the effective taxonomy given the built-in entries.
func (c *YAMLConfig) TaxonomyEntries(builtin []models.TaxonomyEntry) []models.TaxonomyEntry {
	if c == nil {
		return builtin
	}
	if c.ReplaceTaxonomy {
		return c.Taxonomy
	}
	out := make([]models.TaxonomyEntry, 0, len(builtin)+len(c.Taxonomy))
	out = append(out, builtin...)
	return append(out, c.Taxonomy...)
}

// Synonyms returns the configured field synonyms, or nil.
func (c *YAMLConfig) Synonyms() map[string][]string {
	if c == nil {
		return nil
	}
	return c.FieldSynonyms
}
