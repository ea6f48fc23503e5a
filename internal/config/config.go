package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for a screenreport run.
type Config struct {
	ClinicPaths     []string // one or more clinic export CSVs, concatenated
	GeoPath         string   // city/county reference CSV
	UnderservedPath string   // HRSA MUA reference CSV
	OutDir          string
	LogFormat       string // "text" or "json"
	Parquet         bool   // additionally export the city rollup as Parquet
	Keywords        []string
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Keywords []string `yaml:"keywords"`
}

// DefaultKeywords is the program's canonical skin-lesion keyword list, used
// when no keyword file is given. Matching is case-insensitive substring OR.
var DefaultKeywords = []string{
	"Actinic Cheilitis", "Actinic Keratoses", "Actinic Keratosis",
	"Diffuse Actinic Keratosis", "Pigmented Actinic Keratosis",
	"Hypertrophic Actinic Keratosis",
	"Disseminated Superficial Actinic Porokeratosis",
	"Atypical Nevi", "Clark's Nevi", "Dysplastic Nevi", "Dysplastic Nevus",
	"Rule-Out dysplastic Nevi", "Rule-Out dysplastic Nevus",
	"Neoplasm of uncertain", "Neoplasm of unspecified behavior",
	"Rule-Out Basal Cell Carcinoma", "Rule-out Lentigo Maligna",
	"Rule-out Melanoma", "Rule-Out Non-Melanoma Skin Cancer",
	"Rule-Out Recurrent Basal", "Rule-Out Recurrent Squamous Cell Carcinoma",
	"Rule-Out Squamous Cell Carcinoma", "in situ Squamous Cell Carcinoma",
	"Keratoacanthoma type Squamous Cell Carcinoma",
}

// LoadKeywordsFromFile reads a YAML keyword file and merges its list into
// Config. An empty or absent list falls back to DefaultKeywords.
func (c *Config) LoadKeywordsFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read keyword file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse keyword file: %w", err)
	}
	c.Keywords = yc.Keywords
	c.applyKeywordDefaults()
	return nil
}

func (c *Config) applyKeywordDefaults() {
	if len(c.Keywords) == 0 {
		c.Keywords = append([]string(nil), DefaultKeywords...)
	}
}

// Validate checks required fields and returns an error if the config is
// invalid. It also fills in the keyword defaults when no file was loaded.
func (c *Config) Validate() error {
	if len(c.ClinicPaths) == 0 {
		return fmt.Errorf("--clinic is required")
	}
	for _, p := range c.ClinicPaths {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("clinic file not accessible: %w", err)
		}
	}
	if c.GeoPath == "" {
		return fmt.Errorf("--geo is required")
	}
	if _, err := os.Stat(c.GeoPath); err != nil {
		return fmt.Errorf("geo reference not accessible: %w", err)
	}
	if c.UnderservedPath == "" {
		return fmt.Errorf("--mua is required")
	}
	if _, err := os.Stat(c.UnderservedPath); err != nil {
		return fmt.Errorf("mua reference not accessible: %w", err)
	}
	c.applyKeywordDefaults()
	return nil
}
