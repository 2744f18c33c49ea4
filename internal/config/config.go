// Package config handles global configuration for the coauthors CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/coauthors/config.yml.
// Zero-value fields fall back to the collaboration defaults.
type Config struct {
	SheetID             string  `yaml:"sheet_id,omitempty"`
	PapersGID           string  `yaml:"papers_gid,omitempty"`
	AffiliationsGID     string  `yaml:"affiliations_gid,omitempty"`
	AuthorsGID          string  `yaml:"authors_gid,omitempty"`
	ExtraAuthorsGID     string  `yaml:"extra_authors_gid,omitempty"` // Second author group; empty disables the tab
	AcknowledgementsGID string  `yaml:"acknowledgements_gid,omitempty"`
	ScoreMin            float64 `yaml:"score_min,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "coauthors"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"

	// SheetIDEnv overrides the spreadsheet ID without editing config.
	SheetIDEnv = "COAUTHORS_SHEET_ID"
)

// Collaboration spreadsheet defaults. The GIDs identify the individual
// tabs of the shared sheet.
const (
	DefaultSheetID             = "1hGPX_s_fUbEmjDtBbrWrlgwDFMC_Ek-63s1JCHnaIvA"
	DefaultPapersGID           = "0"
	DefaultAffiliationsGID     = "1318892288"
	DefaultAuthorsGID          = "831615847"
	DefaultExtraAuthorsGID     = "223170284"
	DefaultAcknowledgementsGID = "671986807"
	DefaultScoreMin            = 80.0
)

// configCache caches the loaded config for the process lifetime.
var configCache *Config

// Path returns the path to the config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/coauthors/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// Load reads the config file, fills defaults for unset fields and applies
// environment overrides. A missing file yields the defaults, not an error.
func Load() (*Config, error) {
	if configCache != nil {
		return configCache, nil
	}

	cfg := &Config{}
	if path := Path(); path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg.applyDefaults()

	if id := os.Getenv(SheetIDEnv); id != "" {
		cfg.SheetID = id
	}

	configCache = cfg
	return cfg, nil
}

// ResetCache clears the cached config. Useful for testing.
func ResetCache() {
	configCache = nil
}

// Validate checks that every required tab GID is set. ExtraAuthorsGID is
// optional: an empty value disables the second author group.
func (c *Config) Validate() error {
	required := map[string]string{
		"papers_gid":           c.PapersGID,
		"affiliations_gid":     c.AffiliationsGID,
		"authors_gid":          c.AuthorsGID,
		"acknowledgements_gid": c.AcknowledgementsGID,
	}
	for name, gid := range required {
		if gid == "" {
			return fmt.Errorf("%s is not set (required when sheet_id is customized)", name)
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.SheetID == "" {
		c.SheetID = DefaultSheetID
		// Only default the tab GIDs alongside the default sheet: a custom
		// sheet's tabs have their own GIDs and silence there is deliberate.
		if c.PapersGID == "" {
			c.PapersGID = DefaultPapersGID
		}
		if c.AffiliationsGID == "" {
			c.AffiliationsGID = DefaultAffiliationsGID
		}
		if c.AuthorsGID == "" {
			c.AuthorsGID = DefaultAuthorsGID
		}
		if c.ExtraAuthorsGID == "" {
			c.ExtraAuthorsGID = DefaultExtraAuthorsGID
		}
		if c.AcknowledgementsGID == "" {
			c.AcknowledgementsGID = DefaultAcknowledgementsGID
		}
	}
	if c.ScoreMin == 0 {
		c.ScoreMin = DefaultScoreMin
	}
}
