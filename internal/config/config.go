package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Filename is the config file name inside a ledger directory.
const Filename = "tally.yaml"

// Config represents the top-level tally.yaml configuration.
type Config struct {
	Data       DataConfig       `yaml:"data"`
	Categories CategoriesConfig `yaml:"categories"`
	UI         UIConfig         `yaml:"ui"`
	Git        GitConfig        `yaml:"git"`
}

// DataConfig selects the persistence backend and document location.
type DataConfig struct {
	Backend string `yaml:"backend"` // file | sqlite | memory
	Path    string `yaml:"path"`    // document path, relative to the ledger dir
}

// CategoriesConfig holds the category suggestion set. The category field
// itself stays free-form; these only seed the form.
type CategoriesConfig struct {
	Suggestions []string `yaml:"suggestions"`
	Default     string   `yaml:"default"`
}

// UIConfig controls presentation.
type UIConfig struct {
	Currency    string `yaml:"currency"`
	AnimationMs int    `yaml:"animation_ms"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a tally.yaml file from disk and applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	applyEnv(&cfg)
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Backend: "file",
			Path:    "records.json",
		},
		Categories: CategoriesConfig{
			Suggestions: []string{"Food", "Rent", "Utilities", "Transport", "Entertainment", "Health", "Other"},
			Default:     "Other",
		},
		UI: UIConfig{
			Currency:    "$",
			AnimationMs: 550,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Tally",
			AuthorEmail: "tally@localhost",
		},
	}
}

// applyEnv overrides backend selection from the environment, so a .env file
// or shell export can redirect a ledger without editing tally.yaml.
func applyEnv(cfg *Config) {
	cfg.Data.Backend = getEnv("TALLY_DATA_BACKEND", cfg.Data.Backend)
	cfg.Data.Path = getEnv("TALLY_DATA_PATH", cfg.Data.Path)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
