package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level balanza.yaml configuration.
type Config struct {
	SourceDir string   `yaml:"source_dir"`
	OutputDir string   `yaml:"output_dir"`
	LogDir    string   `yaml:"log_dir,omitempty"`
	Clients   []Client `yaml:"clients"`
}

// Client maps an archive folder to a client identity. The ID is the
// stable lowercase slug the record file is named after.
type Client struct {
	Folder    string `yaml:"folder"`
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	LegalName string `yaml:"legal_name"`
}

// Load reads a balanza.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
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

// Default returns a starter Config with one example roster entry.
func Default(sourceDir, outputDir string) *Config {
	return &Config{
		SourceDir: sourceDir,
		OutputDir: outputDir,
		LogDir:    "logs",
		Clients: []Client{
			{Folder: "FIDUZ", ID: "fiduz", Name: "FIDUZ", LegalName: "FIDUZ S.A. de C.V."},
		},
	}
}

// FindClient returns the roster entry with the given ID.
func (c *Config) FindClient(id string) (Client, bool) {
	for _, cl := range c.Clients {
		if cl.ID == id {
			return cl, true
		}
	}
	return Client{}, false
}

// Validate checks the parts every command depends on.
func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return fmt.Errorf("source_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	seen := make(map[string]bool, len(c.Clients))
	for i, cl := range c.Clients {
		if cl.Folder == "" || cl.ID == "" {
			return fmt.Errorf("client %d: folder and id are required", i)
		}
		if seen[cl.ID] {
			return fmt.Errorf("duplicate client id %q", cl.ID)
		}
		seen[cl.ID] = true
	}
	return nil
}
