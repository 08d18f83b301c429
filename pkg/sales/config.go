package sales

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"
)

// Default paths of the sales cleaning run, matching the dataset layout the
// pipeline was built around.
const (
	DefaultInputPath  = "data/raw/sales_data_raw.csv"
	DefaultOutputPath = "data/processed/sales_data_clean.csv"
)

// Config is the full description of one cleaning run: where to read, where
// to write, and nothing else. The stages and their order are fixed.
type Config struct {
	Input  Input  `json:"input" yaml:"input" toml:"input"`
	Output Output `json:"output" yaml:"output" toml:"output"`
}

type Input struct {
	Path      string `json:"path" yaml:"path" toml:"path"`
	Delimiter string `json:"delimiter" yaml:"delimiter" toml:"delimiter"`
	HasHeader bool   `json:"has_header" yaml:"has_header" toml:"has_header"`
}

type Output struct {
	Path      string `json:"path" yaml:"path" toml:"path"`
	Format    string `json:"format" yaml:"format" toml:"format"` // csv|jsonl|parquet; "" = by extension
	Delimiter string `json:"delimiter" yaml:"delimiter" toml:"delimiter"`
}

func DefaultConfig() Config {
	cfg := Config{}
	cfg.Input.Path = DefaultInputPath
	cfg.Input.HasHeader = true
	cfg.Output.Path = DefaultOutputPath
	return cfg
}

// LoadConfig reads a config file, picking the codec by extension: .yaml/.yml,
// .toml, anything else JSON. Fields absent from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	default:
		err = json.Unmarshal(b, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
