package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Extract ExtractConfig `json:"extract"`
	Upload  UploadConfig  `json:"upload"`
	Logging LoggingConfig `json:"logging"`
	Filters FilterConfig  `json:"filters"`
}

// ExtractConfig holds extraction defaults.
type ExtractConfig struct {
	DefaultBranch        string `json:"defaultBranch"`        // Default: "master"
	FallbackMasterToMain bool   `json:"fallbackMasterToMain"` // Default: true
	OutputDir            string `json:"outputDir"`            // Default: "./out"
	IgnoreErrors         bool   `json:"ignoreErrors"`
}

// UploadConfig holds cloud upload options.
type UploadConfig struct {
	Bucket  string `json:"bucket"`
	Subpath string `json:"subpath"` // Default: "data"
}

// LoggingConfig holds logger options.
type LoggingConfig struct {
	Level     string `json:"level"`     // Default: "info"
	LogToFile bool   `json:"logToFile"` // Default: true
	LogFile   string `json:"logFile"`   // Default: "gitingest.log"
}

// FilterConfig holds file path filtering options.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Extract: ExtractConfig{
			DefaultBranch:        "master",
			FallbackMasterToMain: true,
			OutputDir:            "./out",
		},
		Upload: UploadConfig{
			Subpath: "data",
		},
		Logging: LoggingConfig{
			Level:     "info",
			LogToFile: true,
			LogFile:   "gitingest.log",
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".gitingest.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".gitingest.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
