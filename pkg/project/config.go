// Package project loads the optional dragonforge.yaml project
// configuration.
package project

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the project paths the bundler works with. Every field has a
// default matching the winDragon repo layout, so a project without a
// dragonforge.yaml builds out of the box.
type Config struct {
	Source      string `mapstructure:"source" yaml:"source"`
	Modules     string `mapstructure:"modules" yaml:"modules"`
	Launcher    string `mapstructure:"launcher" yaml:"launcher"`
	Settings    string `mapstructure:"settings" yaml:"settings"`
	BuildDir    string `mapstructure:"build_dir" yaml:"build_dir"`
	ArtifactURL string `mapstructure:"artifact_url" yaml:"artifact_url"`
}

// DefaultConfig returns the standard winDragon project layout.
func DefaultConfig() *Config {
	return &Config{
		Source:      "winDragon.ps1",
		Modules:     "Modules",
		Launcher:    "launcher.ps1",
		Settings:    "settings.json",
		BuildDir:    "build",
		ArtifactURL: "https://raw.githubusercontent.com/galactic-plane/windragon/main/build/",
	}
}

// Load reads dragonforge.yaml from dir when present. A missing config file
// is not an error; the defaults are returned. Keys absent from the file
// keep their defaults.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("dragonforge")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	cfg := DefaultConfig()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read dragonforge.yaml: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse dragonforge.yaml: %w", err)
	}
	return cfg, nil
}

// WriteDefault writes a starter dragonforge.yaml populated with the
// defaults to path.
func WriteDefault(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
