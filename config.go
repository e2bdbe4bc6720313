// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".regiontree.yaml"

type OutputConfig struct {
	Color        bool   `yaml:"color"`
	DefaultOrder string `yaml:"default_order"`
	ShowTree     bool   `yaml:"show_tree"`
	ShowStats    bool   `yaml:"show_stats"`
}

type LoaderConfig struct {
	Progress          bool    `yaml:"progress"`
	ExpectedRegions   uint    `yaml:"expected_regions"`
	FalsePositiveRate float64 `yaml:"false_positive_rate"`
}

type CacheConfig struct {
	ExpirationMinutes int `yaml:"expiration_minutes"`
	CleanupMinutes    int `yaml:"cleanup_minutes"`
}

type Config struct {
	Output OutputConfig `yaml:"output"`
	Load   LoaderConfig `yaml:"load"`
	Cache  CacheConfig  `yaml:"cache"`
}

var defaultConfig = Config{
	Output: OutputConfig{
		Color:        true,
		DefaultOrder: string(OrderIn),
	},
	Load: LoaderConfig{
		Progress:          true,
		ExpectedRegions:   10000,
		FalsePositiveRate: 0.01,
	},
	Cache: CacheConfig{
		ExpirationMinutes: 30,
		CleanupMinutes:    5,
	},
}

// LoadConfig reads ~/.regiontree.yaml. A missing or unreadable file is not
// an error: the defaults are returned instead.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return newDefaultConfig(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			Log.Debugf("reading %s: %v, using defaults", configPath, err)
		}
		return newDefaultConfig(), nil
	}

	// fields absent from the file keep their default values
	config := newDefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return newDefaultConfig(), fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	config.normalize()
	return config, nil
}

func newDefaultConfig() *Config {
	c := defaultConfig
	return &c
}

// normalize replaces out of range values with their defaults.
func (c *Config) normalize() {
	if _, err := ParseOrder(c.Output.DefaultOrder); err != nil {
		Log.Warnf("unknown default_order %q, using %q", c.Output.DefaultOrder, defaultConfig.Output.DefaultOrder)
		c.Output.DefaultOrder = defaultConfig.Output.DefaultOrder
	}
	if c.Load.ExpectedRegions == 0 {
		c.Load.ExpectedRegions = defaultConfig.Load.ExpectedRegions
	}
	if c.Load.FalsePositiveRate <= 0 || c.Load.FalsePositiveRate >= 1 {
		c.Load.FalsePositiveRate = defaultConfig.Load.FalsePositiveRate
	}
	if c.Cache.ExpirationMinutes <= 0 {
		c.Cache.ExpirationMinutes = defaultConfig.Cache.ExpirationMinutes
	}
	if c.Cache.CleanupMinutes <= 0 {
		c.Cache.CleanupMinutes = defaultConfig.Cache.CleanupMinutes
	}
}

// Order returns the configured default traversal order.
func (c *Config) Order() TraversalOrder {
	order, err := ParseOrder(c.Output.DefaultOrder)
	if err != nil {
		return OrderIn
	}
	return order
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings(w io.Writer) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		created = true
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "🔧 regiontree configuration\n")
	fmt.Fprintf(w, "═══════════════════════════\n\n")

	if created {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", configPath)
	}

	fmt.Fprintf(w, "📊 %sOutput:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • color: %t\n", config.Output.Color)
	fmt.Fprintf(w, "  • default_order: %s\n", config.Output.DefaultOrder)
	fmt.Fprintf(w, "  • show_tree: %t\n", config.Output.ShowTree)
	fmt.Fprintf(w, "  • show_stats: %t\n\n", config.Output.ShowStats)

	fmt.Fprintf(w, "📥 %sLoad:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • progress: %t\n", config.Load.Progress)
	fmt.Fprintf(w, "  • expected_regions: %d\n", config.Load.ExpectedRegions)
	fmt.Fprintf(w, "  • false_positive_rate: %g\n\n", config.Load.FalsePositiveRate)

	fmt.Fprintf(w, "🗄  %sCache:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • expiration_minutes: %d\n", config.Cache.ExpirationMinutes)
	fmt.Fprintf(w, "  • cleanup_minutes: %d\n", config.Cache.CleanupMinutes)

	return nil
}
