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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, configFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if *config != defaultConfig {
		t.Errorf("LoadConfig = %+v; want defaults %+v", *config, defaultConfig)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "output:\n  color: false\n  default_order: post\ncache:\n  expiration_minutes: 2\n")

	config, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("loadConfigFrom returned error: %v", err)
	}
	if config.Output.Color {
		t.Errorf("Output.Color = true; want false")
	}
	if config.Order() != OrderPost {
		t.Errorf("Order() = %q; want %q", config.Order(), OrderPost)
	}
	if config.Cache.ExpirationMinutes != 2 {
		t.Errorf("Cache.ExpirationMinutes = %d; want 2", config.Cache.ExpirationMinutes)
	}
	if config.Cache.CleanupMinutes != defaultConfig.Cache.CleanupMinutes {
		t.Errorf("Cache.CleanupMinutes = %d; want default %d", config.Cache.CleanupMinutes, defaultConfig.Cache.CleanupMinutes)
	}
	if config.Load != defaultConfig.Load {
		t.Errorf("Load = %+v; want defaults %+v", config.Load, defaultConfig.Load)
	}
}

func TestLoadConfigNormalizesBadValues(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "output:\n  default_order: sideways\nload:\n  false_positive_rate: 3\n  expected_regions: 0\n")

	config, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("loadConfigFrom returned error: %v", err)
	}
	if config.Output.DefaultOrder != string(OrderIn) {
		t.Errorf("DefaultOrder = %q; want %q", config.Output.DefaultOrder, OrderIn)
	}
	if config.Load.FalsePositiveRate != defaultConfig.Load.FalsePositiveRate {
		t.Errorf("FalsePositiveRate = %g; want %g", config.Load.FalsePositiveRate, defaultConfig.Load.FalsePositiveRate)
	}
	if config.Load.ExpectedRegions != defaultConfig.Load.ExpectedRegions {
		t.Errorf("ExpectedRegions = %d; want %d", config.Load.ExpectedRegions, defaultConfig.Load.ExpectedRegions)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "output: [not, a, mapping\n")

	config, err := loadConfigFrom(path)
	if err == nil {
		t.Fatalf("loadConfigFrom accepted invalid YAML")
	}
	if config == nil || *config != defaultConfig {
		t.Errorf("invalid YAML should still return defaults, got %+v", config)
	}
}

func TestDisplaySettingsCreatesDefaultFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	InitializeColors(false)

	var out strings.Builder
	if err := displaySettings(&out); err != nil {
		t.Fatalf("displaySettings returned error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(home, configFileName)); err != nil {
		t.Errorf("default config file was not created: %v", err)
	}
	for _, want := range []string{"newly created", "default_order: in", "expected_regions: 10000"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("settings output missing %q:\n%s", want, out.String())
		}
	}

	// the second call finds the file
	out.Reset()
	if err := displaySettings(&out); err != nil {
		t.Fatalf("displaySettings returned error: %v", err)
	}
	if strings.Contains(out.String(), "newly created") {
		t.Errorf("second run should not create the file again")
	}
}
