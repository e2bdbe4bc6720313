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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
	"gopkg.in/yaml.v3"
)

// RegionEntry is one region of a dataset file.
type RegionEntry struct {
	Key     int    `yaml:"key"`
	Payload string `yaml:"payload"`
}

// RegionDataset is the content of a dataset file: regions to insert, then
// keys to delete.
type RegionDataset struct {
	Regions []RegionEntry `yaml:"regions"`
	Delete  []int         `yaml:"delete"`
}

// LoadResult summarises populateIndex.
type LoadResult struct {
	Inserted   int
	Duplicates int
	Deleted    int
	Missing    int
}

var (
	ErrNoRegions  = errors.New("dataset contains no regions")
	ErrMissingKey = errors.New("region has no key")
)

// yamlRegion mirrors RegionEntry so an absent key can be told apart from 0.
type yamlRegion struct {
	Key     *int   `yaml:"key"`
	Payload string `yaml:"payload"`
}

type yamlDataset struct {
	Regions []yamlRegion `yaml:"regions"`
	Delete  []int        `yaml:"delete"`
}

// readRegions reads a YAML dataset (.yaml, .yml) or a text dataset with
// one "key;payload" per line.
func readRegions(path string) (*RegionDataset, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("region file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	var dataset *RegionDataset
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dataset, err = readRegionsYAML(file)
	default:
		dataset, err = readRegionsText(file)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return dataset, nil
}

func readRegionsYAML(r io.Reader) (*RegionDataset, error) {
	var raw yamlDataset
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRegions
		}
		return nil, err
	}
	if len(raw.Regions) == 0 && len(raw.Delete) == 0 {
		return nil, ErrNoRegions
	}

	dataset := &RegionDataset{Delete: raw.Delete}
	for i, region := range raw.Regions {
		if region.Key == nil {
			return nil, fmt.Errorf("region %d (payload %q): %w", i, region.Payload, ErrMissingKey)
		}
		dataset.Regions = append(dataset.Regions, RegionEntry{Key: *region.Key, Payload: region.Payload})
	}
	return dataset, nil
}

// readRegionsText parses lines like "10;Region A". Blank lines and lines
// starting with '#' are ignored, malformed lines are skipped. Whitespace
// around the key and the payload is trimmed.
func readRegionsText(r io.Reader) (*RegionDataset, error) {
	var dataset RegionDataset

	scanner := bufio.NewScanner(r)
	// payloads can be long free text
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Example line: "15;Region D"
		parts := strings.SplitN(line, ";", 2)
		if len(parts) < 2 {
			Log.Debugf("line %d: missing ';' separator, skipped", lineNo)
			continue
		}

		key, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			Log.Debugf("line %d: bad key %q, skipped", lineNo, parts[0])
			continue
		}
		dataset.Regions = append(dataset.Regions, RegionEntry{Key: key, Payload: strings.TrimSpace(parts[1])})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(dataset.Regions) == 0 {
		return nil, ErrNoRegions
	}
	return &dataset, nil
}

// populateIndex inserts the dataset's regions and then applies its
// deletions. A progress bar is drawn on progress when it is not nil.
func populateIndex(index *RegionIndex, dataset *RegionDataset, progress io.Writer) LoadResult {
	var result LoadResult

	var bar *progressbar.ProgressBar
	total := len(dataset.Regions) + len(dataset.Delete)
	if progress != nil && total > 1 {
		bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("loading regions"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	for _, region := range dataset.Regions {
		if index.Insert(region.Key, region.Payload) {
			result.Inserted++
		} else {
			Log.Debugf("duplicate key %d ignored", region.Key)
			result.Duplicates++
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	for _, key := range dataset.Delete {
		if index.Delete(key) {
			result.Deleted++
		} else {
			Log.Debugf("delete of absent key %d ignored", key)
			result.Missing++
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}
	return result
}
