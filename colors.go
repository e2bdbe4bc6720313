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
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ANSI escapes used by plain fmt output. They are empty while colour is
// disabled.
var (
	Green   string
	Info    string
	Warning string
	Error   string
	Reset   string

	detectedMode TerminalMode
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, name := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(name)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	return TerminalModeDark
}

// InitializeColors sets the ANSI escapes for the detected terminal mode,
// or clears them when colour output is off or NO_COLOR is set.
func InitializeColors(enabled bool) {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor || !enabled {
		Green, Info, Warning, Error, Reset = "", "", "", "", ""
		detectedMode = TerminalModeUnknown
		return
	}
	detectedMode = detectTerminalMode()
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// GetANSIColors returns escapes tuned for the detected terminal mode.
func GetANSIColors() (success, info, warning, error, reset string) {
	// darker colours read better on light backgrounds
	if detectedMode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}

	reset = "\033[0m"
	return
}

// headingStyle is used for traversal titles on the console.
func headingStyle() lipgloss.Style {
	color := lipgloss.Color("39")
	if detectedMode == TerminalModeLight {
		color = lipgloss.Color("25")
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}
