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

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var (
		verbose bool
		config  *Config
	)

	loadSettings := func(cmd *cobra.Command, args []string) {
		setupLogging(cmd.ErrOrStderr(), verbose)

		var err error
		config, err = LoadConfig()
		if err != nil {
			Log.Warnf("Failed to load configuration: %v. Using default settings.", err)
		}
		InitializeColors(config.Output.Color)
	}

	interactive := func(cmd *cobra.Command, args []string) {
		index := NewRegionIndex(config)
		if len(args) == 1 {
			if _, err := loadFile(index, config, args[0], cmd.ErrOrStderr()); err != nil {
				Log.Fatalf("Error loading regions: %v", err)
			}
		}
		if err := runBubbleTeaApp(index, config); err != nil {
			Log.Fatalf("Error running interactive browser: %v", err)
		}
	}

	var rootCmd = &cobra.Command{
		Use:              "regiontree",
		Short:            "Keep regions in a self-balancing AVL tree",
		Version:          version,
		Args:             cobra.MaximumNArgs(1),
		PersistentPreRun: loadSettings,
		SilenceUsage:     true,
		Run:              interactive,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.SetOut(stdout)

	var cmdInteractive = &cobra.Command{
		Use:     "interactive [FILE]",
		Aliases: []string{"run"},
		Short:   "Browse and edit a region tree in the terminal",
		Args:    cobra.MaximumNArgs(1),
		Run:     interactive,
	}

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Insert sample regions, print every traversal, delete one",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			index := NewRegionIndex(config)
			runDemo(printer{w: cmd.OutOrStdout(), color: config.Output.Color}, index)
		},
	}

	var (
		orderFlag string
		showTree  bool
		showStats bool
		copyOut   bool
	)
	var cmdLoad = &cobra.Command{
		Use:   "load FILE",
		Short: "Load a region dataset and print a traversal",
		Long:  "Load reads a YAML dataset (regions: [{key, payload}], delete: [keys]) or a text file of key;payload lines.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order := config.Order()
			if orderFlag != "" {
				var err error
				if order, err = ParseOrder(orderFlag); err != nil {
					return err
				}
			}

			index := NewRegionIndex(config)
			result, err := loadFile(index, config, args[0], cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			Log.Infof("loaded %s%d regions%s (%d deleted)", Info, result.Inserted, Reset, result.Deleted)
			if result.Duplicates > 0 || result.Missing > 0 {
				Log.Warnf("%s%d duplicate keys ignored, %d deletes of absent keys%s",
					Warning, result.Duplicates, result.Missing, Reset)
			}

			p := printer{w: cmd.OutOrStdout(), color: config.Output.Color}
			lines := index.Listing(order)
			p.listing(order.Title(), lines)

			if showTree || config.Output.ShowTree {
				fmt.Fprintln(p.w)
				fmt.Fprint(p.w, index.Shape(false))
			}
			if showStats || config.Output.ShowStats {
				p.stats(index.Stats())
			}
			if copyOut {
				if err := copyListing(lines); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				Log.Infof("📋 Copied %s%d entries%s to clipboard.", Green, len(lines), Reset)
			}
			return nil
		},
	}
	cmdLoad.Flags().StringVarP(&orderFlag, "order", "o", "", "traversal order: in, pre or post")
	cmdLoad.Flags().BoolVar(&showTree, "tree", false, "draw the tree shape after the listing")
	cmdLoad.Flags().BoolVar(&showStats, "stats", false, "print rotation counters")
	cmdLoad.Flags().BoolVar(&copyOut, "copy", false, "copy the listing to the clipboard")

	var keepGoing bool
	var cmdScript = &cobra.Command{
		Use:   "script [FILE]",
		Short: "Run tree commands from FILE or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			runner := NewScriptRunner(NewRegionIndex(config), cmd.OutOrStdout(), keepGoing)
			return runner.Run(in)
		},
	}
	cmdScript.Flags().BoolVar(&keepGoing, "keep-going", false, "log failing lines and continue")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating ~/.regiontree.yaml if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout())
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print the regiontree usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print regiontree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	rootCmd.AddCommand(cmdInteractive, cmdDemo, cmdLoad, cmdScript, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd
}

// loadFile reads a dataset into index, drawing progress on w when enabled.
func loadFile(index *RegionIndex, config *Config, path string, w io.Writer) (LoadResult, error) {
	dataset, err := readRegions(path)
	if err != nil {
		return LoadResult{}, err
	}
	var progress io.Writer
	if config.Load.Progress {
		progress = w
	}
	return populateIndex(index, dataset, progress), nil
}
