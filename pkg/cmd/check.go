// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lucianosrp/frame-check/pkg/checker"
	"github.com/lucianosrp/frame-check/pkg/config"
	"github.com/lucianosrp/frame-check/pkg/diagnostic"
	"github.com/lucianosrp/frame-check/pkg/discovery"
	"github.com/lucianosrp/frame-check/pkg/lang"
	"github.com/lucianosrp/frame-check/pkg/report"
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Check the given files or directories for missing DataFrame columns.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		if len(args) == 0 {
			args = []string{"."}
		}

		cfg, err := config.Load(GetString(cmd, "config"))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		exclude := append(append([]string(nil), cfg.Exclude...), GetStringArray(cmd, "exclude")...)

		format := GetString(cmd, "format")
		if format == "" {
			format = string(cfg.Format)
		}

		colorMode := "auto"
		if GetFlag(cmd, "no-color") {
			colorMode = "never"
		} else if cfg.Color != "" {
			colorMode = string(cfg.Color)
		}

		paths, err := discovery.Find(args, discovery.Options{Exclude: exclude})
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		results, sources := runChecks(paths, cfg.Modules)

		hasError := render(format, colorMode, paths, results, sources)
		if hasError {
			os.Exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().String("format", "", "output format: text or json")
	checkCmd.Flags().Bool("no-color", false, "disable colour output")
	checkCmd.Flags().StringArray("exclude", nil, "exclusion pattern, may be repeated")
	rootCmd.AddCommand(checkCmd)
}

// runChecks runs one checker per file, bounded to GOMAXPROCS concurrent
// workers (spec.md §5 explicitly permits callers to parallelize across
// files; it says nothing about a shared bound across them).
func runChecks(paths []string, modules []string) (map[string]checker.CheckerResult, map[string]string) {
	results := make(map[string]checker.CheckerResult, len(paths))
	sources := make(map[string]string, len(paths))

	var mu sync.Mutex

	sem := make(chan struct{}, runtime.GOMAXPROCS(0))

	var wg sync.WaitGroup

	for _, path := range paths {
		path := path

		wg.Add(1)
		sem <- struct{}{}

		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			src, err := os.ReadFile(path)
			if err != nil {
				log.WithError(err).WithField("path", path).Warn("could not read file")
				return
			}

			c := checker.NewWithModules(modules)

			mod, err := lang.Parse(string(src))
			if err != nil {
				log.WithError(err).WithField("path", path).Warn("could not parse file")
				return
			}

			result := c.CheckModule(mod)

			mu.Lock()
			results[path] = result
			sources[path] = string(src)
			mu.Unlock()
		}()
	}

	wg.Wait()

	return results, sources
}

func render(format, colorMode string, paths []string, results map[string]checker.CheckerResult, sources map[string]string) bool {
	sort.Strings(paths)

	hasError := false

	for _, path := range paths {
		for _, d := range results[path].Diagnostics {
			if d.Severity == diagnostic.Error {
				hasError = true
			}
		}
	}

	if format == string(config.FormatJSON) {
		byFile := make(map[string][]diagnostic.Diagnostic, len(paths))
		for _, path := range paths {
			byFile[path] = results[path].Diagnostics
		}

		if err := report.PrintJSON(os.Stdout, byFile, paths); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		return hasError
	}

	printer := report.NewPrinter(os.Stdout, colorMode)
	for _, path := range paths {
		printer.Print(os.Stdout, path, sources[path], results[path].Diagnostics)
	}

	return hasError
}
