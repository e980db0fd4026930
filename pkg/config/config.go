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

// Package config loads the optional .frame-check project file. It never
// influences analysis semantics (the checker takes no configuration at
// all); it only shapes what the CLI hands the core and how results are
// rendered.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Format selects how pkg/report renders a run's diagnostics.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Color selects when pkg/report applies ANSI colour.
type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

// Config is the resolved set of project-level options. Every field has a
// documented default, applied by Load when the key is absent.
type Config struct {
	// Exclude lists discovery patterns (see pkg/discovery) to skip.
	Exclude []string
	// Modules lists additional module names, beyond "pandas", that the
	// checker should treat as frame-constructing aliases when imported.
	Modules []string
	Format  Format
	Color   Color
}

func defaults() *viper.Viper {
	v := viper.New()
	v.SetDefault("exclude", []string{})
	v.SetDefault("modules", []string{"pandas"})
	v.SetDefault("format", string(FormatText))
	v.SetDefault("color", string(ColorAuto))

	return v
}

// Load reads configuration from explicitPath if given, otherwise searches
// the working directory for ".frame-check" with any extension viper
// understands (yaml, json, toml, ...). A missing file is not an error:
// Load returns the documented defaults.
func Load(explicitPath string) (Config, error) {
	v := defaults()

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.SetConfigName(".frame-check")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading config: %w", err)
		}
	}

	format := Format(strings.ToLower(v.GetString("format")))
	if format != FormatText && format != FormatJSON {
		return Config{}, fmt.Errorf("invalid format %q: want %q or %q", format, FormatText, FormatJSON)
	}

	color := Color(strings.ToLower(v.GetString("color")))
	if color != ColorAuto && color != ColorAlways && color != ColorNever {
		return Config{}, fmt.Errorf("invalid color %q: want %q, %q or %q", color, ColorAuto, ColorAlways, ColorNever)
	}

	return Config{
		Exclude: v.GetStringSlice("exclude"),
		Modules: v.GetStringSlice("modules"),
		Format:  format,
		Color:   color,
	}, nil
}
