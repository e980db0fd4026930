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
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lucianosrp/frame-check/pkg/util/assert"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, 1, len(cfg.Modules))
}

func TestLoadReadsYAMLFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".frame-check.yaml")
	content := "exclude:\n  - \"vendor/**\"\nmodules:\n  - pandas\n  - modin.pandas\nformat: json\ncolor: never\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, 1, len(cfg.Exclude))
	assert.Equal(t, 2, len(cfg.Modules))
}

func TestLoadRejectsInvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".frame-check.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("format: xml\n"), 0o644))

	_, err := Load(path)
	assert.True(t, err != nil)
}
