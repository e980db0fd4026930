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
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lucianosrp/frame-check/pkg/config"
	"github.com/lucianosrp/frame-check/pkg/lsp"
)

// stdioRWC adapts os.Stdin/os.Stdout into the io.ReadWriteCloser the LSP
// transport speaks over.
type stdioRWC struct{}

func (stdioRWC) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdioRWC) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdioRWC) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}

	return os.Stdout.Close()
}

var lspCmd = &cobra.Command{
	Use:   "lsp",
	Short: "Start frame-check as a language server over stdio.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		cfg, err := config.Load(GetString(cmd, "config"))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		if err := lsp.Serve(context.Background(), stdioRWC{}, cfg.Modules); err != nil {
			log.WithError(err).Error("language server exited")
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(lspCmd)
}
