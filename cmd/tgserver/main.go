/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
tgserver runs the read-only HTTP/WebSocket query surface over a
tempograph snapshot.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/krotik/common/fileutil"

	"github.com/krotik/tempograph/config"
	"github.com/krotik/tempograph/graph"
	"github.com/krotik/tempograph/server"
	"github.com/krotik/tempograph/snapshot"
)

var (
	configPath   string
	snapshotPath string
	listenAddr   string
)

var rootCmd = &cobra.Command{
	Use:   "tgserver",
	Short: "Serve a tempograph snapshot over HTTP",
	RunE:  runServer,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a tempograph.yaml config file")
	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "path to a snapshot file to load at startup")
	rootCmd.Flags().StringVar(&listenAddr, "listen", "", "override the config's listen address")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		ok, err := fileutil.PathExists(configPath)
		if err != nil {
			return fmt.Errorf("tgserver: checking config path: %w", err)
		}
		if !ok {
			return fmt.Errorf("tgserver: config file %q does not exist", configPath)
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("tgserver: %w", err)
		}
		cfg = loaded
	}
	if listenAddr != "" {
		cfg.Server.ListenAddr = listenAddr
	}

	m := graph.NewManager()
	if snapshotPath != "" {
		ok, err := fileutil.PathExists(snapshotPath)
		if err != nil {
			return fmt.Errorf("tgserver: checking snapshot path: %w", err)
		}
		if !ok {
			return fmt.Errorf("tgserver: snapshot file %q does not exist", snapshotPath)
		}

		f, err := os.Open(snapshotPath)
		if err != nil {
			return fmt.Errorf("tgserver: opening snapshot: %w", err)
		}
		defer f.Close()

		ops, err := snapshot.Load(f)
		if err != nil {
			return fmt.Errorf("tgserver: loading snapshot: %w", err)
		}
		m = snapshot.Replay(ops)
	}

	return server.New(m, cfg).Start()
}
