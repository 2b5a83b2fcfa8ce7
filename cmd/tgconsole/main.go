/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
tgconsole is a command line tool for inspecting a tempograph snapshot:
load it, run degree/balance/neighbour queries against a window, or list
the windows a rolling/expanding window set would produce.
*/
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/krotik/common/fileutil"

	"github.com/krotik/tempograph/algorithms"
	"github.com/krotik/tempograph/graph"
	"github.com/krotik/tempograph/graph/util"
	"github.com/krotik/tempograph/query"
	"github.com/krotik/tempograph/runner"
	"github.com/krotik/tempograph/snapshot"
	"github.com/krotik/tempograph/tgtime"
	"github.com/krotik/tempograph/tgview"
	"github.com/krotik/tempograph/tgwindow"
)

var snapshotPath string

var rootCmd = &cobra.Command{
	Use:   "tgconsole",
	Short: "Inspect a tempograph snapshot",
}

func main() {
	rootCmd.PersistentFlags().StringVar(&snapshotPath, "snapshot", "", "path to a snapshot file (required)")
	rootCmd.MarkPersistentFlagRequired("snapshot")

	rootCmd.AddCommand(loadCmd, queryCmd, rollingCmd, expandingCmd)
	queryCmd.AddCommand(queryDegreeCmd, queryBalanceCmd, queryNeighboursCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadManager() (*graph.Manager, error) {
	ok, err := fileutil.PathExists(snapshotPath)
	if err != nil {
		return nil, fmt.Errorf("tgconsole: checking snapshot path: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("tgconsole: snapshot file %q does not exist", snapshotPath)
	}

	f, err := os.Open(snapshotPath)
	if err != nil {
		return nil, fmt.Errorf("tgconsole: opening snapshot: %w", err)
	}
	defer f.Close()

	ops, err := snapshot.Load(f)
	if err != nil {
		return nil, fmt.Errorf("tgconsole: loading snapshot: %w", err)
	}
	return snapshot.Replay(ops), nil
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

var loadLoc string

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a snapshot and print its node/edge counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManager()
		if err != nil {
			return err
		}

		out := map[string]interface{}{
			"nodes":          m.NodesLen(),
			"edges":          m.EdgesLen(),
			"temporal_edges": m.TemporalEdgesLen(),
		}

		if start, end, ok := m.Bounds(); ok {
			startStr, err := tgtime.FormatTime(start, loadLoc)
			if err != nil {
				return fmt.Errorf("tgconsole: formatting bounds start: %w", err)
			}
			endStr, err := tgtime.FormatTime(end, loadLoc)
			if err != nil {
				return fmt.Errorf("tgconsole: formatting bounds end: %w", err)
			}
			out["earliest"] = startStr
			out["latest"] = endStr
		}

		printJSON(out)
		return nil
	},
}

var queryStart, queryEnd string

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run a query against the snapshot's current view",
}

/*
queryView builds the view degree/balance/neighbours run against,
narrowed to [--start, --end) when both are given. Each bound accepts
any literal tgtime.ParseTime understands: a plain integer, an ISO-like
timestamp, or a duration expression.
*/
func queryView(m *graph.Manager) (tgview.View, error) {
	v := tgview.New(m)

	if queryStart == "" && queryEnd == "" {
		return v, nil
	}
	if queryStart == "" || queryEnd == "" {
		return v, fmt.Errorf("tgconsole: --start and --end must be given together")
	}

	start, err := tgtime.ParseTime(queryStart)
	if err != nil {
		return v, fmt.Errorf("tgconsole: parsing --start: %w", err)
	}
	end, err := tgtime.ParseTime(queryEnd)
	if err != nil {
		return v, fmt.Errorf("tgconsole: parsing --end: %w", err)
	}

	return v.Window(start, end), nil
}

var queryDegreeCmd = &cobra.Command{
	Use:   "degree",
	Short: "Compute degree for every node",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManager()
		if err != nil {
			return err
		}

		v, err := queryView(m)
		if err != nil {
			return err
		}

		result := algorithms.DegreeAll(v, runner.Config{MaxIterations: 1})

		out := make(map[string]algorithms.DegreeResult, len(result))
		for vid, d := range result {
			if ext, ok := m.Interner().Resolve(vid); ok {
				out[externalIDString(ext)] = d
			}
		}
		printJSON(out)
		return nil
	},
}

var balanceProperty string
var balanceDirection string

var queryBalanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Compute the balance reduction for a named property",
	RunE: func(cmd *cobra.Command, args []string) error {
		if balanceProperty == "" {
			return fmt.Errorf("tgconsole: --property is required")
		}

		m, err := loadManager()
		if err != nil {
			return err
		}

		v, err := queryView(m)
		if err != nil {
			return err
		}

		dir := query.BOTH
		switch balanceDirection {
		case "out":
			dir = query.OUT
		case "in":
			dir = query.IN
		}

		result := query.Balance(v, balanceProperty, dir)

		out := make(map[string]float64, len(result))
		for vid, bal := range result {
			if ext, ok := m.Interner().Resolve(vid); ok {
				out[externalIDString(ext)] = bal
			}
		}
		printJSON(out)
		return nil
	},
}

var neighboursID string
var neighboursDirection string

var queryNeighboursCmd = &cobra.Command{
	Use:   "neighbours",
	Short: "List a node's neighbours",
	RunE: func(cmd *cobra.Command, args []string) error {
		if neighboursID == "" {
			return fmt.Errorf("tgconsole: --id is required")
		}

		m, err := loadManager()
		if err != nil {
			return err
		}

		v, err := queryView(m)
		if err != nil {
			return err
		}
		nv, ok := v.NodeByExternal(externalIDFromString(neighboursID))
		if !ok {
			return fmt.Errorf("tgconsole: node %q not found", neighboursID)
		}

		var neighbours []util.VID
		switch neighboursDirection {
		case "out":
			neighbours = nv.OutNeighbours()
		case "in":
			neighbours = nv.InNeighbours()
		default:
			neighbours = nv.Neighbours()
		}

		out := make([]string, 0, len(neighbours))
		for _, vid := range neighbours {
			if ext, ok := m.Interner().Resolve(vid); ok {
				out = append(out, externalIDString(ext))
			}
		}
		printJSON(out)
		return nil
	},
}

var windowExpr, stepExpr string

var rollingCmd = &cobra.Command{
	Use:   "rolling",
	Short: "List the windows a rolling window set would produce",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManager()
		if err != nil {
			return err
		}

		window, err := tgtime.ParseInterval(windowExpr)
		if err != nil {
			return fmt.Errorf("tgconsole: parsing --window: %w", err)
		}

		var step tgtime.Interval
		if stepExpr != "" {
			step, err = tgtime.ParseInterval(stepExpr)
			if err != nil {
				return fmt.Errorf("tgconsole: parsing --step: %w", err)
			}
		}

		printWindows(tgwindow.Rolling(tgview.New(m), window, step))
		return nil
	},
}

var expandingCmd = &cobra.Command{
	Use:   "expanding",
	Short: "List the windows an expanding window set would produce",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManager()
		if err != nil {
			return err
		}

		step, err := tgtime.ParseInterval(stepExpr)
		if err != nil {
			return fmt.Errorf("tgconsole: parsing --step: %w", err)
		}

		printWindows(tgwindow.Expanding(tgview.New(m), step))
		return nil
	},
}

func init() {
	loadCmd.Flags().StringVar(&loadLoc, "loc", "UTC", "IANA location used to render earliest/latest bounds")

	queryCmd.PersistentFlags().StringVar(&queryStart, "start", "", "window start (integer, ISO timestamp, or duration)")
	queryCmd.PersistentFlags().StringVar(&queryEnd, "end", "", "window end (integer, ISO timestamp, or duration)")

	queryBalanceCmd.Flags().StringVar(&balanceProperty, "property", "", "property name to sum")
	queryBalanceCmd.Flags().StringVar(&balanceDirection, "direction", "both", "out, in or both")

	queryNeighboursCmd.Flags().StringVar(&neighboursID, "id", "", "node external id")
	queryNeighboursCmd.Flags().StringVar(&neighboursDirection, "direction", "both", "out, in or both")

	rollingCmd.Flags().StringVar(&windowExpr, "window", "", `window length, e.g. "1 day"`)
	rollingCmd.Flags().StringVar(&stepExpr, "step", "", `step length, e.g. "1 day"; defaults to --window`)

	expandingCmd.Flags().StringVar(&stepExpr, "step", "", `step length, e.g. "1 day"`)
}

func printWindows(views []tgview.View) {
	type windowBounds struct {
		Start int64 `json:"start"`
		End   int64 `json:"end"`
	}
	out := make([]windowBounds, 0, len(views))
	for _, v := range views {
		start, end, ok := v.Bounds()
		if ok {
			out = append(out, windowBounds{Start: start, End: end})
		}
	}
	printJSON(out)
}

func externalIDString(ext util.ExternalID) string {
	if ext.IsString {
		return ext.Str
	}
	return fmt.Sprintf("%d", ext.Num)
}

func externalIDFromString(id string) util.ExternalID {
	return util.StrID(id)
}
