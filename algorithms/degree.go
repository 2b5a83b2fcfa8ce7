/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package algorithms implements analytic traversals over a tgview.View:
degree, connected components, and bounded-hop neighbourhood expansion.
Degree runs on the vertex-centric task runner; the others are direct
BFS traversals.
*/
package algorithms

import (
	"github.com/krotik/tempograph/runner"
	"github.com/krotik/tempograph/tgview"
)

/*
DegreeResult holds the result of a DegreeAll run: total, in- and
out-degree per node.
*/
type DegreeResult struct {
	Degree    int
	InDegree  int
	OutDegree int
}

/*
DegreeAll computes Degree/InDegree/OutDegree for every node in view
using a single-iteration runner job, demonstrating the task runner
on the simplest possible per-vertex computation.
*/
func DegreeAll(view tgview.View, cfg runner.Config) runner.AlgorithmResult[DegreeResult] {
	job := runner.Job{Steps: []runner.Step{
		func(h *runner.Handle) runner.StepResult {
			h.Set("degree", h.Node.Degree())
			h.Set("in_degree", h.Node.InDegree())
			h.Set("out_degree", h.Node.OutDegree())
			return runner.Done
		},
	}}

	return runner.Run(view, job, nil, cfg, func(state map[string]any, _ map[string]runner.AccValue) DegreeResult {
		d, _ := state["degree"].(int)
		in, _ := state["in_degree"].(int)
		out, _ := state["out_degree"].(int)
		return DegreeResult{Degree: d, InDegree: in, OutDegree: out}
	})
}

/*
TotalDegreeSum sums Degree across every node in view via a sum
accumulator, demonstrating cross-worker AC reduction.
*/
func TotalDegreeSum(view tgview.View, cfg runner.Config) float64 {
	job := runner.Job{Steps: []runner.Step{
		func(h *runner.Handle) runner.StepResult {
			h.Write("total_degree", runner.NumValue(runner.AccSum, float64(h.Node.Degree())))
			return runner.Done
		},
	}}

	result := runner.Run(view, job, []runner.Accumulator{runner.SumAccumulator("total_degree")}, cfg,
		func(_ map[string]any, accums map[string]runner.AccValue) float64 {
			return accums["total_degree"].Num
		})

	for _, v := range result {
		return v
	}
	return 0
}
