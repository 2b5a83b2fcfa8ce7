/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package runner

import (
	"fmt"
	"testing"

	"github.com/krotik/tempograph/graph"
	"github.com/krotik/tempograph/graph/util"
	"github.com/krotik/tempograph/tgview"
)

func buildTriangle(t *testing.T) *graph.Manager {
	t.Helper()
	m := graph.NewManager()
	a, b, c := util.NumID(1), util.NumID(2), util.NumID(3)
	m.AddEdge(0, a, b, nil, "")
	m.AddEdge(0, b, c, nil, "")
	m.AddEdge(0, c, a, nil, "")
	return m
}

func degreeJob() Job {
	return Job{Steps: []Step{
		func(h *Handle) StepResult {
			h.Write("degree_sum", NumValue(AccSum, float64(h.Node.Degree())))
			h.Set("degree", h.Node.Degree())
			return Done
		},
	}}
}

func TestRunnerComputesPerNodeDegree(t *testing.T) {
	m := buildTriangle(t)
	v := tgview.New(m)

	result := Run(v, degreeJob(), []Accumulator{SumAccumulator("degree_sum")}, Config{Threads: 2, MaxIterations: 1},
		func(state map[string]any, accums map[string]AccValue) int {
			d, _ := state["degree"].(int)
			return d
		})

	if len(result) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(result))
	}
	for vid, degree := range result {
		if degree != 2 {
			t.Errorf("Expected degree 2 for node %v, got %d", vid, degree)
		}
	}
}

func TestRunnerDeterministicAcrossThreadCounts(t *testing.T) {
	m := buildTriangle(t)
	v := tgview.New(m)

	finalize := func(state map[string]any, accums map[string]AccValue) float64 {
		return accums["degree_sum"].Num
	}

	var results []float64
	for _, threads := range []int{1, 2, 4, 8} {
		res := Run(v, degreeJob(), []Accumulator{SumAccumulator("degree_sum")}, Config{Threads: threads, MaxIterations: 1}, finalize)
		for _, v := range res {
			results = append(results, v)
			break
		}
	}

	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Errorf("Expected deterministic sum across thread counts, got %v", results)
		}
	}
}

func TestRunnerMaxIterationsStopsProgression(t *testing.T) {
	m := buildTriangle(t)
	v := tgview.New(m)

	job := Job{Steps: []Step{
		func(h *Handle) StepResult {
			count, _ := h.Get("iterations")
			n, _ := count.(int)
			n++
			h.Set("iterations", n)
			return Continue
		},
	}}

	result := Run(v, job, nil, Config{Threads: 2, MaxIterations: 3}, func(state map[string]any, accums map[string]AccValue) int {
		n, _ := state["iterations"].(int)
		return n
	})

	for vid, n := range result {
		if n != 3 {
			t.Errorf("Expected 3 iterations for node %v, got %d", vid, n)
		}
	}
}

func TestRunnerSetUnionAccumulator(t *testing.T) {
	m := buildTriangle(t)
	v := tgview.New(m)

	job := Job{Steps: []Step{
		func(h *Handle) StepResult {
			h.Write("seen", SetValue(fmt.Sprintf("%d", h.Node.VID)))
			return Done
		},
	}}

	result := Run(v, job, []Accumulator{SetUnionAccumulator("seen")}, Config{Threads: 2, MaxIterations: 1},
		func(state map[string]any, accums map[string]AccValue) int {
			return len(accums["seen"].Set)
		})

	for vid, n := range result {
		if n != 3 {
			t.Errorf("Expected union of 3 elements visible to node %v, got %d", vid, n)
		}
	}
}
