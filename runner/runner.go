/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package runner

import (
	"sync"

	"github.com/krotik/tempograph/graph/util"
	"github.com/krotik/tempograph/tgview"
)

/*
StepResult tells the runner whether a vertex wants another iteration.
*/
type StepResult int

const (
	Continue StepResult = iota
	Done
)

/*
Handle is the per-node, per-iteration context a Step runs with: the
node's own view, a persistent read/write state cell, read access to the
accumulator snapshot reduced at the end of the previous iteration, and
write access to this iteration's contribution.
*/
type Handle struct {
	Node tgview.NodeView

	state  map[string]any
	reads  map[string]AccValue
	writes map[string]AccValue
}

/*
Get reads a value previously stored with Set.
*/
func (h *Handle) Get(key string) (any, bool) {
	v, ok := h.state[key]
	return v, ok
}

/*
Set stores a value in the node's persistent state cell, visible to
later steps and later iterations.
*/
func (h *Handle) Set(key string, v any) {
	h.state[key] = v
}

/*
Accum returns the accumulator snapshot reduced at the end of the prior
iteration (zero value on the first iteration).
*/
func (h *Handle) Accum(id string) AccValue {
	return h.reads[id]
}

/*
Write contributes this node's value for accumulator id this iteration.
A second Write to the same id within the same iteration replaces the
first (last-writer semantics); the cross-node reduction at the barrier
uses the accumulator's Combine.
*/
func (h *Handle) Write(id string, v AccValue) {
	h.writes[id] = v
}

/*
Step is one closure invoked once per active node per iteration.
*/
type Step func(h *Handle) StepResult

/*
Job is an ordered list of steps executed, in order, for each active
node within one iteration.
*/
type Job struct {
	Steps []Step
}

/*
AlgorithmResult is the runner's output: a value per node, keyed by VID.
*/
type AlgorithmResult[V any] map[util.VID]V

/*
Finalize receives a node's final persistent state and the final
accumulator snapshot and produces that node's result value.
*/
type Finalize[V any] func(state map[string]any, accums map[string]AccValue) V

/*
Config controls one Run invocation.
*/
type Config struct {
	// Threads is the worker pool size. <= 0 uses runtime.GOMAXPROCS(0).
	Threads int
	// MaxIterations caps the number of BSP iterations. <= 0 means 1.
	MaxIterations int
	// Progress, if set, is called once per iteration after its barrier
	// and accumulator reduction, before the next iteration starts. It
	// lets a caller (e.g. server's job-progress stream) observe how
	// many nodes are still active without touching the runner's
	// internal state.
	Progress func(iteration, activeNodes int)
}

/*
Run executes job over every node in view using a fixed-size worker
pool with a barrier between iterations: each iteration partitions
active nodes across workers, runs the job's steps for each, then
reduces every registered accumulator's per-node contributions via its
Combine before the next iteration starts: reduction happens-before the
next iteration's reads. A node that returns Done from its last step in
an iteration does not run again. The job ends when every node is Done
or MaxIterations is
reached.
*/
func Run[V any](view tgview.View, job Job, accums []Accumulator, cfg Config, finalize Finalize[V]) AlgorithmResult[V] {
	maxIter := cfg.MaxIterations
	if maxIter <= 0 {
		maxIter = 1
	}

	nodes := view.Nodes()

	states := make(map[util.VID]map[string]any, len(nodes))
	active := make(map[util.VID]bool, len(nodes))
	for _, nv := range nodes {
		states[nv.VID] = make(map[string]any)
		active[nv.VID] = true
	}

	snapshot := make(map[string]AccValue, len(accums))
	for _, a := range accums {
		snapshot[a.ID] = a.Zero()
	}

	p := newPool(cfg.Threads)
	defer p.close()

	for iter := 0; iter < maxIter; iter++ {
		anyActive := false
		for _, nv := range nodes {
			if active[nv.VID] {
				anyActive = true
				break
			}
		}
		if !anyActive {
			break
		}

		var mu sync.Mutex
		contributions := make(map[string][]AccValue, len(accums))

		var batch []tgview.NodeView
		for _, nv := range nodes {
			if active[nv.VID] {
				batch = append(batch, nv)
			}
		}

		var wg sync.WaitGroup
		for _, nv := range batch {
			nv := nv

			wg.Add(1)
			submitted := p.submit(func() {
				defer wg.Done()

				h := &Handle{
					Node:   nv,
					state:  states[nv.VID],
					reads:  snapshot,
					writes: make(map[string]AccValue),
				}

				result := Continue
				for _, step := range job.Steps {
					result = step(h)
				}

				mu.Lock()
				for id, v := range h.writes {
					contributions[id] = append(contributions[id], v)
				}
				if result == Done {
					active[nv.VID] = false
				}
				mu.Unlock()
			})
			if !submitted {
				wg.Done()
			}
		}
		wg.Wait()

		for _, a := range accums {
			reduced := a.Zero()
			for _, v := range contributions[a.ID] {
				reduced = a.Combine(reduced, v)
			}
			snapshot[a.ID] = a.Combine(snapshot[a.ID], reduced)
		}

		if cfg.Progress != nil {
			stillActive := 0
			for _, nv := range nodes {
				if active[nv.VID] {
					stillActive++
				}
			}
			cfg.Progress(iter, stillActive)
		}
	}

	out := make(AlgorithmResult[V], len(nodes))
	for _, nv := range nodes {
		out[nv.VID] = finalize(states[nv.VID], snapshot)
	}
	return out
}
