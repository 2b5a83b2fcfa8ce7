/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package data

import (
	"sort"

	"github.com/krotik/tempograph/graph/util"
)

/*
Node is a graph vertex: a dense VID, a constant property map, a temporal
property store, and the intrinsic event history of additions and
property updates.
*/
type Node struct {
	VID      util.VID
	Constant *ConstantStore
	Temporal *TemporalStore
	history  []int64 // sorted, de-duplicated event times
}

/*
NewNode creates an empty node for the given VID.
*/
func NewNode(vid util.VID) *Node {
	return &Node{
		VID:      vid,
		Constant: NewConstantStore(),
		Temporal: NewTemporalStore(),
	}
}

/*
RecordEvent inserts t into the node's history at its sorted position,
unless t is already recorded, so History() always returns a sorted and
de-duplicated slice.
*/
func (n *Node) RecordEvent(t int64) {
	idx := sort.Search(len(n.history), func(i int) bool { return n.history[i] >= t })

	if idx < len(n.history) && n.history[idx] == t {
		return
	}

	n.history = append(n.history, 0)
	copy(n.history[idx+1:], n.history[idx:])
	n.history[idx] = t
}

/*
History returns the node's full (unwindowed) event history in
non-decreasing order with duplicates removed.
*/
func (n *Node) History() []int64 {
	out := make([]int64, len(n.history))
	copy(out, n.history)
	return out
}

/*
HistoryWindow returns the subset of History() within [lo, hi).
*/
func (n *Node) HistoryWindow(lo, hi int64) []int64 {
	start := sort.Search(len(n.history), func(i int) bool { return n.history[i] >= lo })
	end := sort.Search(len(n.history), func(i int) bool { return n.history[i] >= hi })
	if start >= end {
		return nil
	}
	out := make([]int64, end-start)
	copy(out, n.history[start:end])
	return out
}

/*
EarliestTime returns the first recorded event time, if any.
*/
func (n *Node) EarliestTime() (int64, bool) {
	if len(n.history) == 0 {
		return 0, false
	}
	return n.history[0], true
}

/*
LatestTime returns the last recorded event time, if any.
*/
func (n *Node) LatestTime() (int64, bool) {
	if len(n.history) == 0 {
		return 0, false
	}
	return n.history[len(n.history)-1], true
}
