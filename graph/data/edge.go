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
PropUpdate is one property write carried by an edge event.
*/
type PropUpdate struct {
	Name  string
	Value PropertyValue
}

/*
EdgeEvent is one timestamped occurrence of an edge: the time and the
property updates (if any) that came with it.
*/
type EdgeEvent struct {
	Time    int64
	Updates []PropUpdate
}

/*
sameUpdates reports whether two update sets carry identical
(name, value) pairs, used to de-duplicate events recorded at the same
time with the same property changes.
*/
func sameUpdates(a, b []PropUpdate) bool {
	if len(a) != len(b) {
		return false
	}
	// order-independent comparison; updates within one event are small
	used := make([]bool, len(b))
	for _, ua := range a {
		found := false
		for i, ub := range b {
			if used[i] {
				continue
			}
			if ua.Name == ub.Name && ua.Value.Equal(ub.Value) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

/*
Edge is a directed multigraph edge record: identified by (src, dst,
layer), carrying constant and temporal properties and an append-only,
time-ordered event list.
*/
type Edge struct {
	EID      util.EID
	Src      util.VID
	Dst      util.VID
	Layer    util.LayerID
	Constant *ConstantStore
	Temporal *TemporalStore
	Events   []EdgeEvent
}

/*
NewEdge creates an edge record with no events yet.
*/
func NewEdge(eid util.EID, src, dst util.VID, layer util.LayerID) *Edge {
	return &Edge{
		EID:      eid,
		Src:      src,
		Dst:      dst,
		Layer:    layer,
		Constant: NewConstantStore(),
		Temporal: NewTemporalStore(),
	}
}

/*
AddEvent appends an event at time t with the given property updates,
keeping Events time-ordered (stable by insertion order for equal
times). An event whose (time, updates) are identical to an existing
event is coalesced into that one rather than appended again. Updates
are also written into Temporal at time t.
*/
func (e *Edge) AddEvent(t int64, updates []PropUpdate) {
	for i := range e.Events {
		if e.Events[i].Time == t && sameUpdates(e.Events[i].Updates, updates) {
			return
		}
	}

	idx := sort.Search(len(e.Events), func(i int) bool { return e.Events[i].Time > t })
	e.Events = append(e.Events, EdgeEvent{})
	copy(e.Events[idx+1:], e.Events[idx:])
	e.Events[idx] = EdgeEvent{Time: t, Updates: updates}

	for _, u := range updates {
		e.Temporal.Append(u.Name, t, u.Value)
	}
}

/*
EventsWindow returns the events with time in [lo, hi).
*/
func (e *Edge) EventsWindow(lo, hi int64) []EdgeEvent {
	start := sort.Search(len(e.Events), func(i int) bool { return e.Events[i].Time >= lo })
	end := sort.Search(len(e.Events), func(i int) bool { return e.Events[i].Time >= hi })
	if start >= end {
		return nil
	}
	out := make([]EdgeEvent, end-start)
	copy(out, e.Events[start:end])
	return out
}

/*
EarliestTime returns the first event time, if any.
*/
func (e *Edge) EarliestTime() (int64, bool) {
	if len(e.Events) == 0 {
		return 0, false
	}
	return e.Events[0].Time, true
}

/*
LatestTime returns the last event time, if any.
*/
func (e *Edge) LatestTime() (int64, bool) {
	if len(e.Events) == 0 {
		return 0, false
	}
	return e.Events[len(e.Events)-1].Time, true
}
