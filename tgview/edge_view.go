/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package tgview

import (
	"github.com/krotik/tempograph/graph/data"
	"github.com/krotik/tempograph/graph/util"
)

/*
EdgeView is a view over a logical (src, dst) edge. It may be
unresolved (spanning every matching layer's record, state
Unexploded), pinned to one layer's record (PinnedToLayer), pinned to
one event time (PinnedToTime), or both (PinnedTimeAndLayer).
*/
type EdgeView struct {
	View View
	Src  util.VID
	Dst  util.VID

	layerKnown bool
	Layer      util.LayerID
	EID        util.EID

	timePinned bool
	time       int64
}

/*
record holds one matching (src,dst,layer) edge record together with
its layer id, used while resolving an unpinned EdgeView.
*/
type record struct {
	eid   util.EID
	layer util.LayerID
	edge  *data.Edge
}

func (ev EdgeView) matchingRecords() []record {
	if ev.layerKnown {
		e, ok := ev.View.m.EdgeByEID(ev.EID)
		if !ok || !ev.View.edgeHasEventInScope(e) {
			return nil
		}
		return []record{{eid: ev.EID, layer: ev.Layer, edge: e}}
	}

	var out []record
	for _, l := range ev.View.resolvedLayers() {
		eid, ok := ev.View.m.FindEdge(ev.Src, ev.Dst, l)
		if !ok {
			continue
		}
		e, ok := ev.View.m.EdgeByEID(eid)
		if !ok || !ev.View.edgeHasEventInScope(e) {
			continue
		}
		out = append(out, record{eid: eid, layer: l, edge: e})
	}
	return out
}

/*
EdgeGroup returns the unresolved EdgeView over every layer's record for
(src, dst) that the view's current layer set permits.
*/
func (v View) EdgeGroup(src, dst util.VID) EdgeView {
	return EdgeView{View: v, Src: src, Dst: dst}
}

/*
HasEdge reports whether src->dst has at least one matching, in-window
edge record under the view's current layer set.
*/
func (v View) HasEdge(src, dst util.VID) bool {
	return len(v.EdgeGroup(src, dst).matchingRecords()) > 0
}

/*
HasEdgeLayer reports whether src->dst has a matching, in-window edge
record specifically on layerName, also respecting the view's current
layer set.
*/
func (v View) HasEdgeLayer(src, dst util.VID, layerName string) bool {
	return v.Layer(layerName).HasEdge(src, dst)
}

/*
Edge resolves src->dst to a single EdgeView, tie-breaking on the lowest
matching layer id. Returns false if no matching record is in scope.
*/
func (v View) Edge(src, dst util.VID) (EdgeView, bool) {
	recs := v.EdgeGroup(src, dst).matchingRecords()
	if len(recs) == 0 {
		return EdgeView{}, false
	}
	best := recs[0]
	for _, r := range recs[1:] {
		if r.layer < best.layer {
			best = r
		}
	}
	return EdgeView{View: v, Src: src, Dst: dst, layerKnown: true, Layer: best.layer, EID: best.eid}, true
}

/*
Edges returns one EdgeView per distinct (src, dst) pair with at least
one matching, in-window record, ordered by ascending (layer id, src,
dst) of its lowest-layer representative.
*/
func (v View) Edges() []EdgeView {
	type key struct {
		src, dst util.VID
	}
	seen := make(map[key]bool)
	var out []EdgeView

	for _, eid := range v.m.AllEIDs() {
		e, ok := v.m.EdgeByEID(eid)
		if !ok || !v.edgeHasEventInScope(e) {
			continue
		}
		k := key{src: e.Src, dst: e.Dst}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, v.EdgeGroup(e.Src, e.Dst))
	}

	sortEdgeViews(out)
	return out
}

func sortEdgeViews(evs []EdgeView) {
	for i := 1; i < len(evs); i++ {
		for j := i; j > 0 && edgeViewLess(evs[j], evs[j-1]); j-- {
			evs[j-1], evs[j] = evs[j], evs[j-1]
		}
	}
}

func edgeViewLess(a, b EdgeView) bool {
	al := a.lowestLayer()
	bl := b.lowestLayer()
	if al != bl {
		return al < bl
	}
	if a.Src != b.Src {
		return a.Src < b.Src
	}
	return a.Dst < b.Dst
}

func (ev EdgeView) lowestLayer() util.LayerID {
	recs := ev.matchingRecords()
	if len(recs) == 0 {
		return 0
	}
	best := recs[0].layer
	for _, r := range recs[1:] {
		if r.layer < best {
			best = r.layer
		}
	}
	return best
}

/*
EdgesCount returns the number of distinct (src, dst) pairs with a
matching, in-window record under the view's current layer set.
*/
func (v View) EdgesCount() int {
	return len(v.Edges())
}

/*
TemporalEdgesCount returns the sum of in-window event counts across
every matching edge record in scope.
*/
func (v View) TemporalEdgesCount() int {
	total := 0
	for _, eid := range v.m.AllEIDs() {
		e, ok := v.m.EdgeByEID(eid)
		if !ok || !v.layers.Matches(e.Layer) {
			continue
		}
		if v.pred != nil && !v.pred(e) {
			continue
		}
		if v.win.has {
			total += len(e.EventsWindow(v.win.start, v.win.end))
		} else {
			total += len(e.Events)
		}
	}
	return total
}

/*
LayerName returns the name of the layer this EdgeView is pinned to, if
any.
*/
func (ev EdgeView) LayerName() (string, bool) {
	if !ev.layerKnown {
		return "", false
	}
	return ev.View.m.Layers().Name(ev.Layer), true
}

/*
LayerNames returns the names of every layer this EdgeView's group
currently matches.
*/
func (ev EdgeView) LayerNames() []string {
	recs := ev.matchingRecords()
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, ev.View.m.Layers().Name(r.layer))
	}
	return out
}

func (ev EdgeView) edge() *data.Edge {
	if !ev.layerKnown {
		return nil
	}
	e, _ := ev.View.m.EdgeByEID(ev.EID)
	return e
}

/*
Properties returns the constant and temporal property stores of the
edge this view is pinned to. Only valid once layer-resolved.
*/
func (ev EdgeView) Properties() (*data.ConstantStore, *data.TemporalStore) {
	e := ev.edge()
	if e == nil {
		return nil, nil
	}
	return e.Constant, e.Temporal
}

/*
Events returns the in-window event records for this edge view. Valid
once layer-resolved; for an unresolved group it returns nil (call
ExplodeLayers first).
*/
func (ev EdgeView) Events() []data.EdgeEvent {
	e := ev.edge()
	if e == nil {
		return nil
	}
	if ev.View.win.has {
		return e.EventsWindow(ev.View.win.start, ev.View.win.end)
	}
	return e.Events
}

/*
History returns the in-window event times for this edge view. For an
unresolved group, it merges event times across every matching layer
record.
*/
func (ev EdgeView) History() []int64 {
	if ev.timePinned {
		return []int64{ev.time}
	}

	var out []int64
	for _, r := range ev.matchingRecords() {
		var evs []data.EdgeEvent
		if ev.View.win.has {
			evs = r.edge.EventsWindow(ev.View.win.start, ev.View.win.end)
		} else {
			evs = r.edge.Events
		}
		for _, e := range evs {
			out = append(out, e.Time)
		}
	}
	return out
}

/*
EarliestTime returns the earliest in-window event time across the
view.
*/
func (ev EdgeView) EarliestTime() (int64, bool) {
	h := ev.History()
	if len(h) == 0 {
		return 0, false
	}
	min := h[0]
	for _, t := range h[1:] {
		if t < min {
			min = t
		}
	}
	return min, true
}

/*
LatestTime returns the latest in-window event time across the view.
*/
func (ev EdgeView) LatestTime() (int64, bool) {
	h := ev.History()
	if len(h) == 0 {
		return 0, false
	}
	max := h[0]
	for _, t := range h[1:] {
		if t > max {
			max = t
		}
	}
	return max, true
}

/*
ExplodeLayers returns one EdgeView per matching layer record,
preserving layer-id ascending order, each pinned to its layer but not
to a single time.
*/
func (ev EdgeView) ExplodeLayers() []EdgeView {
	recs := ev.matchingRecords()
	out := make([]EdgeView, 0, len(recs))
	for _, r := range recs {
		out = append(out, EdgeView{
			View: ev.View, Src: ev.Src, Dst: ev.Dst,
			layerKnown: true, Layer: r.layer, EID: r.eid,
		})
	}
	return out
}

/*
Explode yields one EdgeView per in-window event, each pinned to exactly
one time (and, transitively, to the single layer record that event
belongs to). Total order is (layer id asc, time asc).
*/
func (ev EdgeView) Explode() []EdgeView {
	var out []EdgeView
	for _, layerView := range ev.ExplodeLayers() {
		e := layerView.edge()
		var evs []data.EdgeEvent
		if ev.View.win.has {
			evs = e.EventsWindow(ev.View.win.start, ev.View.win.end)
		} else {
			evs = e.Events
		}
		for _, one := range evs {
			out = append(out, EdgeView{
				View: ev.View, Src: ev.Src, Dst: ev.Dst,
				layerKnown: true, Layer: layerView.Layer, EID: layerView.EID,
				timePinned: true, time: one.Time,
			})
		}
	}
	return out
}
