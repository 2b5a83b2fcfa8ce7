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
NodeView is a view pinned to a single node.
*/
type NodeView struct {
	View View
	VID  util.VID
}

/*
HasNode reports whether vid exists and has at least one event within
the view's window (nodes are not layer-scoped).
*/
func (v View) HasNode(vid util.VID) bool {
	n, ok := v.m.NodeByVID(vid)
	if !ok {
		return false
	}
	return v.nodeHasEventInScope(n)
}

/*
Node returns a NodeView for vid if it is in scope.
*/
func (v View) Node(vid util.VID) (NodeView, bool) {
	if !v.HasNode(vid) {
		return NodeView{}, false
	}
	return NodeView{View: v, VID: vid}, true
}

/*
NodeByExternal resolves an external id and returns its NodeView if in
scope.
*/
func (v View) NodeByExternal(ext util.ExternalID) (NodeView, bool) {
	vid, ok := v.m.Interner().Lookup(ext)
	if !ok {
		return NodeView{}, false
	}
	return v.Node(vid)
}

/*
Nodes returns every in-scope node, ordered by ascending VID.
*/
func (v View) Nodes() []NodeView {
	var out []NodeView
	for _, vid := range v.m.AllVIDs() {
		if v.HasNode(vid) {
			out = append(out, NodeView{View: v, VID: vid})
		}
	}
	return out
}

/*
NodesCount returns the number of distinct VIDs in scope.
*/
func (v View) NodesCount() int {
	count := 0
	for _, vid := range v.m.AllVIDs() {
		if v.HasNode(vid) {
			count++
		}
	}
	return count
}

func (nv NodeView) node() *data.Node {
	n, _ := nv.View.m.NodeByVID(nv.VID)
	return n
}

/*
History returns the node's event times within the view's window,
sorted and de-duplicated.
*/
func (nv NodeView) History() []int64 {
	n := nv.node()
	if n == nil {
		return nil
	}
	if !nv.View.win.has {
		return n.History()
	}
	return n.HistoryWindow(nv.View.win.start, nv.View.win.end)
}

/*
EarliestTime returns the node's first in-window event time, if any.
*/
func (nv NodeView) EarliestTime() (int64, bool) {
	h := nv.History()
	if len(h) == 0 {
		return 0, false
	}
	return h[0], true
}

/*
LatestTime returns the node's last in-window event time, if any.
*/
func (nv NodeView) LatestTime() (int64, bool) {
	h := nv.History()
	if len(h) == 0 {
		return 0, false
	}
	return h[len(h)-1], true
}

/*
Properties returns the node's constant and temporal property stores.
*/
func (nv NodeView) Properties() (*data.ConstantStore, *data.TemporalStore) {
	n := nv.node()
	return n.Constant, n.Temporal
}

func (nv NodeView) matchingLayers() []util.LayerID {
	return nv.View.resolvedLayers()
}

func appendUnique(order *[]util.VID, seen map[util.VID]bool, vid util.VID) {
	if !seen[vid] {
		seen[vid] = true
		*order = append(*order, vid)
	}
}

/*
OutNeighbours returns the distinct destination VIDs reachable via
outgoing in-scope edges, in first-qualifying-event order.
*/
func (nv NodeView) OutNeighbours() []util.VID {
	var out []util.VID
	seen := make(map[util.VID]bool)
	for _, l := range nv.matchingLayers() {
		for _, eid := range nv.View.m.OutEdges(nv.VID, l) {
			e, ok := nv.View.m.EdgeByEID(eid)
			if !ok || !nv.View.edgeHasEventInScope(e) {
				continue
			}
			appendUnique(&out, seen, e.Dst)
		}
	}
	return out
}

/*
InNeighbours returns the distinct source VIDs reaching this node via
incoming in-scope edges, in first-qualifying-event order.
*/
func (nv NodeView) InNeighbours() []util.VID {
	var out []util.VID
	seen := make(map[util.VID]bool)
	for _, l := range nv.matchingLayers() {
		for _, eid := range nv.View.m.InEdges(nv.VID, l) {
			e, ok := nv.View.m.EdgeByEID(eid)
			if !ok || !nv.View.edgeHasEventInScope(e) {
				continue
			}
			appendUnique(&out, seen, e.Src)
		}
	}
	return out
}

/*
Neighbours returns the union of OutNeighbours and InNeighbours, de-
duplicated, outgoing-first.
*/
func (nv NodeView) Neighbours() []util.VID {
	out := nv.OutNeighbours()
	seen := make(map[util.VID]bool, len(out))
	for _, v := range out {
		seen[v] = true
	}
	for _, v := range nv.InNeighbours() {
		appendUnique(&out, seen, v)
	}
	return out
}

/*
OutDegree returns the number of distinct out-neighbours.
*/
func (nv NodeView) OutDegree() int { return len(nv.OutNeighbours()) }

/*
InDegree returns the number of distinct in-neighbours.
*/
func (nv NodeView) InDegree() int { return len(nv.InNeighbours()) }

/*
Degree returns the number of distinct neighbours in either direction.
*/
func (nv NodeView) Degree() int { return len(nv.Neighbours()) }

/*
OutEdges returns EdgeViews for every in-scope outgoing edge record.
*/
func (nv NodeView) OutEdges() []EdgeView {
	var out []EdgeView
	for _, l := range nv.matchingLayers() {
		for _, eid := range nv.View.m.OutEdges(nv.VID, l) {
			e, ok := nv.View.m.EdgeByEID(eid)
			if !ok || !nv.View.edgeHasEventInScope(e) {
				continue
			}
			out = append(out, EdgeView{View: nv.View, EID: eid, Src: e.Src, Dst: e.Dst, layerKnown: true, Layer: e.Layer})
		}
	}
	return out
}

/*
InEdges returns EdgeViews for every in-scope incoming edge record.
*/
func (nv NodeView) InEdges() []EdgeView {
	var out []EdgeView
	for _, l := range nv.matchingLayers() {
		for _, eid := range nv.View.m.InEdges(nv.VID, l) {
			e, ok := nv.View.m.EdgeByEID(eid)
			if !ok || !nv.View.edgeHasEventInScope(e) {
				continue
			}
			out = append(out, EdgeView{View: nv.View, EID: eid, Src: e.Src, Dst: e.Dst, layerKnown: true, Layer: e.Layer})
		}
	}
	return out
}

/*
Edges returns the union of OutEdges and InEdges.
*/
func (nv NodeView) Edges() []EdgeView {
	return append(nv.OutEdges(), nv.InEdges()...)
}
