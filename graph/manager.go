/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package graph contains the in-memory temporal multigraph store: the
Manager type that owns nodes, directed edges, per-layer adjacency and
the mutation API loaders use to build a graph.

The Manager is the only mutable part of the system. Everything layered
on top of it (tgview.View, tgwindow iterators, query, runner) reads
through it but never mutates it; a writer phase should hold exclusive
use of the Manager before readers start composing views. Writes and
reads are not expected to interleave; the RWMutex here is a defense in
depth measure, not a substitute for that discipline.
*/
package graph

import (
	"sync"

	"github.com/krotik/common/errorutil"

	"github.com/krotik/tempograph/graph/data"
	"github.com/krotik/tempograph/graph/util"
)

/*
edgeKey identifies the unique edge record for a (src, dst, layer) triple.
*/
type edgeKey struct {
	src   util.VID
	dst   util.VID
	layer util.LayerID
}

/*
Manager is the temporal multigraph store.
*/
type Manager struct {
	mutex sync.RWMutex

	interner *util.Interner
	layers   *util.LayerRegistry

	nodes []*data.Node
	edges []*data.Edge

	edgeIndex map[edgeKey]util.EID

	// outAdj[v][l] / inAdj[v][l] list EIDs in first-event insertion order,
	// the order neighbour iteration is contracted to return.
	outAdj map[util.VID]map[util.LayerID][]util.EID
	inAdj  map[util.VID]map[util.LayerID][]util.EID

	graphConstant *data.ConstantStore
	graphTemporal *data.TemporalStore
}

/*
NewManager creates an empty graph store.
*/
func NewManager() *Manager {
	return &Manager{
		interner:      util.NewInterner(),
		layers:        util.NewLayerRegistry(),
		edgeIndex:     make(map[edgeKey]util.EID),
		outAdj:        make(map[util.VID]map[util.LayerID][]util.EID),
		inAdj:         make(map[util.VID]map[util.LayerID][]util.EID),
		graphConstant: data.NewConstantStore(),
		graphTemporal: data.NewTemporalStore(),
	}
}

/*
Interner returns the node id interner.
*/
func (m *Manager) Interner() *util.Interner { return m.interner }

/*
Layers returns the layer registry.
*/
func (m *Manager) Layers() *util.LayerRegistry { return m.layers }

/*
ensureNode returns the VID for ext, creating the node record lazily if
this is the first time ext is referenced.
*/
func (m *Manager) ensureNode(ext util.ExternalID) (util.VID, *data.Node) {
	vid := m.interner.Intern(ext)
	for int(vid) >= len(m.nodes) {
		m.nodes = append(m.nodes, nil)
	}
	if m.nodes[vid] == nil {
		m.nodes[vid] = data.NewNode(vid)
	}
	return vid, m.nodes[vid]
}

/*
AddNode ensures a node exists for ext, records an event at t, and merges
props into its temporal store. Returns the node's VID.
*/
func (m *Manager) AddNode(t int64, ext util.ExternalID, props []data.PropUpdate) util.VID {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	vid, n := m.ensureNode(ext)
	n.RecordEvent(t)
	for _, p := range props {
		n.Temporal.Append(p.Name, t, p.Value)
	}
	return vid
}

/*
AddConstantNodeProperties merges props into the node's constant store.
The node is created lazily if unknown; no event is recorded for it, so
such a node has an empty history until an AddNode or AddEdge call
references it. A prop whose name
collides with an existing property of a different Kind is rejected;
every other prop in the batch is still applied. Returns a composite of
any rejections.
*/
func (m *Manager) AddConstantNodeProperties(ext util.ExternalID, props []data.PropUpdate) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	ce := errorutil.NewCompositeError()

	_, n := m.ensureNode(ext)
	for _, p := range props {
		if err := n.Constant.Set(p.Name, p.Value); err != nil {
			ce.Add(err)
		}
	}

	if ce.HasErrors() {
		return ce
	}
	return nil
}

/*
AddEdge interns src/dst, ensures both endpoints exist, locates or
creates the (src, dst, layer) edge record, appends an event at t and
merges props into its temporal store. layerName == "" selects the
default layer.
*/
func (m *Manager) AddEdge(t int64, srcExt, dstExt util.ExternalID, props []data.PropUpdate, layerName string) util.EID {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	layer := m.layers.Intern(layerName)

	srcVID, srcNode := m.ensureNode(srcExt)
	dstVID, dstNode := m.ensureNode(dstExt)
	srcNode.RecordEvent(t)
	dstNode.RecordEvent(t)

	key := edgeKey{src: srcVID, dst: dstVID, layer: layer}
	eid, ok := m.edgeIndex[key]

	var e *data.Edge
	if !ok {
		eid = util.EID(len(m.edges))
		e = data.NewEdge(eid, srcVID, dstVID, layer)
		m.edges = append(m.edges, e)
		m.edgeIndex[key] = eid

		m.appendAdj(m.outAdj, srcVID, layer, eid)
		m.appendAdj(m.inAdj, dstVID, layer, eid)
	} else {
		e = m.edges[eid]
	}

	updates := make([]data.PropUpdate, len(props))
	copy(updates, props)
	e.AddEvent(t, updates)

	return eid
}

func (m *Manager) appendAdj(adj map[util.VID]map[util.LayerID][]util.EID, vid util.VID, layer util.LayerID, eid util.EID) {
	byLayer, ok := adj[vid]
	if !ok {
		byLayer = make(map[util.LayerID][]util.EID)
		adj[vid] = byLayer
	}
	byLayer[layer] = append(byLayer[layer], eid)
}

/*
AddConstantEdgeProperties merges props into the constant store of the
(src, dst, layer) edge, creating endpoints lazily but not creating the
edge itself — the edge must already exist via at least one event.
Returns false if the edge does not exist. A prop whose name collides
with an existing property of a different Kind is rejected; every other
prop in the batch is still applied, and a composite of any rejections
is returned.
*/
func (m *Manager) AddConstantEdgeProperties(srcExt, dstExt util.ExternalID, props []data.PropUpdate, layerName string) (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	layer, ok := m.layers.Lookup(layerName)
	if !ok {
		return false, nil
	}

	srcVID, ok1 := m.interner.Lookup(srcExt)
	dstVID, ok2 := m.interner.Lookup(dstExt)
	if !ok1 || !ok2 {
		return false, nil
	}

	eid, ok := m.edgeIndex[edgeKey{src: srcVID, dst: dstVID, layer: layer}]
	if !ok {
		return false, nil
	}

	ce := errorutil.NewCompositeError()

	e := m.edges[eid]
	for _, p := range props {
		if err := e.Constant.Set(p.Name, p.Value); err != nil {
			ce.Add(err)
		}
	}

	if ce.HasErrors() {
		return true, ce
	}
	return true, nil
}

/*
AddGraphTemporalProperties records graph-level temporal properties at t.
*/
func (m *Manager) AddGraphTemporalProperties(t int64, props []data.PropUpdate) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, p := range props {
		m.graphTemporal.Append(p.Name, t, p.Value)
	}
}

/*
AddGraphConstantProperties merges props into the graph-level constant
store. A prop whose name collides with an existing property of a
different Kind is rejected; every other prop in the batch is still
applied. Returns a composite of any rejections.
*/
func (m *Manager) AddGraphConstantProperties(props []data.PropUpdate) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	ce := errorutil.NewCompositeError()

	for _, p := range props {
		if err := m.graphConstant.Set(p.Name, p.Value); err != nil {
			ce.Add(err)
		}
	}

	if ce.HasErrors() {
		return ce
	}
	return nil
}

/*
GraphProperties returns the graph-level constant and temporal stores.
*/
func (m *Manager) GraphProperties() (*data.ConstantStore, *data.TemporalStore) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.graphConstant, m.graphTemporal
}

/*
NodeByVID returns the node record for vid.
*/
func (m *Manager) NodeByVID(vid util.VID) (*data.Node, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if int(vid) >= len(m.nodes) || m.nodes[vid] == nil {
		return nil, false
	}
	return m.nodes[vid], true
}

/*
NodeByExternal resolves an external id to its node record.
*/
func (m *Manager) NodeByExternal(ext util.ExternalID) (*data.Node, bool) {
	m.mutex.RLock()
	vid, ok := m.interner.Lookup(ext)
	m.mutex.RUnlock()

	if !ok {
		return nil, false
	}
	return m.NodeByVID(vid)
}

/*
EdgeByEID returns the edge record for eid.
*/
func (m *Manager) EdgeByEID(eid util.EID) (*data.Edge, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if int(eid) >= len(m.edges) {
		return nil, false
	}
	return m.edges[eid], true
}

/*
FindEdge looks up the edge record for (src, dst, layer), if any.
*/
func (m *Manager) FindEdge(src, dst util.VID, layer util.LayerID) (util.EID, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	eid, ok := m.edgeIndex[edgeKey{src: src, dst: dst, layer: layer}]
	return eid, ok
}

/*
OutEdges returns the out-adjacency list for vid on layer, in
first-event insertion order.
*/
func (m *Manager) OutEdges(vid util.VID, layer util.LayerID) []util.EID {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return cloneEIDs(m.outAdj[vid][layer])
}

/*
InEdges returns the in-adjacency list for vid on layer, in first-event
insertion order.
*/
func (m *Manager) InEdges(vid util.VID, layer util.LayerID) []util.EID {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return cloneEIDs(m.inAdj[vid][layer])
}

/*
OutLayers returns the layer ids for which vid has at least one outgoing
edge.
*/
func (m *Manager) OutLayers(vid util.VID) []util.LayerID {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var out []util.LayerID
	for l := range m.outAdj[vid] {
		out = append(out, l)
	}
	return out
}

/*
InLayers returns the layer ids for which vid has at least one incoming
edge.
*/
func (m *Manager) InLayers(vid util.VID) []util.LayerID {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var out []util.LayerID
	for l := range m.inAdj[vid] {
		out = append(out, l)
	}
	return out
}

func cloneEIDs(in []util.EID) []util.EID {
	out := make([]util.EID, len(in))
	copy(out, in)
	return out
}

/*
NodesLen returns the total number of interned node ids.
*/
func (m *Manager) NodesLen() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return len(m.nodes)
}

/*
EdgesLen returns the total number of edge records.
*/
func (m *Manager) EdgesLen() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return len(m.edges)
}

/*
TemporalEdgesLen returns the sum of event-list lengths across all edges.
*/
func (m *Manager) TemporalEdgesLen() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	total := 0
	for _, e := range m.edges {
		total += len(e.Events)
	}
	return total
}

/*
AllVIDs returns every VID currently known to the store.
*/
func (m *Manager) AllVIDs() []util.VID {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	out := make([]util.VID, 0, len(m.nodes))
	for vid, n := range m.nodes {
		if n != nil {
			out = append(out, util.VID(vid))
		}
	}
	return out
}

/*
AllEIDs returns every EID currently known to the store.
*/
func (m *Manager) AllEIDs() []util.EID {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	out := make([]util.EID, len(m.edges))
	for i := range m.edges {
		out[i] = util.EID(i)
	}
	return out
}

/*
Bounds returns the graph's overall start (min event time) and end
(max event time + 1, half-open) across every node and edge event. The
second return value is false for an empty graph.
*/
func (m *Manager) Bounds() (start, end int64, ok bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	first := true
	var minT, maxT int64

	consider := func(t int64) {
		if first {
			minT, maxT = t, t
			first = false
			return
		}
		if t < minT {
			minT = t
		}
		if t > maxT {
			maxT = t
		}
	}

	for _, n := range m.nodes {
		if n == nil {
			continue
		}
		for _, t := range n.History() {
			consider(t)
		}
	}
	for _, e := range m.edges {
		for _, ev := range e.Events {
			consider(ev.Time)
		}
	}

	if first {
		return 0, 0, false
	}
	return minT, maxT + 1, true
}
