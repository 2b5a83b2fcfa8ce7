/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package snapshot persists a graph.Manager as an ordered mutation log and
replays it to reconstruct an equivalent store. The log, not a dump of
the Manager's derived indexes, is the wire format: dense VID/EID
assignment is a function of call order, so replaying the same ops
against a fresh Manager in the same order reproduces the same ids,
adjacency and property stores.
*/
package snapshot

import (
	"github.com/krotik/tempograph/graph"
	"github.com/krotik/tempograph/graph/data"
	"github.com/krotik/tempograph/graph/util"
)

/*
OpKind identifies which Manager mutation an Op replays.
*/
type OpKind uint8

const (
	OpAddNode OpKind = iota
	OpAddEdge
	OpAddConstantNodeProperties
	OpAddConstantEdgeProperties
	OpAddGraphTemporalProperties
	OpAddGraphConstantProperties
)

/*
Op is one recorded Manager mutation call, carrying exactly the
arguments that call took. Only the fields relevant to Kind are set.
*/
type Op struct {
	Kind OpKind

	Time  int64
	Src   util.ExternalID
	Dst   util.ExternalID
	Props []data.PropUpdate
	Layer string
}

/*
Apply replays a single Op against m.
*/
func (op Op) Apply(m *graph.Manager) {
	switch op.Kind {
	case OpAddNode:
		m.AddNode(op.Time, op.Src, op.Props)
	case OpAddEdge:
		m.AddEdge(op.Time, op.Src, op.Dst, op.Props, op.Layer)
	case OpAddConstantNodeProperties:
		m.AddConstantNodeProperties(op.Src, op.Props)
	case OpAddConstantEdgeProperties:
		m.AddConstantEdgeProperties(op.Src, op.Dst, op.Props, op.Layer)
	case OpAddGraphTemporalProperties:
		m.AddGraphTemporalProperties(op.Time, op.Props)
	case OpAddGraphConstantProperties:
		m.AddGraphConstantProperties(op.Props)
	}
}

/*
Replay reconstructs a Manager by applying ops, in order, to a fresh
store. The result is equivalent to the Manager that originally recorded
ops: same VID/EID assignment, same adjacency, same property stores.
*/
func Replay(ops []Op) *graph.Manager {
	m := graph.NewManager()
	for _, op := range ops {
		op.Apply(m)
	}
	return m
}

/*
Recorder wraps a Manager and captures every mutation call as an ordered
Op while still applying it to the live store. Use it at ingestion time
so the recorded log can later be saved and replayed without having to
re-derive it from the Manager's internal structures.
*/
type Recorder struct {
	m   *graph.Manager
	ops []Op
}

/*
NewRecorder wraps m for recording. m should be freshly created; ops
recorded here assume they are the only mutations applied to m.
*/
func NewRecorder(m *graph.Manager) *Recorder {
	return &Recorder{m: m}
}

/*
Manager returns the wrapped store.
*/
func (r *Recorder) Manager() *graph.Manager { return r.m }

/*
Ops returns the recorded log in call order.
*/
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

/*
AddNode records and applies an AddNode call.
*/
func (r *Recorder) AddNode(t int64, ext util.ExternalID, props []data.PropUpdate) util.VID {
	r.ops = append(r.ops, Op{Kind: OpAddNode, Time: t, Src: ext, Props: props})
	return r.m.AddNode(t, ext, props)
}

/*
AddEdge records and applies an AddEdge call.
*/
func (r *Recorder) AddEdge(t int64, srcExt, dstExt util.ExternalID, props []data.PropUpdate, layerName string) util.EID {
	r.ops = append(r.ops, Op{Kind: OpAddEdge, Time: t, Src: srcExt, Dst: dstExt, Props: props, Layer: layerName})
	return r.m.AddEdge(t, srcExt, dstExt, props, layerName)
}

/*
AddConstantNodeProperties records and applies a constant node property
write.
*/
func (r *Recorder) AddConstantNodeProperties(ext util.ExternalID, props []data.PropUpdate) error {
	r.ops = append(r.ops, Op{Kind: OpAddConstantNodeProperties, Src: ext, Props: props})
	return r.m.AddConstantNodeProperties(ext, props)
}

/*
AddConstantEdgeProperties records and applies a constant edge property
write.
*/
func (r *Recorder) AddConstantEdgeProperties(srcExt, dstExt util.ExternalID, props []data.PropUpdate, layerName string) (bool, error) {
	r.ops = append(r.ops, Op{Kind: OpAddConstantEdgeProperties, Src: srcExt, Dst: dstExt, Props: props, Layer: layerName})
	return r.m.AddConstantEdgeProperties(srcExt, dstExt, props, layerName)
}

/*
AddGraphTemporalProperties records and applies a graph-level temporal
property write.
*/
func (r *Recorder) AddGraphTemporalProperties(t int64, props []data.PropUpdate) {
	r.ops = append(r.ops, Op{Kind: OpAddGraphTemporalProperties, Time: t, Props: props})
	r.m.AddGraphTemporalProperties(t, props)
}

/*
AddGraphConstantProperties records and applies a graph-level constant
property write.
*/
func (r *Recorder) AddGraphConstantProperties(props []data.PropUpdate) error {
	r.ops = append(r.ops, Op{Kind: OpAddGraphConstantProperties, Props: props})
	return r.m.AddGraphConstantProperties(props)
}
