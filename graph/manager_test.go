/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package graph

import (
	"testing"

	"github.com/krotik/tempograph/graph/data"
	"github.com/krotik/tempograph/graph/util"
)

func TestAddNodeInternsOnce(t *testing.T) {
	m := NewManager()
	a := util.StrID("a")

	v1 := m.AddNode(1, a, nil)
	v2 := m.AddNode(2, a, nil)

	if v1 != v2 {
		t.Error("Expected same VID for repeated external id:", v1, v2)
	}
	if m.NodesLen() != 1 {
		t.Error("Unexpected node count:", m.NodesLen())
	}

	n, ok := m.NodeByVID(v1)
	if !ok {
		t.Fatal("Expected node to exist")
	}
	if len(n.History()) != 2 {
		t.Error("Expected two history events:", n.History())
	}
}

func TestAddEdgeCreatesAdjacency(t *testing.T) {
	m := NewManager()
	a, b := util.StrID("a"), util.StrID("b")

	eid := m.AddEdge(1, a, b, []data.PropUpdate{{Name: "weight", Value: data.F64(1.0)}}, "")
	m.AddEdge(2, a, b, []data.PropUpdate{{Name: "weight", Value: data.F64(2.0)}}, "")

	if m.EdgesLen() != 1 {
		t.Error("Expected a single multigraph edge record, got", m.EdgesLen())
	}

	av, _ := m.interner.Lookup(a)
	bv, _ := m.interner.Lookup(b)

	out := m.OutEdges(av, util.DefaultLayer)
	if len(out) != 1 || out[0] != eid {
		t.Error("Unexpected out-adjacency:", out)
	}

	in := m.InEdges(bv, util.DefaultLayer)
	if len(in) != 1 || in[0] != eid {
		t.Error("Unexpected in-adjacency:", in)
	}

	e, ok := m.EdgeByEID(eid)
	if !ok || len(e.Events) != 2 {
		t.Error("Unexpected edge events:", e)
	}
}

func TestAddEdgeDistinctLayers(t *testing.T) {
	m := NewManager()
	a, b := util.StrID("a"), util.StrID("b")

	e1 := m.AddEdge(1, a, b, nil, "")
	e2 := m.AddEdge(1, a, b, nil, "social")

	if e1 == e2 {
		t.Error("Expected distinct edge records per layer")
	}
	if m.EdgesLen() != 2 {
		t.Error("Unexpected edge count:", m.EdgesLen())
	}
}

func TestConstantEdgePropertiesRequireExistingEdge(t *testing.T) {
	m := NewManager()
	a, b := util.StrID("a"), util.StrID("b")

	if ok, _ := m.AddConstantEdgeProperties(a, b, []data.PropUpdate{{Name: "k", Value: data.I64(1)}}, ""); ok {
		t.Error("Expected failure: edge does not exist yet")
	}

	m.AddEdge(1, a, b, nil, "")
	if ok, err := m.AddConstantEdgeProperties(a, b, []data.PropUpdate{{Name: "k", Value: data.I64(1)}}, ""); !ok || err != nil {
		t.Error("Expected constant property write to succeed")
	}
}

func TestConstantPropertyTypeMismatchRejected(t *testing.T) {
	m := NewManager()
	a := util.StrID("a")

	if err := m.AddConstantNodeProperties(a, []data.PropUpdate{{Name: "x", Value: data.I64(1)}}); err != nil {
		t.Fatal("Unexpected error on first write:", err)
	}
	if err := m.AddConstantNodeProperties(a, []data.PropUpdate{{Name: "x", Value: data.Str("y")}}); err == nil {
		t.Error("Expected rejection of a differently-typed overwrite")
	}

	n, _ := m.NodeByExternal(a)
	v, ok := n.Constant.Get("x")
	if !ok || !v.Equal(data.I64(1)) {
		t.Error("Expected prior value to be preserved:", v)
	}
}

func TestBoundsEmptyGraph(t *testing.T) {
	m := NewManager()
	if _, _, ok := m.Bounds(); ok {
		t.Error("Expected no bounds on an empty graph")
	}
}

func TestBoundsHalfOpen(t *testing.T) {
	m := NewManager()
	a, b := util.StrID("a"), util.StrID("b")
	m.AddEdge(1, a, b, nil, "")
	m.AddEdge(5, a, b, nil, "")

	start, end, ok := m.Bounds()
	if !ok || start != 1 || end != 6 {
		t.Error("Unexpected bounds:", start, end, ok)
	}
}

func TestFindEdgeUnconnectedNodes(t *testing.T) {
	m := NewManager()
	a, b := util.StrID("a"), util.StrID("b")
	av := m.AddNode(1, a, nil)
	bv := m.AddNode(1, b, nil)

	if _, ok := m.FindEdge(av, bv, util.DefaultLayer); ok {
		t.Error("Expected no edge between unconnected nodes")
	}
}
