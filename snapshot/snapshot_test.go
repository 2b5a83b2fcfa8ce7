/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package snapshot

import (
	"bytes"
	"testing"

	"github.com/krotik/tempograph/graph"
	"github.com/krotik/tempograph/graph/data"
	"github.com/krotik/tempograph/graph/util"
)

func buildRecordedGraph(t *testing.T) *Recorder {
	t.Helper()

	r := NewRecorder(graph.NewManager())

	r.AddNode(0, util.StrID("alice"), []data.PropUpdate{{Name: "age", Value: data.I64(30)}})
	r.AddNode(1, util.StrID("bob"), nil)
	r.AddConstantNodeProperties(util.StrID("alice"), []data.PropUpdate{{Name: "country", Value: data.Str("pt")}})

	r.AddEdge(1, util.StrID("alice"), util.StrID("bob"), []data.PropUpdate{{Name: "amount", Value: data.F64(12.5)}}, "")
	r.AddEdge(2, util.StrID("alice"), util.StrID("bob"), []data.PropUpdate{{Name: "amount", Value: data.F64(-3.0)}}, "")
	r.AddEdge(3, util.StrID("bob"), util.StrID("alice"), nil, "payments")
	r.AddConstantEdgeProperties(util.StrID("alice"), util.StrID("bob"), []data.PropUpdate{{Name: "trusted", Value: data.Bool(true)}}, "")

	r.AddGraphTemporalProperties(0, []data.PropUpdate{{Name: "version", Value: data.I32(1)}})
	r.AddGraphConstantProperties([]data.PropUpdate{{Name: "name", Value: data.Str("demo")}})

	return r
}

func propertyValuesEqual(a, b data.PropertyValue) bool { return a.Equal(b) }

func constantStoresEqual(a, b *data.ConstantStore) bool {
	ak, bk := a.Keys(), b.Keys()
	if len(ak) != len(bk) {
		return false
	}
	for _, k := range ak {
		av, aok := a.Get(k)
		bv, bok := b.Get(k)
		if aok != bok || !propertyValuesEqual(av, bv) {
			return false
		}
	}
	return true
}

func temporalStoresEqual(a, b *data.TemporalStore) bool {
	ak, bk := a.Keys(), b.Keys()
	if len(ak) != len(bk) {
		return false
	}
	for _, k := range ak {
		av, bv := a.All(k), b.All(k)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i].Time != bv[i].Time || !propertyValuesEqual(av[i].Value, bv[i].Value) {
				return false
			}
		}
	}
	return true
}

/*
managersEqual implements the load(save(G)) == G contract: matching node
and edge counts, every node id present in both with identical history
and properties, and every edge's exploded event multiset identical and
consistent with the edge it belongs to.
*/
func managersEqual(t *testing.T, a, b *graph.Manager) bool {
	t.Helper()

	if a.NodesLen() != b.NodesLen() {
		t.Logf("node count mismatch: %d vs %d", a.NodesLen(), b.NodesLen())
		return false
	}
	if a.EdgesLen() != b.EdgesLen() {
		t.Logf("edge count mismatch: %d vs %d", a.EdgesLen(), b.EdgesLen())
		return false
	}
	if a.TemporalEdgesLen() != b.TemporalEdgesLen() {
		t.Logf("temporal edge count mismatch: %d vs %d", a.TemporalEdgesLen(), b.TemporalEdgesLen())
		return false
	}

	for _, vid := range a.AllVIDs() {
		na, ok := a.NodeByVID(vid)
		if !ok {
			continue
		}
		nb, ok := b.NodeByVID(vid)
		if !ok {
			t.Logf("vid %d missing in replayed graph", vid)
			return false
		}
		ha, hb := na.History(), nb.History()
		if len(ha) != len(hb) {
			t.Logf("vid %d history length mismatch", vid)
			return false
		}
		for i := range ha {
			if ha[i] != hb[i] {
				t.Logf("vid %d history[%d] mismatch: %d vs %d", vid, i, ha[i], hb[i])
				return false
			}
		}
		if !constantStoresEqual(na.Constant, nb.Constant) || !temporalStoresEqual(na.Temporal, nb.Temporal) {
			t.Logf("vid %d properties mismatch", vid)
			return false
		}
	}

	for _, eid := range a.AllEIDs() {
		ea, ok := a.EdgeByEID(eid)
		if !ok {
			continue
		}
		eb, ok := b.EdgeByEID(eid)
		if !ok {
			t.Logf("eid %d missing in replayed graph", eid)
			return false
		}
		if ea.Src != eb.Src || ea.Dst != eb.Dst || ea.Layer != eb.Layer {
			t.Logf("eid %d endpoints/layer mismatch", eid)
			return false
		}
		if len(ea.Events) != len(eb.Events) {
			t.Logf("eid %d event count mismatch", eid)
			return false
		}
		for i := range ea.Events {
			if ea.Events[i].Time != eb.Events[i].Time {
				t.Logf("eid %d event %d time mismatch", eid, i)
				return false
			}
			if len(ea.Events[i].Updates) != len(eb.Events[i].Updates) {
				t.Logf("eid %d event %d update count mismatch", eid, i)
				return false
			}
			for j := range ea.Events[i].Updates {
				ua, ub := ea.Events[i].Updates[j], eb.Events[i].Updates[j]
				if ua.Name != ub.Name || !propertyValuesEqual(ua.Value, ub.Value) {
					t.Logf("eid %d event %d update %d mismatch", eid, i, j)
					return false
				}
			}
		}
		if !constantStoresEqual(ea.Constant, eb.Constant) || !temporalStoresEqual(ea.Temporal, eb.Temporal) {
			t.Logf("eid %d properties mismatch", eid)
			return false
		}
	}

	ac, at := a.GraphProperties()
	bc, bt := b.GraphProperties()
	if !constantStoresEqual(ac, bc) || !temporalStoresEqual(at, bt) {
		t.Error("graph-level properties mismatch")
		return false
	}

	return true
}

func TestSaveLoadReplayRoundTrip(t *testing.T) {
	r := buildRecordedGraph(t)

	var buf bytes.Buffer
	if err := Save(&buf, r.Ops()); err != nil {
		t.Fatal(err)
	}

	ops, err := Load(&buf)
	if err != nil {
		t.Fatal(err)
	}

	replayed := Replay(ops)

	if !managersEqual(t, r.Manager(), replayed) {
		t.Error("replayed graph does not equal the original")
	}
}

func TestSaveLoadPreservesOpCountAndOrder(t *testing.T) {
	r := buildRecordedGraph(t)

	var buf bytes.Buffer
	if err := Save(&buf, r.Ops()); err != nil {
		t.Fatal(err)
	}

	ops, err := Load(&buf)
	if err != nil {
		t.Fatal(err)
	}

	want := r.Ops()
	if len(ops) != len(want) {
		t.Fatalf("expected %d ops, got %d", len(want), len(ops))
	}
	for i := range ops {
		if ops[i].Kind != want[i].Kind {
			t.Errorf("op %d kind mismatch: %v vs %v", i, ops[i].Kind, want[i].Kind)
		}
	}
}

func TestLoadRejectsUnknownHeader(t *testing.T) {
	if _, err := Load(bytes.NewReader([]byte{0, 0, 0, 0, 0, 0, 0, 0})); err == nil {
		t.Error("expected an error for a malformed stream")
	}
}

func TestEmptyGraphRoundTrip(t *testing.T) {
	r := NewRecorder(graph.NewManager())

	var buf bytes.Buffer
	if err := Save(&buf, r.Ops()); err != nil {
		t.Fatal(err)
	}

	ops, err := Load(&buf)
	if err != nil {
		t.Fatal(err)
	}

	replayed := Replay(ops)
	if replayed.NodesLen() != 0 || replayed.EdgesLen() != 0 {
		t.Error("expected an empty replayed graph")
	}
}
