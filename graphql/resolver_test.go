/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package graphql

import (
	"testing"

	"github.com/krotik/tempograph/graph"
	"github.com/krotik/tempograph/graph/data"
	"github.com/krotik/tempograph/graph/util"
	"github.com/krotik/tempograph/query"
	"github.com/krotik/tempograph/tgview"
)

func buildTestGraph() *graph.Manager {
	m := graph.NewManager()
	m.AddEdge(0, util.StrID("alice"), util.StrID("bob"),
		[]data.PropUpdate{{Name: "amount", Value: data.F64(10)}}, "")
	m.AddConstantNodeProperties(util.StrID("alice"), []data.PropUpdate{{Name: "country", Value: data.Str("pt")}})
	return m
}

func TestResolverNode(t *testing.T) {
	m := buildTestGraph()
	r := NewResolver(tgview.New(m))

	field, ok := r.Node(util.StrID("alice"))
	if !ok {
		t.Fatal("expected alice to resolve")
	}
	if field.OutDegree != 1 {
		t.Errorf("expected out degree 1, got %d", field.OutDegree)
	}
	if field.Properties["country"] != "pt" {
		t.Errorf("expected country=pt, got %v", field.Properties)
	}
}

func TestResolverNodeMissing(t *testing.T) {
	m := buildTestGraph()
	r := NewResolver(tgview.New(m))

	if _, ok := r.Node(util.StrID("nobody")); ok {
		t.Error("expected nobody to not resolve")
	}
}

func TestResolverEdges(t *testing.T) {
	m := buildTestGraph()
	r := NewResolver(tgview.New(m))

	edges, err := r.Edges(util.StrID("alice"), util.StrID("bob"))
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 1 || edges[0].EventCount != 1 {
		t.Errorf("expected a single edge with one event, got %+v", edges)
	}
}

func TestResolverBalance(t *testing.T) {
	m := buildTestGraph()
	r := NewResolver(tgview.New(m))

	bal := r.Balance("amount", query.BOTH, m.Interner().Resolve)
	if bal["bob"] != 10 {
		t.Errorf("expected bob's balance to be 10, got %v", bal["bob"])
	}
}

func TestRunQueryNodeField(t *testing.T) {
	m := buildTestGraph()

	resp, err := RunQuery(map[string]interface{}{"field": "node", "id": "alice"}, m)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := resp["node"]; !ok {
		t.Error("expected a node field in the response")
	}
}

func TestRunQueryMissingMandatoryField(t *testing.T) {
	m := buildTestGraph()

	if _, err := RunQuery(map[string]interface{}{"field": "node"}, m); err == nil {
		t.Error("expected an error for a missing id field")
	}
}

func TestRunQueryUnknownField(t *testing.T) {
	m := buildTestGraph()

	if _, err := RunQuery(map[string]interface{}{"field": "nope", "id": "alice"}, m); err == nil {
		t.Error("expected an error for an unknown field")
	}
}
