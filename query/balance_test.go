/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package query

import (
	"testing"

	"github.com/krotik/tempograph/graph"
	"github.com/krotik/tempograph/graph/data"
	"github.com/krotik/tempograph/graph/util"
	"github.com/krotik/tempograph/tgview"
)

func buildBalanceScenario(t *testing.T) (*graph.Manager, map[int]util.VID) {
	t.Helper()
	m := graph.NewManager()

	type event struct {
		t, src, dst int
		value       float64
	}
	events := []event{
		{1, 1, 2, 10.0},
		{2, 1, 4, 20.0},
		{3, 2, 3, 5.0},
		{4, 3, 2, 2.0},
		{5, 3, 1, 1.0},
		{6, 4, 3, 10.0},
		{7, 4, 1, 5.0},
		{8, 1, 5, 2.0},
	}

	for _, e := range events {
		m.AddEdge(int64(e.t), util.NumID(uint64(e.src)), util.NumID(uint64(e.dst)),
			[]data.PropUpdate{{Name: "value_dec", Value: data.F64(e.value)}}, "")
	}

	ids := make(map[int]util.VID)
	for _, n := range []int{1, 2, 3, 4, 5} {
		ids[n], _ = m.Interner().Lookup(util.NumID(uint64(n)))
	}
	return m, ids
}

func TestScenarioS2BalanceBoth(t *testing.T) {
	m, ids := buildBalanceScenario(t)
	v := tgview.New(m)

	want := map[int]float64{1: -26.0, 2: 7.0, 3: 12.0, 4: 5.0, 5: 2.0}
	for n, exp := range want {
		got := BalanceOne(v, ids[n], "value_dec", BOTH)
		if got != exp {
			t.Errorf("BOTH balance for node %d: got %v want %v", n, got, exp)
		}
	}
}

func TestScenarioS2BalanceIn(t *testing.T) {
	m, ids := buildBalanceScenario(t)
	v := tgview.New(m)

	want := map[int]float64{1: 6, 2: 12, 3: 15, 4: 20, 5: 2}
	for n, exp := range want {
		got := BalanceOne(v, ids[n], "value_dec", IN)
		if got != exp {
			t.Errorf("IN balance for node %d: got %v want %v", n, got, exp)
		}
	}
}

func TestScenarioS2BalanceOut(t *testing.T) {
	m, ids := buildBalanceScenario(t)
	v := tgview.New(m)

	want := map[int]float64{1: -32, 2: -5, 3: -3, 4: -15, 5: 0}
	for n, exp := range want {
		got := BalanceOne(v, ids[n], "value_dec", OUT)
		if got != exp {
			t.Errorf("OUT balance for node %d: got %v want %v", n, got, exp)
		}
	}
}

func TestBalanceMapCoversAllNodes(t *testing.T) {
	m, _ := buildBalanceScenario(t)
	v := tgview.New(m)

	got := Balance(v, "value_dec", BOTH)
	if len(got) != 5 {
		t.Errorf("Expected balance map for 5 nodes, got %d", len(got))
	}
}
