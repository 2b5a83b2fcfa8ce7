/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package tgwindow

import (
	"testing"

	"github.com/krotik/tempograph/graph"
	"github.com/krotik/tempograph/tgtime"
	"github.com/krotik/tempograph/tgview"
)

func TestEmptyGraphRollingAndExpandingAreEmpty(t *testing.T) {
	m := graph.NewManager()
	v := tgview.New(m)

	day, err := tgtime.ParseInterval("1 day")
	if err != nil {
		t.Fatal(err)
	}

	if got := Rolling(v, day, tgtime.Interval{}); got != nil {
		t.Error("Expected no rolling windows on an empty graph, got", got)
	}
	if got := Expanding(v, day); got != nil {
		t.Error("Expected no expanding windows on an empty graph, got", got)
	}
}

func TestScenarioS4RollingOverCalendar(t *testing.T) {
	start, err := tgtime.ParseTime("2020-06-06 00:00:00")
	if err != nil {
		t.Fatal(err)
	}
	end, err := tgtime.ParseTime("2020-06-07 23:59:59.999")
	if err != nil {
		t.Fatal(err)
	}

	day, err := tgtime.ParseInterval("1 day")
	if err != nil {
		t.Fatal(err)
	}

	m := graph.NewManager()
	v := tgview.New(m).Window(start, end)

	windows := Rolling(v, day, tgtime.Interval{})
	if len(windows) != 2 {
		t.Fatalf("Expected 2 rolling windows, got %d", len(windows))
	}

	wantStart, err := tgtime.ParseTime("2020-06-06 00:00:00")
	if err != nil {
		t.Fatal(err)
	}
	wantMid, err := tgtime.ParseTime("2020-06-07 00:00:00")
	if err != nil {
		t.Fatal(err)
	}
	wantEnd, err := tgtime.ParseTime("2020-06-08 00:00:00")
	if err != nil {
		t.Fatal(err)
	}

	s0, e0, _ := windows[0].Bounds()
	if s0 != wantStart || e0 != wantMid {
		t.Errorf("Unexpected first window: [%d,%d)", s0, e0)
	}
	s1, e1, _ := windows[1].Bounds()
	if s1 != wantMid || e1 != wantEnd {
		t.Errorf("Unexpected second window: [%d,%d)", s1, e1)
	}
}

func TestExpandingGrowsFromStart(t *testing.T) {
	m := graph.NewManager()
	v := tgview.New(m).Window(0, 25)

	step := tgtime.Interval{Millis: 10}
	windows := Expanding(v, step)

	if len(windows) != 3 {
		t.Fatalf("Expected 3 expanding windows, got %d", len(windows))
	}
	wantEnds := []int64{10, 20, 30}
	for i, w := range windows {
		_, e, _ := w.Bounds()
		if e != wantEnds[i] {
			t.Errorf("Unexpected expanding window %d end: got %d want %d", i, e, wantEnds[i])
		}
	}
}

func TestTimeIndexCenterAndEnd(t *testing.T) {
	m := graph.NewManager()
	v := tgview.New(m).Window(10, 20)

	mid, ok := TimeIndex(v, true)
	if !ok || mid != 15 {
		t.Error("Unexpected centered time index:", mid, ok)
	}

	last, ok := TimeIndex(v, false)
	if !ok || last != 19 {
		t.Error("Unexpected end time index:", last, ok)
	}
}
