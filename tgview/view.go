/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package tgview implements the lazy view-composition algebra: windows,
layer selection, and edge explosion stacked over a graph.Manager with
zero materialization. A View is a small value type — cheap to copy and
compose — that borrows its store rather than owning it. A View holds no
lock of its own; each store accessor it calls takes the Manager's read
lock for the duration of that call only.
*/
package tgview

import (
	"math"

	"github.com/krotik/tempograph/graph"
	"github.com/krotik/tempograph/graph/data"
	"github.com/krotik/tempograph/graph/util"
)

/*
EdgePredicate is an optional per-edge filter a view may carry.
*/
type EdgePredicate func(e *data.Edge) bool

/*
window is the view's half-open time range. A zero value means
unbounded: every event in the store is in scope.
*/
type window struct {
	has        bool
	start, end int64
}

func (w window) intersect(start, end int64) window {
	if !w.has {
		return window{has: true, start: start, end: end}
	}
	ns, ne := start, end
	if w.start > ns {
		ns = w.start
	}
	if w.end < ne {
		ne = w.end
	}
	return window{has: true, start: ns, end: ne}
}

func saturatingAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64
	}
	return a + b
}

/*
View composes a base store reference with a window, a layer set and an
optional edge predicate. Views never mutate the store and carry no
locks of their own.
*/
type View struct {
	m      *graph.Manager
	win    window
	layers util.LayerSet
	pred   EdgePredicate
}

/*
New returns the unfiltered view over the whole store: unbounded window,
all layers.
*/
func New(m *graph.Manager) View {
	return View{m: m, layers: util.AllLayers()}
}

/*
Store returns the view's underlying graph store.
*/
func (v View) Store() *graph.Manager { return v.m }

/*
Window narrows the view to the half-open range [start, end). Nested
calls intersect: V.window(a,b).window(c,d) == V.window(max(a,c),
min(b,d)).
*/
func (v View) Window(start, end int64) View {
	v.win = v.win.intersect(start, end)
	return v
}

/*
At narrows the view to a single instant, equivalent to
Window(t, t+1) with saturating addition at math.MaxInt64.
*/
func (v View) At(t int64) View {
	return v.Window(t, saturatingAdd(t, 1))
}

/*
Before narrows the view's end to t, keeping the current start (or
math.MinInt64 if no window has been set yet).
*/
func (v View) Before(t int64) View {
	start := int64(math.MinInt64)
	if v.win.has {
		start = v.win.start
	}
	return v.Window(start, t)
}

/*
After narrows the view's start to t+1, keeping the current end (or
math.MaxInt64 if no window has been set yet).
*/
func (v View) After(t int64) View {
	end := int64(math.MaxInt64)
	if v.win.has {
		end = v.win.end
	}
	return v.Window(saturatingAdd(t, 1), end)
}

/*
Bounds returns the view's effective window. If no window has been set
explicitly, it falls back to the whole store's event bounds, so an
unfiltered view over an empty store reports ok=false.
*/
func (v View) Bounds() (start, end int64, ok bool) {
	if v.win.has {
		return v.win.start, v.win.end, true
	}
	return v.m.Bounds()
}

/*
Layer narrows the view to a single named layer, intersected with the
current layer set. An unknown name resolves to a layer set matching
nothing, so the resulting view sees no edges.
*/
func (v View) Layer(name string) View {
	id, ok := v.m.Layers().Lookup(name)
	var ls util.LayerSet
	if ok {
		ls = util.OneLayer(id)
	} else {
		ls = util.ManyLayers(nil)
	}
	v.layers = v.layers.Intersect(ls)
	return v
}

/*
Layers narrows the view to the given named layers, intersected with the
current layer set. Unknown names are silently dropped from the list.
*/
func (v View) Layers(names []string) View {
	var ids []util.LayerID
	for _, n := range names {
		if id, ok := v.m.Layers().Lookup(n); ok {
			ids = append(ids, id)
		}
	}
	v.layers = v.layers.Intersect(util.ManyLayers(ids))
	return v
}

/*
DefaultLayer narrows the view to the default (unnamed, id 0) layer.
*/
func (v View) DefaultLayer() View {
	v.layers = v.layers.Intersect(util.DefaultLayerSet())
	return v
}

/*
LayerSet returns the view's resolved layer selector.
*/
func (v View) LayerSet() util.LayerSet { return v.layers }

/*
Filter narrows the view with an additional per-edge predicate, ANDed
with any predicate already set.
*/
func (v View) Filter(pred EdgePredicate) View {
	if v.pred == nil {
		v.pred = pred
		return v
	}
	prior := v.pred
	v.pred = func(e *data.Edge) bool { return prior(e) && pred(e) }
	return v
}

func (v View) inWindow(t int64) bool {
	if !v.win.has {
		return true
	}
	return t >= v.win.start && t < v.win.end
}

func (v View) edgeHasEventInScope(e *data.Edge) bool {
	if !v.layers.Matches(e.Layer) {
		return false
	}
	if v.pred != nil && !v.pred(e) {
		return false
	}
	if !v.win.has {
		return len(e.Events) > 0
	}
	return len(e.EventsWindow(v.win.start, v.win.end)) > 0
}

func (v View) nodeHasEventInScope(n *data.Node) bool {
	if !v.win.has {
		_, ok := n.EarliestTime()
		return ok
	}
	return len(n.HistoryWindow(v.win.start, v.win.end)) > 0
}

/*
resolvedLayers materializes the concrete layer ids matched by the
view's current layer set, ascending.
*/
func (v View) resolvedLayers() []util.LayerID {
	names := v.m.Layers().Names()
	known := make([]util.LayerID, 0, len(names)+1)
	known = append(known, util.DefaultLayer)
	for i := range names {
		known = append(known, util.LayerID(i+1))
	}
	return v.layers.IDs(known)
}
