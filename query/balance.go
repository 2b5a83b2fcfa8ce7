/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package query implements the analytic query surface that runs over a
tgview.View: the balance reduction. The degree/neighbour/property
accessors already exposed per-view are used directly from tgview by
callers that don't need a whole-graph reduction.
*/
package query

import (
	"github.com/krotik/tempograph/graph/util"
	"github.com/krotik/tempograph/tgview"
)

/*
Direction selects which incident edges contribute to a balance
reduction and with which sign.
*/
type Direction int

const (
	// OUT counts only outgoing edges, with a negative sign.
	OUT Direction = iota
	// IN counts only incoming edges, with a positive sign.
	IN
	// BOTH counts outgoing edges (negative) and incoming edges (positive).
	BOTH
)

/*
sumNamedProperty sums the numeric contributions of every event's update
named propName, coercing via PropertyValue.IntoF64 and treating
non-numeric contributions as zero.
*/
func sumNamedProperty(ev tgview.EdgeView, propName string) float64 {
	var total float64
	for _, event := range ev.Events() {
		for _, upd := range event.Updates {
			if upd.Name != propName {
				continue
			}
			if f, ok := upd.Value.IntoF64(); ok {
				total += f
			}
		}
	}
	return total
}

/*
BalanceOne computes the balance reduction for a single node v: for each
in-scope incident edge, sum the named property's value over its
in-window events, signed by whether the edge is outgoing (negative,
when d is OUT or BOTH) or incoming (positive, when d is IN or BOTH).
*/
func BalanceOne(v tgview.View, vid util.VID, propName string, d Direction) float64 {
	nv, ok := v.Node(vid)
	if !ok {
		return 0
	}

	var total float64
	if d == OUT || d == BOTH {
		for _, e := range nv.OutEdges() {
			total -= sumNamedProperty(e, propName)
		}
	}
	if d == IN || d == BOTH {
		for _, e := range nv.InEdges() {
			total += sumNamedProperty(e, propName)
		}
	}
	return total
}

/*
Balance computes BalanceOne for every node in scope, keyed by VID.
*/
func Balance(v tgview.View, propName string, d Direction) map[util.VID]float64 {
	out := make(map[util.VID]float64)
	for _, nv := range v.Nodes() {
		out[nv.VID] = BalanceOne(v, nv.VID, propName, d)
	}
	return out
}
