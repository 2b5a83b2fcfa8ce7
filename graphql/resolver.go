/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package graphql provides resolver functions over a tgview.View for the
fields a GraphQL schema would expose: a node's properties and degree,
its edges to another node, and the balance reduction. It does not
implement a GraphQL execution engine — callers wire these resolvers
into whichever schema library they choose.
*/
package graphql

import (
	"fmt"

	"github.com/krotik/tempograph/graph/util"
	"github.com/krotik/tempograph/query"
	"github.com/krotik/tempograph/tgview"
)

/*
Resolver answers field lookups against a fixed View.
*/
type Resolver struct {
	v tgview.View
}

/*
NewResolver creates a Resolver bound to v.
*/
func NewResolver(v tgview.View) *Resolver { return &Resolver{v: v} }

/*
NodeField is the resolved shape of a "node" field.
*/
type NodeField struct {
	Degree     int               `json:"degree"`
	InDegree   int               `json:"inDegree"`
	OutDegree  int               `json:"outDegree"`
	Properties map[string]string `json:"properties"`
	History    []int64           `json:"history"`
}

/*
Node resolves a node's scalar fields.
*/
func (r *Resolver) Node(ext util.ExternalID) (NodeField, bool) {
	nv, ok := r.v.NodeByExternal(ext)
	if !ok {
		return NodeField{}, false
	}

	constant, _ := nv.Properties()
	props := make(map[string]string)
	for _, k := range constant.Keys() {
		v, _ := constant.Get(k)
		props[k] = v.String()
	}

	return NodeField{
		Degree:     nv.Degree(),
		InDegree:   nv.InDegree(),
		OutDegree:  nv.OutDegree(),
		Properties: props,
		History:    nv.History(),
	}, true
}

/*
EdgeField is the resolved shape of an "edges" field entry.
*/
type EdgeField struct {
	Layer      string `json:"layer"`
	EventCount int    `json:"eventCount"`
	Earliest   int64  `json:"earliest"`
	Latest     int64  `json:"latest"`
	HasHistory bool   `json:"hasHistory"`
}

/*
Edges resolves the edges between src and dst, one entry per layer with
at least one matching event in scope.
*/
func (r *Resolver) Edges(src, dst util.ExternalID) ([]EdgeField, error) {
	srcNv, ok := r.v.NodeByExternal(src)
	if !ok {
		return nil, fmt.Errorf("graphql: unknown node %v", src)
	}
	dstNv, ok := r.v.NodeByExternal(dst)
	if !ok {
		return nil, fmt.Errorf("graphql: unknown node %v", dst)
	}

	group := r.v.EdgeGroup(srcNv.VID, dstNv.VID)

	var out []EdgeField
	for _, ev := range group.ExplodeLayers() {
		earliest, _ := ev.EarliestTime()
		latest, _ := ev.LatestTime()
		layerName, _ := ev.LayerName()
		out = append(out, EdgeField{
			Layer:      layerName,
			EventCount: len(ev.Events()),
			Earliest:   earliest,
			Latest:     latest,
			HasHistory: len(ev.Events()) > 0,
		})
	}
	return out, nil
}

/*
Balance resolves the balance reduction for propName across the whole
view, keyed by external id string.
*/
func (r *Resolver) Balance(propName string, dir query.Direction, resolve func(util.VID) (util.ExternalID, bool)) map[string]float64 {
	out := make(map[string]float64)
	for vid, bal := range query.Balance(r.v, propName, dir) {
		ext, ok := resolve(vid)
		if !ok {
			continue
		}
		out[externalIDString(ext)] = bal
	}
	return out
}

func externalIDString(ext util.ExternalID) string {
	if ext.IsString {
		return ext.Str
	}
	return fmt.Sprintf("%d", ext.Num)
}
