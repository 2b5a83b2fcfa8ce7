/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package algorithms

import (
	"errors"

	"github.com/krotik/tempograph/graph/util"
	"github.com/krotik/tempograph/tgview"
)

/*
Direction selects which incident edges a k-hop expansion follows.
*/
type Direction int

const (
	DirectionOut Direction = iota
	DirectionIn
	DirectionBoth
)

/*
KHopOptions configures a bounded-hop neighbourhood expansion.
*/
type KHopOptions struct {
	MaxHops    int // must be >= 1
	Direction  Direction
	MaxResults int // 0 = unlimited; BFS order gives closer nodes priority
}

/*
KHopResult holds the BFS neighbourhood of a source node.
*/
type KHopResult struct {
	Source         util.VID
	ByHop          map[int][]util.VID
	Distances      map[util.VID]int
	TotalReachable int
}

type bfsEntry struct {
	vid util.VID
	hop int
}

/*
KHopNeighbours performs a BFS from source up to MaxHops levels,
returning all discovered nodes grouped by distance. The source node is
never included in the results.
*/
func KHopNeighbours(view tgview.View, source util.VID, opts KHopOptions) (*KHopResult, error) {
	if opts.MaxHops < 1 {
		return nil, errors.New("algorithms: MaxHops must be >= 1")
	}

	visited := map[util.VID]bool{source: true}
	distances := make(map[util.VID]int)
	byHop := make(map[int][]util.VID)
	totalReachable := 0

	queue := []bfsEntry{{vid: source, hop: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.hop >= opts.MaxHops {
			continue
		}

		nv, ok := view.Node(current.vid)
		if !ok {
			continue
		}

		nextHop := current.hop + 1

		var neighbours []util.VID
		switch opts.Direction {
		case DirectionOut:
			neighbours = nv.OutNeighbours()
		case DirectionIn:
			neighbours = nv.InNeighbours()
		default:
			neighbours = nv.Neighbours()
		}

		for _, n := range neighbours {
			if visited[n] {
				continue
			}
			visited[n] = true
			distances[n] = nextHop
			byHop[nextHop] = append(byHop[nextHop], n)
			totalReachable++

			if opts.MaxResults > 0 && totalReachable >= opts.MaxResults {
				return &KHopResult{Source: source, ByHop: byHop, Distances: distances, TotalReachable: totalReachable}, nil
			}

			queue = append(queue, bfsEntry{vid: n, hop: nextHop})
		}
	}

	return &KHopResult{Source: source, ByHop: byHop, Distances: distances, TotalReachable: totalReachable}, nil
}
