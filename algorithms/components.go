/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package algorithms

import (
	"container/list"

	"github.com/krotik/tempograph/graph/util"
	"github.com/krotik/tempograph/tgview"
)

/*
Component is one connected component discovered by ConnectedComponents.
*/
type Component struct {
	ID    int
	Nodes []util.VID
}

/*
ComponentsResult is the output of ConnectedComponents: the discovered
components and a reverse index from VID to component ID.
*/
type ComponentsResult struct {
	Components  []Component
	NodeToIndex map[util.VID]int
}

/*
ConnectedComponents finds every weakly connected component of view:
neighbours are followed in both directions, ignoring edge layer or
direction, within the view's current window and layer set.
*/
func ConnectedComponents(view tgview.View) ComponentsResult {
	visited := make(map[util.VID]bool)
	nodeToIndex := make(map[util.VID]int)
	var components []Component

	for _, nv := range view.Nodes() {
		if visited[nv.VID] {
			continue
		}

		compID := len(components)
		component := Component{ID: compID}

		queue := list.New()
		queue.PushBack(nv.VID)
		visited[nv.VID] = true

		for queue.Len() > 0 {
			vid, _ := queue.Remove(queue.Front()).(util.VID)
			component.Nodes = append(component.Nodes, vid)
			nodeToIndex[vid] = compID

			cur, ok := view.Node(vid)
			if !ok {
				continue
			}
			for _, n := range cur.Neighbours() {
				if !visited[n] {
					visited[n] = true
					queue.PushBack(n)
				}
			}
		}

		components = append(components, component)
	}

	return ComponentsResult{Components: components, NodeToIndex: nodeToIndex}
}
