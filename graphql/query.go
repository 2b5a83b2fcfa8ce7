/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package graphql

import (
	"fmt"

	"github.com/krotik/tempograph/graph"
	"github.com/krotik/tempograph/graph/util"
	"github.com/krotik/tempograph/query"
	"github.com/krotik/tempograph/tgview"
)

/*
RunQuery dispatches a single-field GraphQL-style request against m. The
request map must carry "field" (one of "node", "edges", "balance") and
"id" (and, for "edges", "target"; for "balance", "property"); unlike a
full GraphQL engine this
resolves exactly one field per call.
*/
func RunQuery(req map[string]interface{}, m *graph.Manager) (map[string]interface{}, error) {
	for _, mandatory := range []string{"field", "id"} {
		if _, ok := req[mandatory]; !ok {
			return nil, fmt.Errorf("graphql: mandatory field %q missing from request", mandatory)
		}
	}

	field, _ := req["field"].(string)
	id, _ := req["id"].(string)

	v := tgview.New(m)
	r := NewResolver(v)
	ext := externalIDFromString(id)

	switch field {
	case "node":
		node, ok := r.Node(ext)
		if !ok {
			return nil, fmt.Errorf("graphql: node %q not found", id)
		}
		return map[string]interface{}{"node": node}, nil

	case "edges":
		target, _ := req["target"].(string)
		if target == "" {
			return nil, fmt.Errorf("graphql: mandatory field %q missing from request", "target")
		}
		edges, err := r.Edges(ext, externalIDFromString(target))
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"edges": edges}, nil

	case "balance":
		propName, _ := req["property"].(string)
		if propName == "" {
			return nil, fmt.Errorf("graphql: mandatory field %q missing from request", "property")
		}
		bal := r.Balance(propName, query.BOTH, m.Interner().Resolve)
		return map[string]interface{}{"balance": bal[id]}, nil
	}

	return nil, fmt.Errorf("graphql: unknown field %q", field)
}

func externalIDFromString(id string) util.ExternalID {
	return util.StrID(id)
}
