/*
 * tempograph
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package util contains the id interner, layer registry and shared error
types used by the graph store.

GraphError

Models a graph related error. Low-level errors should be wrapped in a GraphError
before they are returned to a client.

Interner

Maps external node ids (string or uint64) to dense internal VIDs and
back. Assignment is monotonic and write-once; lookups take only a read
lock, so they do not block each other.

LayerRegistry

Maps layer names to dense layer ids. Layer id 0 is reserved for the
default (unnamed) layer.
*/
package util

import (
	"errors"
	"fmt"
)

/*
GraphError is a graph related error
*/
type GraphError struct {
	Type   error  // Error type (to be used for equal checks)
	Detail string // Details of this error
}

/*
Error returns a human-readable string representation of this error.
*/
func (ge *GraphError) Error() string {
	if ge.Detail != "" {
		return fmt.Sprintf("GraphError: %v (%v)", ge.Type, ge.Detail)
	}

	return fmt.Sprintf("GraphError: %v", ge.Type)
}

/*
Mutation related error types
*/
var (
	ErrParseTime     = errors.New("Could not parse time value")
	ErrGraphLoad     = errors.New("Snapshot payload does not match current schema")
	ErrPropertyType  = errors.New("Property already exists with a different type")
	ErrUnknownLayer  = errors.New("Unknown layer")
	ErrInvalidData   = errors.New("Invalid data")
	ErrInvalidWindow = errors.New("Invalid time window")
)
