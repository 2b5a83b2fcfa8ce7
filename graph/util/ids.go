/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package util

/*
VID is the dense internal identity of a node. Stable for the lifetime of
the store.
*/
type VID uint64

/*
EID is the dense internal identity of an edge record.
*/
type EID uint64

/*
LayerID is the dense internal identity of a layer. 0 is the default
(unnamed) layer.
*/
type LayerID uint32

/*
DefaultLayer is the reserved id of the unnamed layer.
*/
const DefaultLayer LayerID = 0
