/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package util

import "sync"

/*
ExternalID is a node's externally visible identity: either a stable
string name or a 64-bit integer. Only one of the two is set, selected by
IsString.
*/
type ExternalID struct {
	IsString bool
	Str      string
	Num      uint64
}

/*
StrID builds a string-keyed ExternalID.
*/
func StrID(s string) ExternalID { return ExternalID{IsString: true, Str: s} }

/*
NumID builds an integer-keyed ExternalID.
*/
func NumID(n uint64) ExternalID { return ExternalID{Num: n} }

/*
Interner maps external node ids to dense internal VIDs and back. VID
assignment is monotonic; once assigned, a VID never changes for the
lifetime of the store (invariant 1). Reads are lock-free with respect to
each other; writes (new id registration) take the write lock.
*/
type Interner struct {
	mutex sync.RWMutex
	byExt map[ExternalID]VID
	byVID []ExternalID
}

/*
NewInterner creates an empty interner.
*/
func NewInterner() *Interner {
	return &Interner{byExt: make(map[ExternalID]VID)}
}

/*
Intern returns the VID for ext, assigning a new dense VID if ext has not
been seen before.
*/
func (in *Interner) Intern(ext ExternalID) VID {
	in.mutex.RLock()
	if vid, ok := in.byExt[ext]; ok {
		in.mutex.RUnlock()
		return vid
	}
	in.mutex.RUnlock()

	in.mutex.Lock()
	defer in.mutex.Unlock()

	if vid, ok := in.byExt[ext]; ok {
		return vid
	}

	vid := VID(len(in.byVID))
	in.byVID = append(in.byVID, ext)
	in.byExt[ext] = vid

	return vid
}

/*
Lookup returns the VID already assigned to ext, if any, without creating
one.
*/
func (in *Interner) Lookup(ext ExternalID) (VID, bool) {
	in.mutex.RLock()
	defer in.mutex.RUnlock()

	vid, ok := in.byExt[ext]
	return vid, ok
}

/*
Resolve returns the external id for a VID.
*/
func (in *Interner) Resolve(vid VID) (ExternalID, bool) {
	in.mutex.RLock()
	defer in.mutex.RUnlock()

	if int(vid) >= len(in.byVID) {
		return ExternalID{}, false
	}
	return in.byVID[vid], true
}

/*
Len returns the number of distinct external ids interned so far.
*/
func (in *Interner) Len() int {
	in.mutex.RLock()
	defer in.mutex.RUnlock()

	return len(in.byVID)
}
