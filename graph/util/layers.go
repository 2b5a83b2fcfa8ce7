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
LayerRegistry maps layer names to dense layer ids. Id 0 is reserved for
the default (unnamed) layer and is never returned by Intern for a named
layer. Assignment is monotonic; reads are lock-free with respect to each
other.
*/
type LayerRegistry struct {
	mutex   sync.RWMutex
	byName  map[string]LayerID
	byID    []string
	nextIDs LayerID
}

/*
NewLayerRegistry creates a registry with only the default layer known.
*/
func NewLayerRegistry() *LayerRegistry {
	return &LayerRegistry{
		byName:  map[string]LayerID{"": DefaultLayer},
		byID:    []string{""},
		nextIDs: 1,
	}
}

/*
Intern returns the id for name, assigning a new one if this is the first
time name has been seen. The empty string always resolves to
DefaultLayer.
*/
func (lr *LayerRegistry) Intern(name string) LayerID {
	if name == "" {
		return DefaultLayer
	}

	lr.mutex.RLock()
	if id, ok := lr.byName[name]; ok {
		lr.mutex.RUnlock()
		return id
	}
	lr.mutex.RUnlock()

	lr.mutex.Lock()
	defer lr.mutex.Unlock()

	if id, ok := lr.byName[name]; ok {
		return id
	}

	id := lr.nextIDs
	lr.nextIDs++
	lr.byName[name] = id
	lr.byID = append(lr.byID, name)

	return id
}

/*
Lookup resolves a layer name to its id without creating one. The empty
string always resolves to DefaultLayer.
*/
func (lr *LayerRegistry) Lookup(name string) (LayerID, bool) {
	if name == "" {
		return DefaultLayer, true
	}

	lr.mutex.RLock()
	defer lr.mutex.RUnlock()

	id, ok := lr.byName[name]
	return id, ok
}

/*
Name returns the name registered for id, or "" for DefaultLayer or an
unknown id.
*/
func (lr *LayerRegistry) Name(id LayerID) string {
	lr.mutex.RLock()
	defer lr.mutex.RUnlock()

	if int(id) >= len(lr.byID) {
		return ""
	}
	return lr.byID[id]
}

/*
Names returns a snapshot of all known non-default layer names.
*/
func (lr *LayerRegistry) Names() []string {
	lr.mutex.RLock()
	defer lr.mutex.RUnlock()

	out := make([]string, 0, len(lr.byID)-1)
	for _, n := range lr.byID[1:] {
		out = append(out, n)
	}
	return out
}

/*
LayerSetKind selects which layers a view considers.
*/
type LayerSetKind uint8

const (
	LayerAll LayerSetKind = iota
	LayerDefault
	LayerOne
	LayerMany
)

/*
LayerSet is the resolved layer selector carried by a view: either all
layers, just the default layer, exactly one layer, or an explicit sorted,
de-duplicated set of layers.
*/
type LayerSet struct {
	Kind LayerSetKind
	One  LayerID
	Many []LayerID
}

/*
AllLayers returns the selector matching every layer.
*/
func AllLayers() LayerSet { return LayerSet{Kind: LayerAll} }

/*
DefaultLayerSet returns the selector matching only the default layer.
*/
func DefaultLayerSet() LayerSet { return LayerSet{Kind: LayerDefault} }

/*
OneLayer returns the selector matching exactly one layer.
*/
func OneLayer(id LayerID) LayerSet { return LayerSet{Kind: LayerOne, One: id} }

/*
ManyLayers returns the selector matching the given ids deduplicated and
sorted ascending.
*/
func ManyLayers(ids []LayerID) LayerSet {
	seen := make(map[LayerID]bool, len(ids))
	var out []LayerID
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sortLayerIDs(out)
	return LayerSet{Kind: LayerMany, Many: out}
}

func sortLayerIDs(ids []LayerID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}

/*
Matches reports whether id is selected by this set.
*/
func (ls LayerSet) Matches(id LayerID) bool {
	switch ls.Kind {
	case LayerAll:
		return true
	case LayerDefault:
		return id == DefaultLayer
	case LayerOne:
		return id == ls.One
	case LayerMany:
		for _, l := range ls.Many {
			if l == id {
				return true
			}
		}
		return false
	}
	return false
}

/*
Intersect combines this set with another, narrowing to layers allowed by
both: composing V.Layer(A).Layer(B) is equivalent to V.Layer(A ∩ B).
*/
func (ls LayerSet) Intersect(other LayerSet) LayerSet {
	if ls.Kind == LayerAll {
		return other
	}
	if other.Kind == LayerAll {
		return ls
	}
	if ls.Kind == LayerDefault || other.Kind == LayerDefault {
		// whichever side isn't Default must also allow the default layer
		if ls.Matches(DefaultLayer) && other.Matches(DefaultLayer) {
			return DefaultLayerSet()
		}
		return LayerSet{Kind: LayerMany}
	}

	var ids []LayerID
	if ls.Kind == LayerOne {
		ids = []LayerID{ls.One}
	} else {
		ids = ls.Many
	}

	var out []LayerID
	for _, id := range ids {
		if other.Matches(id) {
			out = append(out, id)
		}
	}
	return ManyLayers(out)
}

/*
IDs materializes the set of layer ids matched, given the full set of
known layer ids (used when the selector is All).
*/
func (ls LayerSet) IDs(known []LayerID) []LayerID {
	if ls.Kind == LayerAll {
		out := make([]LayerID, len(known))
		copy(out, known)
		sortLayerIDs(out)
		return out
	}
	if ls.Kind == LayerDefault {
		return []LayerID{DefaultLayer}
	}
	if ls.Kind == LayerOne {
		return []LayerID{ls.One}
	}
	return ls.Many
}
