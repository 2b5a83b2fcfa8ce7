/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package data

import (
	"sort"

	"github.com/krotik/tempograph/graph/util"
)

/*
ConstantStore is an insertion-order-preserving name -> PropertyValue map.
Repeated writes to the same name overwrite the value but keep its
original position in iteration order.
*/
type ConstantStore struct {
	order []string
	data  map[string]PropertyValue
}

/*
NewConstantStore creates an empty constant property store.
*/
func NewConstantStore() *ConstantStore {
	return &ConstantStore{data: make(map[string]PropertyValue)}
}

/*
Set inserts a constant property, or overwrites an existing one of the
same Kind. A write that would change an existing property's Kind is
rejected with util.ErrPropertyType and the prior value is preserved.
*/
func (cs *ConstantStore) Set(name string, val PropertyValue) error {
	existing, ok := cs.data[name]
	if !ok {
		cs.order = append(cs.order, name)
		cs.data[name] = val
		return nil
	}

	if existing.Kind != val.Kind {
		return util.ErrPropertyType
	}

	cs.data[name] = val
	return nil
}

/*
Get returns the value of a constant property and whether it was present.
*/
func (cs *ConstantStore) Get(name string) (PropertyValue, bool) {
	v, ok := cs.data[name]
	return v, ok
}

/*
Keys returns property names in insertion order.
*/
func (cs *ConstantStore) Keys() []string {
	out := make([]string, len(cs.order))
	copy(out, cs.order)
	return out
}

/*
IterLatest returns a snapshot of all constant properties.
*/
func (cs *ConstantStore) IterLatest() map[string]PropertyValue {
	out := make(map[string]PropertyValue, len(cs.data))
	for k, v := range cs.data {
		out[k] = v
	}
	return out
}

/*
TimedValue is a single observation in a temporal property's history.
*/
type TimedValue struct {
	Time  int64
	Value PropertyValue
}

/*
TemporalStore holds, per property name, an ordered sequence of
(time, value) observations. Within the same (name, time) a later write
overwrites; across distinct times values are appended and kept in time
order (stable by insertion order for equal times).
*/
type TemporalStore struct {
	series map[string][]TimedValue
	order  []string
}

/*
NewTemporalStore creates an empty temporal property store.
*/
func NewTemporalStore() *TemporalStore {
	return &TemporalStore{series: make(map[string][]TimedValue)}
}

/*
Append records an observation for name at time t, overwriting any
existing observation already at exactly t.
*/
func (ts *TemporalStore) Append(name string, t int64, val PropertyValue) {
	s, ok := ts.series[name]
	if !ok {
		ts.order = append(ts.order, name)
	}

	// overwrite if an entry already exists at this exact time
	for i := range s {
		if s[i].Time == t {
			s[i].Value = val
			ts.series[name] = s
			return
		}
	}

	// find insertion point keeping the series time-ordered
	idx := sort.Search(len(s), func(i int) bool { return s[i].Time > t })
	s = append(s, TimedValue{})
	copy(s[idx+1:], s[idx:])
	s[idx] = TimedValue{Time: t, Value: val}

	ts.series[name] = s
}

/*
Keys returns temporal property names in first-write order.
*/
func (ts *TemporalStore) Keys() []string {
	out := make([]string, len(ts.order))
	copy(out, ts.order)
	return out
}

/*
Latest returns the value at the greatest recorded time <= upto, or the
overall latest value if upto is nil.
*/
func (ts *TemporalStore) Latest(name string, upto *int64) (PropertyValue, bool) {
	s := ts.series[name]
	if len(s) == 0 {
		return PropertyValue{}, false
	}

	if upto == nil {
		return s[len(s)-1].Value, true
	}

	idx := sort.Search(len(s), func(i int) bool { return s[i].Time > *upto }) - 1
	if idx < 0 {
		return PropertyValue{}, false
	}
	return s[idx].Value, true
}

/*
At returns the value recorded exactly at t, falling back to the latest
value <= t.
*/
func (ts *TemporalStore) At(name string, t int64) (PropertyValue, bool) {
	return ts.Latest(name, &t)
}

/*
Iter returns a copy of all observations for name with time in [lo, hi).
*/
func (ts *TemporalStore) Iter(name string, lo, hi int64) []TimedValue {
	s := ts.series[name]
	start := sort.Search(len(s), func(i int) bool { return s[i].Time >= lo })
	end := sort.Search(len(s), func(i int) bool { return s[i].Time >= hi })
	if start >= end {
		return nil
	}
	out := make([]TimedValue, end-start)
	copy(out, s[start:end])
	return out
}

/*
All returns every observation for name, unfiltered.
*/
func (ts *TemporalStore) All(name string) []TimedValue {
	s := ts.series[name]
	out := make([]TimedValue, len(s))
	copy(out, s)
	return out
}
