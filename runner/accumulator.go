/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package runner

import "math"

/*
AccKind selects an accumulator's reduction shape.
*/
type AccKind int

const (
	AccSum AccKind = iota
	AccMin
	AccMax
	AccSetUnion
)

/*
AccValue is the value carried by one accumulator, tagged by its kind.
Sum/Min/Max use Num; SetUnion uses Set.
*/
type AccValue struct {
	Kind AccKind
	Num  float64
	Set  map[string]struct{}
}

/*
Accumulator describes one named reduction cell: its zero value and its
combine function. Combine must be associative for cross-worker
determinism; sum/min/max/set_union are all also commutative, so
results do not depend on partitioning or thread count.
*/
type Accumulator struct {
	ID      string
	Kind    AccKind
	Zero    func() AccValue
	Combine func(a, b AccValue) AccValue
}

/*
SumAccumulator returns a sum(0) accumulator descriptor.
*/
func SumAccumulator(id string) Accumulator {
	return Accumulator{
		ID:   id,
		Kind: AccSum,
		Zero: func() AccValue { return AccValue{Kind: AccSum} },
		Combine: func(a, b AccValue) AccValue {
			return AccValue{Kind: AccSum, Num: a.Num + b.Num}
		},
	}
}

/*
MinAccumulator returns a min(+inf) accumulator descriptor.
*/
func MinAccumulator(id string) Accumulator {
	return Accumulator{
		ID:   id,
		Kind: AccMin,
		Zero: func() AccValue { return AccValue{Kind: AccMin, Num: math.Inf(1)} },
		Combine: func(a, b AccValue) AccValue {
			if b.Num < a.Num {
				return AccValue{Kind: AccMin, Num: b.Num}
			}
			return AccValue{Kind: AccMin, Num: a.Num}
		},
	}
}

/*
MaxAccumulator returns a max(-inf) accumulator descriptor.
*/
func MaxAccumulator(id string) Accumulator {
	return Accumulator{
		ID:   id,
		Kind: AccMax,
		Zero: func() AccValue { return AccValue{Kind: AccMax, Num: math.Inf(-1)} },
		Combine: func(a, b AccValue) AccValue {
			if b.Num > a.Num {
				return AccValue{Kind: AccMax, Num: b.Num}
			}
			return AccValue{Kind: AccMax, Num: a.Num}
		},
	}
}

/*
SetUnionAccumulator returns a set_union(∅) accumulator descriptor. A
vertex step's Write replaces its own contribution for the iteration
(last-writer semantics within one node); the barrier combine is a true
set union across nodes.
*/
func SetUnionAccumulator(id string) Accumulator {
	return Accumulator{
		ID:   id,
		Kind: AccSetUnion,
		Zero: func() AccValue { return AccValue{Kind: AccSetUnion, Set: map[string]struct{}{}} },
		Combine: func(a, b AccValue) AccValue {
			out := make(map[string]struct{}, len(a.Set)+len(b.Set))
			for k := range a.Set {
				out[k] = struct{}{}
			}
			for k := range b.Set {
				out[k] = struct{}{}
			}
			return AccValue{Kind: AccSetUnion, Set: out}
		},
	}
}

/*
NumValue builds a Num-carrying AccValue for sum/min/max accumulators.
*/
func NumValue(kind AccKind, n float64) AccValue { return AccValue{Kind: kind, Num: n} }

/*
SetValue builds a SetUnion AccValue from the given elements.
*/
func SetValue(elems ...string) AccValue {
	s := make(map[string]struct{}, len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return AccValue{Kind: AccSetUnion, Set: s}
}
