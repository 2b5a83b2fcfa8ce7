/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package data

import (
	"testing"

	"github.com/krotik/tempograph/graph/util"
)

func TestConstantStoreOrder(t *testing.T) {
	cs := NewConstantStore()
	cs.Set("b", I64(2))
	cs.Set("a", I64(1))
	cs.Set("b", I64(20)) // overwrite shouldn't move position

	if got := cs.Keys(); len(got) != 2 || got[0] != "b" || got[1] != "a" {
		t.Error("Unexpected key order:", got)
	}

	v, ok := cs.Get("b")
	if !ok || v.Kind != KindI64 {
		t.Error("Unexpected value:", v, ok)
	}
}

func TestConstantStoreRejectsTypeMismatch(t *testing.T) {
	cs := NewConstantStore()
	if err := cs.Set("x", I64(1)); err != nil {
		t.Fatal("Unexpected error on first write:", err)
	}

	if err := cs.Set("x", Str("y")); err != util.ErrPropertyType {
		t.Error("Expected ErrPropertyType on a differently-typed overwrite, got:", err)
	}

	v, ok := cs.Get("x")
	if !ok || !v.Equal(I64(1)) {
		t.Error("Expected prior value to be preserved:", v)
	}
}

func TestTemporalStoreLatestAndAt(t *testing.T) {
	ts := NewTemporalStore()
	ts.Append("value", 1, F64(10))
	ts.Append("value", 3, F64(30))
	ts.Append("value", 2, F64(20))

	v, ok := ts.Latest("value", nil)
	if !ok {
		t.Error("Expected a value")
	}
	if f, _ := v.IntoF64(); f != 30 {
		t.Error("Unexpected latest value:", f)
	}

	upto := int64(2)
	v, ok = ts.Latest("value", &upto)
	if !ok {
		t.Error("Expected a value")
	}
	if f, _ := v.IntoF64(); f != 20 {
		t.Error("Unexpected value at upto=2:", f)
	}

	v, ok = ts.At("value", 5)
	if !ok {
		t.Error("Expected fallback to latest <= t")
	}
	if f, _ := v.IntoF64(); f != 30 {
		t.Error("Unexpected value at t=5:", f)
	}
}

func TestTemporalStoreOverwriteSameTime(t *testing.T) {
	ts := NewTemporalStore()
	ts.Append("value", 1, F64(1))
	ts.Append("value", 1, F64(2))

	all := ts.All("value")
	if len(all) != 1 {
		t.Error("Expected single entry after overwrite, got", len(all))
	}
	if f, _ := all[0].Value.IntoF64(); f != 2 {
		t.Error("Unexpected value:", f)
	}
}

func TestTemporalStoreIterRange(t *testing.T) {
	ts := NewTemporalStore()
	for i := int64(0); i < 5; i++ {
		ts.Append("v", i, I64(i))
	}

	got := ts.Iter("v", 1, 4)
	if len(got) != 3 {
		t.Error("Unexpected range length:", len(got))
	}
	if got[0].Time != 1 || got[2].Time != 3 {
		t.Error("Unexpected range bounds:", got)
	}
}

func TestPropertyValueIntoF64NonNumeric(t *testing.T) {
	if _, ok := Str("hi").IntoF64(); ok {
		t.Error("Expected non-numeric coercion to fail")
	}
	if _, ok := Bool(true).IntoF64(); ok {
		t.Error("Expected non-numeric coercion to fail")
	}
}
