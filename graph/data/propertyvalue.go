/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package data models the property store attached to every node and edge:
a tagged PropertyValue union, an insertion-ordered ConstantStore and a
per-name ordered TemporalStore, plus the Node and Edge record types built
on top of them.
*/
package data

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

/*
Kind identifies the concrete type carried by a PropertyValue.
*/
type Kind uint8

const (
	KindBool Kind = iota
	KindI32
	KindI64
	KindU32
	KindU64
	KindF32
	KindF64
	KindStr
)

/*
PropertyValue is a tagged union over the property types the store
accepts. Equality and display are by tag and value.
*/
type PropertyValue struct {
	Kind Kind
	b    bool
	i64  int64
	u64  uint64
	f64  float64
	s    string
}

func Bool(v bool) PropertyValue  { return PropertyValue{Kind: KindBool, b: v} }
func I32(v int32) PropertyValue  { return PropertyValue{Kind: KindI32, i64: int64(v)} }
func I64(v int64) PropertyValue  { return PropertyValue{Kind: KindI64, i64: v} }
func U32(v uint32) PropertyValue { return PropertyValue{Kind: KindU32, u64: uint64(v)} }
func U64(v uint64) PropertyValue { return PropertyValue{Kind: KindU64, u64: v} }
func F32(v float32) PropertyValue {
	return PropertyValue{Kind: KindF32, f64: float64(v)}
}
func F64(v float64) PropertyValue { return PropertyValue{Kind: KindF64, f64: v} }
func Str(v string) PropertyValue  { return PropertyValue{Kind: KindStr, s: v} }

/*
AsBool returns the boolean value and whether the tag matched.
*/
func (p PropertyValue) AsBool() (bool, bool) { return p.b, p.Kind == KindBool }

/*
AsStr returns the string value and whether the tag matched.
*/
func (p PropertyValue) AsStr() (string, bool) { return p.s, p.Kind == KindStr }

/*
IntoF64 performs a lossy-tolerant numeric downcast: any numeric kind
converts to its float64 value; non-numeric kinds (Bool, Str) return
(0, false).
*/
func (p PropertyValue) IntoF64() (float64, bool) {
	switch p.Kind {
	case KindI32, KindI64:
		return float64(p.i64), true
	case KindU32, KindU64:
		return float64(p.u64), true
	case KindF32, KindF64:
		return p.f64, true
	default:
		return 0, false
	}
}

/*
Equal compares two PropertyValues by tag and value.
*/
func (p PropertyValue) Equal(o PropertyValue) bool {
	if p.Kind != o.Kind {
		return false
	}
	switch p.Kind {
	case KindBool:
		return p.b == o.b
	case KindI32, KindI64:
		return p.i64 == o.i64
	case KindU32, KindU64:
		return p.u64 == o.u64
	case KindF32, KindF64:
		return p.f64 == o.f64
	case KindStr:
		return p.s == o.s
	}
	return false
}

/*
propertyValueWire mirrors PropertyValue with exported fields so gob can
see the payload; PropertyValue itself keeps its fields unexported to
stop callers from constructing a value outside the Bool/I32/.../Str
constructors.
*/
type propertyValueWire struct {
	Kind Kind
	B    bool
	I64  int64
	U64  uint64
	F64  float64
	S    string
}

/*
GobEncode implements gob.GobEncoder by copying the tagged union into an
exported-field mirror struct before encoding.
*/
func (p PropertyValue) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	w := propertyValueWire{Kind: p.Kind, B: p.b, I64: p.i64, U64: p.u64, F64: p.f64, S: p.s}
	if err := gob.NewEncoder(&buf).Encode(w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

/*
GobDecode implements gob.GobDecoder, the inverse of GobEncode.
*/
func (p *PropertyValue) GobDecode(data []byte) error {
	var w propertyValueWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return err
	}
	p.Kind, p.b, p.i64, p.u64, p.f64, p.s = w.Kind, w.B, w.I64, w.U64, w.F64, w.S
	return nil
}

/*
String renders the value for display and debugging.
*/
func (p PropertyValue) String() string {
	switch p.Kind {
	case KindBool:
		return fmt.Sprintf("%v", p.b)
	case KindI32, KindI64:
		return fmt.Sprintf("%d", p.i64)
	case KindU32, KindU64:
		return fmt.Sprintf("%d", p.u64)
	case KindF32, KindF64:
		return fmt.Sprintf("%g", p.f64)
	case KindStr:
		return p.s
	}
	return "<invalid>"
}
