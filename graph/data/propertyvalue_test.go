/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package data

import (
	"bytes"
	"encoding/gob"
	"testing"
)

func gobRoundTrip(t *testing.T, v PropertyValue) PropertyValue {
	t.Helper()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		t.Fatal(err)
	}

	var out PropertyValue
	if err := gob.NewDecoder(&buf).Decode(&out); err != nil {
		t.Fatal(err)
	}
	return out
}

func TestPropertyValueGobRoundTrip(t *testing.T) {
	values := []PropertyValue{
		Bool(true),
		Bool(false),
		I32(-7),
		I64(1 << 40),
		U32(42),
		U64(1 << 50),
		F32(3.5),
		F64(-2.25),
		Str("hello"),
		Str(""),
	}

	for _, v := range values {
		got := gobRoundTrip(t, v)
		if !got.Equal(v) {
			t.Errorf("round trip changed value: started %v, got %v", v, got)
		}
		if got.Kind != v.Kind {
			t.Errorf("round trip changed kind: started %v, got %v", v.Kind, got.Kind)
		}
	}
}
