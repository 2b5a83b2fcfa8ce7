/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package snapshot

import (
	"bytes"
	"encoding/gob"

	"github.com/krotik/common/errorutil"
)

/*
encodeOp gob-encodes a single Op. Op is built entirely from exported
fields, and PropertyValue carries its own GobEncode/GobDecode, so
encoding an Op already held in memory cannot fail.
*/
func encodeOp(op Op) []byte {
	var buf bytes.Buffer
	errorutil.AssertOk(gob.NewEncoder(&buf).Encode(op))
	return buf.Bytes()
}

func decodeOp(payload []byte) (Op, error) {
	var op Op
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&op); err != nil {
		return Op{}, err
	}
	return op, nil
}
