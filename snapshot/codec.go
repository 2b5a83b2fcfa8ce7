/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package snapshot

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// magic identifies the stream as a tempograph op log, version 1.
const magic uint32 = 0x74676f31 // "tgo1"

/*
Save writes ops to w as a sequence of length-prefixed gob records behind
a small magic header and a big-endian uint64 op count. Each record is a
big-endian uint32 payload length followed by the payload; there is no
paging machinery.
*/
func Save(w io.Writer, ops []Op) error {
	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.BigEndian, magic); err != nil {
		return fmt.Errorf("snapshot: writing header: %w", err)
	}
	if err := binary.Write(bw, binary.BigEndian, uint64(len(ops))); err != nil {
		return fmt.Errorf("snapshot: writing op count: %w", err)
	}

	for i, op := range ops {
		payload := encodeOp(op)
		if err := binary.Write(bw, binary.BigEndian, uint32(len(payload))); err != nil {
			return fmt.Errorf("snapshot: writing op %d length: %w", i, err)
		}
		if _, err := bw.Write(payload); err != nil {
			return fmt.Errorf("snapshot: writing op %d: %w", i, err)
		}
	}

	return bw.Flush()
}

/*
Load reads a stream produced by Save and returns the recorded ops in
order.
*/
func Load(r io.Reader) ([]Op, error) {
	br := bufio.NewReader(r)

	var got uint32
	if err := binary.Read(br, binary.BigEndian, &got); err != nil {
		return nil, fmt.Errorf("snapshot: reading header: %w", err)
	}
	if got != magic {
		return nil, fmt.Errorf("snapshot: unrecognised stream header %x", got)
	}

	var count uint64
	if err := binary.Read(br, binary.BigEndian, &count); err != nil {
		return nil, fmt.Errorf("snapshot: reading op count: %w", err)
	}

	ops := make([]Op, 0, count)
	for i := uint64(0); i < count; i++ {
		var n uint32
		if err := binary.Read(br, binary.BigEndian, &n); err != nil {
			return nil, fmt.Errorf("snapshot: reading op %d length: %w", i, err)
		}
		payload := make([]byte, n)
		if _, err := io.ReadFull(br, payload); err != nil {
			return nil, fmt.Errorf("snapshot: reading op %d: %w", i, err)
		}
		op, err := decodeOp(payload)
		if err != nil {
			return nil, fmt.Errorf("snapshot: decoding op %d: %w", i, err)
		}
		ops = append(ops, op)
	}

	return ops, nil
}
