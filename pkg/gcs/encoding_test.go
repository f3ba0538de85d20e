// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package gcs

import (
	"bytes"
	"testing"
)

func TestGolombEncoder(t *testing.T) {
	cases := []struct {
		inputs      []uint64
		probability uint64
		want        []uint64
	}{
		{[]uint64{42, 74, 96, 32}, 4, []uint64{13, 21, 27, 11}},
		{[]uint64{420}, 2, []uint64{212}},
		{[]uint64{0, 1, 1023}, 1024, []uint64{11, 11, 11}},
	}

	for _, tc := range cases {
		var buf bytes.Buffer
		encoder := newEncoder(&buf, tc.probability)

		for i, val := range tc.inputs {
			wr, err := encoder.Encode(val)
			if err != nil {
				t.Errorf("Encode should not fail: %s", err)
			}
			if tc.want[i] != wr {
				t.Errorf("Encode(%d): %d, want: %d", val, wr, tc.want[i])
			}
		}

		if _, err := encoder.Finalize(); err != nil {
			t.Errorf("Finalize should not fail: %s", err)
		}

		decoder := newDecoder(newBitReader(buf.Bytes(), 0), tc.probability)
		for _, val := range tc.inputs {
			got, err := decoder.Decode()
			if err != nil {
				t.Errorf("Decode should not fail: %s", err)
			}
			if got != val {
				t.Errorf("Decode: %d, want: %d", got, val)
			}
		}
	}
}
