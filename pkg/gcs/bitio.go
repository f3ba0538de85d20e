// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package gcs

import (
	"bufio"
	"errors"
	"io"
)

var errTooManyBits = errors.New("cannot process more than 64 bits at a time")

// An io.Writer and io.ByteWriter at the same time.
type writerAndByteWriter interface {
	io.Writer
	io.ByteWriter
}

// bitWriter adds bit-level writing to any io.Writer. Bits are written most
// significant first.
type bitWriter struct {
	inner   writerAndByteWriter
	wrapper *bufio.Writer // set when the target does not implement io.ByteWriter
	buffer  uint8         // pending bits, left aligned
	pending uint8         // number of pending bits in buffer
}

func newBitWriter(out io.Writer) *bitWriter {
	w := &bitWriter{}
	var ok bool
	w.inner, ok = out.(writerAndByteWriter)
	if !ok {
		w.wrapper = bufio.NewWriter(out)
		w.inner = w.wrapper
	}
	return w
}

// WriteBits writes the n lowest bits of v. Higher bits are ignored.
func (w *bitWriter) WriteBits(n uint8, v uint64) error {
	if n > 64 {
		return errTooManyBits
	}
	if n < 64 {
		v &= 1<<n - 1
	}

	for n > 0 {
		free := 8 - w.pending
		take := free
		if n < take {
			take = n
		}

		chunk := uint8(v>>(n-take)) & (1<<take - 1)
		w.buffer |= chunk << (free - take)
		w.pending += take
		n -= take

		if w.pending == 8 {
			if err := w.inner.WriteByte(w.buffer); err != nil {
				return err
			}
			w.buffer, w.pending = 0, 0
		}
	}

	return nil
}

// Flush pads the stream with zero bits up to the next byte boundary, writes
// it out and returns the number of padding bits.
func (w *bitWriter) Flush() (uint64, error) {
	var padding uint64
	if w.pending > 0 {
		if err := w.inner.WriteByte(w.buffer); err != nil {
			return 0, err
		}
		padding = uint64(8 - w.pending)
		w.buffer, w.pending = 0, 0
	}

	if w.wrapper != nil {
		if err := w.wrapper.Flush(); err != nil {
			return padding, err
		}
	}

	return padding, nil
}

// bitReader reads bits out of an in-memory buffer starting at any bit
// position.
type bitReader struct {
	data []byte
	pos  uint64
}

func newBitReader(data []byte, bitPos uint64) *bitReader {
	return &bitReader{data: data, pos: bitPos}
}

// ReadBit reads a single bit.
func (r *bitReader) ReadBit() (uint8, error) {
	if r.pos >= uint64(len(r.data))*8 {
		return 0, io.ErrUnexpectedEOF
	}

	b := r.data[r.pos/8] >> (7 - r.pos%8) & 1
	r.pos++
	return b, nil
}

// ReadBits reads up to 64 bits, most significant first.
func (r *bitReader) ReadBits(n uint8) (uint64, error) {
	if n > 64 {
		return 0, errTooManyBits
	}
	if r.pos+uint64(n) > uint64(len(r.data))*8 {
		return 0, io.ErrUnexpectedEOF
	}

	ret := uint64(0)
	for n > 0 {
		offset := uint8(r.pos % 8)
		avail := 8 - offset
		take := avail
		if n < take {
			take = n
		}

		chunk := r.data[r.pos/8] >> (avail - take) & (1<<take - 1)
		ret = ret<<take | uint64(chunk)
		r.pos += uint64(take)
		n -= take
	}

	return ret, nil
}
