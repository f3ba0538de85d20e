// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package gcs

import (
	"io"
	"math"
)

// Golomb-Rice coding of the gaps between sorted values: the quotient by the
// probability in unary (ones closed by a zero), then the remainder in log2p
// bits.

func log2Ceil(probability uint64) uint8 {
	return uint8(math.Ceil(math.Log2(float64(probability))))
}

type encoder struct {
	inner       *bitWriter
	probability uint64
	log2p       uint8
}

func newEncoder(w io.Writer, probability uint64) *encoder {
	return &encoder{
		inner:       newBitWriter(w),
		probability: probability,
		log2p:       log2Ceil(probability),
	}
}

// Encode writes one value and returns the number of bits it took.
func (e *encoder) Encode(value uint64) (uint64, error) {
	q := value / e.probability
	r := value % e.probability
	written := q + 1 + uint64(e.log2p)

	for q >= 63 {
		if err := e.inner.WriteBits(63, math.MaxUint64); err != nil {
			return 0, err
		}
		q -= 63
	}
	// q ones and the closing zero
	if err := e.inner.WriteBits(uint8(q+1), (1<<(q+1))-2); err != nil {
		return 0, err
	}

	if err := e.inner.WriteBits(e.log2p, r); err != nil {
		return 0, err
	}

	return written, nil
}

// Finalize flushes the encoder and returns the padding bits written.
func (e *encoder) Finalize() (uint64, error) {
	return e.inner.Flush()
}

type decoder struct {
	inner       *bitReader
	probability uint64
	log2p       uint8
}

func newDecoder(r *bitReader, probability uint64) *decoder {
	return &decoder{inner: r, probability: probability, log2p: log2Ceil(probability)}
}

func (d *decoder) Decode() (uint64, error) {
	value := uint64(0)
	for {
		bit, err := d.inner.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			break
		}
		value += d.probability
	}

	r, err := d.inner.ReadBits(d.log2p)
	if err != nil {
		return 0, err
	}

	return value + r, nil
}
