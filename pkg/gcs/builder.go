// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package gcs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/jfcg/sorty/v2"
	"github.com/rs/zerolog/log"

	"pwd-strength/internal/util"
)

// https://github.com/rasky/gcs
// https://github.com/Freaky/gcstool
// https://giovanni.bajo.it/post/47119962313/golomb-coded-sets-smaller-than-bloom-filters
const gcsMagic = "[GCS:v0]"

// footerSize is N, P, end of data, index length and the magic, 8 bytes each.
const footerSize = 5 * 8

// ErrEmptyInput is returned when the word list holds no words.
var ErrEmptyInput = errors.New("word list is empty")

type indexPair struct {
	value  uint64
	bitPos uint64
}

type Builder struct {
	in               io.Reader
	out              io.Writer
	num              uint64
	probability      uint64
	indexGranularity uint64
	values           []uint64
	stat             *status
}

// NewBuilder prepares a set build from a newline separated word list.
//
// probability is the false positive rate for queries, 1-in-p.
// indexGranularity is the entries per index point (16 bytes each).
func NewBuilder(in io.Reader, out io.Writer, probability uint64, indexGranularity uint64) *Builder {
	var estimated uint64
	if f, ok := in.(*os.File); ok {
		n, err := estimateFileLines(f)
		if err != nil {
			log.Warn().Err(err).Msg("could not estimate word list size")
		}
		estimated = n
	}

	return &Builder{
		in:               in,
		out:              out,
		num:              estimated,
		probability:      probability,
		indexGranularity: indexGranularity,
		values:           make([]uint64, 0, estimated),
	}
}

// Estimated is the number of words the builder expects, 0 when unknown.
func (b *Builder) Estimated() uint64 {
	return b.num
}

// Process reads, hashes and encodes the word list into the output.
// Lines are hashed concurrently in chunks.
func (b *Builder) Process() error {
	if b.probability < 2 {
		return fmt.Errorf("false positive rate must be at least 2, got %d", b.probability)
	}
	if err := util.CheckRam(b.num); err != nil {
		return err
	}

	s := util.Stats()
	defer s()

	b.stat = newStatus()
	log.Info().Msg("starting process. This might take a while, be patient :)")

	const chunkLen = 64 * 1024
	linesPool := sync.Pool{New: func() interface{} {
		return make([]string, 0, chunkLen)
	}}
	recordsPool := sync.Pool{New: func() interface{} {
		return make([]uint64, 0, chunkLen)
	}}

	mutex := &sync.Mutex{}
	wg := sync.WaitGroup{}

	process := func(lines []string) {
		defer wg.Done()

		records := recordsPool.Get().([]uint64)[:0]
		for _, line := range lines {
			records = append(records, Hash(line))
		}
		linesPool.Put(lines[:0])

		mutex.Lock()
		for _, hash := range records {
			b.values = append(b.values, hash)
			b.stat.Incr()
		}
		mutex.Unlock()

		recordsPool.Put(records[:0])
	}

	b.stat.StageWork("Read", b.num)
	scanner := bufio.NewScanner(b.in)
	lines := linesPool.Get().([]string)[:0]
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		lines = append(lines, line)
		if len(lines) == chunkLen {
			wg.Add(1)
			go process(lines)
			lines = linesPool.Get().([]string)[:0]
		}
	}
	if len(lines) > 0 {
		wg.Add(1)
		go process(lines)
	}
	wg.Wait()

	if err := scanner.Err(); err != nil {
		return err
	}

	if err := b.finalize(); err != nil {
		return err
	}

	b.stat.Done()
	return nil
}

func (b *Builder) finalize() error {
	// Adjust with the actual number of items, not the estimate
	b.num = uint64(len(b.values))
	if b.num == 0 {
		return ErrEmptyInput
	}
	log.Debug().Msgf("set will have %d items", b.num)

	np := b.num * b.probability

	// Stored values are offset by one so a zero gap only ever marks the end
	// of the data.
	b.stat.Stage("Normalise")
	for i, v := range b.values {
		b.values[i] = v%np + 1
	}

	b.stat.Stage("Sort")
	sorty.SortSlice(b.values)

	b.stat.Stage("Deduplicate")
	b.values = dedup(b.values)

	encoder := newEncoder(b.out, b.probability)
	b.stat.StageWork("Encode", uint64(len(b.values)))

	var index []indexPair
	totalBits := uint64(0)
	last := uint64(0)
	for i, v := range b.values {
		d, err := encoder.Encode(v - last)
		if err != nil {
			return err
		}
		totalBits += d
		last = v

		n := uint64(i + 1)
		if b.indexGranularity > 0 && n%b.indexGranularity == 0 && n < uint64(len(b.values)) {
			index = append(index, indexPair{value: v, bitPos: totalBits})
		}

		b.stat.Incr()
	}

	// delimiting zero
	d, err := encoder.Encode(0)
	if err != nil {
		return err
	}
	totalBits += d

	padding, err := encoder.Finalize()
	if err != nil {
		return err
	}

	endOfData := (totalBits + padding) / 8
	log.Debug().Msgf("end of data: %d", endOfData)

	b.stat.Stage("Write Index")
	log.Debug().Msgf("index will have %d items", len(index))

	// Write the index: pairs of u64's (value, bit index)
	for _, pair := range index {
		if _, err = b.out.Write(toFixedBytes(pair.value)); err != nil {
			return err
		}
		if _, err = b.out.Write(toFixedBytes(pair.bitPos)); err != nil {
			return err
		}
	}

	// N, P, index position in bytes, index size in entries [magic]
	for _, v := range []uint64{b.num, b.probability, endOfData, uint64(len(index))} {
		if _, err = b.out.Write(toFixedBytes(v)); err != nil {
			return err
		}
	}
	if _, err = b.out.Write([]byte(gcsMagic)); err != nil {
		return err
	}

	return nil
}
