// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package gcs

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/dgraph-io/ristretto"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrNotGCS = errors.New("not a GCS file")

// Set is a read-only Golomb coded set held entirely in memory. Decoded index
// blocks are cached so repeated lookups in the same region skip decoding.
//
// A Set is safe for concurrent use and satisfies strength.Dictionary.
type Set struct {
	num         uint64
	probability uint64
	data        []byte
	index       []indexPair
	blocks      *ristretto.Cache
}

// Open reads a set file. cacheBlocks bounds the number of decoded values kept
// in the block cache; 0 disables it.
func Open(fileName string, cacheBlocks int64) (*Set, error) {
	raw, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	s, err := Load(raw, cacheBlocks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return s, nil
}

// Load parses a set from its encoded bytes. raw must not be modified afterwards.
func Load(raw []byte, cacheBlocks int64) (*Set, error) {
	if len(raw) < footerSize {
		return nil, ErrNotGCS
	}

	footer := raw[len(raw)-footerSize:]
	if string(footer[32:]) != gcsMagic {
		return nil, ErrNotGCS
	}

	s := &Set{
		num:         binary.BigEndian.Uint64(footer[0:8]),
		probability: binary.BigEndian.Uint64(footer[8:16]),
	}
	endOfData := binary.BigEndian.Uint64(footer[16:24])
	indexLen := binary.BigEndian.Uint64(footer[24:32])
	log.Debug().Msgf("items: %d, probability: %d, end of data: %d, index length: %d", s.num, s.probability, endOfData, indexLen)

	if s.num == 0 || s.probability < 2 {
		return nil, fmt.Errorf("%w: invalid header", ErrNotGCS)
	}
	if endOfData > uint64(len(raw)) || (uint64(len(raw))-endOfData-footerSize) != indexLen*16 {
		return nil, fmt.Errorf("%w: truncated or corrupt", ErrNotGCS)
	}

	s.data = raw[:endOfData]
	s.index = make([]indexPair, 0, 1+indexLen)
	s.index = append(s.index, indexPair{0, 0})

	idx := raw[endOfData : endOfData+indexLen*16]
	for i := uint64(0); i < indexLen; i++ {
		s.index = append(s.index, indexPair{
			value:  binary.BigEndian.Uint64(idx[i*16 : i*16+8]),
			bitPos: binary.BigEndian.Uint64(idx[i*16+8 : i*16+16]),
		})
	}

	if cacheBlocks > 0 {
		cache, err := ristretto.NewCache(&ristretto.Config{
			NumCounters: 10 * int64(len(s.index)),
			MaxCost:     cacheBlocks,
			BufferItems: 64,
		})
		if err != nil {
			return nil, err
		}
		s.blocks = cache
	}

	p := message.NewPrinter(language.English)
	log.Info().Msgf("ready for queries on %s items with a 1 in %s false-positive rate", p.Sprintf("%d", s.num), p.Sprintf("%d", s.probability))
	return s, nil
}

// Len is the number of words the set was built from.
func (s *Set) Len() uint64 {
	return s.num
}

// Close releases the block cache.
func (s *Set) Close() {
	if s.blocks != nil {
		s.blocks.Close()
	}
}

// Contains reports whether the word is (probably) in the set. Decoding errors
// are logged and reported as absent.
func (s *Set) Contains(word string) bool {
	exists, err := s.Exists(Hash(word))
	if err != nil {
		log.Error().Err(err).Msg("error querying common password set")
		return false
	}
	return exists
}

// Exists looks up a hash as produced by Hash.
func (s *Set) Exists(target uint64) (bool, error) {
	h := target%(s.num*s.probability) + 1

	// last index point at or below h
	i := sort.Search(len(s.index), func(i int) bool { return s.index[i].value > h }) - 1
	if i > 0 && s.index[i].value == h {
		return true, nil
	}

	block, err := s.block(i)
	if err != nil {
		return false, err
	}

	j := sort.Search(len(block), func(j int) bool { return block[j] >= h })
	return j < len(block) && block[j] == h, nil
}

// block decodes the values that follow index point i, up to and including the
// next index point.
func (s *Set) block(i int) ([]uint64, error) {
	if s.blocks != nil {
		if v, ok := s.blocks.Get(uint64(i)); ok {
			return v.([]uint64), nil
		}
	}

	upper := ^uint64(0)
	if i+1 < len(s.index) {
		upper = s.index[i+1].value
	}

	dec := newDecoder(newBitReader(s.data, s.index[i].bitPos), s.probability)
	last := s.index[i].value
	var values []uint64
	for last < upper {
		d, err := dec.Decode()
		if err != nil {
			return nil, err
		}
		// End of data
		if d == 0 {
			break
		}
		last += d
		values = append(values, last)
	}

	if s.blocks != nil {
		s.blocks.Set(uint64(i), values, int64(len(values))+1)
	}
	return values, nil
}
