// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package gcs

import (
	"bytes"
	"crypto/sha1"
	"encoding/binary"
	"io"
	"os"
)

// Hash keys a word for set membership: the first 8 bytes of its SHA-1,
// big endian. The word is hashed exactly as given, so lookups are
// case-sensitive.
func Hash(word string) uint64 {
	sum := sha1.Sum([]byte(word))
	return binary.BigEndian.Uint64(sum[:8])
}

// estimateFileLines counts the newlines in the first 16MiB of the file and
// scales the count to the whole file. The file offset is restored to the start.
func estimateFileLines(f *os.File) (uint64, error) {
	const estimateLimit = 1024 * 1024 * 16

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}

	size := info.Size()
	if size == 0 {
		return 0, nil
	}

	sampleSize := size
	if sampleSize > estimateLimit {
		sampleSize = estimateLimit
	}

	buffer := make([]byte, sampleSize)
	n, err := io.ReadFull(f, buffer)
	if err != nil && err != io.ErrUnexpectedEOF {
		return 0, err
	}
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	lines := uint64(bytes.Count(buffer[:n], []byte{'\n'})) + 1
	return lines * uint64(size) / uint64(sampleSize), nil
}

func toFixedBytes(content uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, content)
	return buf
}

// dedup removes adjacent duplicates from a sorted slice in place.
func dedup(slice []uint64) []uint64 {
	if len(slice) < 2 {
		return slice
	}

	e := 1
	for i := 1; i < len(slice); i++ {
		if slice[i] == slice[i-1] {
			continue
		}
		slice[e] = slice[i]
		e++
	}

	return slice[:e]
}
