// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package gcs

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleWords(n int) []string {
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, fmt.Sprintf("word-%04d", i))
	}
	return words
}

func buildSet(t *testing.T, words []string, probability, granularity uint64) []byte {
	t.Helper()

	var out bytes.Buffer
	builder := NewBuilder(strings.NewReader(strings.Join(words, "\n")), &out, probability, granularity)
	if err := builder.Process(); err != nil {
		t.Fatalf("Should not fail processing words: %s", err)
	}
	return out.Bytes()
}

func TestBuilder_Footer(t *testing.T) {
	words := append(sampleWords(100), "password", "123456", "")
	raw := buildSet(t, words, 1024, 16)

	footer := raw[len(raw)-footerSize:]
	if num := binary.BigEndian.Uint64(footer[0:8]); num != 102 {
		t.Errorf("GCS should have %d items, have %d", 102, num)
	}
	if probability := binary.BigEndian.Uint64(footer[8:16]); probability != 1024 {
		t.Errorf("GCS should have probability %d, have %d", 1024, probability)
	}
	endOfData := binary.BigEndian.Uint64(footer[16:24])
	indexLen := binary.BigEndian.Uint64(footer[24:32])
	if indexLen != 6 {
		t.Errorf("GCS should have index length %d, have %d", 6, indexLen)
	}
	if uint64(len(raw)) != endOfData+indexLen*16+footerSize {
		t.Errorf("GCS layout does not add up: %d bytes, end of data %d, index %d", len(raw), endOfData, indexLen)
	}
	if string(footer[32:]) != gcsMagic {
		t.Errorf("Should have GCS magic, have %q", footer[32:])
	}
}

func TestBuilder_Empty(t *testing.T) {
	var out bytes.Buffer
	builder := NewBuilder(strings.NewReader("\n\r\n\n"), &out, 1024, 16)
	if err := builder.Process(); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Should fail with ErrEmptyInput, got: %v", err)
	}
}

func TestSet_Membership(t *testing.T) {
	words := sampleWords(500)
	raw := buildSet(t, words, 1<<20, 8)

	for _, cache := range []int64{0, 1000} {
		set, err := Load(raw, cache)
		if err != nil {
			t.Fatalf("Should not fail loading set: %s", err)
		}

		if set.Len() != 500 {
			t.Errorf("Set should have %d items, have %d", 500, set.Len())
		}

		// twice, so the second pass goes through the cache when enabled
		for pass := 0; pass < 2; pass++ {
			for _, w := range words {
				if !set.Contains(w) {
					t.Errorf("Word %q should be in the set", w)
				}
			}
			if set.blocks != nil {
				set.blocks.Wait()
			}
		}

		for _, w := range []string{"WORD-0001", "word-9999", "1mag@saG(@31*sasd.", ""} {
			if set.Contains(w) {
				t.Errorf("Word %q should not be in the set", w)
			}
		}

		set.Close()
	}
}

func TestSet_CaseSensitive(t *testing.T) {
	raw := buildSet(t, []string{"Password", "letmein"}, 1<<20, 1024)
	set, err := Load(raw, 0)
	if err != nil {
		t.Fatalf("Should not fail loading set: %s", err)
	}

	if !set.Contains("Password") || !set.Contains("letmein") {
		t.Errorf("Words should be in the set")
	}
	if set.Contains("password") || set.Contains("LETMEIN") {
		t.Errorf("Lookups should be case-sensitive")
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "common.gcs")

	raw := buildSet(t, []string{"qwerty", "dragon"}, 1<<16, 1024)
	if err := os.WriteFile(fileName, raw, 0o600); err != nil {
		t.Fatalf("Should not fail writing file: %s", err)
	}

	set, err := Open(fileName, 100)
	if err != nil {
		t.Fatalf("Should not fail opening set: %s", err)
	}
	defer set.Close()

	if !set.Contains("dragon") {
		t.Errorf("Word should be in the set")
	}
}

func TestOpen_FromFileBuilder(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(in, []byte(strings.Join(sampleWords(50), "\r\n")), 0o600); err != nil {
		t.Fatalf("Should not fail writing file: %s", err)
	}

	file, err := os.Open(in)
	if err != nil {
		t.Fatalf("Should not fail opening file: %s", err)
	}
	defer file.Close()

	var out bytes.Buffer
	builder := NewBuilder(file, &out, 1<<16, 4)
	if builder.Estimated() == 0 {
		t.Errorf("Builder should estimate a line count for files")
	}
	if err = builder.Process(); err != nil {
		t.Fatalf("Should not fail processing file: %s", err)
	}

	set, err := Load(out.Bytes(), 0)
	if err != nil {
		t.Fatalf("Should not fail loading set: %s", err)
	}
	if !set.Contains("word-0049") {
		t.Errorf("Word should be in the set, CR must be trimmed")
	}
}

func TestLoad_InvalidData(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("password\n123456\n"),
		bytes.Repeat([]byte{0}, 64),
	}

	for _, raw := range cases {
		if _, err := Load(raw, 0); !errors.Is(err, ErrNotGCS) {
			t.Errorf("Should fail with ErrNotGCS, got: %v", err)
		}
	}

	raw := buildSet(t, sampleWords(20), 1024, 4)
	truncated := append([]byte{}, raw[8:]...)
	if _, err := Load(truncated, 0); !errors.Is(err, ErrNotGCS) {
		t.Errorf("Truncated set should fail with ErrNotGCS, got: %v", err)
	}
}
