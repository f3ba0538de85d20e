// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package util

import (
	"errors"
	"math"
	"testing"
)

func TestToScreamingSnakeCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Port", "PORT"},
		{"SelfTLS", "SELF_TLS"},
		{"TLSCert", "TLS_CERT"},
		{"TLSKey", "TLS_KEY"},
		{"CommonSet", "COMMON_SET"},
		{"MaxConnections", "MAX_CONNECTIONS"},
		{"TLSCert TLSKey", "TLS_CERT TLS_KEY"},
		{"SelfTLS false", "SELF_TLS FALSE"},
		{"", ""},
	}

	for _, c := range cases {
		if got := ToScreamingSnakeCase(c.in); got != c.want {
			t.Errorf("ToScreamingSnakeCase(%q) should be %q, got %q", c.in, c.want, got)
		}
	}
}

func TestCheckRam(t *testing.T) {
	if err := CheckRam(1024); err != nil {
		t.Errorf("Should not fail for a small item count: %s", err)
	}

	if err := CheckRam(math.MaxUint64 / 8); err != nil && !errors.Is(err, ErrInsufficientRam) {
		t.Errorf("Should fail with ErrInsufficientRam, got: %s", err)
	}
}

func TestCheckDiskSpace(t *testing.T) {
	dir := t.TempDir()
	if err := CheckDiskSpace(dir, 1); err != nil {
		t.Errorf("Should not fail for one byte: %s", err)
	}

	if err := CheckDiskSpace(dir, math.MaxUint64); err != nil && !errors.Is(err, ErrInsufficientDisk) {
		t.Errorf("Should fail with ErrInsufficientDisk, got: %s", err)
	}
}
