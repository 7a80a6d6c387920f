// Copyright (c) 2024 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package mtcrypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSHA1Vectors verifies SHA-1 against known digests.
func TestSHA1Vectors(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	cases := []struct {
		input string
		want  string
	}{
		{"hello world", "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed"},
		{"", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
	}

	for _, tc := range cases {
		got := SHA1([]byte(tc.input))
		is.Len(got, 20)
		is.Equal(tc.want, hex.EncodeToString(got), "SHA1(%q)", tc.input)
	}
}

// TestSHA256Vectors verifies SHA-256 against known digests.
func TestSHA256Vectors(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	cases := []struct {
		input string
		want  string
	}{
		{"hello world", "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}

	for _, tc := range cases {
		got := SHA256([]byte(tc.input))
		is.Len(got, 32)
		is.Equal(tc.want, hex.EncodeToString(got), "SHA256(%q)", tc.input)
	}
}

// TestSHAFreshBuffers verifies each call returns a distinct buffer, so
// callers may mutate results freely.
func TestSHAFreshBuffers(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	a := SHA256([]byte("payload"))
	b := SHA256([]byte("payload"))
	is.Equal(a, b)

	a[0] ^= 0xff
	is.NotEqual(a, b)
}
