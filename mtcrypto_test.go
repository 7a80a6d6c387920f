// Copyright (c) 2024 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package mtcrypto

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConcurrentCalls hammers IGE and CBC encryption, CTR, SHA-256, and
// SessionID from many goroutines with per-goroutine state, verifying the
// package carries no shared mutable state between calls.
func TestConcurrentCalls(t *testing.T) {
	t.Parallel()

	const (
		goroutines = 16
		iterations = 50
	)

	key := randBytes(t, KeySize)
	igeIV := randBytes(t, IGEIVSize)
	cbcIV := randBytes(t, IVSize)
	plaintext := randBytes(t, 4096)

	// Reference outputs computed up front; every goroutine must reproduce
	// them from the same inputs.
	wantIGE, err := IGE256Encrypt(plaintext, key, igeIV)
	if err != nil {
		t.Fatal(err)
	}

	refIV := append([]byte(nil), cbcIV...)
	wantCBC, err := CBC256Encrypt(plaintext, key, refIV)
	if err != nil {
		t.Fatal(err)
	}

	wantDigest := SHA256(plaintext)
	wantSession := SessionID(plaintext)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			is := assert.New(t)

			for i := 0; i < iterations; i++ {
				gotIGE, err := IGE256Encrypt(plaintext, key, igeIV)
				is.NoError(err)
				is.Equal(wantIGE, gotIGE)

				iv := append([]byte(nil), cbcIV...)
				gotCBC, err := CBC256Encrypt(plaintext, key, iv)
				is.NoError(err)
				is.Equal(wantCBC, gotCBC)

				ctrIV := make([]byte, IVSize)
				state := make([]byte, StateSize)
				enc, err := CTR256Encrypt(plaintext, key, ctrIV, state)
				is.NoError(err)

				ctrIV = make([]byte, IVSize)
				state = make([]byte, StateSize)
				dec, err := CTR256Decrypt(enc, key, ctrIV, state)
				is.NoError(err)
				is.Equal(plaintext, dec)

				is.Equal(wantDigest, SHA256(plaintext))
				is.Equal(wantSession, SessionID(plaintext))
			}
		}()
	}
	wg.Wait()
}

// TestLargePayload runs the block modes over a 1 MiB payload, the size the
// transport sees for media transfers.
func TestLargePayload(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	key := randBytes(t, KeySize)
	plaintext := randBytes(t, 1<<20)

	igeIV := randBytes(t, IGEIVSize)
	ciphertext, err := IGE256Encrypt(plaintext, key, igeIV)
	is.NoError(err)
	recovered, err := IGE256Decrypt(ciphertext, key, igeIV)
	is.NoError(err)
	is.Equal(plaintext, recovered)

	iv := make([]byte, IVSize)
	state := make([]byte, StateSize)
	enc, err := CTR256Encrypt(plaintext, key, iv, state)
	is.NoError(err)
	iv = make([]byte, IVSize)
	state = make([]byte, StateSize)
	dec, err := CTR256Decrypt(enc, key, iv, state)
	is.NoError(err)
	is.Equal(plaintext, dec)
}
