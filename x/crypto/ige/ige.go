// Copyright (c) 2024 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package ige implements the Infinite Garble Extension (IGE) block cipher
// mode of operation over any cipher.Block.
//
// IGE chains in both directions: each ciphertext block is XOR-ed with the
// previous plaintext block, and each plaintext block is XOR-ed with the
// previous ciphertext block. The mode therefore requires two initialization
// vector registers (one per chaining direction), supplied as a single IV of
// twice the cipher's block size. MTProto uses AES-256-IGE for its outer
// payload encryption; general-purpose cryptographic libraries rarely offer
// the mode, which is why it lives here.
//
// The returned modes satisfy the standard cipher.BlockMode contract,
// including in-place operation when dst and src overlap exactly.
package ige

import (
	"crypto/cipher"
	"fmt"
)

// cryptFunc applies one block cipher operation (encrypt or decrypt).
type cryptFunc func(dst, src []byte)

// ige carries the chaining state for one direction of IGE.
//
// For encryption, x starts as the first IV half and y as the second; for
// decryption the halves are swapped. After each block, x holds the previous
// output block and y the previous input block.
type ige struct {
	crypt     cryptFunc
	blockSize int

	// x is XOR-ed into the input before the block cipher operation.
	x []byte

	// y is XOR-ed into the output after the block cipher operation.
	y []byte

	// in and tmp are scratch blocks reused across CryptBlocks calls so that
	// in-place operation (dst == src) never reads clobbered input.
	in  []byte
	tmp []byte
}

// NewEncrypter returns a cipher.BlockMode that encrypts in IGE mode using
// the given block cipher. The IV must be exactly twice the cipher's block
// size; it is copied and never written.
func NewEncrypter(block cipher.Block, iv []byte) (cipher.BlockMode, error) {
	return newIGE(block, iv, block.Encrypt, false)
}

// NewDecrypter returns a cipher.BlockMode that decrypts in IGE mode using
// the given block cipher. The IV must be exactly twice the cipher's block
// size; it is copied and never written.
//
// Decryption swaps the IV halves relative to encryption: the register that
// feeds the pre-cipher XOR tracks previous ciphertext on the encrypt side and
// previous plaintext on the decrypt side.
func NewDecrypter(block cipher.Block, iv []byte) (cipher.BlockMode, error) {
	return newIGE(block, iv, block.Decrypt, true)
}

func newIGE(block cipher.Block, iv []byte, crypt cryptFunc, swap bool) (cipher.BlockMode, error) {
	bs := block.BlockSize()
	if len(iv) != 2*bs {
		return nil, fmt.Errorf("ige: iv length must be %d bytes, got %d", 2*bs, len(iv))
	}

	m := &ige{
		crypt:     crypt,
		blockSize: bs,
		x:         make([]byte, bs),
		y:         make([]byte, bs),
		in:        make([]byte, bs),
		tmp:       make([]byte, bs),
	}
	if swap {
		copy(m.x, iv[bs:])
		copy(m.y, iv[:bs])
	} else {
		copy(m.x, iv[:bs])
		copy(m.y, iv[bs:])
	}

	return m, nil
}

// BlockSize returns the cipher's block size.
func (m *ige) BlockSize() int {
	return m.blockSize
}

// CryptBlocks processes src into dst, one block at a time. As required by
// the cipher.BlockMode contract it panics if src is not a whole number of
// blocks or if dst is shorter than src. Multiple calls continue the chain,
// behaving as if their inputs were concatenated.
func (m *ige) CryptBlocks(dst, src []byte) {
	bs := m.blockSize
	if len(src)%bs != 0 {
		panic("ige: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("ige: output smaller than input")
	}

	for len(src) > 0 {
		// Keep the input block; dst may alias src.
		copy(m.in, src[:bs])

		for i := 0; i < bs; i++ {
			m.tmp[i] = m.in[i] ^ m.x[i]
		}
		m.crypt(dst[:bs], m.tmp)
		for i := 0; i < bs; i++ {
			dst[i] ^= m.y[i]
		}

		copy(m.x, dst[:bs])
		copy(m.y, m.in)

		src = src[bs:]
		dst = dst[bs:]
	}
}
