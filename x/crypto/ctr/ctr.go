// Copyright (c) 2024 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package ctr implements counter (CTR) mode with a resumable keystream
// position over any cipher.Block.
//
// Unlike the standard library's cipher.NewCTR, a Stream exposes its
// resumption state: the big-endian counter and the byte offset consumed
// within the current keystream block. A caller can therefore push a single
// logical stream through many Stream instances in arbitrary-sized pieces
// (for example, framed packets arriving from a network) and obtain output
// bit-identical to one pass over the concatenated input. MTProto's
// obfuscated transport relies on exactly this property.
package ctr

import (
	"crypto/cipher"
	"fmt"
)

// Stream applies a CTR keystream to successive chunks of data.
//
// A Stream is not safe for concurrent use; callers that share one logical
// keystream must serialize their XORKeyStream calls, as each call advances
// the counter and offset.
type Stream struct {
	block cipher.Block

	// counter is the current big-endian counter value. It only advances
	// past keystream blocks that have been fully consumed.
	counter []byte

	// offset is the number of bytes of the keystream block derived from the
	// current counter value that previous calls have already consumed.
	// Always in [0, BlockSize).
	offset int

	// ks is the scratch keystream block.
	ks []byte
}

// New returns a Stream positioned at the given counter and intra-block
// offset. The iv is the initial counter value and must match the cipher's
// block size; it is copied and never written. The offset must be in
// [0, block size).
func New(block cipher.Block, iv []byte, offset int) (*Stream, error) {
	bs := block.BlockSize()
	if len(iv) != bs {
		return nil, fmt.Errorf("ctr: iv length must be %d bytes, got %d", bs, len(iv))
	}
	if offset < 0 || offset >= bs {
		return nil, fmt.Errorf("ctr: offset must be in [0, %d), got %d", bs, offset)
	}

	s := &Stream{
		block:   block,
		counter: make([]byte, bs),
		offset:  offset,
		ks:      make([]byte, bs),
	}
	copy(s.counter, iv)

	return s, nil
}

// XORKeyStream XOR-s src with the keystream and writes the result to dst.
// It panics if dst is shorter than src. dst and src may overlap exactly.
//
// The walk has three phases: drain the partially consumed keystream block
// (if offset > 0), process whole blocks, then handle a partial tail. The
// counter is incremented only once a keystream block is fully consumed, so
// a tail leaves the counter in place and records the new offset; the next
// call re-derives the same keystream block and continues where it left off.
func (s *Stream) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("ctr: output smaller than input")
	}

	bs := s.block.BlockSize()

	if s.offset > 0 {
		s.block.Encrypt(s.ks, s.counter)
		for len(src) > 0 && s.offset < bs {
			dst[0] = src[0] ^ s.ks[s.offset]
			dst = dst[1:]
			src = src[1:]
			s.offset++
		}
		if s.offset == bs {
			incCounter(s.counter)
			s.offset = 0
		}
	}

	for len(src) >= bs {
		s.block.Encrypt(s.ks, s.counter)
		for i := 0; i < bs; i++ {
			dst[i] = src[i] ^ s.ks[i]
		}
		incCounter(s.counter)
		dst = dst[bs:]
		src = src[bs:]
	}

	if len(src) > 0 {
		s.block.Encrypt(s.ks, s.counter)
		for i := range src {
			dst[i] = src[i] ^ s.ks[i]
		}
		s.offset = len(src)
	}
}

// State returns the resumption state: a copy of the current counter and the
// intra-block offset. Constructing a new Stream from these values continues
// the keystream exactly.
func (s *Stream) State() (counter []byte, offset int) {
	counter = make([]byte, len(s.counter))
	copy(counter, s.counter)
	return counter, s.offset
}

// incCounter increments a big-endian counter by one, with carry propagation
// from the last byte downward and wrap-around at the full width.
func incCounter(counter []byte) {
	for i := len(counter) - 1; i >= 0; i-- {
		counter[i]++
		if counter[i] != 0 {
			break
		}
	}
}
