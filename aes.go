// Copyright (c) 2024 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package mtcrypto

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/sixafter/mtcrypto/x/crypto/ctr"
	"github.com/sixafter/mtcrypto/x/crypto/ige"
)

// IGE256Encrypt encrypts data with AES-256 in IGE mode.
//
// data must be a non-empty multiple of BlockSize, key exactly KeySize
// bytes, and iv exactly IGEIVSize bytes. The iv is read only; the result is
// freshly allocated.
func IGE256Encrypt(data, key, iv []byte) ([]byte, error) {
	return ige256(data, key, iv, ige.NewEncrypter)
}

// IGE256Decrypt decrypts data with AES-256 in IGE mode. Argument and buffer
// semantics match IGE256Encrypt.
func IGE256Decrypt(data, key, iv []byte) ([]byte, error) {
	return ige256(data, key, iv, ige.NewDecrypter)
}

func ige256(data, key, iv []byte, mode func(cipher.Block, []byte) (cipher.BlockMode, error)) ([]byte, error) {
	if err := checkBlockArgs(data, key); err != nil {
		return nil, err
	}
	if len(iv) != IGEIVSize {
		return nil, ErrIGEIVSize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	m, err := mode(block, iv)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(data))
	m.CryptBlocks(out, data)

	return out, nil
}

// CTR256Encrypt encrypts data with AES-256 in CTR mode, resuming from and
// updating the caller-owned (iv, state) pair.
//
// iv is the big-endian 128-bit counter (IVSize bytes); state is a single
// byte in [0, 15] naming how much of the current keystream block previous
// calls consumed. On return both are updated in place so that a subsequent
// call continues the stream exactly: a sequence of calls threading (iv,
// state) produces output bit-identical to one call over the concatenated
// data. data may be any positive length.
func CTR256Encrypt(data, key, iv, state []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	if len(key) != KeySize {
		return nil, ErrKeySize
	}
	if len(iv) != IVSize {
		return nil, ErrIVSize
	}
	if len(state) != StateSize {
		return nil, ErrStateSize
	}
	if state[0] > 15 {
		return nil, ErrStateValue
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	stream, err := ctr.New(block, iv, int(state[0]))
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(data))
	stream.XORKeyStream(out, data)

	counter, offset := stream.State()
	copy(iv, counter)
	state[0] = byte(offset)

	return out, nil
}

// CTR256Decrypt decrypts data with AES-256 in CTR mode. CTR is an
// involution, so decryption is the same operation as encryption.
func CTR256Decrypt(data, key, iv, state []byte) ([]byte, error) {
	return CTR256Encrypt(data, key, iv, state)
}

// CBC256Encrypt encrypts data with AES-256 in CBC mode.
//
// data must be a non-empty multiple of BlockSize. On return iv is updated
// in place to the last ciphertext block, so a subsequent call continues the
// CBC chain.
func CBC256Encrypt(data, key, iv []byte) ([]byte, error) {
	block, err := cbc256Args(data, key, iv)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(data))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, data)
	copy(iv, out[len(out)-BlockSize:])

	return out, nil
}

// CBC256Decrypt decrypts data with AES-256 in CBC mode.
//
// On return iv is updated in place to the last ciphertext block of the
// input, so a subsequent call continues the CBC chain.
func CBC256Decrypt(data, key, iv []byte) ([]byte, error) {
	block, err := cbc256Args(data, key, iv)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, data)
	copy(iv, data[len(data)-BlockSize:])

	return out, nil
}

func cbc256Args(data, key, iv []byte) (cipher.Block, error) {
	if err := checkBlockArgs(data, key); err != nil {
		return nil, err
	}
	if len(iv) != IVSize {
		return nil, ErrIVSize
	}
	return aes.NewCipher(key)
}
