// Copyright (c) 2024 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package mtcrypto

import (
	"math/big"

	"github.com/sixafter/mtcrypto/x/crypto/factor"
)

// Factorize returns a non-trivial prime factor of pq, the product of two
// primes supplied by the server during the MTProto DH handshake. The caller
// computes the cofactor as pq divided by the result.
//
// Degenerate input (pq ≤ 1) is returned unchanged. For prime pq the value
// itself is eventually returned. pq is never written; the result is freshly
// allocated. See the factor package for tunables such as the randomness
// source.
func Factorize(pq *big.Int) (*big.Int, error) {
	return factor.Find(pq)
}
