// Copyright (c) 2024 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package mtcrypto

import "math/big"

// RSAEncrypt performs raw (textbook) RSA encryption: data is read as a
// big-endian integer m and the result is m^exponent mod modulus, written
// big-endian and left-padded with zeros to the modulus length.
//
// MTProto applies its own padding before this step, so no padding scheme is
// involved here; m must already be smaller than the modulus. This is not a
// general-purpose public-key primitive.
func RSAEncrypt(data []byte, exponent, modulus *big.Int) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	if exponent == nil || exponent.Sign() <= 0 {
		return nil, ErrRSAExponent
	}
	if modulus == nil || modulus.Sign() <= 0 {
		return nil, ErrRSAModulus
	}

	m := new(big.Int).SetBytes(data)
	if m.Cmp(modulus) >= 0 {
		return nil, ErrRSADataRange
	}

	c := new(big.Int).Exp(m, exponent, modulus)

	out := make([]byte, (modulus.BitLen()+7)/8)
	c.FillBytes(out)

	return out, nil
}
