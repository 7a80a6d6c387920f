// Copyright (c) 2024 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package factor finds non-trivial factors of semiprimes with Pollard's rho
// algorithm, as used by MTProto's Diffie-Hellman handshake to split the
// server-supplied pq value.
//
// The procedure is Las Vegas: randomized, but any factor it returns is
// correct. For the sub-2⁶⁴ semiprimes the protocol produces in practice it
// completes in microseconds. Arithmetic is on math/big integers, so inputs
// are not bounded by the machine word size.
package factor

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"
)

var (
	// ErrNilOperand is returned when the integer to factor is nil.
	ErrNilOperand = errors.New("factor: operand must not be nil")

	// ErrNilRandReader is returned when the configured randomness source is nil.
	ErrNilRandReader = errors.New("factor: nil random reader")

	// ErrInvalidAttempts is returned when the configured attempt count is not positive.
	ErrInvalidAttempts = errors.New("factor: max attempts must be positive")
)

// Bounds for the randomized per-attempt parameters: the starting point
// x0 ∈ [2, 10⁶) and the polynomial constant c ∈ [1, 10³).
const (
	x0Min = 2
	x0Max = 1000000
	cMin  = 1
	cMax  = 1000
)

// Find returns a non-trivial factor of n.
//
// Degenerate input (n ≤ 1) is returned unchanged, not treated as an error;
// the caller computes the cofactor as n divided by the result. For prime n
// every attempt degenerates and n itself is eventually returned. The result
// is always freshly allocated; n is never written.
//
// Find fails only on a nil n, on configuration errors, or when the
// randomness source itself fails.
func Find(n *big.Int, opts ...Option) (*big.Int, error) {
	if n == nil {
		return nil, ErrNilOperand
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.RandReader == nil {
		return nil, ErrNilRandReader
	}
	if cfg.MaxAttempts < 1 {
		return nil, ErrInvalidAttempts
	}

	one := big.NewInt(1)
	if n.Cmp(one) <= 0 {
		return new(big.Int).Set(n), nil
	}

	// Fast paths: the protocol's pq values are odd in practice, but the
	// degenerate cases are cheap to rule out first.
	if n.Bit(0) == 0 {
		return big.NewInt(2), nil
	}
	three := big.NewInt(3)
	if new(big.Int).Mod(n, three).Sign() == 0 {
		return big.NewInt(3), nil
	}

	var (
		x    = new(big.Int)
		y    = new(big.Int)
		c    = new(big.Int)
		d    = new(big.Int)
		diff = new(big.Int)
		tmp  = new(big.Int)
	)

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		x0, err := randInt64(cfg.RandReader, x0Min, x0Max)
		if err != nil {
			return nil, fmt.Errorf("factor: reading randomness: %w", err)
		}
		ci, err := randInt64(cfg.RandReader, cMin, cMax)
		if err != nil {
			return nil, fmt.Errorf("factor: reading randomness: %w", err)
		}

		x.SetInt64(x0)
		y.SetInt64(x0)
		c.SetInt64(ci)
		d.SetInt64(1)

		// Floyd cycle detection: the tortoise x advances one step per
		// iteration, the hare y two. A cycle modulo an unknown factor of n
		// shows up as gcd(|x - y|, n) > 1.
		for d.Cmp(one) == 0 {
			advance(x, c, n, tmp)
			advance(y, c, n, tmp)
			advance(y, c, n, tmp)

			diff.Sub(x, y)
			diff.Abs(diff)
			d.GCD(nil, nil, diff, n)
		}

		// d == n means the whole sequence cycled at once; retry with a
		// fresh starting point and constant.
		if d.Cmp(n) != 0 {
			return new(big.Int).Set(d), nil
		}
	}

	if f := trialDivision(n, cfg.TrialDivisionBound); f != nil {
		return f, nil
	}

	return new(big.Int).Set(n), nil
}

// advance steps the polynomial once: v = (v² + c) mod n.
func advance(v, c, n, tmp *big.Int) {
	tmp.Mul(v, v)
	tmp.Add(tmp, c)
	v.Mod(tmp, n)
}

// trialDivision tries odd divisors up to bound and returns the first that
// divides n, or nil. Defensive fallback; unreachable for semiprime input
// that Pollard rho handles.
func trialDivision(n *big.Int, bound uint64) *big.Int {
	var (
		div = new(big.Int)
		rem = new(big.Int)
	)
	for i := uint64(3); i <= bound; i += 2 {
		div.SetUint64(i)
		if rem.Mod(n, div).Sign() == 0 {
			return new(big.Int).Set(div)
		}
	}
	return nil
}

// randInt64 draws a uniform-enough value in [min, max) from r. The ranges
// used here are tiny relative to 2⁶⁴, so plain reduction is fine.
func randInt64(r io.Reader, min, max int64) (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(buf[:])
	return min + int64(v%uint64(max-min)), nil
}
