// Copyright (c) 2024 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.
//
// Package factor provides configuration types and functional options for
// the Pollard rho integer factorization routine.

package factor

import (
	"io"

	prng "github.com/sixafter/prng-chacha"
)

// Config defines the tunable parameters for a factorization run.
//
// Fields:
//   - RandReader: source of randomness for the per-attempt starting point
//     and polynomial constant.
//   - MaxAttempts: number of randomized Pollard rho attempts before falling
//     back to trial division.
//   - TrialDivisionBound: upper bound (inclusive) for the odd trial
//     divisors tried when every randomized attempt degenerates.
type Config struct {
	// RandReader is the source of randomness used to draw the starting
	// point x0 and the polynomial constant c for each attempt.
	//
	// Factorization does not need cryptographic randomness, only
	// independence between retries; the default is the OS-seeded ChaCha
	// reader from github.com/sixafter/prng-chacha. Any io.Reader may be
	// substituted, including crypto/rand.Reader or a deterministic reader
	// in tests.
	RandReader io.Reader

	// MaxAttempts is the number of randomized attempts before giving up on
	// Pollard rho. Each attempt draws a fresh (x0, c) pair. If zero or
	// negative, Find returns ErrInvalidAttempts.
	//
	// Default: 20.
	MaxAttempts int

	// TrialDivisionBound caps the odd divisors tried after all randomized
	// attempts degenerate. For well-formed semiprime input this path is
	// never taken; it exists as a defensive last resort.
	//
	// Default: 10000.
	TrialDivisionBound uint64
}

// Default configuration constants for factorization.
const (
	defaultMaxAttempts        = 20    // Randomized Pollard rho attempts
	defaultTrialDivisionBound = 10000 // Inclusive bound on odd trial divisors
)

// DefaultConfig returns a Config populated with the recommended defaults.
//
// Defaults:
//   - RandReader: prng.Reader (ChaCha-based, OS-seeded)
//   - MaxAttempts: 20
//   - TrialDivisionBound: 10000
func DefaultConfig() Config {
	return Config{
		RandReader:         prng.Reader,
		MaxAttempts:        defaultMaxAttempts,
		TrialDivisionBound: defaultTrialDivisionBound,
	}
}

// Option defines a functional option for customizing a Config.
//
// Example:
//
//	f, err := factor.Find(pq,
//	    factor.WithRandReader(rand.Reader),
//	    factor.WithMaxAttempts(40),
//	)
type Option func(*Config)

// WithRandReader returns an Option that sets the randomness source used to
// draw per-attempt parameters.
func WithRandReader(r io.Reader) Option { return func(cfg *Config) { cfg.RandReader = r } }

// WithMaxAttempts returns an Option that sets the number of randomized
// Pollard rho attempts.
func WithMaxAttempts(n int) Option { return func(cfg *Config) { cfg.MaxAttempts = n } }

// WithTrialDivisionBound returns an Option that sets the inclusive upper
// bound on the odd divisors tried by the trial-division fallback.
func WithTrialDivisionBound(n uint64) Option {
	return func(cfg *Config) { cfg.TrialDivisionBound = n }
}
