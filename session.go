// Copyright (c) 2024 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package mtcrypto

import "crypto/sha1"

// SessionID derives the MTProto session identifier from an authorization
// key: the first 8 bytes of SHA1(authKey) in reverse byte order, which is
// those 8 bytes read as a little-endian integer. The result is a fresh
// SessionIDSize-byte slice.
func SessionID(authKey []byte) []byte {
	sum := sha1.Sum(authKey)

	id := make([]byte, SessionIDSize)
	for i := range id {
		id[i] = sum[SessionIDSize-1-i]
	}

	return id
}
