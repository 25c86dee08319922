// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest - SHA3-256 identifiers for transactions and states
package digest

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/willd/fault"
)

// Length - number of bytes in the digest
const Length = 32

// Digest - a SHA3-256 hash
//
// to convert to bytes just use d[:]
type Digest [Length]byte

// NewDigest - create a digest from a byte slice
func NewDigest(record []byte) Digest {
	return sha3.Sum256(record)
}

// FromBytes - convert and validate a byte slice to a digest
func FromBytes(digest *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidDigest
	}
	copy(digest[:], buffer)
	return nil
}

// IsZero - true if the digest has never been set
func (digest Digest) IsZero() bool {
	return Digest{} == digest
}

// String - hex form for use by the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - hex form for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA3-256:" + hex.EncodeToString(digest[:]) + ">"
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Length))
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if hex.EncodedLen(Length) != len(s) {
		return fault.ErrInvalidDigest
	}
	_, err := hex.Decode(digest[:], s)
	return err
}
