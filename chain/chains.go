// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the networks a will ledger can run on
package chain

// names of all chains
const (
	Willd   = "willd"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Willd, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTesting - true for every chain that uses test keys
func IsTesting(name string) bool {
	return Willd != name
}
