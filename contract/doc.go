// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract - the will transition rules
//
// Verify decides whether a proposed transition is admissible.  It is a
// pure function of the transaction: no I/O, no shared state, and the
// same verdict wherever it is evaluated.  Rules are evaluated in a
// fixed order and the first failure is returned:
//
//   1. exactly one command
//   2. command recognised
//   3. number of inputs
//   4. number of outputs
//   5. input content
//   6. output content
//   7. required signer
//
// every failure is a fault.RejectionError
package contract
