// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. txId         = transaction digest as 32 byte SHA3-256(body)
// 4. ref          = txId ++ output index as big endian uint64 (8 bytes)
// 5. will key     = Varint64(length) ++ will id
// 6. count        = successive index value as big endian uint64 (8 bytes)
//
// Transactions:
//
//   T ++ txId                  - finalised transactions
//                                data: packed transaction
//
// States:
//
//   S ++ ref                   - every output ever produced
//                                data: packed will record
//   C ++ ref                   - consumed outputs
//                                data: txId of consuming transaction
//
// Wills:
//
//   W ++ will key              - most recent version of a will
//                                data: ref
//   N ++ will key              - number of versions of a will
//                                data: count
//   H ++ will key ++ count     - every version of a will in order
//                                data: ref
package storage
