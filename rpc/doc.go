// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - client JSON-RPC over TLS
//
// entries:
//   Will.Submit   verify and finalise a hex packed transaction
//   Will.Check    verify only
//   Will.Live     unconsumed version of a will
//   Will.Get      any stored version by reference
//   Will.Search   stored versions filtered by consumption
//   Will.History  every version of a will
//   Node.Info     chain, version, uptime and counters
package rpc
