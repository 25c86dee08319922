// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mocks - gomock doubles for the RPC handler dependencies
package mocks

//go:generate mockgen -destination=vault.go -package=mocks -mock_names=Handle=MockVault github.com/bitmark-inc/willd/vault Handle
//go:generate mockgen -destination=ledger.go -package=mocks -mock_names=Handle=MockLedger github.com/bitmark-inc/willd/ledger Handle
