// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - register every RPC entry on one server
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/willd/contract"
	"github.com/bitmark-inc/willd/counter"
	"github.com/bitmark-inc/willd/ledger"
	"github.com/bitmark-inc/willd/rpc/node"
	"github.com/bitmark-inc/willd/rpc/will"
	"github.com/bitmark-inc/willd/vault"
)

// Handles - the services RPC entries call into
type Handles struct {
	Ledger     ledger.Handle
	Vault      vault.Handle
	Statistics node.Statistics
}

// Create - a server with the Will and Node entries registered
func Create(log *logger.L, version string, chainName string, policy contract.Policy, handles Handles, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(will.New(log, handles.Ledger, handles.Vault))
	_ = server.Register(node.New(log, start, version, chainName, policy, handles.Statistics, rpcCount))

	return server
}
