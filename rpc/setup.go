// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/willd/contract"
	"github.com/bitmark-inc/willd/counter"
	"github.com/bitmark-inc/willd/fault"
	"github.com/bitmark-inc/willd/rpc/certificate"
	"github.com/bitmark-inc/willd/rpc/listeners"
	"github.com/bitmark-inc/willd/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of open client connections
var connectionCountRPC counter.Counter

// Initialise - start the client RPC listener
func Initialise(rpcConfiguration *listeners.RPCConfiguration, version string, chainName string, policy contract.Policy, handles server.Handles) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, version, chainName, policy, handles, &connectionCountRPC),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		_ = rpcListener.Close()
		return err
	}
	globalData.listener = rpcListener

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	err := globalData.listener.Close()
	if nil != err {
		globalData.log.Errorf("close error: %s", err)
	}

	// finally...
	globalData.listener = nil
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Connections - number of open client connections
func Connections() uint64 {
	return connectionCountRPC.Uint64()
}
