// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/willd/counter"
	"github.com/bitmark-inc/willd/digest"
	"github.com/bitmark-inc/willd/messagebus"
)

// Monitor - background process that drains finalised messages
type Monitor struct {
	log       *logger.L
	finalised counter.Counter
}

// NewMonitor - create a monitor
func NewMonitor(log *logger.L) *Monitor {
	return &Monitor{
		log: log,
	}
}

// Finalised - number of transactions finalised since start
func (monitor *Monitor) Finalised() uint64 {
	return monitor.finalised.Uint64()
}

// Run - wait for messages until shutdown
func (monitor *Monitor) Run(args interface{}, shutdown <-chan struct{}) {
	log := monitor.log
	queue := messagebus.Bus.Finalised.Chan()

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			if FinalisedCommand != item.Command || 1 != len(item.Parameters) {
				log.Warnf("unexpected message: %q", item.Command)
				continue loop
			}
			var txId digest.Digest
			if err := digest.FromBytes(&txId, item.Parameters[0]); nil != err {
				log.Errorf("finalised: invalid txId: %x", item.Parameters[0])
				continue loop
			}
			n := monitor.finalised.Increment()
			log.Infof("finalised: %s  total: %d", txId, n)
		}
	}

	log.Info("shutting down…")
	log.Flush()
}
