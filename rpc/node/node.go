// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - RPC entry for node status
package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/willd/contract"
	"github.com/bitmark-inc/willd/counter"
	"github.com/bitmark-inc/willd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Statistics - ledger counters reported by Info
type Statistics interface {
	Finalised() uint64
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Chain   string
	Policy  contract.Policy
	stats   Statistics
	counter *counter.Counter
}

// New - create the node RPC entry
func New(log *logger.L, start time.Time, version string, chain string, policy contract.Policy, stats Statistics, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Chain:   chain,
		Policy:  policy,
		stats:   stats,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain                string `json:"chain"`
	Version              string `json:"version"`
	Uptime               string `json:"uptime"`
	RPCs                 uint64 `json:"rpcs"`
	Finalised            uint64 `json:"finalised"`
	GeneratePrecondition string `json:"generatePrecondition"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = node.Chain
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.Finalised = node.stats.Finalised()
	reply.GeneratePrecondition = string(node.Policy.GeneratePrecondition)
	return nil
}
