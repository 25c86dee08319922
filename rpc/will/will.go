// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package will - RPC entries for will transactions and vault queries
package will

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/willd/fault"
	"github.com/bitmark-inc/willd/ledger"
	"github.com/bitmark-inc/willd/rpc/ratelimit"
	"github.com/bitmark-inc/willd/transaction"
	"github.com/bitmark-inc/willd/vault"
	"github.com/bitmark-inc/willd/willrecord"
)

const (
	rateLimitWill = 200
	rateBurstWill = 100

	// limit for count
	maximumSearchCount = 100
)

// Will - an RPC entry for will related functions
type Will struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Handle
	Vault   vault.Handle
}

// New - create the will RPC entry
func New(log *logger.L, l ledger.Handle, v vault.Handle) *Will {
	return &Will{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitWill, rateBurstWill),
		Ledger:  l,
		Vault:   v,
	}
}

// ---

// SubmitArguments - a hex encoded packed transaction
type SubmitArguments struct {
	Transaction string `json:"transaction"`
}

// SubmitReply - the accepted transaction
type SubmitReply struct {
	ledger.Result
}

// Submit - verify and finalise a transaction
func (will *Will) Submit(arguments *SubmitArguments, reply *SubmitReply) error {
	if err := ratelimit.Limit(will.Limiter); nil != err {
		return err
	}

	packed, err := decode(arguments)
	if nil != err {
		return err
	}

	result, err := will.Ledger.Submit(packed)
	if nil != err {
		return err
	}

	will.Log.Infof("submit: %s  command: %s", result.TxId, result.Command)
	reply.Result = *result
	return nil
}

// Check - verify a transaction without finalising it
func (will *Will) Check(arguments *SubmitArguments, reply *SubmitReply) error {
	if err := ratelimit.Limit(will.Limiter); nil != err {
		return err
	}

	packed, err := decode(arguments)
	if nil != err {
		return err
	}

	result, err := will.Ledger.Check(packed)
	if nil != err {
		return err
	}
	reply.Result = *result
	return nil
}

func decode(arguments *SubmitArguments) (transaction.Packed, error) {
	if nil == arguments || "" == arguments.Transaction {
		return nil, fault.ErrMissingParameters
	}
	packed, err := hex.DecodeString(arguments.Transaction)
	if nil != err {
		return nil, fault.ErrNotTransactionPack
	}
	return packed, nil
}

// ---

// IdArguments - a will id
type IdArguments struct {
	Id string `json:"id"`
}

// RefArguments - a stored version
type RefArguments struct {
	Ref transaction.StateRef `json:"ref"`
}

// StateReply - a single version
type StateReply struct {
	State *vault.StateAndRef `json:"state"`
}

// Live - the unconsumed version of a will
func (will *Will) Live(arguments *IdArguments, reply *StateReply) error {
	if err := ratelimit.Limit(will.Limiter); nil != err {
		return err
	}

	if nil == arguments || "" == arguments.Id || len(arguments.Id) > willrecord.MaxIdLength {
		return fault.ErrInvalidWillId
	}

	s, err := will.Vault.Live(arguments.Id)
	if nil != err {
		return err
	}
	reply.State = s
	return nil
}

// Get - any stored version
func (will *Will) Get(arguments *RefArguments, reply *StateReply) error {
	if err := ratelimit.Limit(will.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	s, err := will.Vault.Get(arguments.Ref)
	if nil != err {
		return err
	}
	reply.State = s
	return nil
}

// ---

// SearchArguments - filter and page through stored versions
type SearchArguments struct {
	Status string `json:"status"`
	Start  uint64 `json:"start,string"`
	Count  int    `json:"count"`
}

// StatesReply - a list of versions
type StatesReply struct {
	States    []vault.StateAndRef `json:"states"`
	NextStart uint64              `json:"nextStart,string"`
}

// Search - stored versions filtered by consumption
func (will *Will) Search(arguments *SearchArguments, reply *StatesReply) error {
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if err := ratelimit.LimitN(will.Limiter, arguments.Count, maximumSearchCount); nil != err {
		return err
	}

	status, err := vault.ParseStateStatus(arguments.Status)
	if nil != err {
		return err
	}

	states, err := will.Vault.Search(status)
	if nil != err {
		return err
	}

	start := arguments.Start
	if start > uint64(len(states)) {
		start = uint64(len(states))
	}
	end := start + uint64(arguments.Count)
	if end > uint64(len(states)) {
		end = uint64(len(states))
	}

	reply.States = states[start:end]
	reply.NextStart = end
	return nil
}

// History - every version of a will, oldest first
func (will *Will) History(arguments *IdArguments, reply *StatesReply) error {
	if err := ratelimit.Limit(will.Limiter); nil != err {
		return err
	}

	if nil == arguments || "" == arguments.Id || len(arguments.Id) > willrecord.MaxIdLength {
		return fault.ErrInvalidWillId
	}

	states, err := will.Vault.History(arguments.Id)
	if nil != err {
		return err
	}
	reply.States = states
	reply.NextStart = uint64(len(states))
	return nil
}
