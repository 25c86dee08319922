// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - accept signed transactions into the vault
package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/willd/contract"
	"github.com/bitmark-inc/willd/digest"
	"github.com/bitmark-inc/willd/fault"
	"github.com/bitmark-inc/willd/messagebus"
	"github.com/bitmark-inc/willd/transaction"
	"github.com/bitmark-inc/willd/vault"
)

// FinalisedCommand - messagebus command sent after each commit
const FinalisedCommand = "finalised"

// Handle - ledger operations used by RPC
type Handle interface {
	Submit(packed transaction.Packed) (*Result, error)
	Check(packed transaction.Packed) (*Result, error)
}

// Result - outcome of an accepted transaction
type Result struct {
	TxId    digest.Digest          `json:"txId"`
	Command string                 `json:"command"`
	Outputs []transaction.StateRef `json:"outputs"`
}

// Ledger - single node notary over a vault
type Ledger struct {
	log     *logger.L
	vault   vault.Handle
	policy  contract.Policy
	testnet bool
}

// New - create a ledger
func New(log *logger.L, v vault.Handle, policy contract.Policy, testnet bool) *Ledger {
	return &Ledger{
		log:     log,
		vault:   v,
		policy:  policy,
		testnet: testnet,
	}
}

// Submit - verify and commit a packed transaction
func (ledger *Ledger) Submit(packed transaction.Packed) (*Result, error) {
	tx, result, err := ledger.verify(packed)
	if nil != err {
		return nil, err
	}

	err = ledger.vault.Commit(result.TxId, packed, tx)
	if nil != err {
		ledger.log.Warnf("commit: %s  error: %s", result.TxId, err)
		return nil, err
	}

	messagebus.Bus.Finalised.Send(FinalisedCommand, result.TxId[:])
	ledger.log.Infof("finalised: %s  command: %s", result.TxId, result.Command)
	return result, nil
}

// Check - verify without committing
func (ledger *Ledger) Check(packed transaction.Packed) (*Result, error) {
	_, result, err := ledger.verify(packed)
	return result, err
}

func (ledger *Ledger) verify(packed transaction.Packed) (*transaction.Transaction, *Result, error) {
	tx, n, err := packed.Unpack(ledger.testnet)
	if nil != err {
		ledger.log.Debugf("unpack error: %s", err)
		return nil, nil, err
	}
	if n != len(packed) {
		return nil, nil, fault.ErrNotTransactionPack
	}

	// shape first, so a malformed transaction never touches the vault
	err = ledger.policy.CheckShape(tx.Commands, len(tx.Inputs), len(tx.Outputs))
	if nil != err {
		ledger.log.Infof("rejected: %s", err)
		return nil, nil, err
	}

	resolved, err := tx.Resolve(ledger.vault)
	if nil != err {
		ledger.log.Debugf("resolve error: %s", err)
		return nil, nil, err
	}

	err = ledger.policy.Verify(resolved)
	if nil != err {
		ledger.log.Infof("rejected: %s", err)
		return nil, nil, err
	}

	txId, err := tx.TxId()
	if nil != err {
		return nil, nil, err
	}

	result := &Result{
		TxId:    txId,
		Command: tx.Command().String(),
		Outputs: make([]transaction.StateRef, len(tx.Outputs)),
	}
	for i := range tx.Outputs {
		result.Outputs[i] = transaction.StateRef{
			TxId:  txId,
			Index: uint64(i),
		}
	}
	return tx, result, nil
}
