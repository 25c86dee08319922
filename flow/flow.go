// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package flow - client side assembly of will transactions
//
// each flow builds the transaction for one step of the will
// lifecycle, signs it with the caller's identity and runs the
// contract locally; a transaction the contract rejects is never
// returned
package flow

import (
	"github.com/bitmark-inc/willd/account"
	"github.com/bitmark-inc/willd/contract"
	"github.com/bitmark-inc/willd/digest"
	"github.com/bitmark-inc/willd/fault"
	"github.com/bitmark-inc/willd/transaction"
	"github.com/bitmark-inc/willd/vault"
	"github.com/bitmark-inc/willd/willrecord"
)

// Signed - a transaction ready for submission
type Signed struct {
	TxId        digest.Digest            `json:"txId"`
	Transaction *transaction.Transaction `json:"-"`
	Packed      transaction.Packed       `json:"packed"`
}

// RequestWill - the owner asks the verifier to validate a new will
func RequestWill(identity *account.PrivateKey, id string, willType willrecord.WillType, details string, verifier *account.Account) (*Signed, error) {
	if nil == identity || nil == verifier {
		return nil, fault.ErrMissingParticipant
	}

	record := willrecord.New(id, willType, details, willrecord.VerificationRequested, identity.Account(), verifier)
	tx := &transaction.Transaction{
		Commands: []contract.Command{contract.RequestCommand{}},
		Outputs:  []*willrecord.WillRecord{record},
	}
	return sign(identity, tx, nil, contract.DefaultPolicy)
}

// ValidateBeneficiary - the verifier confirms the beneficiaries of a live will
func ValidateBeneficiary(identity *account.PrivateKey, live *vault.StateAndRef) (*Signed, error) {
	return transition(identity, live, contract.VerifyCommand{}, willrecord.ValidatedBeneficiary, contract.DefaultPolicy)
}

// GenerateWill - the verifier produces the final will
//
// the policy must match the node's so the local check agrees with
// the one made on submission
func GenerateWill(identity *account.PrivateKey, live *vault.StateAndRef, policy contract.Policy) (*Signed, error) {
	return transition(identity, live, contract.GenerateCommand{}, willrecord.WillGenerated, policy)
}

// consume the live version and produce a copy with a new status
//
// owner and verifier are carried over unchanged
func transition(identity *account.PrivateKey, live *vault.StateAndRef, command contract.Command, status willrecord.Status, policy contract.Policy) (*Signed, error) {
	if nil == identity {
		return nil, fault.ErrMissingParticipant
	}
	if nil == live || nil == live.State {
		return nil, fault.ErrStateNotFound
	}
	if live.Consumed {
		return nil, fault.ErrStateAlreadyConsumed
	}
	if live.State.Status.IsTerminal() {
		return nil, fault.ErrWillAlreadyGenerated
	}

	role, _ := contract.RequiredSigner(command)
	if !acts(identity.Account(), live.State, role) {
		return nil, fault.ErrWrongRole
	}

	tx := &transaction.Transaction{
		Commands: []contract.Command{command},
		Inputs:   []transaction.StateRef{live.Ref},
		Outputs:  []*willrecord.WillRecord{live.State.WithStatus(status)},
	}
	return sign(identity, tx, live, policy)
}

func acts(identity *account.Account, record *willrecord.WillRecord, role contract.Role) bool {
	switch role {
	case contract.OwnerRole:
		return identity.Equal(record.Owner)
	case contract.VerifierRole:
		return identity.Equal(record.Verifier)
	default:
		return false
	}
}

func sign(identity *account.PrivateKey, tx *transaction.Transaction, live *vault.StateAndRef, policy contract.Policy) (*Signed, error) {
	err := tx.Sign(identity)
	if nil != err {
		return nil, err
	}

	resolved, err := tx.Resolve(liveResolver{live: live})
	if nil != err {
		return nil, err
	}
	err = policy.Verify(resolved)
	if nil != err {
		return nil, err
	}

	packed, err := tx.Pack()
	if nil != err {
		return nil, err
	}
	txId, err := tx.TxId()
	if nil != err {
		return nil, err
	}
	return &Signed{
		TxId:        txId,
		Transaction: tx,
		Packed:      packed,
	}, nil
}

// resolves only the single version a flow consumes
type liveResolver struct {
	live *vault.StateAndRef
}

func (r liveResolver) State(ref transaction.StateRef) (*willrecord.WillRecord, error) {
	if nil == r.live || r.live.Ref != ref {
		return nil, fault.ErrStateNotFound
	}
	if r.live.Consumed {
		return nil, fault.ErrStateAlreadyConsumed
	}
	return r.live.State, nil
}
