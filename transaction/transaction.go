// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - the signed wire form of a will transition
package transaction

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/willd/account"
	"github.com/bitmark-inc/willd/contract"
	"github.com/bitmark-inc/willd/digest"
	"github.com/bitmark-inc/willd/fault"
	"github.com/bitmark-inc/willd/willrecord"
)

// TransactionTag - leading Varint64 of every packed transaction
const TransactionTag = 0x57

// limits on packed fields
const (
	MaxCommands        = 8
	MaxInputs          = 16
	MaxOutputs         = 16
	MaxSignatures      = 16
	maxSignatureLength = 1024
	maxAccountLength   = 128
)

// Packed - packed transactions are just a byte slice
type Packed []byte

// StateRef - one output of a finalised transaction
type StateRef struct {
	TxId  digest.Digest `json:"txId"`
	Index uint64        `json:"index"`
}

// Key - fixed length binary form, orders by transaction then index
func (ref StateRef) Key() []byte {
	key := make([]byte, digest.Length+8)
	copy(key, ref.TxId[:])
	binary.BigEndian.PutUint64(key[digest.Length:], ref.Index)
	return key
}

// String - txId:index
func (ref StateRef) String() string {
	return fmt.Sprintf("%s:%d", ref.TxId, ref.Index)
}

// StateRefFromKey - inverse of Key
func StateRefFromKey(key []byte) (StateRef, error) {
	ref := StateRef{}
	if digest.Length+8 != len(key) {
		return ref, fault.ErrInvalidIndex
	}
	copy(ref.TxId[:], key[:digest.Length])
	ref.Index = binary.BigEndian.Uint64(key[digest.Length:])
	return ref, nil
}

// ParseStateRef - inverse of String
func ParseStateRef(s string) (StateRef, error) {
	ref := StateRef{}
	parts := strings.Split(s, ":")
	if 2 != len(parts) {
		return ref, fault.ErrInvalidIndex
	}
	err := ref.TxId.UnmarshalText([]byte(parts[0]))
	if nil != err {
		return ref, fault.ErrInvalidDigest
	}
	ref.Index, err = strconv.ParseUint(parts[1], 10, 64)
	if nil != err {
		return ref, fault.ErrInvalidIndex
	}
	return ref, nil
}

// Signature - one party's signature over the body
type Signature struct {
	Account   *account.Account  `json:"account"`
	Signature account.Signature `json:"signature"`
}

// Transaction - the unpacked transaction
type Transaction struct {
	Commands   []contract.Command
	Inputs     []StateRef
	Outputs    []*willrecord.WillRecord
	Signatures []Signature
}

// Resolver - look up the record an input refers to
type Resolver interface {
	State(ref StateRef) (*willrecord.WillRecord, error)
}

// TxId - SHA3-256 of the body
func (tx *Transaction) TxId() (digest.Digest, error) {
	body, err := tx.Body()
	if nil != err {
		return digest.Digest{}, err
	}
	return digest.NewDigest(body), nil
}

// Sign - append a signature over the body
func (tx *Transaction) Sign(privateKey *account.PrivateKey) error {
	body, err := tx.Body()
	if nil != err {
		return err
	}
	if len(tx.Signatures) >= MaxSignatures {
		return fault.ErrInvalidCount
	}
	tx.Signatures = append(tx.Signatures, Signature{
		Account:   privateKey.Account(),
		Signature: privateKey.Sign(body),
	})
	return nil
}

// Signers - accounts whose signatures verify against the body
//
// any signature that fails makes the whole transaction invalid
func (tx *Transaction) Signers() (contract.Signers, error) {
	body, err := tx.Body()
	if nil != err {
		return nil, err
	}
	signers := contract.NewSigners()
	for _, s := range tx.Signatures {
		if nil == s.Account || nil == s.Account.AccountInterface {
			return nil, fault.ErrInvalidSignature
		}
		err := s.Account.CheckSignature(body, s.Signature)
		if nil != err {
			return nil, err
		}
		signers.Add(s.Account)
	}
	return signers, nil
}

// Resolve - build the transaction the contract verifies
func (tx *Transaction) Resolve(resolver Resolver) (*contract.Transaction, error) {
	signers, err := tx.Signers()
	if nil != err {
		return nil, err
	}

	inputs := make([]contract.State, 0, len(tx.Inputs))
	for _, ref := range tx.Inputs {
		record, err := resolver.State(ref)
		if nil != err {
			return nil, err
		}
		inputs = append(inputs, record)
	}

	outputs := make([]contract.State, 0, len(tx.Outputs))
	for _, record := range tx.Outputs {
		outputs = append(outputs, record)
	}

	return &contract.Transaction{
		Inputs:   inputs,
		Outputs:  outputs,
		Commands: tx.Commands,
		Signers:  signers,
	}, nil
}

// Command - the single command, nil if there is not exactly one
func (tx *Transaction) Command() contract.Command {
	if 1 != len(tx.Commands) {
		return nil
	}
	return tx.Commands[0]
}
