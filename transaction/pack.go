// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/willd/account"
	"github.com/bitmark-inc/willd/contract"
	"github.com/bitmark-inc/willd/digest"
	"github.com/bitmark-inc/willd/fault"
	"github.com/bitmark-inc/willd/util"
	"github.com/bitmark-inc/willd/willrecord"
)

// Body - the signed part of the transaction
//
// Varint64(tag), commands, input references, packed outputs
func (tx *Transaction) Body() ([]byte, error) {
	if len(tx.Commands) > MaxCommands {
		return nil, fault.ErrMalformedTransaction
	}
	if len(tx.Inputs) > MaxInputs {
		return nil, fault.ErrTooManyInputs
	}
	if len(tx.Outputs) > MaxOutputs {
		return nil, fault.ErrTooManyOutputs
	}

	message := util.ToVarint64(TransactionTag)

	message = util.AppendUint64(message, uint64(len(tx.Commands)))
	for _, command := range tx.Commands {
		if nil == command {
			return nil, fault.ErrUnrecognizedCommand
		}
		message = util.AppendUint64(message, uint64(command.Tag()))
	}

	message = util.AppendUint64(message, uint64(len(tx.Inputs)))
	for _, ref := range tx.Inputs {
		message = append(message, ref.TxId[:]...)
		message = util.AppendUint64(message, ref.Index)
	}

	message = util.AppendUint64(message, uint64(len(tx.Outputs)))
	for _, record := range tx.Outputs {
		if nil == record {
			return nil, fault.ErrNotAWillRecord
		}
		packed, err := record.Pack()
		if nil != err {
			return nil, err
		}
		message = util.AppendBytes(message, packed)
	}
	return message, nil
}

// Pack - body followed by the signatures
func (tx *Transaction) Pack() (Packed, error) {
	message, err := tx.Body()
	if nil != err {
		return nil, err
	}
	if len(tx.Signatures) > MaxSignatures {
		return nil, fault.ErrInvalidCount
	}

	message = util.AppendUint64(message, uint64(len(tx.Signatures)))
	for _, s := range tx.Signatures {
		if nil == s.Account || nil == s.Account.AccountInterface {
			return nil, fault.ErrInvalidSignature
		}
		if len(s.Signature) > maxSignatureLength {
			return nil, fault.ErrSignatureTooLong
		}
		message = util.AppendBytes(message, s.Account.Bytes())
		message = util.AppendBytes(message, s.Signature)
	}
	return message, nil
}

// Unpack - turn a byte slice into a transaction
//
// every account must belong to the requested network
func (packed Packed) Unpack(testnet bool) (t *Transaction, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			t = nil
			n = 0
			e = fault.ErrNotTransactionPack
		}
	}()

	tag, n := util.FromVarint64(packed)
	if 0 == n {
		return nil, 0, fault.ErrNotTransactionPack
	}
	if TransactionTag != tag {
		return nil, 0, fault.ErrUnsupportedWireTag
	}

	tx := &Transaction{}

	// commands: any code decodes, the contract decides what is acceptable
	commandCount, count := util.FromVarint64(packed[n:])
	if 0 == count {
		return nil, 0, fault.ErrNotTransactionPack
	}
	if commandCount > MaxCommands {
		return nil, 0, fault.ErrMalformedTransaction
	}
	n += count
	for i := uint64(0); i < commandCount; i += 1 {
		commandTag, count := util.FromVarint64(packed[n:])
		if 0 == count {
			return nil, 0, fault.ErrNotTransactionPack
		}
		n += count
		tx.Commands = append(tx.Commands, contract.DecodeCommand(contract.CommandTag(commandTag)))
	}

	// inputs
	inputCount, count := util.ClippedVarint64(packed[n:], 0, MaxInputs)
	if 0 == count {
		return nil, 0, fault.ErrNotTransactionPack
	}
	n += count
	for i := 0; i < inputCount; i += 1 {
		if len(packed) < n+digest.Length {
			return nil, 0, fault.ErrNotTransactionPack
		}
		ref := StateRef{}
		err := digest.FromBytes(&ref.TxId, packed[n:n+digest.Length])
		if nil != err {
			return nil, 0, err
		}
		n += digest.Length
		index, count := util.FromVarint64(packed[n:])
		if 0 == count {
			return nil, 0, fault.ErrNotTransactionPack
		}
		n += count
		ref.Index = index
		tx.Inputs = append(tx.Inputs, ref)
	}

	// outputs
	outputCount, count := util.ClippedVarint64(packed[n:], 0, MaxOutputs)
	if 0 == count {
		return nil, 0, fault.ErrNotTransactionPack
	}
	n += count
	for i := 0; i < outputCount; i += 1 {
		buffer, count := util.ReadBytes(packed[n:], 1, 16384)
		if 0 == count {
			return nil, 0, fault.ErrNotTransactionPack
		}
		record, recordLength, err := willrecord.Packed(buffer).Unpack(testnet)
		if nil != err {
			return nil, 0, err
		}
		if recordLength != len(buffer) {
			return nil, 0, fault.ErrNotWillRecordPack
		}
		n += count
		tx.Outputs = append(tx.Outputs, record)
	}

	// signatures
	signatureCount, count := util.ClippedVarint64(packed[n:], 0, MaxSignatures)
	if 0 == count {
		return nil, 0, fault.ErrNotTransactionPack
	}
	n += count
	for i := 0; i < signatureCount; i += 1 {
		accountBytes, count := util.ReadBytes(packed[n:], 1, maxAccountLength)
		if 0 == count {
			return nil, 0, fault.ErrNotTransactionPack
		}
		n += count
		signer, err := account.AccountFromBytes(accountBytes)
		if nil != err {
			return nil, 0, err
		}
		if signer.IsTesting() != testnet {
			return nil, 0, fault.ErrWrongNetworkForPublicKey
		}

		signature, count := util.ReadBytes(packed[n:], 1, maxSignatureLength)
		if 0 == count {
			return nil, 0, fault.ErrNotTransactionPack
		}
		n += count
		tx.Signatures = append(tx.Signatures, Signature{
			Account:   signer,
			Signature: signature,
		})
	}

	return tx, n, nil
}
