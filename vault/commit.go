// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"encoding/binary"

	"github.com/bitmark-inc/willd/digest"
	"github.com/bitmark-inc/willd/fault"
	"github.com/bitmark-inc/willd/storage"
	"github.com/bitmark-inc/willd/transaction"
)

// Commit - atomically consume the inputs and store the outputs
//
// the transaction must already have passed the contract; here only
// the ledger rules are enforced:
//   no input may be unknown or already consumed
//   a will created without inputs must have an unused id
//   a will created from an input must keep the input's id
func (v *Vault) Commit(txId digest.Digest, packed transaction.Packed, tx *transaction.Transaction) error {
	v.Lock()
	defer v.Unlock()

	if storage.Pool.Transactions.Has(txId[:]) {
		return fault.ErrTransactionAlreadyExists
	}

	inputId := ""
	seen := make(map[string]struct{}, len(tx.Inputs))
	for i, ref := range tx.Inputs {
		key := string(ref.Key())
		if _, ok := seen[key]; ok {
			return fault.ErrStateAlreadyConsumed
		}
		seen[key] = struct{}{}

		record, err := v.State(ref)
		if nil != err {
			return err
		}
		if 0 == i {
			inputId = record.Id
		} else if inputId != record.Id {
			return fault.ErrWillIdMismatch
		}
	}

	newIds := make(map[string]struct{}, len(tx.Outputs))
	for _, record := range tx.Outputs {
		if 0 == len(tx.Inputs) {
			if _, ok := newIds[record.Id]; ok {
				return fault.ErrWillIdExists
			}
			if storage.Pool.WillHead.Has(willKey(record.Id)) {
				return fault.ErrWillIdExists
			}
			newIds[record.Id] = struct{}{}
		} else if inputId != record.Id {
			return fault.ErrWillIdMismatch
		}
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	trx.Put(storage.Pool.Transactions, txId[:], packed)

	for _, ref := range tx.Inputs {
		trx.Put(storage.Pool.Consumed, ref.Key(), txId[:])
	}

	counts := make(map[string]uint64)
	for i, record := range tx.Outputs {
		packedRecord, err := record.Pack()
		if nil != err {
			trx.Abort()
			return err
		}
		ref := transaction.StateRef{
			TxId:  txId,
			Index: uint64(i),
		}
		wk := willKey(record.Id)

		count, ok := counts[record.Id]
		if !ok {
			count, _ = storage.Pool.WillCount.GetN(wk)
		}

		historyKey := make([]byte, len(wk)+8)
		copy(historyKey, wk)
		binary.BigEndian.PutUint64(historyKey[len(wk):], count)

		trx.Put(storage.Pool.States, ref.Key(), packedRecord)
		trx.Put(storage.Pool.WillHead, wk, ref.Key())
		trx.Put(storage.Pool.WillHistory, historyKey, ref.Key())
		trx.PutN(storage.Pool.WillCount, wk, count+1)
		counts[record.Id] = count + 1
	}

	err = trx.Commit()
	if nil != err {
		v.log.Errorf("commit: %s  error: %s", txId, err)
		return err
	}

	// consumed versions leave the live cache, the newest output replaces them
	if 0 != len(tx.Inputs) {
		v.live.Delete(inputId)
	}
	for i, record := range tx.Outputs {
		v.live.SetDefault(record.Id, StateAndRef{
			Ref: transaction.StateRef{
				TxId:  txId,
				Index: uint64(i),
			},
			State: record,
		})
	}

	v.log.Infof("committed: %s  inputs: %d  outputs: %d", txId, len(tx.Inputs), len(tx.Outputs))
	return nil
}
