// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/willd/fault"
)

// Transaction - a set of writes applied atomically
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
}

type batchTransaction struct {
	sync.Mutex
	inUse bool
	batch *leveldb.Batch
}

// NewDBTransaction - start a write batch
//
// only one batch may be open at a time
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	trx := poolData.trx
	poolData.RUnlock()

	if nil == trx {
		return nil, fault.ErrDatabaseIsNotSet
	}

	trx.Lock()
	defer trx.Unlock()

	if trx.inUse {
		return nil, fault.ErrTransactionInUse
	}
	trx.inUse = true
	trx.batch.Reset()
	return trx, nil
}

func (t *batchTransaction) Put(p *PoolHandle, key []byte, value []byte) {
	t.batch.Put(p.prefixKey(key), value)
}

func (t *batchTransaction) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.batch.Put(p.prefixKey(key), buffer)
}

func (t *batchTransaction) Delete(p *PoolHandle, key []byte) {
	t.batch.Delete(p.prefixKey(key))
}

// Commit - write the batch and release it
func (t *batchTransaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	poolData.RLock()
	defer poolData.RUnlock()

	t.inUse = false
	if nil == poolData.database {
		t.batch.Reset()
		return fault.ErrDatabaseIsNotSet
	}
	err := poolData.database.Write(t.batch, nil)
	t.batch.Reset()
	return err
}

// Abort - discard the batch and release it
func (t *batchTransaction) Abort() {
	t.Lock()
	defer t.Unlock()

	t.batch.Reset()
	t.inUse = false
}
