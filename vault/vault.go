// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vault - the record store for finalised will versions
//
// every output of a finalised transaction is kept; a version is live
// until a later transaction consumes it.  Commits are serialised and
// the first transaction to consume a version wins.
package vault

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/willd/digest"
	"github.com/bitmark-inc/willd/fault"
	"github.com/bitmark-inc/willd/storage"
	"github.com/bitmark-inc/willd/transaction"
	"github.com/bitmark-inc/willd/util"
	"github.com/bitmark-inc/willd/willrecord"
)

// live cache timing
const (
	cacheExpiration = 10 * time.Minute
	cacheCleanup    = 20 * time.Minute
)

// Handle - vault operations used by the ledger and RPC
type Handle interface {
	transaction.Resolver
	Commit(txId digest.Digest, packed transaction.Packed, tx *transaction.Transaction) error
	Get(ref transaction.StateRef) (*StateAndRef, error)
	Live(id string) (*StateAndRef, error)
	Search(status StateStatus) ([]StateAndRef, error)
	History(id string) ([]StateAndRef, error)
	Transaction(txId digest.Digest) (transaction.Packed, error)
}

// StateAndRef - a stored version and where it came from
type StateAndRef struct {
	Ref        transaction.StateRef   `json:"ref"`
	State      *willrecord.WillRecord `json:"state"`
	Consumed   bool                   `json:"consumed"`
	ConsumedBy *digest.Digest         `json:"consumedBy,omitempty"`
}

// Vault - levelDB backed record store
//
// storage must be initialised before use
type Vault struct {
	sync.Mutex
	log     *logger.L
	testnet bool
	live    *cache.Cache
}

// New - create a vault over the storage pools
func New(log *logger.L, testnet bool) *Vault {
	return &Vault{
		log:     log,
		testnet: testnet,
		live:    cache.New(cacheExpiration, cacheCleanup),
	}
}

// will key is length prefixed so one id is never a prefix of another
func willKey(id string) []byte {
	return util.AppendString(nil, id)
}

// State - the unconsumed record for an input reference
func (v *Vault) State(ref transaction.StateRef) (*willrecord.WillRecord, error) {
	s, err := v.Get(ref)
	if nil != err {
		return nil, err
	}
	if s.Consumed {
		return nil, fault.ErrStateAlreadyConsumed
	}
	return s.State, nil
}

// Get - fetch any stored version
func (v *Vault) Get(ref transaction.StateRef) (*StateAndRef, error) {
	key := ref.Key()
	packed := storage.Pool.States.Get(key)
	if nil == packed {
		return nil, fault.ErrStateNotFound
	}
	record, err := v.unpack(ref, packed)
	if nil != err {
		return nil, err
	}

	result := &StateAndRef{
		Ref:   ref,
		State: record,
	}
	if consumedBy := storage.Pool.Consumed.Get(key); nil != consumedBy {
		var d digest.Digest
		if err := digest.FromBytes(&d, consumedBy); nil != err {
			v.log.Criticalf("consumed by for: %s is corrupt: %x", ref, consumedBy)
			return nil, fault.ErrRecordCorrupt
		}
		result.Consumed = true
		result.ConsumedBy = &d
	}
	return result, nil
}

// Live - the unconsumed version of a will
func (v *Vault) Live(id string) (*StateAndRef, error) {
	if cached, ok := v.live.Get(id); ok {
		s := cached.(StateAndRef)
		return &s, nil
	}

	// a commit replaces the head and the cache entry together
	v.Lock()
	defer v.Unlock()

	refKey := storage.Pool.WillHead.Get(willKey(id))
	if nil == refKey {
		return nil, fault.ErrWillNotFound
	}
	ref, err := transaction.StateRefFromKey(refKey)
	if nil != err {
		v.log.Criticalf("head for will: %q is corrupt: %x", id, refKey)
		return nil, fault.ErrRecordCorrupt
	}
	s, err := v.Get(ref)
	if nil != err {
		return nil, err
	}
	if s.Consumed {
		return nil, fault.ErrWillNotFound
	}

	v.live.SetDefault(id, *s)
	return s, nil
}

// History - every version of a will, oldest first
func (v *Vault) History(id string) ([]StateAndRef, error) {
	refs := []transaction.StateRef{}
	err := storage.Pool.WillHistory.NewFetchCursor().Prefix(willKey(id)).Map(func(key []byte, value []byte) error {
		ref, err := transaction.StateRefFromKey(value)
		if nil != err {
			return err
		}
		refs = append(refs, ref)
		return nil
	})
	if nil != err {
		return nil, err
	}
	if 0 == len(refs) {
		return nil, fault.ErrWillNotFound
	}
	return v.collect(refs)
}

// Search - stored versions filtered by consumption
func (v *Vault) Search(status StateStatus) ([]StateAndRef, error) {
	if !status.IsValid() {
		return nil, fault.ErrInvalidStateStatus
	}

	refs := []transaction.StateRef{}
	err := storage.Pool.States.NewFetchCursor().Map(func(key []byte, value []byte) error {
		ref, err := transaction.StateRefFromKey(key)
		if nil != err {
			return err
		}
		refs = append(refs, ref)
		return nil
	})
	if nil != err {
		return nil, err
	}

	all, err := v.collect(refs)
	if nil != err {
		return nil, err
	}
	results := make([]StateAndRef, 0, len(all))
	for _, s := range all {
		if status.Matches(s.Consumed) {
			results = append(results, s)
		}
	}
	return results, nil
}

// Transaction - a finalised transaction
func (v *Vault) Transaction(txId digest.Digest) (transaction.Packed, error) {
	packed := storage.Pool.Transactions.Get(txId[:])
	if nil == packed {
		return nil, fault.ErrTransactionNotFound
	}
	return packed, nil
}

func (v *Vault) collect(refs []transaction.StateRef) ([]StateAndRef, error) {
	results := make([]StateAndRef, 0, len(refs))
	for _, ref := range refs {
		s, err := v.Get(ref)
		if nil != err {
			return nil, err
		}
		results = append(results, *s)
	}
	return results, nil
}

func (v *Vault) unpack(ref transaction.StateRef, packed []byte) (*willrecord.WillRecord, error) {
	record, n, err := willrecord.Packed(packed).Unpack(v.testnet)
	if nil != err || n != len(packed) {
		v.log.Criticalf("state: %s is corrupt: %x  error: %v", ref, packed, err)
		return nil, fault.ErrRecordCorrupt
	}
	return record, nil
}
