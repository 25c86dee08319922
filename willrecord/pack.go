// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package willrecord

import (
	"unicode/utf8"

	"github.com/bitmark-inc/willd/account"
	"github.com/bitmark-inc/willd/fault"
	"github.com/bitmark-inc/willd/util"
)

// TagType - type code for packed records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	WillRecordTag = TagType(iota)

	// this item must be last
	InvalidTag = TagType(iota)
)

// byte sizes for various fields
const (
	MaxIdLength      = 128
	maxLabelLength   = 64
	maxDetailsLength = 8192
	maxAccountLength = 128
)

// Packed - packed records are just a byte slice
type Packed []byte

// Pack - Varint64(tag) followed by fields in order as struct above
//
// the will type and status are packed as given so that the contract
// can reject them; only lengths and participants are checked here
func (record *WillRecord) Pack() (Packed, error) {
	if 0 == len(record.Id) || !utf8.ValidString(record.Id) {
		return nil, fault.ErrInvalidWillId
	}
	if len(record.Id) > MaxIdLength {
		return nil, fault.ErrWillIdTooLong
	}
	if len(record.WillType) > maxLabelLength || len(record.Status) > maxLabelLength {
		return nil, fault.ErrLabelTooLong
	}
	if len(record.Details) > maxDetailsLength {
		return nil, fault.ErrDetailsTooLong
	}
	if nil == record.Owner || nil == record.Owner.AccountInterface ||
		nil == record.Verifier || nil == record.Verifier.AccountInterface {
		return nil, fault.ErrMissingParticipant
	}

	message := util.ToVarint64(uint64(WillRecordTag))
	message = util.AppendString(message, record.Id)
	message = util.AppendString(message, string(record.WillType))
	message = util.AppendString(message, record.Details)
	message = util.AppendString(message, string(record.Status))
	message = util.AppendBytes(message, record.Owner.Bytes())
	message = util.AppendBytes(message, record.Verifier.Bytes())
	return message, nil
}

// Unpack - turn a byte slice into a record
//
// returns the record and the number of bytes consumed; both accounts
// must belong to the requested network
func (record Packed) Unpack(testnet bool) (*WillRecord, int, error) {

	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n {
		return nil, 0, fault.ErrNotWillRecordPack
	}
	if WillRecordTag != TagType(recordType) {
		return nil, 0, fault.ErrUnsupportedWireTag
	}

	id, idLength := util.ReadBytes(record[n:], 1, MaxIdLength)
	if 0 == idLength {
		return nil, 0, fault.ErrNotWillRecordPack
	}
	if !utf8.Valid(id) {
		return nil, 0, fault.ErrInvalidWillId
	}
	n += idLength

	willType, typeLength := util.ReadBytes(record[n:], 0, maxLabelLength)
	if 0 == typeLength {
		return nil, 0, fault.ErrNotWillRecordPack
	}
	n += typeLength

	details, detailsLength := util.ReadBytes(record[n:], 0, maxDetailsLength)
	if 0 == detailsLength {
		return nil, 0, fault.ErrNotWillRecordPack
	}
	n += detailsLength

	status, statusLength := util.ReadBytes(record[n:], 0, maxLabelLength)
	if 0 == statusLength {
		return nil, 0, fault.ErrNotWillRecordPack
	}
	n += statusLength

	owner, ownerLength, err := unpackAccount(record[n:], testnet)
	if nil != err {
		return nil, 0, err
	}
	n += ownerLength

	verifier, verifierLength, err := unpackAccount(record[n:], testnet)
	if nil != err {
		return nil, 0, err
	}
	n += verifierLength

	r := &WillRecord{
		Id:       string(id),
		WillType: WillType(willType),
		Details:  string(details),
		Status:   Status(status),
		Owner:    owner,
		Verifier: verifier,
	}
	return r, n, nil
}

func unpackAccount(buffer []byte, testnet bool) (*account.Account, int, error) {
	accountBytes, n := util.ReadBytes(buffer, 1, maxAccountLength)
	if 0 == n {
		return nil, 0, fault.ErrNotWillRecordPack
	}
	acc, err := account.AccountFromBytes(accountBytes)
	if nil != err {
		return nil, 0, err
	}
	if acc.IsTesting() != testnet {
		return nil, 0, fault.ErrWrongNetworkForPublicKey
	}
	return acc, n, nil
}
