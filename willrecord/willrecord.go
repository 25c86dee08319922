// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package willrecord - the versioned will record
//
// a record version is immutable once created; a transition consumes
// one version and produces the next, which carries the same id
package willrecord

import (
	"strings"

	"github.com/bitmark-inc/willd/account"
)

// WillType - the legal form of the will
type WillType string

// the accepted will types, matched without regard to case
const (
	LivingWill            = WillType("Living Will")
	EstateWill            = WillType("Estate Will")
	TestamentaryTrustWill = WillType("Testamentary Trust Will")
	PourOverWill          = WillType("Pour-Over Will")
	SimpleWill            = WillType("Simple Will")
	JointWill             = WillType("Joint Will")
	DeathbedWill          = WillType("Deathbed Will")
)

// all accepted types in their canonical casing
var acceptedTypes = []WillType{
	LivingWill,
	EstateWill,
	TestamentaryTrustWill,
	PourOverWill,
	SimpleWill,
	JointWill,
	DeathbedWill,
}

// AcceptedTypes - the canonical spelling of every accepted type
func AcceptedTypes() []WillType {
	return append([]WillType{}, acceptedTypes...)
}

// IsValid - true if the type is in the accepted set ignoring case
func (t WillType) IsValid() bool {
	for _, accepted := range acceptedTypes {
		if strings.EqualFold(string(t), string(accepted)) {
			return true
		}
	}
	return false
}

// Status - the lifecycle position of a record version
type Status string

// statuses are compared exactly
const (
	NoStatus              = Status("")
	VerificationRequested = Status("Verification Requested")
	ValidatedBeneficiary  = Status("Validated Beneficiary")
	WillGenerated         = Status("Will Generated")
)

// IsTerminal - no transition can follow this status
func (s Status) IsTerminal() bool {
	return WillGenerated == s
}

// WillRecord - one version of a will
type WillRecord struct {
	Id       string           `json:"id"`       // utf-8
	WillType WillType         `json:"willType"` // utf-8, casing preserved
	Details  string           `json:"details"`  // utf-8, free form
	Status   Status           `json:"status"`   // utf-8
	Owner    *account.Account `json:"owner"`    // base58
	Verifier *account.Account `json:"verifier"` // base58
}

// New - construct a record version
//
// construction never fails, legality is decided by the contract
func New(id string, willType WillType, details string, status Status, owner *account.Account, verifier *account.Account) *WillRecord {
	return &WillRecord{
		Id:       id,
		WillType: willType,
		Details:  details,
		Status:   status,
		Owner:    owner,
		Verifier: verifier,
	}
}

// Participants - the parties to this record, owner first
func (record *WillRecord) Participants() []*account.Account {
	return []*account.Account{record.Owner, record.Verifier}
}

// WithStatus - the next version of this record carrying a new status
func (record *WillRecord) WithStatus(status Status) *WillRecord {
	next := *record
	next.Status = status
	return &next
}

// Equal - field by field comparison, strings compared exactly
func (record *WillRecord) Equal(other *WillRecord) bool {
	if nil == record || nil == other {
		return record == other
	}
	return record.Id == other.Id &&
		record.WillType == other.WillType &&
		record.Details == other.Details &&
		record.Status == other.Status &&
		record.Owner.Equal(other.Owner) &&
		record.Verifier.Equal(other.Verifier)
}
