// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package flow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/willd/contract"
	"github.com/bitmark-inc/willd/fault"
	"github.com/bitmark-inc/willd/fixtures"
	"github.com/bitmark-inc/willd/flow"
	"github.com/bitmark-inc/willd/transaction"
	"github.com/bitmark-inc/willd/vault"
	"github.com/bitmark-inc/willd/willrecord"
)

// the first output of a signed transaction as a live version
func live(t *testing.T, signed *flow.Signed) *vault.StateAndRef {
	return &vault.StateAndRef{
		Ref: transaction.StateRef{
			TxId:  signed.TxId,
			Index: 0,
		},
		State: signed.Transaction.Outputs[0],
	}
}

func request(t *testing.T) *flow.Signed {
	signed, err := flow.RequestWill(fixtures.Owner, "will-1", willrecord.LivingWill, "care directives", fixtures.Verifier.Account())
	if nil != err {
		t.Fatalf("request error: %s", err)
	}
	return signed
}

func TestRequestWill(t *testing.T) {
	signed := request(t)

	tx, n, err := signed.Packed.Unpack(true)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, len(signed.Packed), n, "packed length")

	txId, err := tx.TxId()
	assert.Nil(t, err, "txId")
	assert.Equal(t, signed.TxId, txId, "txId")

	assert.Equal(t, contract.RequestCommand{}, tx.Command(), "command")
	assert.Equal(t, 0, len(tx.Inputs), "inputs")
	assert.Equal(t, 1, len(tx.Outputs), "outputs")

	record := tx.Outputs[0]
	assert.Equal(t, "will-1", record.Id, "id")
	assert.Equal(t, willrecord.VerificationRequested, record.Status, "status")
	assert.True(t, fixtures.Owner.Account().Equal(record.Owner), "owner")
	assert.True(t, fixtures.Verifier.Account().Equal(record.Verifier), "verifier")

	signers, err := tx.Signers()
	assert.Nil(t, err, "signers")
	assert.True(t, signers.Contains(fixtures.Owner.Account()), "owner signed")
}

func TestRequestWillRejected(t *testing.T) {
	_, err := flow.RequestWill(fixtures.Owner, "will-1", "Holographic Will", "", fixtures.Verifier.Account())
	assert.Equal(t, fault.ErrInvalidWillType, err, "unknown will type")

	_, err = flow.RequestWill(fixtures.Owner, "will-1", willrecord.SimpleWill, "", nil)
	assert.Equal(t, fault.ErrMissingParticipant, err, "no verifier")

	_, err = flow.RequestWill(nil, "will-1", willrecord.SimpleWill, "", fixtures.Verifier.Account())
	assert.Equal(t, fault.ErrMissingParticipant, err, "no identity")

	_, err = flow.RequestWill(fixtures.Owner, "", willrecord.SimpleWill, "", fixtures.Verifier.Account())
	assert.Equal(t, fault.ErrInvalidWillId, err, "empty id")
}

func TestValidateBeneficiary(t *testing.T) {
	requested := live(t, request(t))

	signed, err := flow.ValidateBeneficiary(fixtures.Verifier, requested)
	if !assert.Nil(t, err, "validate") {
		return
	}

	tx := signed.Transaction
	assert.Equal(t, contract.VerifyCommand{}, tx.Command(), "command")
	assert.Equal(t, []transaction.StateRef{requested.Ref}, tx.Inputs, "inputs")

	record := tx.Outputs[0]
	assert.Equal(t, willrecord.ValidatedBeneficiary, record.Status, "status")
	assert.True(t, requested.State.WithStatus(willrecord.ValidatedBeneficiary).Equal(record), "only status changes")
	assert.Equal(t, willrecord.VerificationRequested, requested.State.Status, "input untouched")
}

func TestFlowRoles(t *testing.T) {
	requested := live(t, request(t))

	_, err := flow.ValidateBeneficiary(fixtures.Owner, requested)
	assert.Equal(t, fault.ErrWrongRole, err, "owner validates")

	_, err = flow.ValidateBeneficiary(fixtures.Stranger, requested)
	assert.Equal(t, fault.ErrWrongRole, err, "stranger validates")

	_, err = flow.GenerateWill(fixtures.Owner, requested, contract.DefaultPolicy)
	assert.Equal(t, fault.ErrWrongRole, err, "owner generates")

	_, err = flow.ValidateBeneficiary(nil, requested)
	assert.Equal(t, fault.ErrMissingParticipant, err, "no identity")
}

func TestFlowInputs(t *testing.T) {
	requested := live(t, request(t))

	_, err := flow.ValidateBeneficiary(fixtures.Verifier, nil)
	assert.Equal(t, fault.ErrStateNotFound, err, "no live version")

	consumed := *requested
	consumed.Consumed = true
	_, err = flow.ValidateBeneficiary(fixtures.Verifier, &consumed)
	assert.Equal(t, fault.ErrStateAlreadyConsumed, err, "consumed version")

	validated, err := flow.ValidateBeneficiary(fixtures.Verifier, requested)
	assert.Nil(t, err, "validate")

	_, err = flow.ValidateBeneficiary(fixtures.Verifier, live(t, validated))
	assert.Equal(t, fault.ErrPreconditionNotMet, err, "validate twice")
}

func TestGenerateWill(t *testing.T) {
	requested := live(t, request(t))
	validated, err := flow.ValidateBeneficiary(fixtures.Verifier, requested)
	if !assert.Nil(t, err, "validate") {
		return
	}

	tests := []struct {
		title  string
		input  *vault.StateAndRef
		policy contract.Policy
		err    error
	}{
		{"default after request", requested, contract.DefaultPolicy, nil},
		{"default after validation", live(t, validated), contract.DefaultPolicy, fault.ErrPreconditionNotMet},
		{"validation after request", requested, contract.ValidationPolicy, fault.ErrPreconditionNotMet},
		{"validation after validation", live(t, validated), contract.ValidationPolicy, nil},
		{"zero policy after request", requested, contract.Policy{}, nil},
	}

	for _, test := range tests {
		signed, err := flow.GenerateWill(fixtures.Verifier, test.input, test.policy)
		assert.Equal(t, test.err, err, test.title)
		if nil != err {
			continue
		}
		record := signed.Transaction.Outputs[0]
		assert.Equal(t, willrecord.WillGenerated, record.Status, test.title)
		assert.True(t, test.input.State.Owner.Equal(record.Owner), "%s: owner kept", test.title)
		assert.True(t, test.input.State.Verifier.Equal(record.Verifier), "%s: verifier kept", test.title)
	}
}

func TestGeneratedWillIsFinal(t *testing.T) {
	generated, err := flow.GenerateWill(fixtures.Verifier, live(t, request(t)), contract.DefaultPolicy)
	if !assert.Nil(t, err, "generate") {
		return
	}
	final := live(t, generated)

	_, err = flow.GenerateWill(fixtures.Verifier, final, contract.DefaultPolicy)
	assert.Equal(t, fault.ErrWillAlreadyGenerated, err, "generate again")

	_, err = flow.ValidateBeneficiary(fixtures.Verifier, final)
	assert.Equal(t, fault.ErrWillAlreadyGenerated, err, "validate generated will")
}
