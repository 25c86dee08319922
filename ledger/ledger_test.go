// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/willd/account"
	"github.com/bitmark-inc/willd/background"
	"github.com/bitmark-inc/willd/contract"
	"github.com/bitmark-inc/willd/fault"
	"github.com/bitmark-inc/willd/fixtures"
	"github.com/bitmark-inc/willd/ledger"
	"github.com/bitmark-inc/willd/messagebus"
	"github.com/bitmark-inc/willd/storage"
	"github.com/bitmark-inc/willd/transaction"
	"github.com/bitmark-inc/willd/vault"
	"github.com/bitmark-inc/willd/willrecord"
)

func setup(t *testing.T, policy contract.Policy) (*ledger.Ledger, *vault.Vault, func()) {
	fixtures.SetupTestLogger()

	dir, err := os.MkdirTemp("", "willd-ledger")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	err = storage.Initialise(filepath.Join(dir, "ledger"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	log := logger.New(fixtures.LogCategory)
	v := vault.New(log, true)
	l := ledger.New(log, v, policy, true)
	return l, v, func() {
		storage.Finalise()
		_ = os.RemoveAll(dir)
		fixtures.TeardownTestLogger()
	}
}

func pack(t *testing.T, tx *transaction.Transaction, signers ...*account.PrivateKey) transaction.Packed {
	for _, signer := range signers {
		assert.Nil(t, tx.Sign(signer), "sign")
	}
	packed, err := tx.Pack()
	assert.Nil(t, err, "pack")
	return packed
}

func newWill() *willrecord.WillRecord {
	return willrecord.New("will-1", willrecord.SimpleWill, "all to Ann", willrecord.VerificationRequested, fixtures.Owner.Account(), fixtures.Verifier.Account())
}

func requestTx() *transaction.Transaction {
	return &transaction.Transaction{
		Commands: []contract.Command{contract.RequestCommand{}},
		Outputs:  []*willrecord.WillRecord{newWill()},
	}
}

func nextTx(command contract.Command, input transaction.StateRef, status willrecord.Status) *transaction.Transaction {
	return &transaction.Transaction{
		Commands: []contract.Command{command},
		Inputs:   []transaction.StateRef{input},
		Outputs:  []*willrecord.WillRecord{newWill().WithStatus(status)},
	}
}

func TestSubmitLifecycle(t *testing.T) {
	l, v, teardown := setup(t, contract.ValidationPolicy)
	defer teardown()

	requested, err := l.Submit(pack(t, requestTx(), fixtures.Owner))
	if !assert.Nil(t, err, "request") {
		return
	}
	assert.Equal(t, "request", requested.Command, "command")
	assert.Equal(t, 1, len(requested.Outputs), "outputs")

	validated, err := l.Submit(pack(t, nextTx(contract.VerifyCommand{}, requested.Outputs[0], willrecord.ValidatedBeneficiary), fixtures.Verifier))
	if !assert.Nil(t, err, "verify") {
		return
	}

	generated, err := l.Submit(pack(t, nextTx(contract.GenerateCommand{}, validated.Outputs[0], willrecord.WillGenerated), fixtures.Verifier))
	if !assert.Nil(t, err, "generate") {
		return
	}

	live, err := v.Live("will-1")
	assert.Nil(t, err, "live")
	assert.Equal(t, generated.Outputs[0], live.Ref, "live ref")
	assert.Equal(t, willrecord.WillGenerated, live.State.Status, "final status")

	history, err := v.History("will-1")
	assert.Nil(t, err, "history")
	assert.Equal(t, 3, len(history), "history length")
}

func TestSubmitRejections(t *testing.T) {
	l, _, teardown := setup(t, contract.DefaultPolicy)
	defer teardown()

	_, err := l.Submit(pack(t, requestTx(), fixtures.Verifier))
	assert.Equal(t, fault.ErrMissingOwnerSignature, err, "verifier signed request")

	bad := requestTx()
	bad.Outputs[0].WillType = "Not A Type"
	_, err = l.Submit(pack(t, bad, fixtures.Owner))
	assert.Equal(t, fault.ErrInvalidWillType, err, "bad type")

	requested, err := l.Submit(pack(t, requestTx(), fixtures.Owner))
	if !assert.Nil(t, err, "request") {
		return
	}

	_, err = l.Submit(pack(t, nextTx(contract.VerifyCommand{}, requested.Outputs[0], willrecord.ValidatedBeneficiary), fixtures.Owner))
	assert.Equal(t, fault.ErrMissingVerifierSignature, err, "owner signed verify")

	_, err = l.Submit(pack(t, nextTx(contract.VerifyCommand{}, requested.Outputs[0], willrecord.ValidatedBeneficiary), fixtures.Verifier))
	assert.Nil(t, err, "verify")

	_, err = l.Submit(pack(t, nextTx(contract.GenerateCommand{}, requested.Outputs[0], willrecord.WillGenerated), fixtures.Verifier))
	assert.Equal(t, fault.ErrStateAlreadyConsumed, err, "consumed input")

	_, err = l.Submit(pack(t, requestTx(), fixtures.Owner))
	assert.Equal(t, fault.ErrTransactionAlreadyExists, err, "same request again")

	reused := requestTx()
	reused.Outputs[0].Details = "all to Bea"
	_, err = l.Submit(pack(t, reused, fixtures.Owner))
	assert.Equal(t, fault.ErrWillIdExists, err, "id reused")
}

func TestSubmitDefaultPolicyGenerate(t *testing.T) {
	l, _, teardown := setup(t, contract.DefaultPolicy)
	defer teardown()

	requested, err := l.Submit(pack(t, requestTx(), fixtures.Owner))
	if !assert.Nil(t, err, "request") {
		return
	}
	_, err = l.Submit(pack(t, nextTx(contract.GenerateCommand{}, requested.Outputs[0], willrecord.WillGenerated), fixtures.Verifier))
	assert.Nil(t, err, "generate directly after request")
}

func TestSubmitMalformed(t *testing.T) {
	l, _, teardown := setup(t, contract.DefaultPolicy)
	defer teardown()

	packed := pack(t, requestTx(), fixtures.Owner)

	_, err := l.Submit(append(packed, 0x00))
	assert.Equal(t, fault.ErrNotTransactionPack, err, "trailing data")

	_, err = l.Submit(transaction.Packed{})
	assert.Equal(t, fault.ErrNotTransactionPack, err, "empty")

	// corrupt the last signature byte
	corrupt := append(transaction.Packed{}, packed...)
	corrupt[len(corrupt)-1] ^= 0xff
	_, err = l.Submit(corrupt)
	assert.Equal(t, fault.ErrInvalidSignature, err, "bad signature")

	none := requestTx()
	none.Commands = nil
	_, err = l.Submit(pack(t, none, fixtures.Owner))
	assert.Equal(t, fault.ErrMalformedTransaction, err, "no command")

	unknown := nextTx(contract.VerifyCommand{}, transaction.StateRef{}, willrecord.ValidatedBeneficiary)
	_, err = l.Submit(pack(t, unknown, fixtures.Verifier))
	assert.Equal(t, fault.ErrStateNotFound, err, "unknown input")
}

func TestSubmitShapeBeforeInputs(t *testing.T) {
	l, v, teardown := setup(t, contract.DefaultPolicy)
	defer teardown()

	two := requestTx()
	two.Commands = append(two.Commands, contract.UnknownCommand(99))
	_, err := l.Submit(pack(t, two, fixtures.Owner))
	assert.Equal(t, fault.ErrMalformedTransaction, err, "two commands, one unknown")

	// tag followed by a command count of nine
	nine := transaction.Packed{transaction.TransactionTag, 0x09}
	for i := 0; i < 9; i += 1 {
		nine = append(nine, byte(contract.RequestTag))
	}
	_, err = l.Submit(nine)
	assert.Equal(t, fault.ErrMalformedTransaction, err, "nine commands")

	single := requestTx()
	single.Commands = []contract.Command{contract.UnknownCommand(99)}
	_, err = l.Submit(pack(t, single, fixtures.Owner))
	assert.Equal(t, fault.ErrUnrecognizedCommand, err, "unknown command")

	dangling := requestTx()
	dangling.Inputs = []transaction.StateRef{{Index: 3}}
	_, err = l.Check(pack(t, dangling, fixtures.Owner))
	assert.Equal(t, fault.ErrWrongInputCount, err, "check request with input")
	_, err = l.Submit(pack(t, dangling, fixtures.Owner))
	assert.Equal(t, fault.ErrWrongInputCount, err, "submit request with input")

	twoOutputs := nextTx(contract.VerifyCommand{}, transaction.StateRef{}, willrecord.ValidatedBeneficiary)
	twoOutputs.Outputs = append(twoOutputs.Outputs, newWill())
	_, err = l.Submit(pack(t, twoOutputs, fixtures.Verifier))
	assert.Equal(t, fault.ErrWrongOutputCount, err, "verify with two outputs")

	_, err = v.Live("will-1")
	assert.Equal(t, fault.ErrWillNotFound, err, "nothing committed")
}

func TestCheckDoesNotCommit(t *testing.T) {
	l, v, teardown := setup(t, contract.DefaultPolicy)
	defer teardown()

	packed := pack(t, requestTx(), fixtures.Owner)

	result, err := l.Check(packed)
	assert.Nil(t, err, "check")
	assert.Equal(t, "request", result.Command, "command")

	_, err = v.Live("will-1")
	assert.Equal(t, fault.ErrWillNotFound, err, "not committed")

	_, err = l.Submit(packed)
	assert.Nil(t, err, "submit after check")

	requested, err := l.Check(packed)
	assert.Nil(t, err, "check after submit")

	_, err = l.Submit(pack(t, nextTx(contract.VerifyCommand{}, requested.Outputs[0], willrecord.ValidatedBeneficiary), fixtures.Verifier))
	assert.Nil(t, err, "verify")

	_, err = l.Check(pack(t, nextTx(contract.GenerateCommand{}, requested.Outputs[0], willrecord.WillGenerated), fixtures.Verifier))
	assert.Equal(t, fault.ErrStateAlreadyConsumed, err, "check consumed input")
}

func TestMonitor(t *testing.T) {
	l, _, teardown := setup(t, contract.DefaultPolicy)
	defer teardown()

	// discard messages left by earlier tests
	queue := messagebus.Bus.Finalised.Chan()
drain:
	for {
		select {
		case <-queue:
		default:
			break drain
		}
	}

	monitor := ledger.NewMonitor(logger.New(fixtures.LogCategory))
	processes := background.Start(background.Processes{monitor}, nil)
	defer processes.Stop()

	_, err := l.Submit(pack(t, requestTx(), fixtures.Owner))
	assert.Nil(t, err, "request")

	deadline := time.Now().Add(2 * time.Second)
	for monitor.Finalised() < 1 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, uint64(1), monitor.Finalised(), "finalised count")
}
