// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"net"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/willd/chain"
	"github.com/bitmark-inc/willd/contract"
	"github.com/bitmark-inc/willd/counter"
	"github.com/bitmark-inc/willd/fault"
	"github.com/bitmark-inc/willd/fixtures"
	"github.com/bitmark-inc/willd/flow"
	"github.com/bitmark-inc/willd/ledger"
	"github.com/bitmark-inc/willd/rpc/server"
	"github.com/bitmark-inc/willd/storage"
	"github.com/bitmark-inc/willd/transaction"
	"github.com/bitmark-inc/willd/vault"
	"github.com/bitmark-inc/willd/willrecord"
)

// a client connected to an in-process node over a pipe
func setup(t *testing.T, policy contract.Policy) (*Client, *bytes.Buffer, func()) {
	fixtures.SetupTestLogger()

	dir, err := os.MkdirTemp("", "will-cli-rpccalls")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	err = storage.Initialise(filepath.Join(dir, "rpccalls"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	log := logger.New(fixtures.LogCategory)
	v := vault.New(log, true)
	count := counter.Counter(1)

	s := server.Create(log, "test", chain.Testing, policy, server.Handles{
		Ledger:     ledger.New(log, v, policy, true),
		Vault:      v,
		Statistics: ledger.NewMonitor(log),
	}, &count)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	verbose := &bytes.Buffer{}
	client := newClient(clientConn, true, true, verbose)

	return client, verbose, func() {
		client.Close()
		storage.Finalise()
		_ = os.RemoveAll(dir)
		fixtures.TeardownTestLogger()
	}
}

func TestLifecycle(t *testing.T) {
	client, verbose, teardown := setup(t, contract.ValidationPolicy)
	defer teardown()

	policy, err := client.Policy()
	if !assert.Nil(t, err, "policy") {
		return
	}
	assert.Equal(t, contract.ValidationPolicy, policy, "node policy")

	request, err := flow.RequestWill(fixtures.Owner, "will-rpc", willrecord.EstateWill, "house to Bea", fixtures.Verifier.Account())
	if !assert.Nil(t, err, "request flow") {
		return
	}
	reply, err := client.Submit(request)
	if !assert.Nil(t, err, "submit request") {
		return
	}
	assert.Equal(t, request.TxId, reply.TxId, "request txId")
	assert.Equal(t, "request", reply.Command, "request command")
	assert.NotEqual(t, 0, verbose.Len(), "verbose output")

	_, err = client.Submit(request)
	assert.Equal(t, fault.ErrTransactionAlreadyExists.Error(), errorText(err), "resubmit")

	live, err := client.Live("will-rpc")
	if !assert.Nil(t, err, "live after request") {
		return
	}
	assert.Equal(t, willrecord.VerificationRequested, live.State.Status, "requested")

	// generate must wait for validation under this policy
	_, err = flow.GenerateWill(fixtures.Verifier, live, policy)
	assert.Equal(t, fault.ErrPreconditionNotMet, err, "generate too early")

	validate, err := flow.ValidateBeneficiary(fixtures.Verifier, live)
	if !assert.Nil(t, err, "validate flow") {
		return
	}
	_, err = client.Submit(validate)
	if !assert.Nil(t, err, "submit validate") {
		return
	}

	live, err = client.Live("will-rpc")
	if !assert.Nil(t, err, "live after validate") {
		return
	}
	generate, err := flow.GenerateWill(fixtures.Verifier, live, policy)
	if !assert.Nil(t, err, "generate flow") {
		return
	}
	reply, err = client.Submit(generate)
	if !assert.Nil(t, err, "submit generate") {
		return
	}
	assert.Equal(t, "generate", reply.Command, "generate command")

	history, err := client.History("will-rpc")
	if assert.Nil(t, err, "history") && assert.Equal(t, 3, len(history.States), "history length") {
		assert.Equal(t, willrecord.VerificationRequested, history.States[0].State.Status, "first")
		assert.Equal(t, willrecord.ValidatedBeneficiary, history.States[1].State.Status, "second")
		assert.Equal(t, willrecord.WillGenerated, history.States[2].State.Status, "last")
		assert.True(t, history.States[0].Consumed, "first consumed")
		assert.False(t, history.States[2].Consumed, "last live")
	}

	first, err := client.Get(transaction.StateRef{TxId: request.TxId, Index: 0})
	if assert.Nil(t, err, "get consumed version") {
		assert.True(t, first.Consumed, "get consumed")
		assert.Equal(t, willrecord.VerificationRequested, first.State.Status, "get status")
	}

	consumed, err := client.Search(&SearchData{Status: "consumed", Count: 10})
	if assert.Nil(t, err, "search consumed") {
		assert.Equal(t, 2, len(consumed.States), "consumed count")
	}

	page, err := client.Search(&SearchData{Status: "all", Start: 0, Count: 2})
	if assert.Nil(t, err, "search page") {
		assert.Equal(t, 2, len(page.States), "page size")
		assert.Equal(t, uint64(2), page.NextStart, "next start")
	}

	info, err := client.GetInfo()
	if assert.Nil(t, err, "info") {
		assert.Equal(t, chain.Testing, info.Chain, "chain")
		assert.Equal(t, string(willrecord.ValidatedBeneficiary), info.GeneratePrecondition, "precondition")
	}
}

func TestLiveMissing(t *testing.T) {
	client, _, teardown := setup(t, contract.DefaultPolicy)
	defer teardown()

	_, err := client.Live("no-such-will")
	assert.Equal(t, fault.ErrWillNotFound.Error(), errorText(err), "missing will")

	_, err = client.Search(&SearchData{Status: "live", Count: 1})
	assert.Equal(t, fault.ErrInvalidStateStatus.Error(), errorText(err), "bad status")
}

// errors cross the connection as text
func errorText(err error) string {
	if nil == err {
		return ""
	}
	return err.Error()
}
