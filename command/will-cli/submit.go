// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/willd/command/will-cli/rpccalls"
	"github.com/bitmark-inc/willd/contract"
	"github.com/bitmark-inc/willd/flow"
	"github.com/bitmark-inc/willd/ledger"
	"github.com/bitmark-inc/willd/vault"
)

type submitResult struct {
	Id string `json:"id"`
	ledger.Result
}

// send a signed transaction and print what the node accepted
func submit(m *metadata, id string, signed *flow.Signed) error {
	client, err := rpccalls.NewClient(m.testnet, m.connect(), m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Submit(signed)
	if nil != err {
		return err
	}

	return printJson(m.w, submitResult{
		Id:     id,
		Result: response.Result,
	})
}

// a transition flow from the live version of a will
type transitionFlow func(live *vault.StateAndRef, policy contract.Policy) (*flow.Signed, error)

// fetch the live version and the node policy then build, sign and submit
func transition(m *metadata, id string, build transitionFlow) error {
	client, err := rpccalls.NewClient(m.testnet, m.connect(), m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	live, err := client.Live(id)
	if nil != err {
		return err
	}

	policy, err := client.Policy()
	if nil != err {
		return err
	}

	signed, err := build(live, policy)
	if nil != err {
		return err
	}

	response, err := client.Submit(signed)
	if nil != err {
		return err
	}

	return printJson(m.w, submitResult{
		Id:     id,
		Result: response.Result,
	})
}
