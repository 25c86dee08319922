// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/hex"

	"github.com/bitmark-inc/willd/flow"
	"github.com/bitmark-inc/willd/rpc/will"
	"github.com/bitmark-inc/willd/transaction"
	"github.com/bitmark-inc/willd/vault"
)

// Submit - send a signed transaction for finalisation
func (client *Client) Submit(signed *flow.Signed) (*will.SubmitReply, error) {
	arguments := will.SubmitArguments{
		Transaction: hex.EncodeToString(signed.Packed),
	}

	if client.verbose {
		printJson(client.handle, signed)
	}

	var reply will.SubmitReply
	if err := client.client.Call("Will.Submit", &arguments, &reply); err != nil {
		return nil, err
	}

	if client.verbose {
		printJson(client.handle, reply)
	}
	return &reply, nil
}

// Live - fetch the unconsumed version of a will
func (client *Client) Live(id string) (*vault.StateAndRef, error) {
	arguments := will.IdArguments{
		Id: id,
	}

	var reply will.StateReply
	if err := client.client.Call("Will.Live", &arguments, &reply); err != nil {
		return nil, err
	}

	if client.verbose {
		printJson(client.handle, reply)
	}
	return reply.State, nil
}

// Get - fetch any stored version, consumed or not
func (client *Client) Get(ref transaction.StateRef) (*vault.StateAndRef, error) {
	arguments := will.RefArguments{
		Ref: ref,
	}

	var reply will.StateReply
	if err := client.client.Call("Will.Get", &arguments, &reply); err != nil {
		return nil, err
	}
	return reply.State, nil
}

// History - every version of a will, oldest first
func (client *Client) History(id string) (*will.StatesReply, error) {
	arguments := will.IdArguments{
		Id: id,
	}

	var reply will.StatesReply
	if err := client.client.Call("Will.History", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// SearchData - filter and page
type SearchData struct {
	Status string
	Start  uint64
	Count  int
}

// Search - stored versions matching a consumption filter
func (client *Client) Search(searchConfig *SearchData) (*will.StatesReply, error) {
	arguments := will.SearchArguments{
		Status: searchConfig.Status,
		Start:  searchConfig.Start,
		Count:  searchConfig.Count,
	}

	if client.verbose {
		printJson(client.handle, arguments)
	}

	var reply will.StatesReply
	if err := client.client.Call("Will.Search", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
