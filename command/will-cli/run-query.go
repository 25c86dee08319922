// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/willd/command/will-cli/rpccalls"
	"github.com/bitmark-inc/willd/vault"
)

func runLive(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkWillId(c.String("id"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.testnet, m.connect(), m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	live, err := client.Live(id)
	if nil != err {
		return err
	}

	return printJson(m.w, live)
}

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ref, err := checkStateRef(c.String("ref"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.testnet, m.connect(), m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	state, err := client.Get(ref)
	if nil != err {
		return err
	}

	return printJson(m.w, state)
}

func runHistory(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkWillId(c.String("id"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.testnet, m.connect(), m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.History(id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runSearch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	status, err := vault.ParseStateStatus(c.String("status"))
	if nil != err {
		return err
	}

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "status: %s\n", status)
		fmt.Fprintf(m.e, "start: %d\n", c.Uint64("start"))
		fmt.Fprintf(m.e, "count: %d\n", count)
	}

	client, err := rpccalls.NewClient(m.testnet, m.connect(), m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	searchConfig := &rpccalls.SearchData{
		Status: status.String(),
		Start:  c.Uint64("start"),
		Count:  count,
	}

	response, err := client.Search(searchConfig)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
