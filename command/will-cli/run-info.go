// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/willd/command/will-cli/rpccalls"
	"github.com/bitmark-inc/willd/rpc/node"
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	return printJson(m.w, m.config.Info())
}

func runWilldInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.testnet, m.connect(), m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		*node.InfoReply
		Connection string `json:"_connection"`
	}{
		InfoReply:  response,
		Connection: m.connect(),
	})
}
