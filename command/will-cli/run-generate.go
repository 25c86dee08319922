// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/willd/account"
)

type generatedKey struct {
	Account    string `json:"account"`
	PrivateKey string `json:"privateKey"`
	TestNet    bool   `json:"testnet"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := account.NewPrivateKey(m.testnet)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "testnet: %t\n", m.testnet)
	}

	return printJson(m.w, generatedKey{
		Account:    privateKey.Account().String(),
		PrivateKey: privateKey.String(),
		TestNet:    m.testnet,
	})
}
