// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/willd/contract"
	"github.com/bitmark-inc/willd/flow"
	"github.com/bitmark-inc/willd/vault"
)

func runValidate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkWillId(c.String("id"))
	if nil != err {
		return err
	}

	name, verifier, err := checkSignerWithPasswordPrompt(c, m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "id: %s\n", id)
		fmt.Fprintf(m.e, "verifier: %s\n", name)
	}

	return transition(m, id, func(live *vault.StateAndRef, _ contract.Policy) (*flow.Signed, error) {
		return flow.ValidateBeneficiary(verifier, live)
	})
}

func runGenerateWill(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkWillId(c.String("id"))
	if nil != err {
		return err
	}

	name, verifier, err := checkSignerWithPasswordPrompt(c, m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "id: %s\n", id)
		fmt.Fprintf(m.e, "verifier: %s\n", name)
	}

	return transition(m, id, func(live *vault.StateAndRef, policy contract.Policy) (*flow.Signed, error) {
		return flow.GenerateWill(verifier, live, policy)
	})
}
