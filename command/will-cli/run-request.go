// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/willd/flow"
)

func runRequest(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkNewWillId(c.String("id"))
	if nil != err {
		return err
	}

	willType, err := checkWillType(c.String("type"))
	if nil != err {
		return err
	}

	details, err := checkDetails(c.String("details"))
	if nil != err {
		return err
	}

	verifier, err := checkAccount(c.String("verifier"), m.config)
	if nil != err {
		return err
	}

	name, owner, err := checkSignerWithPasswordPrompt(c, m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "id: %s\n", id)
		fmt.Fprintf(m.e, "type: %s\n", willType)
		fmt.Fprintf(m.e, "owner: %s\n", name)
		fmt.Fprintf(m.e, "verifier: %s\n", verifier)
	}

	signed, err := flow.RequestWill(owner, id, willType, details, verifier)
	if nil != err {
		return err
	}

	return submit(m, id, signed)
}
