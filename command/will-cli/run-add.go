// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/willd/fault"
)

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	// blank or a valid key
	key := c.String("private-key")
	acc := c.String("account")

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
		fmt.Fprintf(m.e, "account: %s\n", acc)
	}

	if "" == acc {
		privateKey, err := checkPrivateKey(key, m.testnet)
		if nil != err {
			return err
		}

		password, err := newPassword(c)
		if nil != err {
			return err
		}

		err = m.config.AddIdentity(name, description, privateKey, password)
		if nil != err {
			return err
		}

	} else if "" == key {
		err = m.config.AddReceiveOnlyIdentity(name, description, acc)
		if nil != err {
			return err
		}

	} else {
		return fault.ErrIncompatibleOptions
	}

	if c.Bool("default") {
		m.config.DefaultIdentity = name
	}

	// require configuration update
	m.save = true
	return nil
}
