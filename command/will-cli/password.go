// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
	"golang.org/x/term"

	"github.com/bitmark-inc/willd/account"
	"github.com/bitmark-inc/willd/command/will-cli/configuration"
	"github.com/bitmark-inc/willd/fault"
)

const minimumPasswordLength = 8

// replaced in tests
var readPassword = term.ReadPassword

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if nil != err {
		return "", err
	}
	return string(password), nil
}

// ask twice for a password that will encrypt a new identity
func promptNewPassword() (string, error) {
	password, err := promptPassword(fmt.Sprintf("Set identity password(length >= %d): ", minimumPasswordLength))
	if nil != err {
		return "", err
	}

	if len(password) < minimumPasswordLength {
		return "", fault.ErrInvalidPasswordLength
	}

	verify, err := promptPassword("Verify password: ")
	if nil != err {
		return "", err
	}

	if password != verify {
		return "", fault.ErrPasswordMismatch
	}

	return password, nil
}

// the global password flag or a new password from the terminal
func newPassword(c *cli.Context) (string, error) {
	password := c.GlobalString("password")
	if "" != password {
		if len(password) < minimumPasswordLength {
			return "", fault.ErrInvalidPasswordLength
		}
		return password, nil
	}
	return promptNewPassword()
}

// decrypt the selected identity, prompting if no password flag was given
func checkSignerWithPasswordPrompt(c *cli.Context, config *configuration.Configuration) (string, *account.PrivateKey, error) {
	name, err := identityName(c, config)
	if nil != err {
		return "", nil, err
	}

	if _, err := config.Identity(name); nil != err {
		return "", nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPassword(fmt.Sprintf("password for %s: ", name))
		if nil != err {
			return "", nil, err
		}
	}

	private, err := config.Private(password, name)
	if nil != err {
		return "", nil, err
	}
	return name, private.PrivateKey, nil
}
