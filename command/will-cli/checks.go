// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/willd/account"
	"github.com/bitmark-inc/willd/chain"
	"github.com/bitmark-inc/willd/command/will-cli/configuration"
	"github.com/bitmark-inc/willd/fault"
	"github.com/bitmark-inc/willd/transaction"
	"github.com/bitmark-inc/willd/willrecord"
)

var (
	ErrRequiredConnect     = fault.InvalidError("connect is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredDetails     = fault.InvalidError("details are required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredStateRef    = fault.InvalidError("state reference is required")
	ErrRequiredVerifier    = fault.InvalidError("verifier is required")
	ErrRequiredWillId      = fault.InvalidError("will id is required")
	ErrRequiredWillType    = fault.InvalidError("will type is required")
	ErrUnknownNetwork      = fault.InvalidError("network can only be willd/testing/local")
)

// canonical chain name for a network flag
func checkNetwork(network string) (string, error) {
	switch strings.ToLower(network) {
	case chain.Willd, "live":
		return chain.Willd, nil
	case chain.Testing, "test":
		return chain.Testing, nil
	case chain.Local, "regression":
		return chain.Local, nil
	default:
		return "", ErrUnknownNetwork
	}
}

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}

	return name, nil
}

// connect is required
func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", ErrRequiredConnect
	}

	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}

	return description, nil
}

// blank creates a new key otherwise must be hex of a seed or full key
func checkPrivateKey(key string, testnet bool) (*account.PrivateKey, error) {
	if "" == key {
		return account.NewPrivateKey(testnet)
	}
	return account.PrivateKeyFromHex(key, testnet)
}

// a blank id on request gets a fresh uuid
func checkNewWillId(id string) (string, error) {
	if "" == id {
		return uuid.NewString(), nil
	}
	return checkWillId(id)
}

// existing will id is required
func checkWillId(id string) (string, error) {
	if "" == id {
		return "", ErrRequiredWillId
	}
	if len(id) > willrecord.MaxIdLength {
		return "", fault.ErrWillIdTooLong
	}
	return id, nil
}

// must be one of the accepted types, casing is kept as given
func checkWillType(willType string) (willrecord.WillType, error) {
	if "" == willType {
		return "", ErrRequiredWillType
	}
	t := willrecord.WillType(willType)
	if !t.IsValid() {
		return "", fault.ErrInvalidWillType
	}
	return t, nil
}

// TXID:INDEX as printed in a submit result
func checkStateRef(s string) (transaction.StateRef, error) {
	if "" == s {
		return transaction.StateRef{}, ErrRequiredStateRef
	}
	return transaction.ParseStateRef(s)
}

// details are required
func checkDetails(details string) (string, error) {
	if "" == details {
		return "", ErrRequiredDetails
	}
	return details, nil
}

// an identity name from the configuration or a base58 account
func checkAccount(name string, config *configuration.Configuration) (*account.Account, error) {
	if "" == name {
		return nil, ErrRequiredVerifier
	}

	a, err := config.Account(name)
	if nil != err {
		a, err = account.AccountFromBase58(name)
		if nil != err {
			return nil, err
		}
	}
	if a.IsTesting() != config.TestNet {
		return nil, fault.ErrWrongNetworkForPublicKey
	}
	return a, nil
}

// global identity flag or the configured default
func identityName(c *cli.Context, config *configuration.Configuration) (string, error) {
	name := c.GlobalString("identity")
	if "" == name {
		name = config.DefaultIdentity
	}
	return checkName(name)
}
