// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/willd/account"
	"github.com/bitmark-inc/willd/command/will-cli/configuration"
	"github.com/bitmark-inc/willd/fault"
)

const testPassword = "password123"

func run(args ...string) (string, error) {
	app := newApp()
	out := &bytes.Buffer{}
	app.Writer = out
	app.ErrWriter = out
	err := app.Run(append([]string{"will-cli"}, args...))
	return out.String(), err
}

func TestConfigurationCommands(t *testing.T) {
	dir, err := os.MkdirTemp("", "will-cli-main")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	fileName := filepath.Join(dir, "will-cli", "testing-will-cli.json")

	_, err = run("-i", "owner", "-p", testPassword, "setup", "-c", "127.0.0.1:2130", "-d", "the testator")
	if !assert.Nil(t, err, "setup") {
		return
	}
	_, err = os.Stat(fileName)
	assert.Nil(t, err, "configuration written")

	_, err = run("-i", "owner", "-p", testPassword, "setup", "-c", "127.0.0.1:2130", "-d", "again")
	assert.NotNil(t, err, "setup twice")

	_, err = run("-i", "verifier", "-p", testPassword, "add", "-d", "the executor")
	assert.Nil(t, err, "add verifier")

	other, err := account.NewPrivateKey(true)
	if nil != err {
		t.Fatalf("new private key error: %s", err)
	}
	_, err = run("-i", "witness", "add", "-d", "receive only", "-a", other.Account().String())
	assert.Nil(t, err, "add receive only")

	_, err = run("-i", "both", "add", "-d", "bad", "-a", other.Account().String(), "-k", other.String())
	assert.Equal(t, fault.ErrIncompatibleOptions, err, "account and key")

	_, err = run("-i", "short", "-p", "short", "add", "-d", "bad password")
	assert.Equal(t, fault.ErrInvalidPasswordLength, err, "password length")

	out, err := run("info")
	if assert.Nil(t, err, "info") {
		var info configuration.InfoConfiguration
		err = json.Unmarshal([]byte(out), &info)
		if assert.Nil(t, err, "info JSON") {
			assert.Equal(t, "owner", info.DefaultIdentity, "default identity")
			assert.True(t, info.TestNet, "testnet")
			assert.Equal(t, []string{"127.0.0.1:2130"}, info.Connections, "connections")
			if assert.Equal(t, 3, len(info.Identities), "identities") {
				assert.Equal(t, "owner", info.Identities[0].Name, "owner")
				assert.Equal(t, "verifier", info.Identities[1].Name, "verifier")
				assert.Equal(t, "witness", info.Identities[2].Name, "witness")
				assert.False(t, info.Identities[2].CanSign, "receive only")
			}
		}
	}

	config, err := configuration.Load(fileName)
	if assert.Nil(t, err, "load") {
		_, err = config.Private(testPassword, "verifier")
		assert.Nil(t, err, "verifier decrypts")
	}

	_, err = run("-n", "willd", "info")
	assert.NotNil(t, err, "no live configuration")

	_, err = run("-n", "bitcoin", "info")
	assert.Equal(t, ErrUnknownNetwork, err, "unknown network")
}

func TestGenerate(t *testing.T) {
	dir, err := os.MkdirTemp("", "will-cli-generate")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	out, err := run("-n", "local", "generate")
	if !assert.Nil(t, err, "generate") {
		return
	}

	var key generatedKey
	err = json.Unmarshal([]byte(out), &key)
	if !assert.Nil(t, err, "generate JSON") {
		return
	}
	assert.True(t, key.TestNet, "local is a test network")

	privateKey, err := account.PrivateKeyFromHex(key.PrivateKey, true)
	if assert.Nil(t, err, "private key") {
		assert.Equal(t, key.Account, privateKey.Account().String(), "account matches key")
	}
}

func TestPromptNewPassword(t *testing.T) {
	saved := readPassword
	defer func() {
		readPassword = saved
	}()

	tests := []struct {
		title   string
		entered []string
		err     error
	}{
		{"match", []string{testPassword, testPassword}, nil},
		{"too short", []string{"1234567"}, fault.ErrInvalidPasswordLength},
		{"mismatch", []string{testPassword, testPassword + "x"}, fault.ErrPasswordMismatch},
	}

	for _, test := range tests {
		entered := test.entered
		readPassword = func(int) ([]byte, error) {
			p := entered[0]
			entered = entered[1:]
			return []byte(p), nil
		}

		password, err := promptNewPassword()
		assert.Equal(t, test.err, err, test.title)
		if nil == test.err {
			assert.Equal(t, testPassword, password, test.title)
		}
	}
}
