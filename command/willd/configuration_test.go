// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/willd/chain"
	"github.com/bitmark-inc/willd/contract"
)

func writeConfiguration(t *testing.T, text string) (string, string, func()) {
	dir, err := os.MkdirTemp("", "willd-main")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "willd.conf")
	err = os.WriteFile(fileName, []byte(text), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	return dir, fileName, func() {
		_ = os.RemoveAll(dir)
	}
}

const minimalConfiguration = `
return {
    data_directory = ".",
    chain = "Testing",
    pidfile = "willd.pid",
}
`

func TestGetConfigurationDefaults(t *testing.T) {
	dir, fileName, cleanup := writeConfiguration(t, minimalConfiguration)
	defer cleanup()

	err := os.WriteFile(filepath.Join(dir, rpcCertificateKeyFilename), []byte("CERTIFICATE"), 0600)
	if nil != err {
		t.Fatalf("write certificate error: %s", err)
	}

	options, err := getConfiguration(fileName)
	if !assert.Nil(t, err, "getConfiguration") {
		return
	}

	dir = filepath.Clean(dir)
	assert.Equal(t, dir, options.DataDirectory, "data directory")
	assert.Equal(t, chain.Testing, options.Chain, "chain lower cased")
	assert.Equal(t, filepath.Join(dir, "willd.pid"), options.PidFile, "pid file")
	assert.Equal(t, filepath.Join(dir, defaultDatabaseDirectory), options.Database.Directory, "database directory")
	assert.Equal(t, filepath.Join(dir, defaultDatabaseDirectory, chain.Testing), options.Database.Name, "database name")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), options.Logging.Directory, "log directory")
	assert.Equal(t, []string{defaultRPCListen}, options.ClientRPC.Listen, "listen")
	assert.Equal(t, uint64(defaultRPCClients), options.ClientRPC.MaximumConnections, "connections")
	assert.Equal(t, "CERTIFICATE", options.ClientRPC.Certificate, "certificate from file")
	assert.Equal(t, "", options.ClientRPC.PrivateKey, "missing key file")
	assert.Equal(t, contract.DefaultPolicy, options.policy(), "policy")

	for _, d := range []string{options.Database.Directory, options.Logging.Directory} {
		info, err := os.Stat(d)
		if assert.Nil(t, err, "stat: %s", d) {
			assert.True(t, info.IsDir(), "directory: %s", d)
		}
	}
}

const fullConfiguration = `
local M = {}

M.data_directory = config_directory
M.chain = "local"
M.generate_requires_validation = true

M.database = {
    directory = "db",
    name = "wills",
}

M.client_rpc = {
    maximum_connections = 3,
    bandwidth = 5e6,
    listen = { "[::1]:2131" },
    certificate = "PEM CERTIFICATE",
    private_key = "PEM KEY",
}

M.logging = {
    file = "node.log",
    levels = {
        DEFAULT = "debug",
    },
}

return M
`

func TestGetConfigurationOverrides(t *testing.T) {
	dir, fileName, cleanup := writeConfiguration(t, fullConfiguration)
	defer cleanup()

	options, err := getConfiguration(fileName)
	if !assert.Nil(t, err, "getConfiguration") {
		return
	}

	dir = filepath.Clean(dir)
	assert.Equal(t, dir, options.DataDirectory, "data directory from variable")
	assert.Equal(t, chain.Local, options.Chain, "chain")
	assert.Equal(t, "", options.PidFile, "no pid file")
	assert.Equal(t, filepath.Join(dir, "db", "wills"), options.Database.Name, "database name")
	assert.Equal(t, uint64(3), options.ClientRPC.MaximumConnections, "connections")
	assert.Equal(t, float64(5e6), options.ClientRPC.Bandwidth, "bandwidth")
	assert.Equal(t, []string{"[::1]:2131"}, options.ClientRPC.Listen, "listen")
	assert.Equal(t, "PEM CERTIFICATE", options.ClientRPC.Certificate, "certificate")
	assert.Equal(t, "PEM KEY", options.ClientRPC.PrivateKey, "key")
	assert.Equal(t, "node.log", options.Logging.File, "log file")
	assert.Equal(t, "debug", options.Logging.Levels["DEFAULT"], "log level")
	assert.Equal(t, contract.ValidationPolicy, options.policy(), "policy")
}

func TestGetConfigurationErrors(t *testing.T) {
	tests := []struct {
		title string
		text  string
	}{
		{"unknown chain", `return { data_directory = ".", chain = "bitcoin" }`},
		{"no data directory", `return { chain = "testing" }`},
		{"home data directory", `return { data_directory = "~" }`},
		{"missing data directory", `return { data_directory = "/does/not/exist/willd" }`},
		{"database name is a path", `return { data_directory = ".", database = { name = "a/b" } }`},
		{"log file is a path", `return { data_directory = ".", logging = { file = "log/willd.log" } }`},
		{"not a table", `return 42`},
		{"lua syntax", `return {`},
	}

	for _, test := range tests {
		_, fileName, cleanup := writeConfiguration(t, test.text)
		_, err := getConfiguration(fileName)
		assert.NotNil(t, err, test.title)
		cleanup()
	}
}
