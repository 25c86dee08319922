// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/willd/chain"
	"github.com/bitmark-inc/willd/configuration"
	"github.com/bitmark-inc/willd/contract"
	"github.com/bitmark-inc/willd/rpc/listeners"
	"github.com/bitmark-inc/willd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultDatabaseDirectory = "data"
	defaultLogDirectory      = "log"
	defaultLogFile           = "willd.log"
	defaultLogCount          = 10          //  number of log files retained
	defaultLogSize           = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients   = 10
	defaultBandwidth    = 25000000
	defaultRPCListen    = "127.0.0.1:2130"
	defaultPolicyStatus = false
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the levelDB files
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the daemon settings
type Configuration struct {
	DataDirectory              string                     `gluamapper:"data_directory" json:"data_directory"`
	PidFile                    string                     `gluamapper:"pidfile" json:"pidfile"`
	Chain                      string                     `gluamapper:"chain" json:"chain"`
	GenerateRequiresValidation bool                       `gluamapper:"generate_requires_validation" json:"generate_requires_validation"`
	Database                   DatabaseType               `gluamapper:"database" json:"database"`
	ClientRPC                  listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Logging                    logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory:              defaultDataDirectory,
		PidFile:                    "", // no PidFile by default
		Chain:                      chain.Willd,
		GenerateRequiresValidation: defaultPolicyStatus,

		Database: DatabaseType{
			Directory: defaultDatabaseDirectory,
			Name:      "", // set from the chain below
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Bandwidth:          defaultBandwidth,
			Listen:             []string{defaultRPCListen},
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	variables := map[string]string{
		"config_directory": dataDirectory,
	}
	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	// abort if the chain name is not recognised
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("Chain: %q is not supported", options.Chain)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// one database per chain unless named explicitly
	if "" == options.Database.Name {
		options.Database.Name = options.Chain
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// certificate and key default to the files written by gen-rpc-cert
	rpcFiles := []struct {
		item *string
		name string
	}{
		{&options.ClientRPC.Certificate, rpcCertificateKeyFilename},
		{&options.ClientRPC.PrivateKey, rpcPrivateKeyFilename},
	}
	for _, f := range rpcFiles {
		if "" != *f.item {
			continue
		}
		*f.item, err = readOptionalFile(options.DataDirectory, f.name)
		if nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// a missing file is not an error, RPC start-up will report the empty value
func readOptionalFile(directory string, name string) (string, error) {
	fileName := util.EnsureAbsolute(directory, name)
	if !util.EnsureFileExists(fileName) {
		return "", nil
	}
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return "", err
	}
	return string(data), nil
}

// the contract rules selected by the configuration
func (c *Configuration) policy() contract.Policy {
	if c.GenerateRequiresValidation {
		return contract.ValidationPolicy
	}
	return contract.DefaultPolicy
}
