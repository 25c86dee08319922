// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/bitmark-inc/willd/account"
	"github.com/bitmark-inc/willd/fault"
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	TestNet         bool                `json:"testnet"`
	Connections     []string            `json:"connections"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - mix of plain and encrypted data
//
// a receive only identity has no data or salt and can only be
// named as a verifier
type Identity struct {
	Description string `json:"description"`
	Account     string `json:"account"`
	Data        string `json:"data"`
	Salt        string `json:"salt"`
}

// New - an empty configuration for a network
func New(testnet bool, connections []string) *Configuration {
	return &Configuration{
		TestNet:     testnet,
		Connections: connections,
		Identities:  make(map[string]Identity),
	}
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	options := &Configuration{}
	err = json.NewDecoder(f).Decode(options)
	if nil != err {
		return nil, err
	}
	if nil == options.Identities {
		options.Identities = make(map[string]Identity)
	}
	return options, nil
}

// Save - replace the configuration file keeping one backup
func Save(filename string, configuration *Configuration) error {

	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	data, err := json.MarshalIndent(configuration, "", "  ")
	if nil != err {
		return err
	}

	_ = os.Remove(tempFile)
	err = ioutil.WriteFile(tempFile, append(data, '\n'), 0600)
	if nil != err {
		return err
	}

	err = os.Remove(previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	err = os.Rename(filename, previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tempFile, filename)
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.ErrIdentityNameNotFound
	}

	return &id, nil
}

// Account - find identity for a given name and convert to an account
func (config *Configuration) Account(name string) (*account.Account, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}

	return account.AccountFromBase58(id.Account)
}

// Private - find identity decrypt all data for a given name
func (config *Configuration) Private(password string, name string) (*Private, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}

	return decryptIdentity(password, id, config.TestNet)
}

// AddIdentity - store encrypted identity
func (config *Configuration) AddIdentity(name string, description string, privateKey *account.PrivateKey, password string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.ErrIdentityNameAlreadyExists
	}
	if privateKey.Test != config.TestNet {
		return fault.ErrWrongNetworkForPublicKey
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(privateKey.String(), secretKey)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     privateKey.Account().String(),
		Data:        encrypted,
		Salt:        salt.String(),
	}
	if "" == config.DefaultIdentity {
		config.DefaultIdentity = name
	}

	return nil
}

// AddReceiveOnlyIdentity - store public-only identity
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, acc string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.ErrIdentityNameAlreadyExists
	}

	a, err := account.AccountFromBase58(acc)
	if nil != err {
		return err
	}
	if a.IsTesting() != config.TestNet {
		return fault.ErrWrongNetworkForPublicKey
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     acc,
		Data:        "",
		Salt:        "",
	}

	return nil
}

// InfoIdentity - restricted view of an identity (excludes private items)
type InfoIdentity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
	CanSign     bool   `json:"canSign"`
}

// InfoConfiguration - restricted view of configuration
type InfoConfiguration struct {
	DefaultIdentity string         `json:"default_identity"`
	TestNet         bool           `json:"testnet"`
	Connections     []string       `json:"connections"`
	Identities      []InfoIdentity `json:"identities"`
}

// Info - configuration without encrypted data, identities sorted by name
func (config *Configuration) Info() *InfoConfiguration {
	info := &InfoConfiguration{
		DefaultIdentity: config.DefaultIdentity,
		TestNet:         config.TestNet,
		Connections:     config.Connections,
		Identities:      make([]InfoIdentity, 0, len(config.Identities)),
	}
	for name, id := range config.Identities {
		info.Identities = append(info.Identities, InfoIdentity{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
			CanSign:     "" != id.Data,
		})
	}
	sort.Slice(info.Identities, func(i, j int) bool {
		return info.Identities[i].Name < info.Identities[j].Name
	})
	return info
}
