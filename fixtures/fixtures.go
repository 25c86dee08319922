// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared set up for package tests
package fixtures

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/willd/account"
	"github.com/bitmark-inc/willd/digest"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// test identities, all on the test network
var (
	Owner    *account.PrivateKey
	Verifier *account.PrivateKey
	Stranger *account.PrivateKey
)

func init() {
	Owner = identity("owner")
	Verifier = identity("verifier")
	Stranger = identity("stranger")
}

// derive a fixed key so packed test data is stable between runs
func identity(name string) *account.PrivateKey {
	seed := digest.NewDigest([]byte("willd fixture " + name))
	privateKey, err := account.PrivateKeyFromBytes(seed[:], true)
	if nil != err {
		panic(err)
	}
	return privateKey
}

// SetupTestLogger - file logger at critical level in a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

var certificateOnce struct {
	sync.Once
	certificate string
	key         string
}

// Certificate - PEM certificate and key for local TLS listeners
func Certificate() (string, string) {
	certificateOnce.Do(func() {
		cert, key, err := certgen.NewTLSCertPair("willd test", time.Now().Add(time.Hour), false, []string{"localhost"})
		if nil != err {
			panic(err)
		}
		certificateOnce.certificate = string(cert)
		certificateOnce.key = string(key)
	})
	return certificateOnce.certificate, certificateOnce.key
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
