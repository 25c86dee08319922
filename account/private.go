// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/willd/fault"
)

// PrivateKey - an ed25519 signing key bound to one network
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// NewPrivateKey - create a key from secure random data
func NewPrivateKey(test bool) (*PrivateKey, error) {
	_, private, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: private,
	}, nil
}

// PrivateKeyFromBytes - accepts either the 32 byte seed or the full
// 64 byte private key; the public half of a full key must match the
// key regenerated from its seed
func PrivateKeyFromBytes(buffer []byte, test bool) (*PrivateKey, error) {
	var private ed25519.PrivateKey
	switch len(buffer) {
	case ed25519.SeedSize:
		private = ed25519.NewKeyFromSeed(buffer)
	case ed25519.PrivateKeySize:
		private = ed25519.NewKeyFromSeed(buffer[:ed25519.SeedSize])
		if !bytes.Equal(private, buffer) {
			return nil, fault.ErrInvalidPrivateKey
		}
	default:
		return nil, fault.ErrInvalidKeyLength
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: private,
	}, nil
}

// PrivateKeyFromHex - hex form of PrivateKeyFromBytes
func PrivateKeyFromHex(s string, test bool) (*PrivateKey, error) {
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidPrivateKey
	}
	return PrivateKeyFromBytes(buffer, test)
}

// Account - the public identity for this key
func (privateKey *PrivateKey) Account() *Account {
	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, privateKey.PrivateKey.Public().(ed25519.PublicKey))
	return &Account{
		AccountInterface: &ED25519Account{
			Test:      privateKey.Test,
			PublicKey: publicKey,
		},
	}
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}

// Bytes - the full 64 byte private key
func (privateKey *PrivateKey) Bytes() []byte {
	return privateKey.PrivateKey[:]
}

// String - hex of the full private key
func (privateKey *PrivateKey) String() string {
	return hex.EncodeToString(privateKey.PrivateKey)
}
