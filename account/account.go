// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - party identities
//
// a party is known to the ledger only by its public key; names and
// network addresses are resolved elsewhere
package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/willd/fault"
	"github.com/bitmark-inc/willd/util"
)

// enumeration of supported key algorithms
const (
	// zero keytype is never valid
	Nothing = iota
	ED25519 = iota
	// end of list (one greater than last item)
	algorithmLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - base type for accounts
type Account struct {
	AccountInterface
}

// AccountInterface - the methods every key algorithm provides
type AccountInterface interface {
	KeyType() int
	PublicKeyBytes() []byte
	CheckSignature(message []byte, signature Signature) error
	Bytes() []byte
	String() string
	MarshalText() ([]byte, error)
	IsTesting() bool
}

// ED25519Account - for ed25519 signatures
type ED25519Account struct {
	Test      bool
	PublicKey []byte
}

// AccountFromBase58 - this converts a Base58 encoded string and returns an account
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(accountDecoded) {
		return nil, fault.ErrCannotDecodeAccount
	}

	keyVariant, keyVariantLength := util.FromVarint64(accountDecoded)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}
	if keyVariant>>algorithmShift >= algorithmLimit {
		return nil, fault.ErrInvalidKeyType
	}
	if len(accountDecoded)-keyVariantLength-checksumLength <= 0 {
		return nil, fault.ErrInvalidKeyLength
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	return AccountFromBytes(accountDecoded[:checksumStart])
}

// AccountFromBytes - this converts a byte encoded buffer and returns an account
func AccountFromBytes(accountBytes []byte) (*Account, error) {

	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)

	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.ErrInvalidKeyType
	}

	isTest := 0 != keyVariant&testKeyCode

	keyLength := len(accountBytes) - keyVariantLength
	if keyLength <= 0 {
		return nil, fault.ErrInvalidKeyLength
	}

	switch keyAlgorithm {
	case ED25519:
		if keyLength != ed25519.PublicKeySize {
			return nil, fault.ErrInvalidKeyLength
		}
		publicKey := make([]byte, keyLength)
		copy(publicKey, accountBytes[keyVariantLength:])
		account := &Account{
			AccountInterface: &ED25519Account{
				Test:      isTest,
				PublicKey: publicKey,
			},
		}
		return account, nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}

// UnmarshalText - convert a Base58 JSON string to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	account.AccountInterface = a.AccountInterface
	return nil
}

// Key - comparable form of the account, suitable as a map key
func (account *Account) Key() string {
	if nil == account || nil == account.AccountInterface {
		return ""
	}
	return string(account.Bytes())
}

// Equal - two accounts are the same party if their encoded keys match
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return account == other
	}
	if nil == account.AccountInterface || nil == other.AccountInterface {
		return account.AccountInterface == other.AccountInterface
	}
	return bytes.Equal(account.Bytes(), other.Bytes())
}

// IsZero - check for an all zero public key
func (account *Account) IsZero() bool {
	if nil == account || nil == account.AccountInterface {
		return true
	}
	for _, b := range account.PublicKeyBytes() {
		if 0 != b {
			return false
		}
	}
	return true
}

// ED25519
// -------

// KeyType - key type code (see enumeration above)
func (account *ED25519Account) KeyType() int {
	return ED25519
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *ED25519Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// CheckSignature - check the signature of a message
func (account *ED25519Account) CheckSignature(message []byte, signature Signature) error {

	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}

	if !ed25519.Verify(account.PublicKey[:], message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// Bytes - byte slice for encoded key
func (account *ED25519Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey[:]...)
}

// String - base58 encoding of encoded key
func (account *ED25519Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an account to its Base58 JSON form
func (account ED25519Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// IsTesting - return whether the public key is in test mode or not
func (account ED25519Account) IsTesting() bool {
	return account.Test
}
