// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/bitmark-inc/go-argon2"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/bitmark-inc/willd/account"
	"github.com/bitmark-inc/willd/fault"
)

// Private - decrypted identity
type Private struct {
	PrivateKey  *account.PrivateKey `json:"privateKey"`
	Description string              `json:"description"`
}

// decryptIdentity - check if password unlocks data in the configuration file
func decryptIdentity(password string, identity *Identity, testnet bool) (*Private, error) {

	salt := new(Salt)
	err := salt.UnmarshalText([]byte(identity.Salt))
	if err != nil || identity.Data == "" {
		return nil, fault.ErrNotPrivateKey
	}

	key, err := generateKey(password, salt)
	if err != nil {
		return nil, err
	}

	hexKey, err := decryptData(identity.Data, key)
	if err != nil {
		return nil, fault.ErrWrongPassword
	}

	privateKey, err := account.PrivateKeyFromHex(hexKey, testnet)
	if err != nil {
		return nil, err
	}

	// the plain account must belong to the decrypted key
	if privateKey.Account().String() != identity.Account {
		return nil, fault.ErrInvalidPrivateKey
	}

	r := Private{
		PrivateKey:  privateKey,
		Description: identity.Description,
	}
	return &r, nil
}

func hashPassword(password string) (*Salt, *[32]byte, error) {
	salt, err := MakeSalt()
	if err != nil {
		return nil, nil, err
	}

	cipher, err := generateKey(password, salt)
	if err != nil {
		return nil, nil, err
	}

	return salt, cipher, nil
}

func generateKey(password string, salt *Salt) (*[32]byte, error) {

	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     32,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	hash, err := argon2.Hash(ctx, []byte(password), salt.Bytes())
	if err != nil {
		return nil, err
	}

	var secretKey [32]byte
	copy(secretKey[:], hash)

	return &secretKey, nil
}

// encrypt a string and convert to hex
func encryptData(data string, secretKey *[32]byte) (string, error) {

	// ensure data not too small or too large
	l := len(data)
	if l < 32 || l >= 16384 {
		return "", fault.ErrCryptoFailed
	}

	// 192 bit random nonce, stored in front of the ciphertext
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fault.ErrCryptoFailed
	}

	ciphertext := secretbox.Seal(nonce[:], []byte(data), &nonce, secretKey)

	return hex.EncodeToString(ciphertext), nil
}

// decrypt a hex string and return plaintext
func decryptData(ciphertext string, secretKey *[32]byte) (string, error) {

	if ciphertext == "" {
		return "", fault.ErrCryptoFailed
	}

	encrypted, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", err
	}
	if len(encrypted) <= 24 {
		return "", fault.ErrCryptoFailed
	}

	var nonce [24]byte
	copy(nonce[:], encrypted[:24])

	decrypted, ok := secretbox.Open(nil, encrypted[24:], &nonce, secretKey)
	if !ok {
		return "", fault.ErrCryptoFailed
	}

	return string(decrypted), nil
}
