// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RejectionError GenericError

// transaction rejections - keep in alphabetic order
//
// every rejection is terminal for the transaction that caused it
var (
	ErrInvalidStatus            = RejectionError("will status is not valid for this command")
	ErrInvalidWillType          = RejectionError("will type is not in the accepted set")
	ErrMalformedTransaction     = RejectionError("transaction must have exactly one command")
	ErrMissingOwnerSignature    = RejectionError("owner must sign the will request")
	ErrMissingVerifierSignature = RejectionError("verifier must sign the will transition")
	ErrNotAWillRecord           = RejectionError("state is not a will record")
	ErrPreconditionNotMet       = RejectionError("input will status precondition not met")
	ErrUnrecognizedCommand      = RejectionError("unrecognized command")
	ErrWrongInputCount          = RejectionError("wrong number of inputs")
	ErrWrongOutputCount         = RejectionError("wrong number of outputs")
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrCannotDecodeAccount          = InvalidError("cannot decode account")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrChecksumMismatch             = ProcessError("checksum mismatch")
	ErrCryptoFailed                 = ProcessError("crypto failed")
	ErrDatabaseIsNotSet             = ProcessError("database is not set")
	ErrDetailsTooLong               = LengthError("details too long")
	ErrIdentityNameAlreadyExists    = ExistsError("identity name already exists")
	ErrIdentityNameNotFound         = NotFoundError("identity name not found")
	ErrIncompatibleOptions          = InvalidError("incompatible options")
	ErrInvalidChain                 = InvalidError("invalid chain")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidCursor                = InvalidError("invalid cursor")
	ErrInvalidDigest                = InvalidError("invalid digest")
	ErrInvalidIPAddress             = InvalidError("invalid IP address")
	ErrInvalidIndex                 = InvalidError("invalid state index")
	ErrInvalidKeyLength             = LengthError("invalid key length")
	ErrInvalidKeyType               = InvalidError("invalid key type")
	ErrInvalidPasswordLength        = InvalidError("invalid password length")
	ErrInvalidPrivateKey            = InvalidError("invalid private key")
	ErrInvalidSignature             = InvalidError("invalid signature")
	ErrInvalidStateStatus           = InvalidError("invalid state status")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrInvalidWillId                = InvalidError("invalid will id")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrLabelTooLong                 = LengthError("will type or status too long")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrMissingParticipant           = InvalidError("owner and verifier are required")
	ErrNotConfigurationTable        = InvalidError("configuration did not return a table")
	ErrNotInitialised               = NotFoundError("not initialised")
	ErrNotPrivateKey                = InvalidError("not private key")
	ErrNotPublicKey                 = InvalidError("not public key")
	ErrNotTransactionPack           = InvalidError("not transaction pack")
	ErrNotWillRecordPack            = InvalidError("not will record pack")
	ErrPasswordMismatch             = InvalidError("password mismatch")
	ErrRateLimiting                 = InvalidError("rate limiting")
	ErrRecordCorrupt                = ProcessError("stored record is corrupt")
	ErrSignatureTooLong             = LengthError("signature too long")
	ErrStateAlreadyConsumed         = ExistsError("state already consumed")
	ErrStateNotFound                = NotFoundError("state not found")
	ErrTooManyInputs                = LengthError("too many inputs")
	ErrTooManyOutputs               = LengthError("too many outputs")
	ErrTransactionAlreadyExists     = ExistsError("transaction already exists")
	ErrTransactionInUse             = ProcessError("database transaction already in use")
	ErrTransactionNotFound          = NotFoundError("transaction not found")
	ErrUnmarshalTextFail            = InvalidError("unmarshal text failed")
	ErrUnsupportedWireTag           = InvalidError("unsupported wire tag")
	ErrWillAlreadyGenerated         = InvalidError("will already generated")
	ErrWillIdExists                 = ExistsError("will id already exists")
	ErrWillIdMismatch               = InvalidError("will id does not match consumed state")
	ErrWillIdTooLong                = LengthError("will id too long")
	ErrWillNotFound                 = NotFoundError("will not found")
	ErrWrongNetworkForPublicKey     = InvalidError("wrong network for public key")
	ErrWrongPassword                = InvalidError("wrong password")
	ErrWrongRole                    = InvalidError("identity cannot act in this role")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e LengthError) Error() string    { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }
func (e RejectionError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool    { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool    { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool  { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := e.(ProcessError); return ok }
func IsErrRejection(e error) bool { _, ok := e.(RejectionError); return ok }
