// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/bitmark-inc/willd/willrecord"
)

// CommandTag - wire code for a command
type CommandTag uint64

// enumerate the commands
// this is encoded as a Varint64 in a packed transaction
const (
	// null marks beginning of list - not used as a command
	NullCommandTag = CommandTag(iota)

	RequestTag  = CommandTag(iota) // create the first version of a will
	VerifyTag   = CommandTag(iota) // verifier confirms the beneficiary
	GenerateTag = CommandTag(iota) // verifier issues the final will

	// this item must be last
	InvalidCommandTag = CommandTag(iota)
)

// Command - the declared intent of a transaction
//
// the set of commands is closed, only this package can add to it
type Command interface {
	Tag() CommandTag
	String() string
	rules(policy Policy) ruleSet
}

// RequestCommand - owner asks for a new will to be verified
type RequestCommand struct{}

// VerifyCommand - verifier validates the beneficiary of a requested will
type VerifyCommand struct{}

// GenerateCommand - verifier generates the final will
type GenerateCommand struct{}

// Tag - wire code
func (RequestCommand) Tag() CommandTag  { return RequestTag }
func (VerifyCommand) Tag() CommandTag   { return VerifyTag }
func (GenerateCommand) Tag() CommandTag { return GenerateTag }

// String - name of the command
func (RequestCommand) String() string  { return "request" }
func (VerifyCommand) String() string   { return "verify" }
func (GenerateCommand) String() string { return "generate" }

// CommandFromTag - decode a wire code
//
// anything outside the closed set is unrecognised
func CommandFromTag(tag CommandTag) (Command, bool) {
	switch tag {
	case RequestTag:
		return RequestCommand{}, true
	case VerifyTag:
		return VerifyCommand{}, true
	case GenerateTag:
		return GenerateCommand{}, true
	default:
		return nil, false
	}
}

// UnknownCommand - a wire code outside the closed set
//
// kept so a packed transaction decodes completely, it never verifies
type UnknownCommand CommandTag

// Tag - the wire code as received
func (c UnknownCommand) Tag() CommandTag { return CommandTag(c) }

// String - name of the command
func (UnknownCommand) String() string { return "unknown" }

func (UnknownCommand) rules(policy Policy) ruleSet { return ruleSet{} }

// DecodeCommand - decode any wire code, unknown codes are preserved
func DecodeCommand(tag CommandTag) Command {
	if command, ok := CommandFromTag(tag); ok {
		return command
	}
	return UnknownCommand(tag)
}

// Role - a party to a will record
type Role int

// the two roles
const (
	OwnerRole Role = iota
	VerifierRole
)

// String - name of the role
func (role Role) String() string {
	switch role {
	case OwnerRole:
		return "owner"
	case VerifierRole:
		return "verifier"
	default:
		return "unknown"
	}
}

// which record version holds the party that must sign
type source int

const (
	fromOutput source = iota
	fromInput
)

// the signer a command requires
type signerRule struct {
	role   Role
	record source
}

// the complete rule set for one command
type ruleSet struct {
	inputs       int
	outputs      int
	inputStatus  willrecord.Status // required status of the input
	outputStatus willrecord.Status // required status of the output
	checkOutput  bool              // only a new will has its output content checked
	signer       signerRule
}

// required signer for each command
var requiredSigner = map[CommandTag]signerRule{
	RequestTag:  {role: OwnerRole, record: fromOutput},
	VerifyTag:   {role: VerifierRole, record: fromInput},
	GenerateTag: {role: VerifierRole, record: fromInput},
}

// RequiredSigner - role that must sign for a command
func RequiredSigner(command Command) (Role, bool) {
	if nil == command {
		return 0, false
	}
	rule, ok := requiredSigner[command.Tag()]
	return rule.role, ok
}

func (c RequestCommand) rules(policy Policy) ruleSet {
	return ruleSet{
		inputs:       0,
		outputs:      1,
		outputStatus: willrecord.VerificationRequested,
		checkOutput:  true,
		signer:       requiredSigner[c.Tag()],
	}
}

func (c VerifyCommand) rules(policy Policy) ruleSet {
	return ruleSet{
		inputs:      1,
		outputs:     1,
		inputStatus: willrecord.VerificationRequested,
		signer:      requiredSigner[c.Tag()],
	}
}

func (c GenerateCommand) rules(policy Policy) ruleSet {
	return ruleSet{
		inputs:      1,
		outputs:     1,
		inputStatus: policy.generatePrecondition(),
		signer:      requiredSigner[c.Tag()],
	}
}
