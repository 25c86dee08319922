// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/bitmark-inc/willd/account"
	"github.com/bitmark-inc/willd/fault"
	"github.com/bitmark-inc/willd/willrecord"
)

// State - any ledger state; only a *willrecord.WillRecord is a will
type State interface {
	Participants() []*account.Account
}

// Transaction - a proposed transition
type Transaction struct {
	Inputs   []State
	Outputs  []State
	Commands []Command
	Signers  Signers
}

// Signers - set of public keys that signed a transaction
type Signers map[string]struct{}

// NewSigners - create a signer set
func NewSigners(accounts ...*account.Account) Signers {
	signers := make(Signers, len(accounts))
	for _, a := range accounts {
		signers.Add(a)
	}
	return signers
}

// Add - include an account, nil is ignored
func (signers Signers) Add(a *account.Account) {
	if nil == a || nil == a.AccountInterface {
		return
	}
	signers[a.Key()] = struct{}{}
}

// Contains - true if the account signed
func (signers Signers) Contains(a *account.Account) bool {
	if nil == a || nil == a.AccountInterface {
		return false
	}
	_, ok := signers[a.Key()]
	return ok
}

// Policy - rule choices that are not fixed by the lifecycle
type Policy struct {
	// status the input must carry for Generate
	// empty selects willrecord.VerificationRequested
	GeneratePrecondition willrecord.Status
}

// the available policies
var (
	DefaultPolicy    = Policy{GeneratePrecondition: willrecord.VerificationRequested}
	ValidationPolicy = Policy{GeneratePrecondition: willrecord.ValidatedBeneficiary}
)

func (policy Policy) generatePrecondition() willrecord.Status {
	if willrecord.NoStatus == policy.GeneratePrecondition {
		return willrecord.VerificationRequested
	}
	return policy.GeneratePrecondition
}

// Verify - check a transaction under the default policy
func Verify(tx *Transaction) error {
	return DefaultPolicy.Verify(tx)
}

// Verify - check a transaction, returning nil or one rejection
func (policy Policy) Verify(tx *Transaction) error {
	if nil == tx {
		return fault.ErrMalformedTransaction
	}

	rules, err := policy.commandRules(tx.Commands)
	if nil != err {
		return err
	}
	if err := rules.checkCounts(len(tx.Inputs), len(tx.Outputs)); nil != err {
		return err
	}

	var input *willrecord.WillRecord
	if 1 == rules.inputs {
		record, ok := tx.Inputs[0].(*willrecord.WillRecord)
		if !ok || nil == record {
			return fault.ErrNotAWillRecord
		}
		if !record.WillType.IsValid() {
			return fault.ErrInvalidWillType
		}
		if rules.inputStatus != record.Status {
			return fault.ErrPreconditionNotMet
		}
		input = record
	}

	output, ok := tx.Outputs[0].(*willrecord.WillRecord)
	if !ok || nil == output {
		return fault.ErrNotAWillRecord
	}
	if rules.checkOutput {
		if !output.WillType.IsValid() {
			return fault.ErrInvalidWillType
		}
		if rules.outputStatus != output.Status {
			return fault.ErrInvalidStatus
		}
	}

	return checkSigner(rules.signer, input, output, tx.Signers)
}

// CheckShape - the rules that need no record content
//
// command cardinality, command recognised, input count and output
// count, in the same order Verify applies them
func (policy Policy) CheckShape(commands []Command, inputs int, outputs int) error {
	rules, err := policy.commandRules(commands)
	if nil != err {
		return err
	}
	return rules.checkCounts(inputs, outputs)
}

// exactly one command from the closed set, by value or by pointer
func (policy Policy) commandRules(commands []Command) (ruleSet, error) {
	if 1 != len(commands) {
		return ruleSet{}, fault.ErrMalformedTransaction
	}

	switch command := commands[0].(type) {
	case RequestCommand, VerifyCommand, GenerateCommand:
		return command.rules(policy), nil
	case *RequestCommand:
		if nil != command {
			return command.rules(policy), nil
		}
	case *VerifyCommand:
		if nil != command {
			return command.rules(policy), nil
		}
	case *GenerateCommand:
		if nil != command {
			return command.rules(policy), nil
		}
	}
	return ruleSet{}, fault.ErrUnrecognizedCommand
}

func (rules ruleSet) checkCounts(inputs int, outputs int) error {
	if rules.inputs != inputs {
		return fault.ErrWrongInputCount
	}
	if rules.outputs != outputs {
		return fault.ErrWrongOutputCount
	}
	return nil
}

// required signer present, the missing party determines the rejection
func checkSigner(rule signerRule, input *willrecord.WillRecord, output *willrecord.WillRecord, signers Signers) error {
	record := output
	if fromInput == rule.record {
		record = input
	}

	switch rule.role {
	case OwnerRole:
		if !signers.Contains(record.Owner) {
			return fault.ErrMissingOwnerSignature
		}
	case VerifierRole:
		if !signers.Contains(record.Verifier) {
			return fault.ErrMissingVerifierSignature
		}
	default:
		return fault.ErrUnrecognizedCommand
	}
	return nil
}
