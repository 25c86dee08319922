// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"strings"

	"github.com/bitmark-inc/willd/fault"
)

// StateStatus - search filter on consumption
type StateStatus int

// possible filters
const (
	Unconsumed StateStatus = iota
	Consumed
	All
)

// ParseStateStatus - text form used by RPC and the client
func ParseStateStatus(s string) (StateStatus, error) {
	switch strings.ToLower(s) {
	case "", "unconsumed":
		return Unconsumed, nil
	case "consumed":
		return Consumed, nil
	case "all":
		return All, nil
	default:
		return 0, fault.ErrInvalidStateStatus
	}
}

// IsValid - one of the defined filters
func (status StateStatus) IsValid() bool {
	return status >= Unconsumed && status <= All
}

// Matches - true if a version with this consumption passes the filter
func (status StateStatus) Matches(consumed bool) bool {
	switch status {
	case Unconsumed:
		return !consumed
	case Consumed:
		return consumed
	default:
		return true
	}
}

// String - text form
func (status StateStatus) String() string {
	switch status {
	case Unconsumed:
		return "unconsumed"
	case Consumed:
		return "consumed"
	case All:
		return "all"
	default:
		return "invalid"
	}
}
