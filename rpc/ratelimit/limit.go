// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - token bucket throttling for RPC handlers
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/willd/fault"
)

// Limit - wait for a single request token
func Limit(limiter *rate.Limiter) error {
	return LimitN(limiter, 1, 1)
}

// LimitN - wait for count tokens
//
// an out of range count still costs one token and returns
// fault.ErrInvalidCount
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	invalid := count <= 0 || count > maximumCount
	if invalid {
		count = 1
	}

	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())

	if invalid {
		return fault.ErrInvalidCount
	}
	return nil
}
