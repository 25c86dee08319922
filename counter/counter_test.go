// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/willd/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.Equal(t, uint64(1), c.Increment(), "first increment")
	assert.Equal(t, uint64(2), c.Increment(), "second increment")
	assert.Equal(t, uint64(1), c.Decrement(), "decrement")
	assert.Equal(t, uint64(1), c.Uint64(), "value")
}

func TestConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	const workers = 10
	const each = 1000

	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < each; n += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(workers*each), c.Uint64(), "total")
}
