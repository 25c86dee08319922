// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/willd/messagebus"
)

func TestQueue(t *testing.T) {

	items := []messagebus.Message{
		{
			Command:    "c1",
			Parameters: [][]byte{[]byte("p1")},
		},
		{
			Command:    "c2",
			Parameters: nil,
		},
		{
			Command:    "c3",
			Parameters: [][]byte{[]byte("p3"), []byte("p4")},
		},
	}

	for _, item := range items {
		if !messagebus.Bus.TestQueue.Send(item.Command, item.Parameters...) {
			t.Fatalf("send: %q failed", item.Command)
		}
	}

	queue := messagebus.Bus.TestQueue.Chan()
	for _, item := range items {
		received := <-queue
		if received.Command != item.Command {
			t.Errorf("actual: %q  expected: %q", received.Command, item.Command)
		}
		if len(received.Parameters) != len(item.Parameters) {
			t.Errorf("%q: parameters: %d  expected: %d", item.Command, len(received.Parameters), len(item.Parameters))
			continue
		}
		for i, p := range item.Parameters {
			if !bytes.Equal(p, received.Parameters[i]) {
				t.Errorf("%q: parameter[%d]: %q  expected: %q", item.Command, i, received.Parameters[i], p)
			}
		}
	}
}

func TestFullQueueDrops(t *testing.T) {
	queue := messagebus.Bus.TestQueue
	before := queue.Dropped()

	sent := 0
	for queue.Send("fill") {
		sent += 1
	}
	if queue.Dropped() != before+1 {
		t.Errorf("dropped: %d  expected: %d", queue.Dropped(), before+1)
	}

	// drain so other tests see an empty queue
	for i := 0; i < sent; i += 1 {
		<-queue.Chan()
	}
}
