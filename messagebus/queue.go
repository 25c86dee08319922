// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/willd/counter"
)

// internal constants
const (
	queueSize = 1000
)

// Message - a command and its parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// Queue - a single reader queue
type Queue struct {
	c       chan Message
	dropped counter.Counter
}

// BusType - all the queues
type BusType struct {
	Finalised *Queue // transactions committed to the vault
	TestQueue *Queue // for testing use
}

// Bus - all available queues
var Bus = BusType{
	Finalised: newQueue(queueSize),
	TestQueue: newQueue(queueSize),
}

func newQueue(size int) *Queue {
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message, dropping it if the queue is full
func (queue *Queue) Send(command string, parameters ...[]byte) bool {
	select {
	case queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}:
		return true
	default:
		queue.dropped.Increment()
		return false
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Dropped - number of messages lost to a full queue
func (queue *Queue) Dropped() uint64 {
	return queue.dropped.Uint64()
}
