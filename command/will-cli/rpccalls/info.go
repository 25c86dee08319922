// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/willd/contract"
	"github.com/bitmark-inc/willd/rpc/node"
	"github.com/bitmark-inc/willd/willrecord"
)

// GetInfo - request status from willd
func (client *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.client.Call("Node.Info", node.InfoArguments{}, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}

// Policy - the contract rules the node verifies with
func (client *Client) Policy() (contract.Policy, error) {
	info, err := client.GetInfo()
	if nil != err {
		return contract.Policy{}, err
	}
	return contract.Policy{
		GeneratePrecondition: willrecord.Status(info.GeneratePrecondition),
	}, nil
}
