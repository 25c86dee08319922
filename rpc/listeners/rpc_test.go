// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/willd/counter"
	"github.com/bitmark-inc/willd/fault"
	"github.com/bitmark-inc/willd/fixtures"
	"github.com/bitmark-inc/willd/rpc/certificate"
	"github.com/bitmark-inc/willd/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func configuration(listen ...string) listeners.RPCConfiguration {
	return listeners.RPCConfiguration{
		MaximumConnections: 5,
		Bandwidth:          10000000,
		Listen:             listen,
	}
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	con := configuration(fmt.Sprintf("127.0.0.1:%d", port))

	count := counter.Counter(0)

	s := rpc.NewServer()
	err := s.Register(Add{})
	if err != nil {
		t.Fatalf("register with error: %s", err)
	}

	cer, key := fixtures.Certificate()
	tlsCertificate, fin, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, key)
	if err != nil {
		t.Fatalf("get certificate with error: %s", err)
	}

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, s, tlsCertificate, fin)
	if !assert.Nil(t, err, "wrong NewRPC") {
		return
	}

	err = l.Serve()
	if !assert.Nil(t, err, "wrong Serve") {
		return
	}
	defer l.Close()

	tlsConfig := tls.Config{
		InsecureSkipVerify: true,
	}

	c, err := tls.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port), &tlsConfig)
	if err != nil {
		t.Fatalf("dial with error: %s", err)
	}

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	client := jsonrpc.NewClient(c)
	defer client.Close()

	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
	assert.Equal(t, uint64(1), count.Uint64(), "connection counted")
}

func TestRpcListenerConfigurationErrors(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	noConnections := configuration("127.0.0.1:2130")
	noConnections.MaximumConnections = 0

	lowBandwidth := configuration("127.0.0.1:2130")
	lowBandwidth.Bandwidth = 100

	tests := []struct {
		title string
		con   listeners.RPCConfiguration
		err   error
	}{
		{"connection limit", noConnections, fault.ErrMissingParameters},
		{"bandwidth", lowBandwidth, fault.ErrMissingParameters},
		{"no listen", configuration(), fault.ErrMissingParameters},
		{"not an address", configuration("1"), fault.ErrInvalidIPAddress},
		{"empty address", configuration(""), fault.ErrInvalidIPAddress},
		{"wildcard without port", configuration("*"), fault.ErrInvalidIPAddress},
		{"wildcard", configuration("*:1234"), nil},
		{"IPv6", configuration("[::1]:1234"), nil},
	}

	for _, test := range tests {
		count := counter.Counter(0)
		_, err := listeners.NewRPC(&test.con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{}, [32]byte{})
		assert.Equal(t, test.err, err, test.title)
	}
}

func TestRpcListenerServeWhenInvalidTLSConfig(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	con := configuration(fmt.Sprintf("127.0.0.1:%d", port))

	count := counter.Counter(0)

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{}, [32]byte{})
	if !assert.Nil(t, err, "wrong NewRPC") {
		return
	}

	err = l.Serve()
	assert.NotNil(t, err, "wrong Serve")
	assert.Contains(t, err.Error(), "tls", "wrong error message")
	assert.Nil(t, l.Close(), "close")
}
