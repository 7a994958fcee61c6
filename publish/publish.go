// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// fan admitted transactions out to subscribers
//
// one ZeroMQ PUB socket; every announcement from the pipeline goes
// out as a two frame message of topic and JSON body
package publish

import (
	"context"
	"encoding/json"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"
	"golang.org/x/time/rate"

	"github.com/celestium/celestiumd/background"
	"github.com/celestium/celestiumd/messagebus"
)

// publish rate limiting
const (
	rateLimit = rate.Limit(200)
	rateBurst = 100
)

// topic frame for transaction announcements
const transactionTopic = "transaction"

// Publisher - owns the PUB socket and the drain loop
type Publisher struct {
	log     *logger.L
	bus     *messagebus.Queue
	socket  *zmq.Socket
	limiter *rate.Limiter

	processes *background.T
}

// New - bind the PUB socket to an endpoint such as "tcp://*:2135"
func New(endpoint string, bus *messagebus.Queue) (*Publisher, error) {

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return nil, err
	}
	socket.SetLinger(0)

	err = socket.Bind(endpoint)
	if nil != err {
		socket.Close()
		return nil, err
	}

	return &Publisher{
		log:     logger.New("publish"),
		bus:     bus,
		socket:  socket,
		limiter: rate.NewLimiter(rateLimit, rateBurst),
	}, nil
}

// Start - run the drain loop
func (pub *Publisher) Start() {
	pub.processes = background.Start(background.Processes{pub}, nil)
	pub.log.Info("started")
}

// Stop - shut down the drain loop and release the socket
func (pub *Publisher) Stop() {
	pub.processes.Stop()
	pub.socket.Close()
	pub.log.Info("stopped")
}

// Run - forward announcements until shutdown
func (pub *Publisher) Run(args interface{}, shutdown <-chan struct{}) {

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case announcement := <-pub.bus.Chan():
			if !announcement.Broadcast {
				continue loop
			}
			err := pub.send(announcement)
			if nil != err {
				pub.log.Errorf("send: %s", err)
			}
		}
	}
}

func (pub *Publisher) send(announcement messagebus.Announcement) error {

	err := pub.limiter.Wait(context.Background())
	if nil != err {
		return err
	}

	body, err := json.Marshal(announcement.Tx)
	if nil != err {
		return err
	}

	_, err = pub.socket.Send(transactionTopic, zmq.SNDMORE)
	if nil != err {
		return err
	}
	_, err = pub.socket.SendBytes(body, 0)
	if nil != err {
		return err
	}

	pub.log.Debugf("published: %s", announcement.Tx.Id)
	return nil
}
