// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// celestiumd - the transaction processing node
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/celestium/celestiumd/account"
	"github.com/celestium/celestiumd/assets"
	"github.com/celestium/celestiumd/chron"
	"github.com/celestium/celestiumd/configuration"
	"github.com/celestium/celestiumd/delegates"
	"github.com/celestium/celestiumd/fault"
	"github.com/celestium/celestiumd/messagebus"
	"github.com/celestium/celestiumd/publish"
	"github.com/celestium/celestiumd/reservoir"
	"github.com/celestium/celestiumd/storage"
)

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "celestiumd"
	app.Usage = "Celestium transaction processing node"
	app.Version = version
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config-file, c",
			Usage: "node configuration `FILE`",
			Value: "celestiumd.yaml",
		},
	}
	app.Action = runNode

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}

func runNode(c *cli.Context) error {

	options, err := configuration.Load(c.String("config-file"))
	if nil != err {
		return err
	}

	err = os.MkdirAll(options.Logging.Directory, 0700)
	if nil != err {
		return err
	}

	// start logging
	err = logger.Initialise(options.Logging)
	if nil != err {
		return err
	}
	defer logger.Finalise()

	err = fault.Initialise()
	if nil != err {
		return err
	}
	defer fault.Finalise()

	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	// ------------------
	// start of real main
	// ------------------

	pools, err := storage.New(options.DataDirectory)
	if nil != err {
		log.Criticalf("storage: %s", err)
		return err
	}
	defer pools.Close()

	store := account.NewStore()
	registry := delegates.NewRegistry(store)
	handlers := assets.NewRegistry(store, registry, pools)
	bus := messagebus.New()
	clock := chron.NewDefault()

	rsvr := reservoir.New(store, handlers, pools, bus, clock)
	rsvr.Start()
	defer rsvr.Stop()

	publisher, err := publish.New(options.PublishEndpoint, bus)
	if nil != err {
		log.Criticalf("publish: %s", err)
		return err
	}
	publisher.Start()
	defer publisher.Stop()

	log.Infof("publishing on: %s", options.PublishEndpoint)

	// wait for termination
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	log.Info("shutting down…")

	return nil
}
