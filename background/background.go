// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// run a set of background processes with a common shutdown protocol
package background

// T - handle for the stop command
type T struct {
	finished chan struct{}
	shutdown chan struct{}
	count    int
}

// Process - a single background
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of background processes to start
type Processes []Process

// Start - start up a set of background processes
// all with the same arg value
func Start(processes Processes, args interface{}) *T {

	register := &T{
		finished: make(chan struct{}),
		shutdown: make(chan struct{}),
		count:    len(processes),
	}

	// start each background
	for _, p := range processes {
		go func(p Process) {
			p.Run(args, register.shutdown)
			register.finished <- struct{}{}
		}(p)
	}
	return register
}

// Stop - stop a set of background processes
func (t *T) Stop() {

	if nil == t {
		return
	}

	// shutdown all background tasks
	close(t.shutdown)

	// wait for finished
	for i := 0; i < t.count; i += 1 {
		<-t.finished
	}
}
