// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
)

const testingDirName = "testing"

func TestMain(m *testing.M) {
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(rc)
}
