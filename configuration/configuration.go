// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// node configuration file handling
package configuration

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Configuration - the top level of the configuration file
type Configuration struct {
	DataDirectory   string               `mapstructure:"data_directory"`
	PublishEndpoint string               `mapstructure:"publish_endpoint"`
	Logging         logger.Configuration `mapstructure:"logging"`
}

// default values for a minimal configuration file
const (
	defaultDataDirectory   = "data"
	defaultPublishEndpoint = "tcp://127.0.0.1:2135"
	defaultLogSize         = 1048576
	defaultLogCount        = 10
)

// Load - read and validate a configuration file
func Load(path string) (*Configuration, error) {

	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("data_directory", defaultDataDirectory)
	v.SetDefault("publish_endpoint", defaultPublishEndpoint)
	v.SetDefault("logging.size", defaultLogSize)
	v.SetDefault("logging.count", defaultLogCount)
	v.SetDefault("logging.levels", map[string]string{
		logger.DefaultTag: "info",
	})

	err := v.ReadInConfig()
	if nil != err {
		return nil, errors.Wrapf(err, "cannot read configuration: %q", path)
	}

	options := &Configuration{}
	err = v.Unmarshal(options)
	if nil != err {
		return nil, errors.Wrapf(err, "cannot decode configuration: %q", path)
	}

	// relative paths are resolved against the configuration file
	base := filepath.Dir(path)
	if !filepath.IsAbs(options.DataDirectory) {
		options.DataDirectory = filepath.Join(base, options.DataDirectory)
	}

	if "" == options.Logging.Directory {
		options.Logging.Directory = filepath.Join(options.DataDirectory, "log")
	} else if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(base, options.Logging.Directory)
	}
	if "" == options.Logging.File {
		options.Logging.File = "celestiumd.log"
	}

	return options, nil
}
