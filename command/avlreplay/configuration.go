// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avlreplay.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// the operation actions
const (
	actionInsert = "insert"
	actionDelete = "delete"
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"replay":          "info",
		"watcher":         "info",
		logger.DefaultTag: "critical",
	}
)

// a fresh copy so configuration values do not alter the defaults
func (m LoglevelMap) clone() LoglevelMap {
	levels := make(LoglevelMap, len(m))
	for k, v := range m {
		levels[k] = v
	}
	return levels
}

// OperationType - a single tree operation
type OperationType struct {
	Action string `gluamapper:"action" json:"action"`
	Key    string `gluamapper:"key" json:"key"`
	Value  string `gluamapper:"value" json:"value"`
}

// Configuration - configuration file data
type Configuration struct {
	DataDirectory  string               `gluamapper:"data_directory" json:"data_directory"`
	PrintTree      bool                 `gluamapper:"print_tree" json:"print_tree"`
	PrintData      bool                 `gluamapper:"print_data" json:"print_data"`
	CheckEveryStep bool                 `gluamapper:"check_every_step" json:"check_every_step"`
	Operations     []OperationType      `gluamapper:"operations" json:"operations"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if err != nil {
		return nil, err
	}

	options := &Configuration{
		DataDirectory:  defaultDataDirectory,
		PrintTree:      false,
		PrintData:      false,
		CheckEveryStep: true,
		Operations:     nil,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels.clone(),
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	options.DataDirectory, err = configuration.DataDirectory(configurationFileName, options.DataDirectory)
	if err != nil {
		return nil, err
	}

	if err := checkOperations(options.Operations); err != nil {
		return nil, err
	}

	// log file must be a plain name placed in the log directory
	if err := configuration.PlainFileName(options.Logging.File); err != nil {
		return nil, fmt.Errorf("%w: %q", err, options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = configuration.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0o700); err != nil {
			return nil, err
		}
	}

	// done
	return options, nil
}

// normalise the action names and reject anything unusable
func checkOperations(operations []OperationType) error {
	for i := range operations {
		op := &operations[i]
		op.Action = strings.ToLower(strings.TrimSpace(op.Action))
		switch op.Action {
		case actionInsert, actionDelete:
		default:
			return fmt.Errorf("%w: operations[%d]: %q", fault.ErrInvalidAction, i+1, op.Action)
		}
		if "" == op.Key {
			return fmt.Errorf("%w: operations[%d]", fault.ErrMissingKey, i+1)
		}
	}
	return nil
}
