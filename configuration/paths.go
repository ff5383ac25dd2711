// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avltree/fault"
)

// EnsureAbsolute - if a path is not absolute, prefix it with directory
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// DataDirectory - resolve the data directory setting of a
// configuration file
//
// "." is the directory holding the configuration file, blank or "~"
// is rejected, anything else must be an existing directory
func DataDirectory(configurationFileName string, dataDirectory string) (string, error) {
	switch dataDirectory {
	case "", "~":
		return "", fault.ErrInvalidDataDirectory
	case ".":
		dataDirectory, _ = filepath.Split(configurationFileName)
	}
	dataDirectory = filepath.Clean(dataDirectory)

	// this directory must exist - i.e. must be created prior to running
	fileInfo, err := os.Stat(dataDirectory)
	if nil != err {
		return "", err
	}
	if !fileInfo.IsDir() {
		return "", fault.ErrNotADirectory
	}
	return dataDirectory, nil
}

// PlainFileName - fail if a file name contains a path
func PlainFileName(fileName string) error {
	switch filepath.Dir(fileName) {
	case "", ".":
		return nil
	default:
		return fault.ErrNotPlainFileName
	}
}
