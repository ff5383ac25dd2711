// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

func TestGetConfiguration(t *testing.T) {
	fileName := writeConfiguration(t, `
local ops = {}
for i = 1, 5 do
    ops[#ops + 1] = { action = "insert", key = string.format("k%02d", i), value = "v" .. i }
end
ops[#ops + 1] = { action = " DELETE ", key = "k03" }
ops[#ops + 1] = { action = "insert", key = 42 }

return {
    data_directory = ".",
    print_tree = true,
    check_every_step = false,
    operations = ops,
    logging = {
        directory = "logs",
        file = "replay.log",
        size = 4096,
        count = 3,
        levels = {
            replay = "debug",
        },
    },
}
`)
	directory := filepath.Dir(fileName)

	conf, err := getConfiguration(fileName)
	require.NoError(t, err, "get configuration")

	assert.Equal(t, directory, conf.DataDirectory, "data directory")
	assert.True(t, conf.PrintTree, "print tree")
	assert.False(t, conf.PrintData, "print data default")
	assert.False(t, conf.CheckEveryStep, "check every step")

	require.Len(t, conf.Operations, 7, "operations")
	assert.Equal(t, OperationType{Action: actionInsert, Key: "k01", Value: "v1"}, conf.Operations[0], "first")
	assert.Equal(t, OperationType{Action: actionDelete, Key: "k03"}, conf.Operations[5], "normalised delete")
	assert.Equal(t, "42", conf.Operations[6].Key, "numeric key")

	assert.Equal(t, filepath.Join(directory, "logs"), conf.Logging.Directory, "log directory")
	assert.Equal(t, "replay.log", conf.Logging.File, "log file")
	assert.Equal(t, 4096, conf.Logging.Size, "log size")
	assert.Equal(t, 3, conf.Logging.Count, "log count")
	assert.Equal(t, "debug", conf.Logging.Levels["replay"], "replay level")

	info, err := os.Stat(conf.Logging.Directory)
	require.NoError(t, err, "log directory created")
	assert.True(t, info.IsDir(), "log directory is a directory")
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName := writeConfiguration(t, `return { data_directory = "." }`)

	conf, err := getConfiguration(fileName)
	require.NoError(t, err, "get configuration")

	assert.True(t, conf.CheckEveryStep, "check every step default")
	assert.Empty(t, conf.Operations, "no operations")
	assert.Equal(t, defaultLogFile, conf.Logging.File, "log file default")
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), defaultLogDirectory), conf.Logging.Directory, "log directory default")
}

func TestGetConfigurationErrors(t *testing.T) {
	items := []struct {
		name     string
		content  string
		expected error
	}{
		{"no data directory", `return {}`, fault.ErrInvalidDataDirectory},
		{"bad action", `return { data_directory = ".", operations = { { action = "upsert", key = "a" } } }`, fault.ErrInvalidAction},
		{"missing key", `return { data_directory = ".", operations = { { action = "insert" } } }`, fault.ErrMissingKey},
		{"log path", `return { data_directory = ".", logging = { file = "x/y.log" } }`, fault.ErrNotPlainFileName},
		{"not a table", `return "replay"`, fault.ErrConfigurationNotTable},
	}

	for _, item := range items {
		fileName := writeConfiguration(t, item.content)
		_, err := getConfiguration(fileName)
		assert.True(t, errors.Is(err, item.expected), "%s: actual: %v", item.name, err)
	}

	_, err := getConfiguration(filepath.Join(t.TempDir(), "absent.conf"))
	assert.True(t, fault.IsErrNotFound(err), "absent file: %v", err)
}
