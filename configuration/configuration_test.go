// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type entry struct {
	Name  string `gluamapper:"name"`
	Count int    `gluamapper:"count"`
}

type testConfiguration struct {
	Title   string            `gluamapper:"title"`
	Enabled bool              `gluamapper:"enabled"`
	Self    string            `gluamapper:"self"`
	Entries []entry           `gluamapper:"entries"`
	Levels  map[string]string `gluamapper:"levels"`
	Default string            `gluamapper:"default"`
}

func writeFile(t *testing.T, directory string, name string, content string) string {
	fileName := filepath.Join(directory, name)
	err := ioutil.WriteFile(fileName, []byte(content), 0o600)
	require.NoError(t, err, "write: %s", fileName)
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	directory := t.TempDir()
	fileName := writeFile(t, directory, "test.conf", `
local title = "replay" .. "-" .. "test"
return {
    title = title,
    enabled = true,
    self = arg[0],
    entries = {
        { name = "one", count = 1 },
        { name = "two", count = 2 },
    },
    levels = {
        main = "info",
        DEFAULT = "critical",
    },
}
`)

	config := &testConfiguration{
		Default: "unchanged",
	}
	err := configuration.ParseConfigurationFile(fileName, config)
	require.NoError(t, err, "parse")

	assert.Equal(t, "replay-test", config.Title, "title")
	assert.True(t, config.Enabled, "enabled")
	assert.Equal(t, fileName, config.Self, "arg[0]")
	assert.Equal(t, []entry{{"one", 1}, {"two", 2}}, config.Entries, "entries")
	assert.Equal(t, map[string]string{"main": "info", "DEFAULT": "critical"}, config.Levels, "levels")
	assert.Equal(t, "unchanged", config.Default, "default kept")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	directory := t.TempDir()

	config := &testConfiguration{}

	err := configuration.ParseConfigurationFile(filepath.Join(directory, "missing.conf"), config)
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "missing file")

	fileName := writeFile(t, directory, "number.conf", "return 42\n")
	err = configuration.ParseConfigurationFile(fileName, config)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "not a table")

	fileName = writeFile(t, directory, "syntax.conf", "return {\n")
	err = configuration.ParseConfigurationFile(fileName, config)
	assert.Error(t, err, "syntax error")

	err = configuration.ParseConfigurationFile(fileName, *config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	var nilConfig *testConfiguration
	err = configuration.ParseConfigurationFile(fileName, nilConfig)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "nil pointer")
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", configuration.EnsureAbsolute("/data", "log"), "relative")
	assert.Equal(t, "/var/log", configuration.EnsureAbsolute("/data", "/var/log"), "absolute")
	assert.Equal(t, "/data/log", configuration.EnsureAbsolute("/data", "./x/../log"), "cleaned")
}

func TestDataDirectory(t *testing.T) {
	directory := t.TempDir()
	fileName := writeFile(t, directory, "test.conf", "return {}\n")

	d, err := configuration.DataDirectory(fileName, ".")
	assert.NoError(t, err, "dot")
	assert.Equal(t, filepath.Clean(directory), d, "dot is the configuration directory")

	d, err = configuration.DataDirectory(fileName, directory+"/")
	assert.NoError(t, err, "explicit")
	assert.Equal(t, filepath.Clean(directory), d, "explicit directory")

	_, err = configuration.DataDirectory(fileName, "")
	assert.Equal(t, fault.ErrInvalidDataDirectory, err, "blank")

	_, err = configuration.DataDirectory(fileName, "~")
	assert.Equal(t, fault.ErrInvalidDataDirectory, err, "home")

	_, err = configuration.DataDirectory(fileName, fileName)
	assert.Equal(t, fault.ErrNotADirectory, err, "file")

	_, err = configuration.DataDirectory(fileName, filepath.Join(directory, "absent"))
	assert.True(t, os.IsNotExist(err), "absent: %v", err)
}

func TestPlainFileName(t *testing.T) {
	assert.NoError(t, configuration.PlainFileName("replay.log"), "plain")
	assert.Equal(t, fault.ErrNotPlainFileName, configuration.PlainFileName("log/replay.log"), "path")
}
