// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if err != nil {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--watch] --config-file=FILE [[command|help] arguments...]", program)
	}

	// commands that do not need the configuration
	if processSetupCommand(os.Stdout, program, arguments) {
		return
	}

	if len(options["config-file"]) != 1 {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if err != nil {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); err != nil {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); err != nil {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	verbose := len(options["verbose"]) > 0
	var out io.Writer = os.Stdout
	if len(options["quiet"]) > 0 {
		out = ioutil.Discard
	}

	rlog := logger.New("replay")
	err = runReplay(rlog, theConfiguration, verbose, out)

	if 0 == len(options["watch"]) {
		if err != nil {
			exitwithstatus.Message("%s: %s: %s", program, fault.ErrReplayFailed, err)
		}
		return
	}

	watcher, err := newFileWatcher(configurationFile, logger.New(watcherLoggerPrefix))
	if err != nil {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	defer watcher.Stop()

	if err = watcher.Start(); err != nil {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}

	if out != ioutil.Discard {
		fmt.Fprintf(out, "\n\nWatching: %q  waiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…\n", configurationFile)
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

loop:
	for {
		select {
		case <-watcher.change:
			conf, err := getConfiguration(configurationFile)
			if err != nil {
				log.Errorf("reload: %q  error: %s", configurationFile, err)
				fmt.Fprintf(out, "reload failed: %s\n", err)
				continue loop
			}
			// logging stays as first configured
			conf.Logging = theConfiguration.Logging
			if err := runReplay(rlog, conf, verbose, out); err != nil {
				fmt.Fprintf(out, "%s: %s\n", fault.ErrReplayFailed, err)
			}

		case <-watcher.remove:
			log.Errorf("configuration file: %q removed", configurationFile)
			break loop

		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			if out != ioutil.Discard {
				fmt.Fprintf(out, "\nreceived signal: %v\n", sig)
			}
			break loop
		}
	}
}

// one replay followed by its report
func runReplay(log *logger.L, conf *Configuration, verbose bool, out io.Writer) error {
	tree, s, err := replay(log, conf, verbose, out)
	if err != nil {
		log.Errorf("replay failed: %s", err)
		if conf.PrintTree {
			tree.Fprint(out, conf.PrintData)
		}
		return err
	}
	report(out, conf, tree, s)
	return nil
}
