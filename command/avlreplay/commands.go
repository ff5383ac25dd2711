// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
)

// command handler for any trailing arguments
//
// returns true if the command was fully handled and the program
// should stop, false to continue with the replay
func processSetupCommand(w io.Writer, program string, arguments []string) bool {

	command := "replay"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "replay", "run":
		return false // continue processing

	case "version", "v":
		fmt.Fprintf(w, "%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Fprintf(w, "error: missing command\n")
		default:
			fmt.Fprintf(w, "error: no such command: %v\n", command)
		}

		fmt.Fprintf(w, "supported commands:\n\n")
		fmt.Fprintf(w, "  help                       (h)      - display this message\n\n")
		fmt.Fprintf(w, "  version                    (v)      - display version string\n\n")
		fmt.Fprintf(w, "  replay                     (run)    - apply the configured operations (default)\n\n")
		fmt.Fprintf(w, "options:\n\n")
		fmt.Fprintf(w, "  --config-file=FILE         (-c)     - Lua configuration returning the operations\n")
		fmt.Fprintf(w, "  --watch                    (-w)     - replay again whenever FILE changes\n")
		fmt.Fprintf(w, "  --verbose                  (-v)     - show every operation\n")
		fmt.Fprintf(w, "  --quiet                    (-q)     - suppress the summary\n")
	}

	return true
}
