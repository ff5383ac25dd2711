// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of each error so callers can compare
// by value or by class (exists, invalid, not found, order, process)
// without having to resort to partial string matches.  The class
// tests see through errors wrapped with fmt.Errorf("%w")
package fault
