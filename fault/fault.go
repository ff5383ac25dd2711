// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type OrderError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrBalanceMismatch       = InvalidError("balance factor does not match sub-tree heights")
	ErrBalanceOutOfRange     = InvalidError("balance factor is out of range")
	ErrConfigurationNotTable = InvalidError("configuration file did not return a table")
	ErrHeightBound           = InvalidError("tree height exceeds the AVL bound")
	ErrInvalidAction         = InvalidError("operation action is invalid")
	ErrInvalidDataDirectory  = InvalidError("data directory is invalid")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyOrder              = OrderError("key comparison result must be -1, 0 or +1")
	ErrMissingKey            = InvalidError("operation key is missing")
	ErrNodeCount             = InvalidError("node count does not match sub-tree size")
	ErrNotADirectory         = InvalidError("path is not a directory")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrNotPlainFileName      = InvalidError("file name must not contain a path")
	ErrParentLink            = InvalidError("parent link is inconsistent")
	ErrReplayFailed          = ProcessError("replay failed")
	ErrUnorderedKeys         = OrderError("keys are not in ascending order")
	ErrWatcherAlreadyStarted = ExistsError("watcher already started")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e OrderError) Error() string    { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool {
	var x ExistsError
	return errors.As(e, &x)
}

func IsErrInvalid(e error) bool {
	var x InvalidError
	return errors.As(e, &x)
}

func IsErrNotFound(e error) bool {
	var x NotFoundError
	return errors.As(e, &x)
}

func IsErrOrder(e error) bool {
	var x OrderError
	return errors.As(e, &x)
}

func IsErrProcess(e error) bool {
	var x ProcessError
	return errors.As(e, &x)
}
