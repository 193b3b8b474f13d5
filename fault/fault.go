// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrBalanceMismatch       = RecordError("balance factor does not match sub-tree heights")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrCountMismatch         = RecordError("node count does not match tree contents")
	ErrFileNotFound          = NotFoundError("file not found")
	ErrInvalidCodec          = InvalidError("invalid codec")
	ErrInvalidItem           = InvalidError("invalid item")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidOperation      = InvalidError("invalid operation")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrKeyOrder              = RecordError("keys are not in ascending order")
	ErrNilTree               = InvalidError("nil tree")
	ErrNotBalanced           = RecordError("sub-tree heights differ by more than one")
	ErrNotConfirmed          = ProcessError("operation not confirmed")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrParentLinkBroken      = RecordError("parent link does not match")
	ErrRootHasParent         = RecordError("root node has a parent")
	ErrSnapshotVersion       = ProcessError("incompatible snapshot database version")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
