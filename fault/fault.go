// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Celestium Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// error instances
//
// Provides a single instance of errors to allow easy comparison
package fault

// error base
type GenericError string

// to allow for different classes of errors
type AuthenticationError GenericError
type ExistsError GenericError
type FundsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountNotFound                = NotFoundError("account not found")
	ErrAlreadyInitialised             = ProcessError("already initialised")
	ErrAlreadyVotedForDelegate        = ExistsError("already voted for delegate")
	ErrDelegateNotFound               = NotFoundError("delegate not found")
	ErrEmptyVotes                     = InvalidError("vote list is empty")
	ErrInsufficientFunds              = FundsError("insufficient funds")
	ErrInvalidAddress                 = InvalidError("address is invalid")
	ErrInvalidAmount                  = InvalidError("amount is invalid")
	ErrInvalidAssetPayload            = InvalidError("asset payload is invalid")
	ErrInvalidDiffEntry               = InvalidError("diff entry is invalid")
	ErrInvalidLoggerChannel           = ProcessError("invalid logger channel")
	ErrInvalidPublicKey               = InvalidError("public key is invalid")
	ErrInvalidRecipient               = InvalidError("recipient is invalid")
	ErrInvalidSecondSignature         = AuthenticationError("second signature is invalid")
	ErrInvalidSignature               = AuthenticationError("signature is invalid")
	ErrInvalidTimestamp               = InvalidError("timestamp is invalid")
	ErrInvalidTransactionId           = InvalidError("transaction id is invalid")
	ErrInvalidUsername                = InvalidError("username is invalid")
	ErrNotInitialised                 = ProcessError("not initialised")
	ErrNotVotedForDelegate            = NotFoundError("have not voted for delegate")
	ErrSecondSignatureAlreadyEnrolled = ExistsError("second signature already enrolled")
	ErrSenderNotFound                 = NotFoundError("sender not found")
	ErrTransactionAlreadyConfirmed    = ExistsError("transaction already confirmed")
	ErrTransactionAlreadyExists       = ExistsError("transaction already exists")
	ErrTransactionNotFound            = NotFoundError("transaction not found")
	ErrUnknownTransactionType         = InvalidError("unknown transaction type")
	ErrUsernameAlreadyExists          = ExistsError("username already exists")
	ErrUsernameLengthLimit            = InvalidError("username length is out of range")
	ErrUsernameLikeAddress            = InvalidError("username is shaped like an address")
	ErrVotesLimit                     = InvalidError("maximum votes exceeded")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthenticationError) Error() string { return string(e) }
func (e ExistsError) Error() string         { return string(e) }
func (e FundsError) Error() string          { return string(e) }
func (e InvalidError) Error() string        { return string(e) }
func (e NotFoundError) Error() string       { return string(e) }
func (e ProcessError) Error() string        { return string(e) }

// determine the class of an error
func IsErrAuthentication(e error) bool { _, ok := e.(AuthenticationError); return ok }
func IsErrExists(e error) bool         { _, ok := e.(ExistsError); return ok }
func IsErrFunds(e error) bool          { _, ok := e.(FundsError); return ok }
func IsErrInvalid(e error) bool        { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool       { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool        { _, ok := e.(ProcessError); return ok }
