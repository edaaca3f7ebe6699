// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenv

import (
	"errors"
	"fmt"
)

// ErrorKind classifies transaction failures.
type ErrorKind string

const (
	// ErrInvalidArgument malformed or out-of-policy call input.
	ErrInvalidArgument ErrorKind = "invalid argument"
	// ErrOverflow 256-bit addition exceeded the upper bound.
	ErrOverflow ErrorKind = "overflow"
	// ErrUnderflow 256-bit subtraction went below zero.
	ErrUnderflow ErrorKind = "underflow"
	// ErrInsufficientBalance business-rule precondition failure on balance.
	ErrInsufficientBalance ErrorKind = "insufficient balance"
	// ErrUnknownContract no contract deployed at the target address.
	ErrUnknownContract ErrorKind = "unknown contract"
	// ErrUnknownMethod the target contract has no such method.
	ErrUnknownMethod ErrorKind = "unknown method"
	// ErrStepLimit the per-transaction step budget is exhausted.
	ErrStepLimit ErrorKind = "step limit exceeded"
)

// Revert aborts the current transaction only.
// It rolls back all of the transaction's mutations and is never fatal
// to the process.
type Revert struct {
	kind   ErrorKind
	reason string
}

// NewRevert creates a revert with the given kind and reason.
func NewRevert(kind ErrorKind, reason string) *Revert {
	return &Revert{kind: kind, reason: reason}
}

func (r *Revert) Error() string {
	return fmt.Sprintf("%s: %s", r.kind, r.reason)
}

// Kind returns the failure kind.
func (r *Revert) Kind() ErrorKind { return r.kind }

// Reason returns the human-readable reason string.
func (r *Revert) Reason() string { return r.reason }

// AsRevert extracts a Revert from err, if any.
func AsRevert(err error) (*Revert, bool) {
	var r *Revert
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
