// Package domain provides defenitions of all entities.
package domain

import (
	"errors"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Identity is an account script hash. Externally it is always rendered as an address.
type Identity = util.Uint160

// Code is the stable numeric identifier of a ledger error expected by callers.
type Code uint32

// Ledger error codes.
const (
	CodeUnauthorized Code = iota + 1
	CodeAlreadyInitialized
	CodeInvalidAmount
	CodeInsufficientWithdrawable
	CodeInsufficientLocked
	CodeOverflow
)

// LedgerError is returned when a ledger call violates one of its preconditions.
type LedgerError struct {
	Code Code
	msg  string
}

func (e *LedgerError) Error() string {
	return e.msg
}

var (
	// ErrUnauthorized indicates that the call is not authorized by the recorded authority
	// or the ledger is not initialized yet.
	ErrUnauthorized = &LedgerError{Code: CodeUnauthorized, msg: "unauthorized"}
	// ErrAlreadyInitialized indicates that the authority has already been recorded.
	ErrAlreadyInitialized = &LedgerError{Code: CodeAlreadyInitialized, msg: "already initialized"}
	// ErrInvalidAmount indicates a negative balance or a non-positive lock/unlock amount.
	ErrInvalidAmount = &LedgerError{Code: CodeInvalidAmount, msg: "invalid amount"}
	// ErrInsufficientWithdrawable indicates that withdrawable would drop below zero.
	ErrInsufficientWithdrawable = &LedgerError{Code: CodeInsufficientWithdrawable, msg: "insufficient withdrawable balance"}
	// ErrInsufficientLocked indicates that locked would drop below zero.
	ErrInsufficientLocked = &LedgerError{Code: CodeInsufficientLocked, msg: "insufficient locked balance"}
	// ErrOverflow indicates that a result does not fit into the signed 128-bit range.
	ErrOverflow = &LedgerError{Code: CodeOverflow, msg: "overflow"}
)

// CodeOf returns the code of a ledger error, or 0 if err is not one.
func CodeOf(err error) Code {
	var lerr *LedgerError
	if errors.As(err, &lerr) {
		return lerr.Code
	}

	return 0
}
