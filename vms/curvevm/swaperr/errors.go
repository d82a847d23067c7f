// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package swaperr defines the error codes reported by the bonding-curve swap
// program and their conversion into the program-wide error type.
package swaperr

import (
	"errors"
	"fmt"
	"math"
)

// UnknownCode is reported for errors that do not carry a SwapError.
const UnknownCode uint32 = math.MaxUint32

// SwapError is a stable, numbered failure of the swap program.
type SwapError uint32

const (
	// AlreadyInUse means the swap account is already initialized.
	AlreadyInUse SwapError = iota
	// InvalidFee means the fee numerator exceeds the denominator.
	InvalidFee
	// CalculationFailure means a checked computation had no result.
	CalculationFailure
	// InvalidAccountData means an account could not be decoded.
	InvalidAccountData
	// UninitializedAccount means the swap account was never initialized.
	UninitializedAccount
)

func (e SwapError) Error() string {
	switch e {
	case AlreadyInUse:
		return "swap account already in use"
	case InvalidFee:
		return "invalid fee"
	case CalculationFailure:
		return "calculation failure"
	case InvalidAccountData:
		return "invalid account data"
	case UninitializedAccount:
		return "swap account not initialized"
	default:
		return fmt.Sprintf("unknown swap error %d", uint32(e))
	}
}

// ProgramError is the error type surfaced by the program to its caller. Every
// failure is reduced to a numeric code; Err keeps the full chain for logs.
type ProgramError struct {
	Code uint32
	Err  error
}

func (e *ProgramError) Error() string {
	return fmt.Sprintf("program error %d: %s", e.Code, e.Err)
}

func (e *ProgramError) Unwrap() error {
	return e.Err
}

// From converts err into a ProgramError. The code is taken from the first
// SwapError in the chain, or UnknownCode if there is none. Returns nil if err
// is nil.
func From(err error) *ProgramError {
	if err == nil {
		return nil
	}
	var programErr *ProgramError
	if errors.As(err, &programErr) {
		return programErr
	}
	var swapErr SwapError
	if errors.As(err, &swapErr) {
		return &ProgramError{
			Code: uint32(swapErr),
			Err:  err,
		}
	}
	return &ProgramError{
		Code: UnknownCode,
		Err:  err,
	}
}
