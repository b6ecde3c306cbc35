// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package extension

import (
	"errors"
	"fmt"
)

// Status codes returned by the take-response function.
const (
	StatusOk         uint32 = 0
	StatusNoResponse uint32 = 1
)

var (
	// ErrNoResponse is returned by TakeResponse when no response
	// has been recorded for the query yet.
	ErrNoResponse = errors.New("no response")
	// ErrUnknownStatusCode is wrapped in a FatalError when the host returns
	// a status code outside of the documented set.
	ErrUnknownStatusCode = errors.New("unknown status code")
)

// FatalError is a protocol fault that must abort the calling contract
// operation. It is never recoverable by retrying.
type FatalError struct {
	FuncID FuncID
	Err    error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal %s: %s", e.FuncID, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

// IsFatal returns true if the error chain contains a FatalError.
func IsFatal(err error) bool {
	var fatal *FatalError
	return errors.As(err, &fatal)
}

// StatusToError converts a status code returned by the take-response
// function to an error.
func StatusToError(funcID FuncID, status uint32) error {
	switch status {
	case StatusOk:
		return nil
	case StatusNoResponse:
		return ErrNoResponse
	default:
		return &FatalError{
			FuncID: funcID,
			Err:    fmt.Errorf("%w: %d", ErrUnknownStatusCode, status),
		}
	}
}
