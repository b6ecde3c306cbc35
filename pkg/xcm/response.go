// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

var (
	ErrUnknownResponse       = errors.New("unknown response")
	ErrUnknownErrorCode      = errors.New("unknown xcm error code")
	ErrUnknownDispatchResult = errors.New("unknown dispatch result")
)

// ErrorCode is the XCM executor error kind reported in an execution result.
type ErrorCode uint8

// XCM executor error kinds.
const (
	ErrorOverflow ErrorCode = iota
	ErrorUnimplemented
	ErrorUntrustedReserveLocation
	ErrorUntrustedTeleportLocation
	ErrorLocationFull
	ErrorLocationNotInvertible
	ErrorBadOrigin
	ErrorInvalidLocation
	ErrorAssetNotFound
	ErrorFailedToTransactAsset
	ErrorNotWithdrawable
	ErrorLocationCannotHold
	ErrorExceedsMaxMessageSize
	ErrorDestinationUnsupported
	ErrorTransport
	ErrorUnroutable
	ErrorUnknownClaim
	ErrorFailedToDecode
	ErrorMaxWeightInvalid
	ErrorNotHoldingFees
	ErrorTooExpensive
	ErrorTrap
	ErrorExpectationFalse
	ErrorPalletNotFound
	ErrorNameMismatch
	ErrorVersionIncompatible
	ErrorHoldingWouldOverflow
	ErrorExportError
	ErrorReanchorFailed
	ErrorNoDeal
	ErrorFeesNotMet
	ErrorLockError
	ErrorNoPermission
	ErrorUnanchored
	ErrorNotDepositable
	ErrorUnhandledXcmVersion
	ErrorWeightLimitReached
	ErrorBarrier
	ErrorWeightNotComputable
	ErrorExceedsStackLimit
)

// ExecutionError is an XCM executor error. TrapCode is only meaningful
// for ErrorTrap and Weight only for ErrorWeightLimitReached.
type ExecutionError struct {
	Code     ErrorCode
	TrapCode uint64
	Weight   Weight
}

// Encode fulfils the scale.Encodeable interface.
func (e ExecutionError) Encode(enc scale.Encoder) error {
	if e.Code > ErrorExceedsStackLimit {
		return fmt.Errorf("%w: %d", ErrUnknownErrorCode, e.Code)
	}
	if err := enc.PushByte(byte(e.Code)); err != nil {
		return err
	}
	switch e.Code {
	case ErrorTrap:
		return encodeU64(enc, e.TrapCode)
	case ErrorWeightLimitReached:
		return e.Weight.Encode(enc)
	}
	return nil
}

// Decode fulfils the scale.Decodeable interface.
func (e *ExecutionError) Decode(dec scale.Decoder) error {
	b, err := dec.ReadOneByte()
	if err != nil {
		return err
	}
	code := ErrorCode(b)
	if code > ErrorExceedsStackLimit {
		return fmt.Errorf("%w: %d", ErrUnknownErrorCode, b)
	}

	*e = ExecutionError{Code: code}
	switch code {
	case ErrorTrap:
		e.TrapCode, err = decodeU64(dec)
	case ErrorWeightLimitReached:
		err = e.Weight.Decode(dec)
	}
	return err
}

// Response is the content of a QueryResponse.
type Response interface {
	variant
	isResponse()
}

// NullResponse is the null response.
type NullResponse struct{}

// AssetsResponse is some assets.
type AssetsResponse MultiAssets

// ExecutionResultResponse is the outcome of an XCM instruction. A nil
// Failure means the program completed.
type ExecutionResultResponse struct {
	Failure *ExecutionFailure
}

// ExecutionFailure locates the failing instruction of a program.
type ExecutionFailure struct {
	InstructionIndex uint32
	Error            ExecutionError
}

// VersionResponse is an XCM version.
type VersionResponse uint32

// DispatchOutcome is the kind of a dispatch result.
type DispatchOutcome uint8

const (
	// DispatchSuccess is a successful dispatch.
	DispatchSuccess DispatchOutcome = iota
	// DispatchError is a failed dispatch with an encoded error.
	DispatchError
	// DispatchTruncatedError is a failed dispatch whose encoded error was truncated.
	DispatchTruncatedError
)

// DispatchResultResponse is the outcome of a Transact dispatch.
type DispatchResultResponse struct {
	Outcome DispatchOutcome
	Error   []byte
}

// Index returns VDT index
func (NullResponse) Index() uint { return 0 }

// Index returns VDT index
func (AssetsResponse) Index() uint { return 1 }

// Index returns VDT index
func (ExecutionResultResponse) Index() uint { return 2 }

// Index returns VDT index
func (VersionResponse) Index() uint { return 3 }

// Index returns VDT index
func (DispatchResultResponse) Index() uint { return 5 }

func (NullResponse) isResponse()            {}
func (AssetsResponse) isResponse()          {}
func (ExecutionResultResponse) isResponse() {}
func (VersionResponse) isResponse()         {}
func (DispatchResultResponse) isResponse()  {}

func (NullResponse) encodeValue(scale.Encoder) error { return nil }

func (r AssetsResponse) encodeValue(enc scale.Encoder) error { return MultiAssets(r).Encode(enc) }

func (r ExecutionResultResponse) encodeValue(enc scale.Encoder) error {
	if r.Failure == nil {
		return encodeOptionByte(enc, false)
	}
	if err := encodeOptionByte(enc, true); err != nil {
		return err
	}
	if err := encodeU32(enc, r.Failure.InstructionIndex); err != nil {
		return err
	}
	return r.Failure.Error.Encode(enc)
}

func (r VersionResponse) encodeValue(enc scale.Encoder) error { return encodeU32(enc, uint32(r)) }

func (r DispatchResultResponse) encodeValue(enc scale.Encoder) error {
	if r.Outcome > DispatchTruncatedError {
		return fmt.Errorf("%w: %d", ErrUnknownDispatchResult, r.Outcome)
	}
	if err := enc.PushByte(byte(r.Outcome)); err != nil {
		return err
	}
	if r.Outcome == DispatchSuccess {
		return nil
	}
	return encodeBytes(enc, r.Error)
}

func decodeResponse(dec scale.Decoder) (Response, error) {
	index, err := dec.ReadOneByte()
	if err != nil {
		return nil, err
	}

	switch index {
	case 0:
		return NullResponse{}, nil
	case 1:
		var assets MultiAssets
		if err = assets.Decode(dec); err != nil {
			return nil, err
		}
		return AssetsResponse(assets), nil
	case 2:
		some, err := decodeOptionByte(dec)
		if err != nil {
			return nil, err
		}
		if !some {
			return ExecutionResultResponse{}, nil
		}
		failure := new(ExecutionFailure)
		if failure.InstructionIndex, err = decodeU32(dec); err != nil {
			return nil, err
		}
		if err = failure.Error.Decode(dec); err != nil {
			return nil, err
		}
		return ExecutionResultResponse{Failure: failure}, nil
	case 3:
		version, err := decodeU32(dec)
		if err != nil {
			return nil, err
		}
		return VersionResponse(version), nil
	case 5:
		b, err := dec.ReadOneByte()
		if err != nil {
			return nil, err
		}
		r := DispatchResultResponse{Outcome: DispatchOutcome(b)}
		switch r.Outcome {
		case DispatchSuccess:
		case DispatchError, DispatchTruncatedError:
			if r.Error, err = decodeBytes(dec); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnknownDispatchResult, b)
		}
		return r, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownResponse, index)
	}
}
