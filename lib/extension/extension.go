// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package extension

import (
	"fmt"

	"github.com/hbulgarini/test-xcmv3/internal/log"
	"github.com/hbulgarini/test-xcmv3/pkg/xcm"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "extension"))

// FuncID identifies a function of the host XCM chain extension.
type FuncID uint32

// Chain extension function ids.
const (
	PrepareExecuteID FuncID = 0x00010000
	ExecuteID        FuncID = 0x00010001
	PrepareSendID    FuncID = 0x00010002
	SendID           FuncID = 0x00010003
	NewQueryID       FuncID = 0x00010004
	TakeResponseID   FuncID = 0x00010005
)

func (f FuncID) String() string {
	switch f {
	case PrepareExecuteID:
		return "prepare_execute"
	case ExecuteID:
		return "execute"
	case PrepareSendID:
		return "prepare_send"
	case SendID:
		return "send"
	case NewQueryID:
		return "new_query"
	case TakeResponseID:
		return "take_response"
	default:
		return fmt.Sprintf("func(0x%08x)", uint32(f))
	}
}

// XCM is the set of XCM operations exposed to contracts.
type XCM interface {
	PrepareExecute(program xcm.VersionedXcm) (weight uint64, err error)
	Execute() error
	PrepareSend(dest xcm.VersionedMultiLocation, program xcm.VersionedXcm) (fee xcm.VersionedMultiAsset, err error)
	Send() error
	NewQuery() (queryID uint64, err error)
	TakeResponse(queryID uint64) (response xcm.VersionedResponse, err error)
}

// ChainExtension is the raw host call interface. The input is the
// concatenated SCALE encoding of the arguments and the output is the
// SCALE encoding of the return value.
type ChainExtension interface {
	Call(funcID FuncID, input []byte) (status uint32, output []byte, err error)
}

// Extension implements XCM on top of a ChainExtension.
type Extension struct {
	host ChainExtension
}

var _ XCM = (*Extension)(nil)

// New returns a new Extension calling into the host given.
func New(host ChainExtension) *Extension {
	return &Extension{host: host}
}

// PrepareExecute stages a program for local execution and
// returns its estimated weight.
func (e *Extension) PrepareExecute(program xcm.VersionedXcm) (weight uint64, err error) {
	input, err := xcm.Encode(program)
	if err != nil {
		return 0, fmt.Errorf("encoding program: %w", err)
	}

	output, err := e.call(PrepareExecuteID, input)
	if err != nil {
		return 0, err
	}

	var w xcm.U64
	if err = xcm.Decode(output, &w); err != nil {
		return 0, &FatalError{FuncID: PrepareExecuteID, Err: fmt.Errorf("decoding weight: %w", err)}
	}
	return uint64(w), nil
}

// Execute executes the staged program.
func (e *Extension) Execute() error {
	_, err := e.call(ExecuteID, nil)
	return err
}

// PrepareSend stages a program for delivery to dest and returns
// the delivery fee.
func (e *Extension) PrepareSend(dest xcm.VersionedMultiLocation, program xcm.VersionedXcm) (
	fee xcm.VersionedMultiAsset, err error) {
	encodedDest, err := xcm.Encode(dest)
	if err != nil {
		return fee, fmt.Errorf("encoding destination: %w", err)
	}
	encodedProgram, err := xcm.Encode(program)
	if err != nil {
		return fee, fmt.Errorf("encoding program: %w", err)
	}

	input := make([]byte, 0, len(encodedDest)+len(encodedProgram))
	input = append(input, encodedDest...)
	input = append(input, encodedProgram...)

	output, err := e.call(PrepareSendID, input)
	if err != nil {
		return fee, err
	}

	if err = xcm.Decode(output, &fee); err != nil {
		return xcm.VersionedMultiAsset{}, &FatalError{FuncID: PrepareSendID, Err: fmt.Errorf("decoding fee: %w", err)}
	}
	return fee, nil
}

// Send delivers the staged program.
func (e *Extension) Send() error {
	_, err := e.call(SendID, nil)
	return err
}

// NewQuery allocates a new query id.
func (e *Extension) NewQuery() (queryID uint64, err error) {
	output, err := e.call(NewQueryID, nil)
	if err != nil {
		return 0, err
	}

	var id xcm.U64
	if err = xcm.Decode(output, &id); err != nil {
		return 0, &FatalError{FuncID: NewQueryID, Err: fmt.Errorf("decoding query id: %w", err)}
	}
	return uint64(id), nil
}

// TakeResponse takes the response recorded for the query id given.
// It returns ErrNoResponse if none is available yet, and a
// FatalError for any other status.
func (e *Extension) TakeResponse(queryID uint64) (response xcm.VersionedResponse, err error) {
	input, err := xcm.Encode(xcm.U64(queryID))
	if err != nil {
		return response, fmt.Errorf("encoding query id: %w", err)
	}

	status, output, err := e.host.Call(TakeResponseID, input)
	if err != nil {
		return response, &FatalError{FuncID: TakeResponseID, Err: err}
	}

	if err = StatusToError(TakeResponseID, status); err != nil {
		logger.Debugf("take response for query %d: %s", queryID, err)
		return response, err
	}

	if err = xcm.Decode(output, &response); err != nil {
		return xcm.VersionedResponse{}, &FatalError{FuncID: TakeResponseID, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return response, nil
}

// call performs a host call whose status code is not checked.
func (e *Extension) call(funcID FuncID, input []byte) (output []byte, err error) {
	status, output, err := e.host.Call(funcID, input)
	if err != nil {
		return nil, &FatalError{FuncID: funcID, Err: err}
	}
	if status != StatusOk {
		logger.Tracef("ignoring status %d returned by %s", status, funcID)
	}
	return output, nil
}
