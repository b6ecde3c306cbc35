// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package host

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/hbulgarini/test-xcmv3/internal/log"
	"github.com/hbulgarini/test-xcmv3/lib/extension"
	"github.com/hbulgarini/test-xcmv3/pkg/xcm"
	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "host"))

// StatusUnknownFunction is returned for function ids the host does not serve.
const StatusUnknownFunction uint32 = 0xFF

var (
	ErrTrailingInput = errors.New("trailing input bytes")
	ErrUnknownQuery  = errors.New("query id was never allocated")
)

// Config holds the cost parameters of the host.
type Config struct {
	// UnitWeight is the weight charged per instruction, nested ones included.
	UnitWeight uint64
	// BaseFee is the flat delivery fee of a sent program.
	BaseFee uint64
	// ByteFee is the delivery fee per byte of the encoded program.
	ByteFee uint64
}

// DispatchKind is the way a program left the host.
type DispatchKind uint8

const (
	// Executed programs ran locally.
	Executed DispatchKind = iota
	// Sent programs were delivered to a destination.
	Sent
)

func (k DispatchKind) String() string {
	switch k {
	case Executed:
		return "executed"
	case Sent:
		return "sent"
	default:
		return fmt.Sprintf("DispatchKind(%d)", uint8(k))
	}
}

// Dispatched is a journal entry for an executed or sent program.
type Dispatched struct {
	Kind    DispatchKind
	Hash    [32]byte
	Program xcm.VersionedXcm
	// Dest and Fee are only set for sent programs.
	Dest *xcm.VersionedMultiLocation
	Fee  *xcm.VersionedMultiAsset
}

type stagedSend struct {
	dest    xcm.VersionedMultiLocation
	program xcm.VersionedXcm
	fee     xcm.VersionedMultiAsset
}

// Host is an in-memory chain extension serving the XCM functions.
// It is safe for concurrent use.
type Host struct {
	config Config

	mutex       sync.Mutex
	execution   *xcm.VersionedXcm
	send        *stagedSend
	nextQueryID uint64
	responses   map[uint64]xcm.VersionedResponse
	journal     []Dispatched

	metrics *metrics
}

var _ extension.ChainExtension = (*Host)(nil)

// New creates a host with the configuration given, registering
// its metrics on the registerer given. A nil registerer leaves
// the metrics unregistered.
func New(config Config, registerer prometheus.Registerer) *Host {
	return &Host{
		config:    config,
		responses: make(map[uint64]xcm.VersionedResponse),
		metrics:   newMetrics(registerer),
	}
}

// Call serves a chain extension function call.
func (h *Host) Call(funcID extension.FuncID, input []byte) (status uint32, output []byte, err error) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	switch funcID {
	case extension.PrepareExecuteID:
		output, err = h.prepareExecute(input)
	case extension.ExecuteID:
		h.execute()
	case extension.PrepareSendID:
		output, err = h.prepareSend(input)
	case extension.SendID:
		h.dispatchSend()
	case extension.NewQueryID:
		output, err = h.newQuery()
	case extension.TakeResponseID:
		status, output, err = h.takeResponse(input)
	default:
		logger.Warnf("unknown function id %s", funcID)
		h.metrics.calls.WithLabelValues("unknown").Inc()
		return StatusUnknownFunction, nil, nil
	}

	h.metrics.calls.WithLabelValues(funcID.String()).Inc()
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", funcID, err)
	}
	return status, output, nil
}

// RecordResponse records the response to a query, as if the
// queried system answered.
func (h *Host) RecordResponse(queryID uint64, response xcm.VersionedResponse) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if queryID >= h.nextQueryID {
		return fmt.Errorf("%w: %d", ErrUnknownQuery, queryID)
	}
	h.responses[queryID] = response
	return nil
}

// Journal returns a copy of the dispatched programs, oldest first.
func (h *Host) Journal() []Dispatched {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	journal := make([]Dispatched, len(h.journal))
	copy(journal, h.journal)
	return journal
}

func (h *Host) prepareExecute(input []byte) (output []byte, err error) {
	var program xcm.VersionedXcm
	if err = xcm.Decode(input, &program); err != nil {
		return nil, fmt.Errorf("decoding program: %w", err)
	}

	if h.execution != nil {
		logger.Warn("replacing program staged for execution")
	}
	h.execution = &program

	weight := uint64(program.V3.Count()) * h.config.UnitWeight
	logger.Debugf("staged program of %d instructions for execution, weight %d",
		program.V3.Count(), weight)
	return xcm.Encode(xcm.U64(weight))
}

func (h *Host) execute() {
	if h.execution == nil {
		logger.Warn("execute called without a prepared program")
		return
	}

	program := *h.execution
	h.execution = nil
	h.dispatch(Dispatched{Kind: Executed, Program: program})
}

func (h *Host) prepareSend(input []byte) (output []byte, err error) {
	reader := bytes.NewReader(input)
	decoder := scale.NewDecoder(reader)

	var staged stagedSend
	if err = staged.dest.Decode(*decoder); err != nil {
		return nil, fmt.Errorf("decoding destination: %w", err)
	}

	programLength := reader.Len()
	if err = staged.program.Decode(*decoder); err != nil {
		return nil, fmt.Errorf("decoding program: %w", err)
	}
	if reader.Len() != 0 {
		return nil, fmt.Errorf("%w: %d", ErrTrailingInput, reader.Len())
	}

	staged.fee = xcm.NewVersionedMultiAsset(xcm.MultiAsset{
		ID:  xcm.Concrete(xcm.Here),
		Fun: xcm.Fungible{Amount: h.deliveryFee(programLength)},
	})
	output, err = xcm.Encode(staged.fee)
	if err != nil {
		return nil, fmt.Errorf("encoding fee: %w", err)
	}

	if h.send != nil {
		logger.Warn("replacing program staged for sending")
	}
	h.send = &staged
	logger.Debugf("staged program of %d bytes for %s", programLength, staged.dest.V3)
	return output, nil
}

// deliveryFee returns BaseFee + ByteFee * length, always below 2^89.
func (h *Host) deliveryFee(length int) *uint256.Int {
	fee := uint256.NewInt(h.config.ByteFee)
	fee.Mul(fee, uint256.NewInt(uint64(length)))
	return fee.Add(fee, uint256.NewInt(h.config.BaseFee))
}

func (h *Host) dispatchSend() {
	if h.send == nil {
		logger.Warn("send called without a prepared program")
		return
	}

	staged := *h.send
	h.send = nil
	h.dispatch(Dispatched{
		Kind:    Sent,
		Program: staged.program,
		Dest:    &staged.dest,
		Fee:     &staged.fee,
	})
}

func (h *Host) dispatch(entry Dispatched) {
	hash, err := entry.Program.Hash()
	if err != nil {
		// staged programs were decoded so they always encode
		logger.Errorf("hashing %s program: %s", entry.Kind, err)
	}
	entry.Hash = hash

	h.journal = append(h.journal, entry)
	h.metrics.dispatched.WithLabelValues(entry.Kind.String()).Inc()
	logger.Infof("%s program 0x%x", entry.Kind, hash)
}

func (h *Host) newQuery() (output []byte, err error) {
	queryID := h.nextQueryID
	h.nextQueryID++
	return xcm.Encode(xcm.U64(queryID))
}

func (h *Host) takeResponse(input []byte) (status uint32, output []byte, err error) {
	var queryID xcm.U64
	if err = xcm.Decode(input, &queryID); err != nil {
		return 0, nil, fmt.Errorf("decoding query id: %w", err)
	}

	response, ok := h.responses[uint64(queryID)]
	if !ok {
		return extension.StatusNoResponse, nil, nil
	}

	output, err = xcm.Encode(response)
	if err != nil {
		return 0, nil, fmt.Errorf("encoding response: %w", err)
	}
	delete(h.responses, uint64(queryID))
	return extension.StatusOk, output, nil
}
