// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

const (
	// MaxDecodeDepth is the maximum nesting of programs accepted by the decoder.
	MaxDecodeDepth = 8
	// MaxInstructionsToDecode is the maximum length of a single program accepted by the decoder.
	MaxInstructionsToDecode = 100
)

var (
	ErrUnknownInstruction  = errors.New("unknown instruction")
	ErrDecodeDepthExceeded = errors.New("program nesting exceeds decode depth")
	ErrTooManyInstructions = errors.New("too many instructions")
)

// Instruction is a single step of an XCM program.
type Instruction interface {
	variant
	isInstruction()
}

// WithdrawAsset moves assets from the origin account into holding.
type WithdrawAsset MultiAssets

// ReserveAssetDeposited notes assets deposited on a reserve in favour of this chain.
type ReserveAssetDeposited MultiAssets

// ReceiveTeleportedAsset notes assets removed from the origin by teleport.
type ReceiveTeleportedAsset MultiAssets

// QueryResponse answers a query made by this chain. A nil Querier means none.
type QueryResponse struct {
	QueryID   uint64
	Response  Response
	MaxWeight Weight
	Querier   *MultiLocation
}

// TransferAsset moves assets from the origin account to the beneficiary.
type TransferAsset struct {
	Assets      MultiAssets
	Beneficiary MultiLocation
}

// TransferReserveAsset moves assets to the sovereign account of Dest and sends
// it ReserveAssetDeposited followed by Xcm.
type TransferReserveAsset struct {
	Assets MultiAssets
	Dest   MultiLocation
	Xcm    Xcm
}

// Transact dispatches an encoded call on the recipient.
type Transact struct {
	OriginKind          OriginKind
	RequireWeightAtMost Weight
	Call                []byte
}

// ClearOrigin clears the origin register.
type ClearOrigin struct{}

// DescendOrigin appends interior junctions to the origin.
type DescendOrigin Junctions

// DepositAsset moves the filtered holding assets to the beneficiary.
type DepositAsset struct {
	Assets      MultiAssetFilter
	Beneficiary MultiLocation
}

// DepositReserveAsset moves the filtered holding assets to the sovereign
// account of Dest and sends it ReserveAssetDeposited followed by Xcm.
type DepositReserveAsset struct {
	Assets MultiAssetFilter
	Dest   MultiLocation
	Xcm    Xcm
}

// InitiateReserveWithdraw burns the filtered holding assets and sends the
// reserve WithdrawAsset followed by Xcm.
type InitiateReserveWithdraw struct {
	Assets  MultiAssetFilter
	Reserve MultiLocation
	Xcm     Xcm
}

// InitiateTeleport burns the filtered holding assets and sends Dest
// ReceiveTeleportedAsset followed by Xcm.
type InitiateTeleport struct {
	Assets MultiAssetFilter
	Dest   MultiLocation
	Xcm    Xcm
}

// BuyExecution pays for the execution of the current program from holding.
type BuyExecution struct {
	Fees        MultiAsset
	WeightLimit WeightLimit
}

// RefundSurplus returns unused weight credit to holding.
type RefundSurplus struct{}

// SetErrorHandler sets the program run when an error occurs.
type SetErrorHandler Xcm

// SetAppendix sets the program run after the current one.
type SetAppendix Xcm

// ClearError clears the error register.
type ClearError struct{}

// Trap always throws an error of type Trap with the given code.
type Trap uint64

// BurnAsset reduces holding by the given assets.
type BurnAsset MultiAssets

// ExpectAsset errors unless holding contains at least the given assets.
type ExpectAsset MultiAssets

// SetTopic sets the topic register.
type SetTopic [32]byte

// ClearTopic clears the topic register.
type ClearTopic struct{}

// UnpaidExecution asserts that execution is free for the origin. A nil
// CheckOrigin skips the origin check.
type UnpaidExecution struct {
	WeightLimit WeightLimit
	CheckOrigin *MultiLocation
}

func (WithdrawAsset) Index() uint           { return 0 }
func (ReserveAssetDeposited) Index() uint   { return 1 }
func (ReceiveTeleportedAsset) Index() uint  { return 2 }
func (QueryResponse) Index() uint           { return 3 }
func (TransferAsset) Index() uint           { return 4 }
func (TransferReserveAsset) Index() uint    { return 5 }
func (Transact) Index() uint                { return 6 }
func (ClearOrigin) Index() uint             { return 10 }
func (DescendOrigin) Index() uint           { return 11 }
func (DepositAsset) Index() uint            { return 13 }
func (DepositReserveAsset) Index() uint     { return 14 }
func (InitiateReserveWithdraw) Index() uint { return 16 }
func (InitiateTeleport) Index() uint        { return 17 }
func (BuyExecution) Index() uint            { return 19 }
func (RefundSurplus) Index() uint           { return 20 }
func (SetErrorHandler) Index() uint         { return 21 }
func (SetAppendix) Index() uint             { return 22 }
func (ClearError) Index() uint              { return 23 }
func (Trap) Index() uint                    { return 25 }
func (BurnAsset) Index() uint               { return 28 }
func (ExpectAsset) Index() uint             { return 29 }
func (SetTopic) Index() uint                { return 44 }
func (ClearTopic) Index() uint              { return 45 }
func (UnpaidExecution) Index() uint         { return 47 }

func (WithdrawAsset) isInstruction()           {}
func (ReserveAssetDeposited) isInstruction()   {}
func (ReceiveTeleportedAsset) isInstruction()  {}
func (QueryResponse) isInstruction()           {}
func (TransferAsset) isInstruction()           {}
func (TransferReserveAsset) isInstruction()    {}
func (Transact) isInstruction()                {}
func (ClearOrigin) isInstruction()             {}
func (DescendOrigin) isInstruction()           {}
func (DepositAsset) isInstruction()            {}
func (DepositReserveAsset) isInstruction()     {}
func (InitiateReserveWithdraw) isInstruction() {}
func (InitiateTeleport) isInstruction()        {}
func (BuyExecution) isInstruction()            {}
func (RefundSurplus) isInstruction()           {}
func (SetErrorHandler) isInstruction()         {}
func (SetAppendix) isInstruction()             {}
func (ClearError) isInstruction()              {}
func (Trap) isInstruction()                    {}
func (BurnAsset) isInstruction()               {}
func (ExpectAsset) isInstruction()             {}
func (SetTopic) isInstruction()                {}
func (ClearTopic) isInstruction()              {}
func (UnpaidExecution) isInstruction()         {}

func (i WithdrawAsset) encodeValue(enc scale.Encoder) error { return MultiAssets(i).Encode(enc) }

func (i ReserveAssetDeposited) encodeValue(enc scale.Encoder) error {
	return MultiAssets(i).Encode(enc)
}

func (i ReceiveTeleportedAsset) encodeValue(enc scale.Encoder) error {
	return MultiAssets(i).Encode(enc)
}

func (i QueryResponse) encodeValue(enc scale.Encoder) error {
	if err := encodeCompact(enc, i.QueryID); err != nil {
		return err
	}
	if err := encodeVariant(enc, i.Response); err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	if err := i.MaxWeight.Encode(enc); err != nil {
		return err
	}
	return encodeOptionalLocation(enc, i.Querier)
}

func (i TransferAsset) encodeValue(enc scale.Encoder) error {
	if err := i.Assets.Encode(enc); err != nil {
		return err
	}
	return i.Beneficiary.Encode(enc)
}

func (i TransferReserveAsset) encodeValue(enc scale.Encoder) error {
	if err := i.Assets.Encode(enc); err != nil {
		return err
	}
	if err := i.Dest.Encode(enc); err != nil {
		return err
	}
	return i.Xcm.Encode(enc)
}

func (i Transact) encodeValue(enc scale.Encoder) error {
	if err := enc.PushByte(byte(i.OriginKind)); err != nil {
		return err
	}
	if err := i.RequireWeightAtMost.Encode(enc); err != nil {
		return err
	}
	return encodeBytes(enc, i.Call)
}

func (ClearOrigin) encodeValue(scale.Encoder) error { return nil }

func (i DescendOrigin) encodeValue(enc scale.Encoder) error { return Junctions(i).Encode(enc) }

func (i DepositAsset) encodeValue(enc scale.Encoder) error {
	if err := encodeVariant(enc, i.Assets); err != nil {
		return fmt.Errorf("encoding asset filter: %w", err)
	}
	return i.Beneficiary.Encode(enc)
}

func (i DepositReserveAsset) encodeValue(enc scale.Encoder) error {
	return encodeFilterLocationXcm(enc, i.Assets, i.Dest, i.Xcm)
}

func (i InitiateReserveWithdraw) encodeValue(enc scale.Encoder) error {
	return encodeFilterLocationXcm(enc, i.Assets, i.Reserve, i.Xcm)
}

func (i InitiateTeleport) encodeValue(enc scale.Encoder) error {
	return encodeFilterLocationXcm(enc, i.Assets, i.Dest, i.Xcm)
}

func (i BuyExecution) encodeValue(enc scale.Encoder) error {
	if err := i.Fees.Encode(enc); err != nil {
		return fmt.Errorf("encoding fees: %w", err)
	}
	return encodeVariant(enc, i.WeightLimit)
}

func (RefundSurplus) encodeValue(scale.Encoder) error { return nil }

func (i SetErrorHandler) encodeValue(enc scale.Encoder) error { return Xcm(i).Encode(enc) }
func (i SetAppendix) encodeValue(enc scale.Encoder) error     { return Xcm(i).Encode(enc) }

func (ClearError) encodeValue(scale.Encoder) error { return nil }

func (i Trap) encodeValue(enc scale.Encoder) error        { return encodeCompact(enc, uint64(i)) }
func (i BurnAsset) encodeValue(enc scale.Encoder) error   { return MultiAssets(i).Encode(enc) }
func (i ExpectAsset) encodeValue(enc scale.Encoder) error { return MultiAssets(i).Encode(enc) }
func (i SetTopic) encodeValue(enc scale.Encoder) error    { return enc.Write(i[:]) }

func (ClearTopic) encodeValue(scale.Encoder) error { return nil }

func (i UnpaidExecution) encodeValue(enc scale.Encoder) error {
	if err := encodeVariant(enc, i.WeightLimit); err != nil {
		return fmt.Errorf("encoding weight limit: %w", err)
	}
	return encodeOptionalLocation(enc, i.CheckOrigin)
}

func encodeFilterLocationXcm(enc scale.Encoder, filter MultiAssetFilter, location MultiLocation, xcm Xcm) error {
	if err := encodeVariant(enc, filter); err != nil {
		return fmt.Errorf("encoding asset filter: %w", err)
	}
	if err := location.Encode(enc); err != nil {
		return err
	}
	return xcm.Encode(enc)
}

func encodeOptionalLocation(enc scale.Encoder, location *MultiLocation) error {
	if location == nil {
		return encodeOptionByte(enc, false)
	}
	if err := encodeOptionByte(enc, true); err != nil {
		return err
	}
	return location.Encode(enc)
}

func decodeOptionalLocation(dec scale.Decoder) (*MultiLocation, error) {
	some, err := decodeOptionByte(dec)
	if err != nil || !some {
		return nil, err
	}
	location := new(MultiLocation)
	if err = location.Decode(dec); err != nil {
		return nil, err
	}
	return location, nil
}

func decodeMultiAssets(dec scale.Decoder) (MultiAssets, error) {
	var assets MultiAssets
	err := assets.Decode(dec)
	return assets, err
}

func decodeFilterLocationXcm(dec scale.Decoder, depth int) (
	filter MultiAssetFilter, location MultiLocation, xcm Xcm, err error) {
	if filter, err = decodeMultiAssetFilter(dec); err != nil {
		return nil, location, nil, err
	}
	if err = location.Decode(dec); err != nil {
		return nil, location, nil, err
	}
	xcm, err = decodeXcm(dec, depth+1)
	return filter, location, xcm, err
}

//nolint:gocyclo
func decodeInstruction(dec scale.Decoder, depth int) (Instruction, error) {
	index, err := dec.ReadOneByte()
	if err != nil {
		return nil, err
	}

	switch index {
	case 0:
		assets, err := decodeMultiAssets(dec)
		return WithdrawAsset(assets), err
	case 1:
		assets, err := decodeMultiAssets(dec)
		return ReserveAssetDeposited(assets), err
	case 2:
		assets, err := decodeMultiAssets(dec)
		return ReceiveTeleportedAsset(assets), err
	case 3:
		var i QueryResponse
		if i.QueryID, err = decodeCompactU64(dec); err != nil {
			return nil, err
		}
		if i.Response, err = decodeResponse(dec); err != nil {
			return nil, err
		}
		if err = i.MaxWeight.Decode(dec); err != nil {
			return nil, err
		}
		if i.Querier, err = decodeOptionalLocation(dec); err != nil {
			return nil, err
		}
		return i, nil
	case 4:
		var i TransferAsset
		if err = i.Assets.Decode(dec); err != nil {
			return nil, err
		}
		if err = i.Beneficiary.Decode(dec); err != nil {
			return nil, err
		}
		return i, nil
	case 5:
		var i TransferReserveAsset
		if err = i.Assets.Decode(dec); err != nil {
			return nil, err
		}
		if err = i.Dest.Decode(dec); err != nil {
			return nil, err
		}
		if i.Xcm, err = decodeXcm(dec, depth+1); err != nil {
			return nil, err
		}
		return i, nil
	case 6:
		var i Transact
		if i.OriginKind, err = decodeOriginKind(dec); err != nil {
			return nil, err
		}
		if err = i.RequireWeightAtMost.Decode(dec); err != nil {
			return nil, err
		}
		if i.Call, err = decodeBytes(dec); err != nil {
			return nil, err
		}
		return i, nil
	case 10:
		return ClearOrigin{}, nil
	case 11:
		var junctions Junctions
		if err = junctions.Decode(dec); err != nil {
			return nil, err
		}
		return DescendOrigin(junctions), nil
	case 13:
		var i DepositAsset
		if i.Assets, err = decodeMultiAssetFilter(dec); err != nil {
			return nil, err
		}
		if err = i.Beneficiary.Decode(dec); err != nil {
			return nil, err
		}
		return i, nil
	case 14:
		var i DepositReserveAsset
		if i.Assets, i.Dest, i.Xcm, err = decodeFilterLocationXcm(dec, depth); err != nil {
			return nil, err
		}
		return i, nil
	case 16:
		var i InitiateReserveWithdraw
		if i.Assets, i.Reserve, i.Xcm, err = decodeFilterLocationXcm(dec, depth); err != nil {
			return nil, err
		}
		return i, nil
	case 17:
		var i InitiateTeleport
		if i.Assets, i.Dest, i.Xcm, err = decodeFilterLocationXcm(dec, depth); err != nil {
			return nil, err
		}
		return i, nil
	case 19:
		var i BuyExecution
		if err = i.Fees.Decode(dec); err != nil {
			return nil, err
		}
		if i.WeightLimit, err = decodeWeightLimit(dec); err != nil {
			return nil, err
		}
		return i, nil
	case 20:
		return RefundSurplus{}, nil
	case 21:
		xcm, err := decodeXcm(dec, depth+1)
		if err != nil {
			return nil, err
		}
		return SetErrorHandler(xcm), nil
	case 22:
		xcm, err := decodeXcm(dec, depth+1)
		if err != nil {
			return nil, err
		}
		return SetAppendix(xcm), nil
	case 23:
		return ClearError{}, nil
	case 25:
		code, err := decodeCompactU64(dec)
		return Trap(code), err
	case 28:
		assets, err := decodeMultiAssets(dec)
		return BurnAsset(assets), err
	case 29:
		assets, err := decodeMultiAssets(dec)
		return ExpectAsset(assets), err
	case 44:
		var topic SetTopic
		err = dec.Read(topic[:])
		return topic, err
	case 45:
		return ClearTopic{}, nil
	case 47:
		var i UnpaidExecution
		if i.WeightLimit, err = decodeWeightLimit(dec); err != nil {
			return nil, err
		}
		if i.CheckOrigin, err = decodeOptionalLocation(dec); err != nil {
			return nil, err
		}
		return i, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownInstruction, index)
	}
}

// Xcm is an ordered program of instructions.
type Xcm []Instruction

// Encode fulfils the scale.Encodeable interface.
func (x Xcm) Encode(enc scale.Encoder) error {
	if err := encodeCompact(enc, uint64(len(x))); err != nil {
		return err
	}
	for i, instruction := range x {
		if err := encodeVariant(enc, instruction); err != nil {
			return fmt.Errorf("encoding instruction %d: %w", i, err)
		}
	}
	return nil
}

// Decode fulfils the scale.Decodeable interface.
func (x *Xcm) Decode(dec scale.Decoder) error {
	xcm, err := decodeXcm(dec, 0)
	if err != nil {
		return err
	}
	*x = xcm
	return nil
}

func decodeXcm(dec scale.Decoder, depth int) (Xcm, error) {
	if depth > MaxDecodeDepth {
		return nil, fmt.Errorf("%w: %d", ErrDecodeDepthExceeded, depth)
	}

	count, err := decodeCompact(dec, MaxInstructionsToDecode)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTooManyInstructions, err)
	}

	xcm := make(Xcm, count)
	for i := range xcm {
		xcm[i], err = decodeInstruction(dec, depth)
		if err != nil {
			return nil, fmt.Errorf("decoding instruction %d: %w", i, err)
		}
	}
	return xcm, nil
}

// Nested returns the child program embedded in an instruction, or nil.
func Nested(instruction Instruction) Xcm {
	switch i := instruction.(type) {
	case TransferReserveAsset:
		return i.Xcm
	case DepositReserveAsset:
		return i.Xcm
	case InitiateReserveWithdraw:
		return i.Xcm
	case InitiateTeleport:
		return i.Xcm
	case SetErrorHandler:
		return Xcm(i)
	case SetAppendix:
		return Xcm(i)
	default:
		return nil
	}
}

// Walk calls fn for every instruction of the program, depth first,
// children after their parent. Top level instructions have depth 0.
func (x Xcm) Walk(fn func(depth int, instruction Instruction)) {
	x.walk(0, fn)
}

func (x Xcm) walk(depth int, fn func(int, Instruction)) {
	for _, instruction := range x {
		fn(depth, instruction)
		Nested(instruction).walk(depth+1, fn)
	}
}

// Count returns the number of instructions of the program, nested ones included.
func (x Xcm) Count() (count int) {
	x.Walk(func(int, Instruction) { count++ })
	return count
}
