// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

var (
	ErrUnknownWeightLimit = errors.New("unknown weight limit")
	ErrUnknownOriginKind  = errors.New("unknown origin kind")
)

// Weight is the two dimensional execution cost of a call.
type Weight struct {
	RefTime   uint64
	ProofSize uint64
}

// NewWeight returns a weight limited in reference time only.
func NewWeight(refTime uint64) Weight {
	return Weight{RefTime: refTime}
}

// Encode fulfils the scale.Encodeable interface.
func (w Weight) Encode(enc scale.Encoder) error {
	if err := encodeCompact(enc, w.RefTime); err != nil {
		return err
	}
	return encodeCompact(enc, w.ProofSize)
}

// Decode fulfils the scale.Decodeable interface.
func (w *Weight) Decode(dec scale.Decoder) (err error) {
	if w.RefTime, err = decodeCompactU64(dec); err != nil {
		return err
	}
	w.ProofSize, err = decodeCompactU64(dec)
	return err
}

// WeightLimit is an optional upper bound on weight.
type WeightLimit interface {
	variant
	isWeightLimit()
}

// Unlimited places no bound on weight.
type Unlimited struct{}

// Limited bounds the weight to the given value.
type Limited Weight

// Index returns VDT index
func (Unlimited) Index() uint { return 0 }

// Index returns VDT index
func (Limited) Index() uint { return 1 }

func (Unlimited) isWeightLimit() {}
func (Limited) isWeightLimit()   {}

func (Unlimited) encodeValue(scale.Encoder) error     { return nil }
func (l Limited) encodeValue(enc scale.Encoder) error { return Weight(l).Encode(enc) }

func decodeWeightLimit(dec scale.Decoder) (WeightLimit, error) {
	index, err := dec.ReadOneByte()
	if err != nil {
		return nil, err
	}

	switch index {
	case 0:
		return Unlimited{}, nil
	case 1:
		var w Weight
		if err = w.Decode(dec); err != nil {
			return nil, err
		}
		return Limited(w), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownWeightLimit, index)
	}
}

// OriginKind is the means of dispatching a Transact call on the recipient.
type OriginKind uint8

const (
	// OriginKindNative dispatches with the native origin of the sender.
	OriginKindNative OriginKind = iota
	// OriginKindSovereignAccount dispatches from the sovereign account of the sender.
	OriginKindSovereignAccount
	// OriginKindSuperuser dispatches as root.
	OriginKindSuperuser
	// OriginKindXcm dispatches with the XCM pallet origin.
	OriginKindXcm
)

func (o OriginKind) String() string {
	switch o {
	case OriginKindNative:
		return "Native"
	case OriginKindSovereignAccount:
		return "SovereignAccount"
	case OriginKindSuperuser:
		return "Superuser"
	case OriginKindXcm:
		return "Xcm"
	default:
		return fmt.Sprintf("OriginKind(%d)", uint8(o))
	}
}

func decodeOriginKind(dec scale.Decoder) (OriginKind, error) {
	b, err := dec.ReadOneByte()
	if err != nil {
		return 0, err
	}
	if b > byte(OriginKindXcm) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownOriginKind, b)
	}
	return OriginKind(b), nil
}
