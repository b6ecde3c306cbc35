// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/holiman/uint256"
)

// MaxJunctions is the maximum number of junctions in a location interior (X8).
const MaxJunctions = 8

var (
	ErrUnknownJunction  = errors.New("unknown junction")
	ErrTooManyJunctions = errors.New("too many junctions")
)

// Junction is a single hop of a location interior.
type Junction interface {
	variant
	isJunction()
}

// Parachain is an indexed parachain belonging to and operated by the context.
type Parachain uint32

// AccountID32 is a 32-byte identifier for an account of a specific network.
// A nil Network means the network of the context.
type AccountID32 struct {
	Network NetworkID
	ID      [32]byte
}

// AccountIndex64 is an 8-byte index for an account of a specific network.
type AccountIndex64 struct {
	Network NetworkID
	Number  uint64
}

// AccountKey20 is a 20-byte identifier for an account of a specific network.
type AccountKey20 struct {
	Network NetworkID
	Key     [20]byte
}

// PalletInstance is an instanced, indexed pallet.
type PalletInstance uint8

// GeneralIndex is a non-descript index within the context location.
type GeneralIndex struct {
	Value *uint256.Int
}

// GeneralKey is a nondescript array datum, of which only the first Length bytes are significant.
type GeneralKey struct {
	Length uint8
	Data   [32]byte
}

// OnlyChild is the unambiguous child.
type OnlyChild struct{}

// Plurality is a pluralistic body existing within consensus.
type Plurality struct {
	ID   BodyID
	Part BodyPart
}

// GlobalConsensus is a global network capable of externalizing its own consensus.
type GlobalConsensus struct {
	Network NetworkID
}

// Index returns VDT index
func (Parachain) Index() uint { return 0 }

// Index returns VDT index
func (AccountID32) Index() uint { return 1 }

// Index returns VDT index
func (AccountIndex64) Index() uint { return 2 }

// Index returns VDT index
func (AccountKey20) Index() uint { return 3 }

// Index returns VDT index
func (PalletInstance) Index() uint { return 4 }

// Index returns VDT index
func (GeneralIndex) Index() uint { return 5 }

// Index returns VDT index
func (GeneralKey) Index() uint { return 6 }

// Index returns VDT index
func (OnlyChild) Index() uint { return 7 }

// Index returns VDT index
func (Plurality) Index() uint { return 8 }

// Index returns VDT index
func (GlobalConsensus) Index() uint { return 9 }

func (Parachain) isJunction()       {}
func (AccountID32) isJunction()     {}
func (AccountIndex64) isJunction()  {}
func (AccountKey20) isJunction()    {}
func (PalletInstance) isJunction()  {}
func (GeneralIndex) isJunction()    {}
func (GeneralKey) isJunction()      {}
func (OnlyChild) isJunction()       {}
func (Plurality) isJunction()       {}
func (GlobalConsensus) isJunction() {}

// NewGeneralIndex returns a GeneralIndex junction for a 64 bit index.
func NewGeneralIndex(index uint64) GeneralIndex {
	return GeneralIndex{Value: uint256.NewInt(index)}
}

func (j Parachain) encodeValue(enc scale.Encoder) error { return encodeCompact(enc, uint64(j)) }

func (j AccountID32) encodeValue(enc scale.Encoder) error {
	if err := encodeOptionalNetwork(enc, j.Network); err != nil {
		return err
	}
	return enc.Write(j.ID[:])
}

func (j AccountIndex64) encodeValue(enc scale.Encoder) error {
	if err := encodeOptionalNetwork(enc, j.Network); err != nil {
		return err
	}
	return encodeCompact(enc, j.Number)
}

func (j AccountKey20) encodeValue(enc scale.Encoder) error {
	if err := encodeOptionalNetwork(enc, j.Network); err != nil {
		return err
	}
	return enc.Write(j.Key[:])
}

func (j PalletInstance) encodeValue(enc scale.Encoder) error { return enc.PushByte(byte(j)) }

func (j GeneralIndex) encodeValue(enc scale.Encoder) error { return encodeCompactU128(enc, j.Value) }

func (j GeneralKey) encodeValue(enc scale.Encoder) error {
	if err := enc.PushByte(j.Length); err != nil {
		return err
	}
	return enc.Write(j.Data[:])
}

func (OnlyChild) encodeValue(scale.Encoder) error { return nil }

func (j Plurality) encodeValue(enc scale.Encoder) error {
	if err := encodeVariant(enc, j.ID); err != nil {
		return err
	}
	return encodeVariant(enc, j.Part)
}

func (j GlobalConsensus) encodeValue(enc scale.Encoder) error {
	return encodeVariant(enc, j.Network)
}

func decodeJunction(dec scale.Decoder) (Junction, error) {
	index, err := dec.ReadOneByte()
	if err != nil {
		return nil, err
	}

	switch index {
	case 0:
		id, err := decodeCompactU32(dec)
		if err != nil {
			return nil, err
		}
		return Parachain(id), nil
	case 1:
		var j AccountID32
		if j.Network, err = decodeOptionalNetwork(dec); err != nil {
			return nil, err
		}
		if err = dec.Read(j.ID[:]); err != nil {
			return nil, err
		}
		return j, nil
	case 2:
		var j AccountIndex64
		if j.Network, err = decodeOptionalNetwork(dec); err != nil {
			return nil, err
		}
		if j.Number, err = decodeCompactU64(dec); err != nil {
			return nil, err
		}
		return j, nil
	case 3:
		var j AccountKey20
		if j.Network, err = decodeOptionalNetwork(dec); err != nil {
			return nil, err
		}
		if err = dec.Read(j.Key[:]); err != nil {
			return nil, err
		}
		return j, nil
	case 4:
		b, err := dec.ReadOneByte()
		if err != nil {
			return nil, err
		}
		return PalletInstance(b), nil
	case 5:
		v, err := decodeCompactU128(dec)
		if err != nil {
			return nil, err
		}
		return GeneralIndex{Value: v}, nil
	case 6:
		var j GeneralKey
		if j.Length, err = dec.ReadOneByte(); err != nil {
			return nil, err
		}
		if err = dec.Read(j.Data[:]); err != nil {
			return nil, err
		}
		return j, nil
	case 7:
		return OnlyChild{}, nil
	case 8:
		var j Plurality
		if j.ID, err = decodeBodyID(dec); err != nil {
			return nil, err
		}
		if j.Part, err = decodeBodyPart(dec); err != nil {
			return nil, err
		}
		return j, nil
	case 9:
		network, err := decodeNetworkID(dec)
		if err != nil {
			return nil, err
		}
		return GlobalConsensus{Network: network}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownJunction, index)
	}
}

// Junctions is the interior of a location. An empty value is Here.
type Junctions []Junction

// Encode fulfils the scale.Encodeable interface. The enum index is the
// number of junctions, Here being 0 and X8 being 8.
func (js Junctions) Encode(enc scale.Encoder) error {
	if len(js) > MaxJunctions {
		return fmt.Errorf("%w: %d", ErrTooManyJunctions, len(js))
	}
	if err := enc.PushByte(byte(len(js))); err != nil {
		return err
	}
	for _, j := range js {
		if err := encodeVariant(enc, j); err != nil {
			return fmt.Errorf("encoding junction: %w", err)
		}
	}
	return nil
}

// Decode fulfils the scale.Decodeable interface.
func (js *Junctions) Decode(dec scale.Decoder) error {
	count, err := dec.ReadOneByte()
	if err != nil {
		return err
	}
	if count > MaxJunctions {
		return fmt.Errorf("%w: %d", ErrTooManyJunctions, count)
	}
	if count == 0 {
		*js = nil
		return nil
	}

	junctions := make(Junctions, count)
	for i := range junctions {
		junctions[i], err = decodeJunction(dec)
		if err != nil {
			return fmt.Errorf("decoding junction %d: %w", i, err)
		}
	}
	*js = junctions
	return nil
}

// MultiLocation is a relative path between two consensus systems.
type MultiLocation struct {
	Parents  uint8
	Interior Junctions
}

// Here is the location of the context itself.
var Here = MultiLocation{}

// NewParachainLocation returns the sibling location ../Parachain(id).
func NewParachainLocation(id uint32) MultiLocation {
	return MultiLocation{
		Parents:  1,
		Interior: Junctions{Parachain(id)},
	}
}

// Encode fulfils the scale.Encodeable interface.
func (m MultiLocation) Encode(enc scale.Encoder) error {
	if err := enc.PushByte(m.Parents); err != nil {
		return err
	}
	return m.Interior.Encode(enc)
}

// Decode fulfils the scale.Decodeable interface.
func (m *MultiLocation) Decode(dec scale.Decoder) (err error) {
	if m.Parents, err = dec.ReadOneByte(); err != nil {
		return err
	}
	return m.Interior.Decode(dec)
}

// String returns a path like ../Parachain(1000)/PalletInstance(50).
func (m MultiLocation) String() string {
	s := ""
	for i := uint8(0); i < m.Parents; i++ {
		if i > 0 {
			s += "/"
		}
		s += ".."
	}
	if len(m.Interior) == 0 && m.Parents == 0 {
		return "Here"
	}
	for _, j := range m.Interior {
		if s != "" {
			s += "/"
		}
		s += junctionString(j)
	}
	return s
}

func junctionString(j Junction) string {
	switch j := j.(type) {
	case Parachain:
		return fmt.Sprintf("Parachain(%d)", uint32(j))
	case AccountID32:
		return fmt.Sprintf("AccountId32(0x%x)", j.ID[:])
	case AccountIndex64:
		return fmt.Sprintf("AccountIndex64(%d)", j.Number)
	case AccountKey20:
		return fmt.Sprintf("AccountKey20(0x%x)", j.Key[:])
	case PalletInstance:
		return fmt.Sprintf("PalletInstance(%d)", uint8(j))
	case GeneralIndex:
		if j.Value == nil {
			return "GeneralIndex(0)"
		}
		return fmt.Sprintf("GeneralIndex(%s)", j.Value.ToBig())
	case GeneralKey:
		length := int(j.Length)
		if length > len(j.Data) {
			length = len(j.Data)
		}
		return fmt.Sprintf("GeneralKey(0x%x)", j.Data[:length])
	default:
		return fmt.Sprintf("%T", j)
	}
}
