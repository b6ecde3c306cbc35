// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

var (
	ErrUnknownNetworkID = errors.New("unknown network id")
	ErrUnknownBodyID    = errors.New("unknown body id")
	ErrUnknownBodyPart  = errors.New("unknown body part")
)

// NetworkID is a global identifier of a consensus system.
type NetworkID interface {
	variant
	isNetworkID()
}

// ByGenesis is a network identified by its genesis block hash.
type ByGenesis [32]byte

// Index returns VDT index
func (ByGenesis) Index() uint { return 0 }

// ByFork is a network identified by a block of a forked chain.
type ByFork struct {
	BlockNumber uint64
	BlockHash   [32]byte
}

// Index returns VDT index
func (ByFork) Index() uint { return 1 }

// Polkadot relay chain
type Polkadot struct{}

// Index returns VDT index
func (Polkadot) Index() uint { return 2 }

// Kusama relay chain
type Kusama struct{}

// Index returns VDT index
func (Kusama) Index() uint { return 3 }

// Westend relay chain
type Westend struct{}

// Index returns VDT index
func (Westend) Index() uint { return 4 }

// Rococo relay chain
type Rococo struct{}

// Index returns VDT index
func (Rococo) Index() uint { return 5 }

// Wococo relay chain
type Wococo struct{}

// Index returns VDT index
func (Wococo) Index() uint { return 6 }

// Ethereum is an EVM chain identified by its chain id.
type Ethereum struct {
	ChainID uint64
}

// Index returns VDT index
func (Ethereum) Index() uint { return 7 }

// BitcoinCore network
type BitcoinCore struct{}

// Index returns VDT index
func (BitcoinCore) Index() uint { return 8 }

// BitcoinCash network
type BitcoinCash struct{}

// Index returns VDT index
func (BitcoinCash) Index() uint { return 9 }

func (ByGenesis) isNetworkID()   {}
func (ByFork) isNetworkID()      {}
func (Polkadot) isNetworkID()    {}
func (Kusama) isNetworkID()      {}
func (Westend) isNetworkID()     {}
func (Rococo) isNetworkID()      {}
func (Wococo) isNetworkID()      {}
func (Ethereum) isNetworkID()    {}
func (BitcoinCore) isNetworkID() {}
func (BitcoinCash) isNetworkID() {}

func (n ByGenesis) encodeValue(enc scale.Encoder) error { return enc.Write(n[:]) }

func (n ByFork) encodeValue(enc scale.Encoder) error {
	if err := encodeU64(enc, n.BlockNumber); err != nil {
		return err
	}
	return enc.Write(n.BlockHash[:])
}

func (n Ethereum) encodeValue(enc scale.Encoder) error { return encodeCompact(enc, n.ChainID) }

func (Polkadot) encodeValue(scale.Encoder) error    { return nil }
func (Kusama) encodeValue(scale.Encoder) error      { return nil }
func (Westend) encodeValue(scale.Encoder) error     { return nil }
func (Rococo) encodeValue(scale.Encoder) error      { return nil }
func (Wococo) encodeValue(scale.Encoder) error      { return nil }
func (BitcoinCore) encodeValue(scale.Encoder) error { return nil }
func (BitcoinCash) encodeValue(scale.Encoder) error { return nil }

func decodeNetworkID(dec scale.Decoder) (NetworkID, error) {
	index, err := dec.ReadOneByte()
	if err != nil {
		return nil, err
	}

	switch index {
	case 0:
		var n ByGenesis
		err = dec.Read(n[:])
		return n, err
	case 1:
		var n ByFork
		if n.BlockNumber, err = decodeU64(dec); err != nil {
			return nil, err
		}
		err = dec.Read(n.BlockHash[:])
		return n, err
	case 2:
		return Polkadot{}, nil
	case 3:
		return Kusama{}, nil
	case 4:
		return Westend{}, nil
	case 5:
		return Rococo{}, nil
	case 6:
		return Wococo{}, nil
	case 7:
		var n Ethereum
		n.ChainID, err = decodeCompactU64(dec)
		return n, err
	case 8:
		return BitcoinCore{}, nil
	case 9:
		return BitcoinCash{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownNetworkID, index)
	}
}

// encodeOptionalNetwork encodes Option<NetworkId>, a nil network being None.
func encodeOptionalNetwork(enc scale.Encoder, n NetworkID) error {
	if n == nil {
		return encodeOptionByte(enc, false)
	}
	if err := encodeOptionByte(enc, true); err != nil {
		return err
	}
	return encodeVariant(enc, n)
}

func decodeOptionalNetwork(dec scale.Decoder) (NetworkID, error) {
	some, err := decodeOptionByte(dec)
	if err != nil || !some {
		return nil, err
	}
	return decodeNetworkID(dec)
}

// BodyID identifies a pluralistic body.
type BodyID interface {
	variant
	isBodyID()
}

// UnitBody is the only body in its context.
type UnitBody struct{}

// MonikerBody is a body named by a four byte moniker.
type MonikerBody [4]byte

// IndexBody is an indexed body.
type IndexBody uint32

// ExecutiveBody of the chain
type ExecutiveBody struct{}

// TechnicalBody of the chain
type TechnicalBody struct{}

// LegislativeBody of the chain
type LegislativeBody struct{}

// JudicialBody of the chain
type JudicialBody struct{}

// DefenseBody of the chain
type DefenseBody struct{}

// AdministrationBody of the chain
type AdministrationBody struct{}

// TreasuryBody of the chain
type TreasuryBody struct{}

func (UnitBody) Index() uint           { return 0 }
func (MonikerBody) Index() uint        { return 1 }
func (IndexBody) Index() uint          { return 2 }
func (ExecutiveBody) Index() uint      { return 3 }
func (TechnicalBody) Index() uint      { return 4 }
func (LegislativeBody) Index() uint    { return 5 }
func (JudicialBody) Index() uint       { return 6 }
func (DefenseBody) Index() uint        { return 7 }
func (AdministrationBody) Index() uint { return 8 }
func (TreasuryBody) Index() uint       { return 9 }

func (UnitBody) isBodyID()           {}
func (MonikerBody) isBodyID()        {}
func (IndexBody) isBodyID()          {}
func (ExecutiveBody) isBodyID()      {}
func (TechnicalBody) isBodyID()      {}
func (LegislativeBody) isBodyID()    {}
func (JudicialBody) isBodyID()       {}
func (DefenseBody) isBodyID()        {}
func (AdministrationBody) isBodyID() {}
func (TreasuryBody) isBodyID()       {}

func (b MonikerBody) encodeValue(enc scale.Encoder) error { return enc.Write(b[:]) }
func (b IndexBody) encodeValue(enc scale.Encoder) error   { return encodeCompact(enc, uint64(b)) }

func (UnitBody) encodeValue(scale.Encoder) error           { return nil }
func (ExecutiveBody) encodeValue(scale.Encoder) error      { return nil }
func (TechnicalBody) encodeValue(scale.Encoder) error      { return nil }
func (LegislativeBody) encodeValue(scale.Encoder) error    { return nil }
func (JudicialBody) encodeValue(scale.Encoder) error       { return nil }
func (DefenseBody) encodeValue(scale.Encoder) error        { return nil }
func (AdministrationBody) encodeValue(scale.Encoder) error { return nil }
func (TreasuryBody) encodeValue(scale.Encoder) error       { return nil }

func decodeBodyID(dec scale.Decoder) (BodyID, error) {
	index, err := dec.ReadOneByte()
	if err != nil {
		return nil, err
	}

	switch index {
	case 0:
		return UnitBody{}, nil
	case 1:
		var b MonikerBody
		err = dec.Read(b[:])
		return b, err
	case 2:
		v, err := decodeCompactU32(dec)
		return IndexBody(v), err
	case 3:
		return ExecutiveBody{}, nil
	case 4:
		return TechnicalBody{}, nil
	case 5:
		return LegislativeBody{}, nil
	case 6:
		return JudicialBody{}, nil
	case 7:
		return DefenseBody{}, nil
	case 8:
		return AdministrationBody{}, nil
	case 9:
		return TreasuryBody{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownBodyID, index)
	}
}

// BodyPart is the part of a pluralistic body acting.
type BodyPart interface {
	variant
	isBodyPart()
}

// Voice is the body's declaration, under whatever means it decides.
type Voice struct{}

// Members is a given number of members of the body.
type Members struct {
	Count uint32
}

// Fraction is a given number of members out of the total.
type Fraction struct {
	Nom   uint32
	Denom uint32
}

// AtLeastProportion is no less than the given proportion of members.
type AtLeastProportion struct {
	Nom   uint32
	Denom uint32
}

// MoreThanProportion is more than the given proportion of members.
type MoreThanProportion struct {
	Nom   uint32
	Denom uint32
}

func (Voice) Index() uint              { return 0 }
func (Members) Index() uint            { return 1 }
func (Fraction) Index() uint           { return 2 }
func (AtLeastProportion) Index() uint  { return 3 }
func (MoreThanProportion) Index() uint { return 4 }

func (Voice) isBodyPart()              {}
func (Members) isBodyPart()            {}
func (Fraction) isBodyPart()           {}
func (AtLeastProportion) isBodyPart()  {}
func (MoreThanProportion) isBodyPart() {}

func (Voice) encodeValue(scale.Encoder) error { return nil }

func (p Members) encodeValue(enc scale.Encoder) error { return encodeCompact(enc, uint64(p.Count)) }

func (p Fraction) encodeValue(enc scale.Encoder) error {
	return encodeProportion(enc, p.Nom, p.Denom)
}

func (p AtLeastProportion) encodeValue(enc scale.Encoder) error {
	return encodeProportion(enc, p.Nom, p.Denom)
}

func (p MoreThanProportion) encodeValue(enc scale.Encoder) error {
	return encodeProportion(enc, p.Nom, p.Denom)
}

func encodeProportion(enc scale.Encoder, nom, denom uint32) error {
	if err := encodeCompact(enc, uint64(nom)); err != nil {
		return err
	}
	return encodeCompact(enc, uint64(denom))
}

func decodeProportion(dec scale.Decoder) (nom, denom uint32, err error) {
	if nom, err = decodeCompactU32(dec); err != nil {
		return 0, 0, err
	}
	denom, err = decodeCompactU32(dec)
	return nom, denom, err
}

func decodeBodyPart(dec scale.Decoder) (BodyPart, error) {
	index, err := dec.ReadOneByte()
	if err != nil {
		return nil, err
	}

	switch index {
	case 0:
		return Voice{}, nil
	case 1:
		count, err := decodeCompactU32(dec)
		return Members{Count: count}, err
	case 2:
		nom, denom, err := decodeProportion(dec)
		return Fraction{Nom: nom, Denom: denom}, err
	case 3:
		nom, denom, err := decodeProportion(dec)
		return AtLeastProportion{Nom: nom, Denom: denom}, err
	case 4:
		nom, denom, err := decodeProportion(dec)
		return MoreThanProportion{Nom: nom, Denom: denom}, err
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownBodyPart, index)
	}
}
