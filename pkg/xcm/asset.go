// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/holiman/uint256"
)

var (
	ErrUnknownAssetID         = errors.New("unknown asset id")
	ErrUnknownAssetInstance   = errors.New("unknown asset instance")
	ErrUnknownFungibility     = errors.New("unknown fungibility")
	ErrUnknownWildFungibility = errors.New("unknown wild fungibility")
	ErrUnknownWildMultiAsset  = errors.New("unknown wild multi asset")
	ErrUnknownAssetFilter     = errors.New("unknown multi asset filter")
)

// AssetID identifies an asset class.
type AssetID interface {
	variant
	isAssetID()
}

// Concrete identifies an asset by the location of its issuer.
type Concrete MultiLocation

// Abstract identifies an asset by an abstract 32 byte name.
type Abstract [32]byte

// Index returns VDT index
func (Concrete) Index() uint { return 0 }

// Index returns VDT index
func (Abstract) Index() uint { return 1 }

func (Concrete) isAssetID() {}
func (Abstract) isAssetID() {}

func (a Concrete) encodeValue(enc scale.Encoder) error { return MultiLocation(a).Encode(enc) }
func (a Abstract) encodeValue(enc scale.Encoder) error { return enc.Write(a[:]) }

func decodeAssetID(dec scale.Decoder) (AssetID, error) {
	index, err := dec.ReadOneByte()
	if err != nil {
		return nil, err
	}

	switch index {
	case 0:
		var location MultiLocation
		if err = location.Decode(dec); err != nil {
			return nil, err
		}
		return Concrete(location), nil
	case 1:
		var a Abstract
		if err = dec.Read(a[:]); err != nil {
			return nil, err
		}
		return a, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAssetID, index)
	}
}

// AssetInstance identifies one item of a non-fungible asset class.
type AssetInstance interface {
	variant
	isAssetInstance()
}

// UndefinedInstance is used if the non-fungible asset class has only one instance.
type UndefinedInstance struct{}

// IndexInstance is a compact index.
type IndexInstance struct {
	Value *uint256.Int
}

// Array4Instance is a 4-byte fixed-length datum.
type Array4Instance [4]byte

// Array8Instance is an 8-byte fixed-length datum.
type Array8Instance [8]byte

// Array16Instance is a 16-byte fixed-length datum.
type Array16Instance [16]byte

// Array32Instance is a 32-byte fixed-length datum.
type Array32Instance [32]byte

func (UndefinedInstance) Index() uint { return 0 }
func (IndexInstance) Index() uint     { return 1 }
func (Array4Instance) Index() uint    { return 2 }
func (Array8Instance) Index() uint    { return 3 }
func (Array16Instance) Index() uint   { return 4 }
func (Array32Instance) Index() uint   { return 5 }

func (UndefinedInstance) isAssetInstance() {}
func (IndexInstance) isAssetInstance()     {}
func (Array4Instance) isAssetInstance()    {}
func (Array8Instance) isAssetInstance()    {}
func (Array16Instance) isAssetInstance()   {}
func (Array32Instance) isAssetInstance()   {}

func (UndefinedInstance) encodeValue(scale.Encoder) error { return nil }

func (i IndexInstance) encodeValue(enc scale.Encoder) error   { return encodeCompactU128(enc, i.Value) }
func (i Array4Instance) encodeValue(enc scale.Encoder) error  { return enc.Write(i[:]) }
func (i Array8Instance) encodeValue(enc scale.Encoder) error  { return enc.Write(i[:]) }
func (i Array16Instance) encodeValue(enc scale.Encoder) error { return enc.Write(i[:]) }
func (i Array32Instance) encodeValue(enc scale.Encoder) error { return enc.Write(i[:]) }

func decodeAssetInstance(dec scale.Decoder) (AssetInstance, error) {
	index, err := dec.ReadOneByte()
	if err != nil {
		return nil, err
	}

	switch index {
	case 0:
		return UndefinedInstance{}, nil
	case 1:
		v, err := decodeCompactU128(dec)
		if err != nil {
			return nil, err
		}
		return IndexInstance{Value: v}, nil
	case 2:
		var i Array4Instance
		err = dec.Read(i[:])
		return i, err
	case 3:
		var i Array8Instance
		err = dec.Read(i[:])
		return i, err
	case 4:
		var i Array16Instance
		err = dec.Read(i[:])
		return i, err
	case 5:
		var i Array32Instance
		err = dec.Read(i[:])
		return i, err
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAssetInstance, index)
	}
}

// Fungibility classifies an asset quantity.
type Fungibility interface {
	variant
	isFungibility()
}

// Fungible is a fungible asset amount, at most 128 bits wide.
type Fungible struct {
	Amount *uint256.Int
}

// NonFungible is a single item of a non-fungible asset class.
type NonFungible struct {
	Instance AssetInstance
}

// NewFungible returns a Fungible amount.
func NewFungible(amount uint64) Fungible {
	return Fungible{Amount: uint256.NewInt(amount)}
}

// Index returns VDT index
func (Fungible) Index() uint { return 0 }

// Index returns VDT index
func (NonFungible) Index() uint { return 1 }

func (Fungible) isFungibility()    {}
func (NonFungible) isFungibility() {}

func (f Fungible) encodeValue(enc scale.Encoder) error    { return encodeCompactU128(enc, f.Amount) }
func (f NonFungible) encodeValue(enc scale.Encoder) error { return encodeVariant(enc, f.Instance) }

func decodeFungibility(dec scale.Decoder) (Fungibility, error) {
	index, err := dec.ReadOneByte()
	if err != nil {
		return nil, err
	}

	switch index {
	case 0:
		amount, err := decodeCompactU128(dec)
		if err != nil {
			return nil, err
		}
		return Fungible{Amount: amount}, nil
	case 1:
		instance, err := decodeAssetInstance(dec)
		if err != nil {
			return nil, err
		}
		return NonFungible{Instance: instance}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFungibility, index)
	}
}

// MultiAsset is an asset class paired with a quantity.
type MultiAsset struct {
	ID  AssetID
	Fun Fungibility
}

// Encode fulfils the scale.Encodeable interface.
func (a MultiAsset) Encode(enc scale.Encoder) error {
	if err := encodeVariant(enc, a.ID); err != nil {
		return fmt.Errorf("encoding asset id: %w", err)
	}
	if err := encodeVariant(enc, a.Fun); err != nil {
		return fmt.Errorf("encoding fungibility: %w", err)
	}
	return nil
}

// Decode fulfils the scale.Decodeable interface.
func (a *MultiAsset) Decode(dec scale.Decoder) (err error) {
	if a.ID, err = decodeAssetID(dec); err != nil {
		return fmt.Errorf("decoding asset id: %w", err)
	}
	if a.Fun, err = decodeFungibility(dec); err != nil {
		return fmt.Errorf("decoding fungibility: %w", err)
	}
	return nil
}

// MultiAssets is an ordered collection of assets.
type MultiAssets []MultiAsset

// Push adds an asset to the collection. A fungible asset whose class is
// already present is added to the existing amount instead of appended.
func (as *MultiAssets) Push(asset MultiAsset) {
	incoming, ok := asset.Fun.(Fungible)
	if ok {
		for i, existing := range *as {
			held, ok := existing.Fun.(Fungible)
			if !ok || !reflect.DeepEqual(existing.ID, asset.ID) {
				continue
			}
			sum := new(uint256.Int)
			if held.Amount != nil {
				sum.Set(held.Amount)
			}
			if incoming.Amount != nil {
				sum.Add(sum, incoming.Amount)
			}
			(*as)[i].Fun = Fungible{Amount: sum}
			return
		}
	}
	*as = append(*as, asset)
}

// Encode fulfils the scale.Encodeable interface.
func (as MultiAssets) Encode(enc scale.Encoder) error {
	if err := encodeCompact(enc, uint64(len(as))); err != nil {
		return err
	}
	for i, a := range as {
		if err := a.Encode(enc); err != nil {
			return fmt.Errorf("encoding asset %d: %w", i, err)
		}
	}
	return nil
}

// Decode fulfils the scale.Decodeable interface.
func (as *MultiAssets) Decode(dec scale.Decoder) error {
	count, err := decodeCompact(dec, maxEncodedBytes)
	if err != nil {
		return err
	}
	var assets MultiAssets
	for i := uint64(0); i < count; i++ {
		var a MultiAsset
		if err = a.Decode(dec); err != nil {
			return fmt.Errorf("decoding asset %d: %w", i, err)
		}
		assets = append(assets, a)
	}
	*as = assets
	return nil
}

// WildFungibility classifies assets in a wildcard selector.
type WildFungibility uint8

const (
	// WildFungible matches fungible assets.
	WildFungible WildFungibility = iota
	// WildNonFungible matches non-fungible assets.
	WildNonFungible
)

func decodeWildFungibility(dec scale.Decoder) (WildFungibility, error) {
	b, err := dec.ReadOneByte()
	if err != nil {
		return 0, err
	}
	if b > byte(WildNonFungible) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownWildFungibility, b)
	}
	return WildFungibility(b), nil
}

// WildMultiAsset selects assets without enumerating them.
type WildMultiAsset interface {
	variant
	isWildMultiAsset()
}

// All matches all assets in holding.
type All struct{}

// AllOf matches all assets in holding of a given class.
type AllOf struct {
	ID  AssetID
	Fun WildFungibility
}

// AllCounted matches all assets in holding, up to Count individual assets.
type AllCounted uint32

// AllOfCounted matches all assets of a given class, up to Count individual assets.
type AllOfCounted struct {
	ID    AssetID
	Fun   WildFungibility
	Count uint32
}

func (All) Index() uint          { return 0 }
func (AllOf) Index() uint        { return 1 }
func (AllCounted) Index() uint   { return 2 }
func (AllOfCounted) Index() uint { return 3 }

func (All) isWildMultiAsset()          {}
func (AllOf) isWildMultiAsset()        {}
func (AllCounted) isWildMultiAsset()   {}
func (AllOfCounted) isWildMultiAsset() {}

func (All) encodeValue(scale.Encoder) error { return nil }

func (w AllOf) encodeValue(enc scale.Encoder) error {
	if err := encodeVariant(enc, w.ID); err != nil {
		return err
	}
	return enc.PushByte(byte(w.Fun))
}

func (w AllCounted) encodeValue(enc scale.Encoder) error { return encodeCompact(enc, uint64(w)) }

func (w AllOfCounted) encodeValue(enc scale.Encoder) error {
	if err := encodeVariant(enc, w.ID); err != nil {
		return err
	}
	if err := enc.PushByte(byte(w.Fun)); err != nil {
		return err
	}
	return encodeCompact(enc, uint64(w.Count))
}

func decodeWildMultiAsset(dec scale.Decoder) (WildMultiAsset, error) {
	index, err := dec.ReadOneByte()
	if err != nil {
		return nil, err
	}

	switch index {
	case 0:
		return All{}, nil
	case 1:
		var w AllOf
		if w.ID, err = decodeAssetID(dec); err != nil {
			return nil, err
		}
		if w.Fun, err = decodeWildFungibility(dec); err != nil {
			return nil, err
		}
		return w, nil
	case 2:
		count, err := decodeCompactU32(dec)
		if err != nil {
			return nil, err
		}
		return AllCounted(count), nil
	case 3:
		var w AllOfCounted
		if w.ID, err = decodeAssetID(dec); err != nil {
			return nil, err
		}
		if w.Fun, err = decodeWildFungibility(dec); err != nil {
			return nil, err
		}
		if w.Count, err = decodeCompactU32(dec); err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownWildMultiAsset, index)
	}
}

// MultiAssetFilter is either a concrete asset list or a wildcard selector.
type MultiAssetFilter interface {
	variant
	isMultiAssetFilter()
}

// Definite selects exactly the listed assets.
type Definite MultiAssets

// Wild selects assets by a wildcard.
type Wild struct {
	Asset WildMultiAsset
}

// AllAssets is the filter matching every asset in holding.
var AllAssets = Wild{Asset: All{}}

// Index returns VDT index
func (Definite) Index() uint { return 0 }

// Index returns VDT index
func (Wild) Index() uint { return 1 }

func (Definite) isMultiAssetFilter() {}
func (Wild) isMultiAssetFilter()     {}

func (f Definite) encodeValue(enc scale.Encoder) error { return MultiAssets(f).Encode(enc) }
func (f Wild) encodeValue(enc scale.Encoder) error     { return encodeVariant(enc, f.Asset) }

func decodeMultiAssetFilter(dec scale.Decoder) (MultiAssetFilter, error) {
	index, err := dec.ReadOneByte()
	if err != nil {
		return nil, err
	}

	switch index {
	case 0:
		var assets MultiAssets
		if err = assets.Decode(dec); err != nil {
			return nil, err
		}
		return Definite(assets), nil
	case 1:
		asset, err := decodeWildMultiAsset(dec)
		if err != nil {
			return nil, err
		}
		return Wild{Asset: asset}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAssetFilter, index)
	}
}
