// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"golang.org/x/crypto/blake2b"
)

// Version is the XCM protocol version produced by this package.
const Version = 3

// versionV3 is the SCALE enum index of the V3 case of every versioned type.
const versionV3 byte = 3

var ErrUnsupportedVersion = errors.New("unsupported xcm version")

func encodeVersion(enc scale.Encoder) error {
	return enc.PushByte(versionV3)
}

func decodeVersion(dec scale.Decoder) error {
	v, err := dec.ReadOneByte()
	if err != nil {
		return err
	}
	if v != versionV3 {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	return nil
}

// VersionedMultiLocation is a location tagged with its protocol version.
type VersionedMultiLocation struct {
	V3 MultiLocation
}

// NewVersionedMultiLocation wraps a location in the current version.
func NewVersionedMultiLocation(location MultiLocation) VersionedMultiLocation {
	return VersionedMultiLocation{V3: location}
}

// Encode fulfils the scale.Encodeable interface.
func (v VersionedMultiLocation) Encode(enc scale.Encoder) error {
	if err := encodeVersion(enc); err != nil {
		return err
	}
	return v.V3.Encode(enc)
}

// Decode fulfils the scale.Decodeable interface.
func (v *VersionedMultiLocation) Decode(dec scale.Decoder) error {
	if err := decodeVersion(dec); err != nil {
		return err
	}
	return v.V3.Decode(dec)
}

// VersionedMultiAsset is an asset tagged with its protocol version.
type VersionedMultiAsset struct {
	V3 MultiAsset
}

// NewVersionedMultiAsset wraps an asset in the current version.
func NewVersionedMultiAsset(asset MultiAsset) VersionedMultiAsset {
	return VersionedMultiAsset{V3: asset}
}

// Encode fulfils the scale.Encodeable interface.
func (v VersionedMultiAsset) Encode(enc scale.Encoder) error {
	if err := encodeVersion(enc); err != nil {
		return err
	}
	return v.V3.Encode(enc)
}

// Decode fulfils the scale.Decodeable interface.
func (v *VersionedMultiAsset) Decode(dec scale.Decoder) error {
	if err := decodeVersion(dec); err != nil {
		return err
	}
	return v.V3.Decode(dec)
}

// VersionedResponse is a query response tagged with its protocol version.
type VersionedResponse struct {
	V3 Response
}

// NewVersionedResponse wraps a response in the current version.
func NewVersionedResponse(response Response) VersionedResponse {
	return VersionedResponse{V3: response}
}

// Encode fulfils the scale.Encodeable interface.
func (v VersionedResponse) Encode(enc scale.Encoder) error {
	if err := encodeVersion(enc); err != nil {
		return err
	}
	return encodeVariant(enc, v.V3)
}

// Decode fulfils the scale.Decodeable interface.
func (v *VersionedResponse) Decode(dec scale.Decoder) (err error) {
	if err = decodeVersion(dec); err != nil {
		return err
	}
	v.V3, err = decodeResponse(dec)
	return err
}

// VersionedXcm is a program tagged with its protocol version.
type VersionedXcm struct {
	V3 Xcm
}

// NewVersionedXcm wraps a program in the current version.
func NewVersionedXcm(xcm Xcm) VersionedXcm {
	return VersionedXcm{V3: xcm}
}

// Encode fulfils the scale.Encodeable interface.
func (v VersionedXcm) Encode(enc scale.Encoder) error {
	if err := encodeVersion(enc); err != nil {
		return err
	}
	return v.V3.Encode(enc)
}

// Decode fulfils the scale.Decodeable interface.
func (v *VersionedXcm) Decode(dec scale.Decoder) error {
	if err := decodeVersion(dec); err != nil {
		return err
	}
	return v.V3.Decode(dec)
}

// Hash returns the blake2b-256 hash of the SCALE encoded program, used as its message id.
func (v VersionedXcm) Hash() (hash [32]byte, err error) {
	encoded, err := Encode(v)
	if err != nil {
		return hash, fmt.Errorf("encoding program: %w", err)
	}
	return blake2b.Sum256(encoded), nil
}
