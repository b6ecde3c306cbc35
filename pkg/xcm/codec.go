// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/holiman/uint256"
)

// maxEncodedBytes bounds the length prefix of byte vectors accepted by the decoder.
const maxEncodedBytes = 16 << 20

var (
	ErrTrailingBytes     = errors.New("trailing bytes after decoding")
	ErrCompactOverflow   = errors.New("compact integer overflows target width")
	ErrAmountOverflow    = errors.New("amount does not fit in 128 bits")
	ErrLengthTooLarge    = errors.New("encoded length too large")
	ErrInvalidOptionByte = errors.New("invalid option byte")
	ErrNilValue          = errors.New("cannot encode nil value")
)

// variant is a single case of an XCM enum. The index is the SCALE enum tag.
type variant interface {
	Index() uint
	encodeValue(enc scale.Encoder) error
}

// Encode SCALE encodes the given value.
func Encode(value scale.Encodeable) ([]byte, error) {
	buffer := new(bytes.Buffer)
	encoder := scale.NewEncoder(buffer)
	if err := value.Encode(*encoder); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Decode decodes data into target. All of data must be consumed.
func Decode(data []byte, target scale.Decodeable) error {
	reader := bytes.NewReader(data)
	decoder := scale.NewDecoder(reader)
	if err := target.Decode(*decoder); err != nil {
		return err
	}
	if reader.Len() != 0 {
		return fmt.Errorf("%w: %d bytes left", ErrTrailingBytes, reader.Len())
	}
	return nil
}

func encodeVariant(enc scale.Encoder, v variant) error {
	if v == nil {
		return ErrNilValue
	}
	err := enc.PushByte(byte(v.Index()))
	if err != nil {
		return err
	}
	return v.encodeValue(enc)
}

func encodeCompact(enc scale.Encoder, v uint64) error {
	return enc.EncodeUintCompact(*new(big.Int).SetUint64(v))
}

func decodeCompact(dec scale.Decoder, max uint64) (uint64, error) {
	v, err := dec.DecodeUintCompact()
	if err != nil {
		return 0, err
	}
	if !v.IsUint64() || v.Uint64() > max {
		return 0, fmt.Errorf("%w: %s > %d", ErrCompactOverflow, v, max)
	}
	return v.Uint64(), nil
}

func decodeCompactU32(dec scale.Decoder) (uint32, error) {
	v, err := decodeCompact(dec, math.MaxUint32)
	return uint32(v), err
}

func decodeCompactU64(dec scale.Decoder) (uint64, error) {
	return decodeCompact(dec, math.MaxUint64)
}

// encodeCompactU128 encodes a 128 bit quantity. A nil amount encodes as zero.
func encodeCompactU128(enc scale.Encoder, v *uint256.Int) error {
	if v == nil {
		v = new(uint256.Int)
	}
	if v.BitLen() > 128 {
		return fmt.Errorf("%w: %s", ErrAmountOverflow, v.ToBig())
	}
	return enc.EncodeUintCompact(*v.ToBig())
}

func decodeCompactU128(dec scale.Decoder) (*uint256.Int, error) {
	v, err := dec.DecodeUintCompact()
	if err != nil {
		return nil, err
	}
	if v.BitLen() > 128 {
		return nil, fmt.Errorf("%w: %s", ErrAmountOverflow, v)
	}
	amount, _ := uint256.FromBig(v)
	return amount, nil
}

func encodeU32(enc scale.Encoder, v uint32) error {
	return enc.Encode(v)
}

func decodeU32(dec scale.Decoder) (v uint32, err error) {
	err = dec.Decode(&v)
	return v, err
}

func encodeU64(enc scale.Encoder, v uint64) error {
	return enc.Encode(v)
}

func decodeU64(dec scale.Decoder) (v uint64, err error) {
	err = dec.Decode(&v)
	return v, err
}

func encodeBytes(enc scale.Encoder, b []byte) error {
	err := encodeCompact(enc, uint64(len(b)))
	if err != nil {
		return err
	}
	return enc.Write(b)
}

func decodeBytes(dec scale.Decoder) ([]byte, error) {
	length, err := decodeCompact(dec, maxEncodedBytes)
	if errors.Is(err, ErrCompactOverflow) {
		return nil, fmt.Errorf("%w: %s", ErrLengthTooLarge, err)
	} else if err != nil {
		return nil, err
	}
	if length == 0 {
		return []byte{}, nil
	}
	b := make([]byte, length)
	if err = dec.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

func decodeOptionByte(dec scale.Decoder) (some bool, err error) {
	b, err := dec.ReadOneByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %d", ErrInvalidOptionByte, b)
	}
}

func encodeOptionByte(enc scale.Encoder, some bool) error {
	if some {
		return enc.PushByte(1)
	}
	return enc.PushByte(0)
}

// U64 is a fixed width little endian unsigned integer, used for
// weights and query ids exchanged with the host.
type U64 uint64

// Encode fulfils the scale.Encodeable interface.
func (u U64) Encode(enc scale.Encoder) error { return encodeU64(enc, uint64(u)) }

// Decode fulfils the scale.Decodeable interface.
func (u *U64) Decode(dec scale.Decoder) (err error) {
	v, err := decodeU64(dec)
	*u = U64(v)
	return err
}
