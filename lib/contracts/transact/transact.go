// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package transact

import (
	"fmt"

	"github.com/hbulgarini/test-xcmv3/internal/log"
	"github.com/hbulgarini/test-xcmv3/lib/extension"
	"github.com/hbulgarini/test-xcmv3/pkg/xcm"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "transact"))

// Contract relays an encoded call to a sibling parachain
// for dispatch with the native origin.
type Contract struct {
	ext   extension.XCM
	value bool
}

// New returns a contract using the XCM extension given
// and holding the initial flag value.
func New(ext extension.XCM, initial bool) *Contract {
	return &Contract{
		ext:   ext,
		value: initial,
	}
}

// Default returns a contract with its flag set to false.
func Default(ext extension.XCM) *Contract {
	return New(ext, false)
}

// Value returns the stored flag.
func (c *Contract) Value() bool {
	return c.value
}

// SendMessage sends the call given to the parachain paraID,
// allowing it to consume at most weight reference time.
func (c *Contract) SendMessage(paraID uint32, call []byte, weight uint64) error {
	dest, program := TransactProgram(paraID, call, weight)

	fee, err := c.ext.PrepareSend(dest, program)
	if err != nil {
		return fmt.Errorf("preparing send: %w", err)
	}
	logger.Debugf("sending %d bytes call to parachain %d with fee %s",
		len(call), paraID, describeAsset(fee.V3))

	if err = c.ext.Send(); err != nil {
		return fmt.Errorf("sending: %w", err)
	}
	return nil
}

// TransactProgram returns the destination ../Parachain(paraID) and
// a program made of a single Transact instruction.
// The call is not checked and the weight is not clamped.
func TransactProgram(paraID uint32, call []byte, weight uint64) (
	xcm.VersionedMultiLocation, xcm.VersionedXcm) {
	dest := xcm.NewVersionedMultiLocation(xcm.NewParachainLocation(paraID))
	program := xcm.NewVersionedXcm(xcm.Xcm{
		xcm.Transact{
			OriginKind:          xcm.OriginKindNative,
			RequireWeightAtMost: xcm.NewWeight(weight),
			Call:                call,
		},
	})
	return dest, program
}

func describeAsset(asset xcm.MultiAsset) string {
	fungible, ok := asset.Fun.(xcm.Fungible)
	if !ok || fungible.Amount == nil {
		return "non fungible"
	}

	id := "abstract"
	if concrete, ok := asset.ID.(xcm.Concrete); ok {
		id = xcm.MultiLocation(concrete).String()
	}
	return fungible.Amount.ToBig().String() + " of " + id
}
