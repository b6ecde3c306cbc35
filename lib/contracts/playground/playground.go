// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package playground

import (
	"fmt"

	"github.com/hbulgarini/test-xcmv3/internal/log"
	"github.com/hbulgarini/test-xcmv3/lib/extension"
	"github.com/hbulgarini/test-xcmv3/pkg/xcm"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "playground"))

const (
	// ReserveParaID is the parachain holding the reserve of the relayed asset.
	ReserveParaID uint32 = 1000
	// DestinationParaID is the parachain receiving the reserve deposit.
	DestinationParaID uint32 = 3000
	// AssetPallet is the assets pallet instance on the reserve.
	AssetPallet uint8 = 50
	// AssetIndex is the asset index in the assets pallet.
	AssetIndex uint64 = 1
	// WithdrawAmount is the quantity withdrawn from the reserve asset.
	WithdrawAmount uint64 = 5_000_000_000_000
	// FeeAmount is the quantity used to buy execution on the reserve.
	FeeAmount uint64 = 1_000_000_000_000
)

// Contract relays a fixed reserve asset to a beneficiary account
// on the destination parachain.
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

// SendMessage builds the reserve transfer program for the account
// given, prepares it for execution and executes it.
func (c *Contract) SendMessage(account [32]byte) error {
	program := xcm.NewVersionedXcm(ReserveTransferProgram(account))

	weight, err := c.ext.PrepareExecute(program)
	if err != nil {
		return fmt.Errorf("preparing execution: %w", err)
	}
	logger.Debugf("reserve transfer to 0x%x estimated at weight %d", account, weight)

	if err = c.ext.Execute(); err != nil {
		return fmt.Errorf("executing: %w", err)
	}
	return nil
}

// ReserveTransferProgram returns the program withdrawing the reserve asset,
// buying execution on the reserve parachain and depositing it on the
// destination parachain to the account given.
func ReserveTransferProgram(account [32]byte) xcm.Xcm {
	reserveAsset := xcm.MultiAsset{
		ID: xcm.Concrete(xcm.MultiLocation{
			Parents: 1,
			Interior: xcm.Junctions{
				xcm.Parachain(ReserveParaID),
				xcm.PalletInstance(AssetPallet),
				xcm.NewGeneralIndex(AssetIndex),
			},
		}),
		Fun: xcm.NewFungible(WithdrawAmount),
	}

	fees := xcm.MultiAsset{
		ID: xcm.Concrete(xcm.MultiLocation{
			Interior: xcm.Junctions{
				xcm.PalletInstance(AssetPallet),
				xcm.NewGeneralIndex(AssetIndex),
			},
		}),
		Fun: xcm.NewFungible(FeeAmount),
	}

	beneficiary := xcm.MultiLocation{
		Interior: xcm.Junctions{
			xcm.AccountID32{ID: account},
		},
	}

	return xcm.Xcm{
		xcm.WithdrawAsset{reserveAsset},
		xcm.InitiateReserveWithdraw{
			Assets:  xcm.AllAssets,
			Reserve: xcm.NewParachainLocation(ReserveParaID),
			Xcm: xcm.Xcm{
				xcm.BuyExecution{
					Fees:        fees,
					WeightLimit: xcm.Unlimited{},
				},
				xcm.DepositReserveAsset{
					Assets: xcm.AllAssets,
					Dest:   xcm.NewParachainLocation(DestinationParaID),
					Xcm: xcm.Xcm{
						xcm.DepositAsset{
							Assets:      xcm.AllAssets,
							Beneficiary: beneficiary,
						},
					},
				},
			},
		},
	}
}
