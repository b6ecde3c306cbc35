// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

func Test_MultiLocation_Encode(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		location MultiLocation
		encoded  []byte
	}{
		"here": {
			location: Here,
			encoded:  []byte{0, 0},
		},
		"parent": {
			location: MultiLocation{Parents: 1},
			encoded:  []byte{1, 0},
		},
		"sibling_parachain": {
			location: NewParachainLocation(1000),
			encoded:  []byte{1, 1, 0, 0xa1, 0x0f},
		},
		"pallet_general_index": {
			location: MultiLocation{
				Interior: Junctions{PalletInstance(50), NewGeneralIndex(1)},
			},
			encoded: []byte{0, 2, 4, 50, 5, 4},
		},
		"account_with_network": {
			location: MultiLocation{
				Interior: Junctions{AccountID32{Network: Polkadot{}, ID: [32]byte{1}}},
			},
			encoded: append([]byte{0, 1, 1, 1, 2, 1}, make([]byte, 31)...),
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			encoded, err := Encode(testCase.location)
			require.NoError(t, err)
			assert.Equal(t, testCase.encoded, encoded)

			var decoded MultiLocation
			err = Decode(encoded, &decoded)
			require.NoError(t, err)
			assert.Equal(t, testCase.location, decoded)
		})
	}
}

func Test_VersionedXcm_Encode_transact(t *testing.T) {
	t.Parallel()

	program := NewVersionedXcm(Xcm{
		Transact{
			OriginKind:          OriginKindNative,
			RequireWeightAtMost: NewWeight(5_000_000_000),
			Call:                []byte{0xde, 0xad, 0xbe, 0xef},
		},
	})

	encoded, err := Encode(program)
	require.NoError(t, err)

	expected := []byte{
		3,    // V3
		4,    // one instruction
		6,    // Transact
		0,    // Native
		0x07, 0x00, 0xf2, 0x05, 0x2a, 0x01, // ref time
		0,    // proof size
		0x10, // call length
		0xde, 0xad, 0xbe, 0xef,
	}
	assert.Equal(t, expected, encoded)
}

func Test_VersionedXcm_roundTrip(t *testing.T) {
	t.Parallel()

	beneficiary := MultiLocation{
		Interior: Junctions{AccountID32{ID: [32]byte{0xaa}}},
	}
	fees := MultiAsset{
		ID:  Concrete(MultiLocation{Interior: Junctions{PalletInstance(50), NewGeneralIndex(1)}}),
		Fun: NewFungible(1_000_000_000_000),
	}
	querier := NewParachainLocation(2000)

	testCases := map[string]Xcm{
		"reserve_withdraw": {
			WithdrawAsset{fees},
			InitiateReserveWithdraw{
				Assets:  AllAssets,
				Reserve: NewParachainLocation(1000),
				Xcm: Xcm{
					BuyExecution{Fees: fees, WeightLimit: Unlimited{}},
					DepositReserveAsset{
						Assets: AllAssets,
						Dest:   NewParachainLocation(3000),
						Xcm:    Xcm{DepositAsset{Assets: AllAssets, Beneficiary: beneficiary}},
					},
				},
			},
		},
		"teleport_and_transfer": {
			ReceiveTeleportedAsset{fees},
			ClearOrigin{},
			BuyExecution{Fees: fees, WeightLimit: Limited{RefTime: 1, ProofSize: 2}},
			TransferAsset{Assets: MultiAssets{fees}, Beneficiary: beneficiary},
			TransferReserveAsset{
				Assets: MultiAssets{fees},
				Dest:   Here,
				Xcm:    Xcm{RefundSurplus{}},
			},
			InitiateTeleport{
				Assets: Definite{fees},
				Dest:   MultiLocation{Parents: 1},
				Xcm:    Xcm{ClearError{}},
			},
		},
		"registers": {
			SetErrorHandler{Trap(7)},
			SetAppendix{DepositAsset{
				Assets:      Wild{Asset: AllOfCounted{ID: fees.ID, Fun: WildFungible, Count: 1}},
				Beneficiary: beneficiary,
			}},
			SetTopic{1, 2, 3},
			ClearTopic{},
			DescendOrigin{OnlyChild{}, GeneralKey{Length: 2, Data: [32]byte{9, 9}}},
			UnpaidExecution{WeightLimit: Unlimited{}, CheckOrigin: &querier},
			BurnAsset{{ID: Abstract{1}, Fun: NonFungible{Instance: Array4Instance{1, 2, 3, 4}}}},
			ExpectAsset{{ID: Abstract{2}, Fun: NonFungible{Instance: IndexInstance{Value: uint256.NewInt(3)}}}},
		},
		"query_response": {
			QueryResponse{
				QueryID: 42,
				Response: ExecutionResultResponse{Failure: &ExecutionFailure{
					InstructionIndex: 1,
					Error:            ExecutionError{Code: ErrorTrap, TrapCode: 9},
				}},
				MaxWeight: NewWeight(10),
				Querier:   &querier,
			},
			QueryResponse{Response: VersionResponse(3)},
			QueryResponse{Response: AssetsResponse{fees}},
			QueryResponse{Response: DispatchResultResponse{Outcome: DispatchError, Error: []byte{1}}},
		},
		"empty_payloads": {
			QueryResponse{Response: DispatchResultResponse{Outcome: DispatchTruncatedError, Error: []byte{}}},
			Transact{OriginKind: OriginKindNative, RequireWeightAtMost: NewWeight(5), Call: []byte{}},
		},
		"junction_kinds": {
			DepositAsset{
				Assets: Wild{Asset: AllCounted(2)},
				Beneficiary: MultiLocation{Parents: 2, Interior: Junctions{
					GlobalConsensus{Network: Ethereum{ChainID: 1}},
					AccountKey20{Network: Kusama{}, Key: [20]byte{5}},
					AccountIndex64{Network: ByFork{BlockNumber: 3, BlockHash: [32]byte{4}}, Number: 5},
					Plurality{ID: IndexBody(1), Part: Fraction{Nom: 1, Denom: 2}},
					Plurality{ID: MonikerBody{'t', 'e', 's', 't'}, Part: Members{Count: 3}},
					GlobalConsensus{Network: ByGenesis{7}},
				}},
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			program := NewVersionedXcm(testCase)
			encoded, err := Encode(program)
			require.NoError(t, err)

			var decoded VersionedXcm
			err = Decode(encoded, &decoded)
			require.NoError(t, err)

			diff := cmp.Diff(program, decoded, cmp.Comparer(func(a, b *uint256.Int) bool {
				if a == nil || b == nil {
					return a == b
				}
				return a.Eq(b)
			}))
			assert.Empty(t, diff)
		})
	}
}

func Test_VersionedResponse_roundTrip(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		response VersionedResponse
		encoded  []byte
	}{
		"null": {
			response: NewVersionedResponse(NullResponse{}),
			encoded:  []byte{3, 0},
		},
		"dispatch_success": {
			response: NewVersionedResponse(DispatchResultResponse{Outcome: DispatchSuccess}),
			encoded:  []byte{3, 5, 0},
		},
		"dispatch_error_empty": {
			response: NewVersionedResponse(DispatchResultResponse{Outcome: DispatchError, Error: []byte{}}),
			encoded:  []byte{3, 5, 1, 0},
		},
		"dispatch_error": {
			response: NewVersionedResponse(DispatchResultResponse{Outcome: DispatchError, Error: []byte{7, 8}}),
			encoded:  []byte{3, 5, 1, 8, 7, 8},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			encoded, err := Encode(testCase.response)
			require.NoError(t, err)
			assert.Equal(t, testCase.encoded, encoded)

			var decoded VersionedResponse
			err = Decode(encoded, &decoded)
			require.NoError(t, err)
			assert.Equal(t, testCase.response, decoded)
		})
	}
}

func Test_Decode_emptyCallLast(t *testing.T) {
	t.Parallel()

	// V3 [Transact{Native, 5, []}]
	encoded := []byte{3, 4, 6, 0, 0x14, 0, 0}

	var program VersionedXcm
	err := Decode(encoded, &program)

	require.NoError(t, err)
	expected := NewVersionedXcm(Xcm{Transact{
		OriginKind:          OriginKindNative,
		RequireWeightAtMost: NewWeight(5),
		Call:                []byte{},
	}})
	assert.Equal(t, expected, program)
}

func Test_Decode_errors(t *testing.T) {
	t.Parallel()

	t.Run("unsupported_version", func(t *testing.T) {
		t.Parallel()
		var program VersionedXcm
		err := Decode([]byte{2, 0}, &program)
		assert.ErrorIs(t, err, ErrUnsupportedVersion)
	})

	t.Run("unknown_instruction", func(t *testing.T) {
		t.Parallel()
		var program VersionedXcm
		err := Decode([]byte{3, 4, 7}, &program)
		assert.ErrorIs(t, err, ErrUnknownInstruction)
	})

	t.Run("trailing_bytes", func(t *testing.T) {
		t.Parallel()
		var location MultiLocation
		err := Decode([]byte{0, 0, 1}, &location)
		assert.ErrorIs(t, err, ErrTrailingBytes)
	})

	t.Run("too_many_junctions", func(t *testing.T) {
		t.Parallel()
		var location MultiLocation
		err := Decode([]byte{0, 9}, &location)
		assert.ErrorIs(t, err, ErrTooManyJunctions)
	})

	t.Run("too_many_instructions", func(t *testing.T) {
		t.Parallel()
		var program Xcm
		// compact 101
		err := Decode([]byte{0x95, 0x01}, &program)
		assert.ErrorIs(t, err, ErrTooManyInstructions)
	})

	t.Run("truncated_call", func(t *testing.T) {
		t.Parallel()
		var program VersionedXcm
		err := Decode([]byte{3, 4, 6, 0, 0x14, 0, 0x10, 0xde}, &program)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrLengthTooLarge)
	})

	t.Run("call_length_too_large", func(t *testing.T) {
		t.Parallel()
		var program VersionedXcm
		// compact 2^32
		err := Decode([]byte{3, 4, 6, 0, 0x14, 0, 0x07, 0, 0, 0, 0, 1}, &program)
		assert.ErrorIs(t, err, ErrLengthTooLarge)
	})

	t.Run("unknown_response", func(t *testing.T) {
		t.Parallel()
		var response VersionedResponse
		err := Decode([]byte{3, 4}, &response)
		assert.ErrorIs(t, err, ErrUnknownResponse)
	})
}

func nestedAppendix(depth int) Xcm {
	program := Xcm{ClearOrigin{}}
	for i := 0; i < depth; i++ {
		program = Xcm{SetAppendix(program)}
	}
	return program
}

func Test_Xcm_Decode_depth(t *testing.T) {
	t.Parallel()

	encoded, err := Encode(nestedAppendix(MaxDecodeDepth))
	require.NoError(t, err)
	var decoded Xcm
	err = Decode(encoded, &decoded)
	require.NoError(t, err)
	assert.Equal(t, MaxDecodeDepth+1, decoded.Count())

	encoded, err = Encode(nestedAppendix(MaxDecodeDepth + 1))
	require.NoError(t, err)
	err = Decode(encoded, &decoded)
	assert.ErrorIs(t, err, ErrDecodeDepthExceeded)
}

func Test_Encode_amountOverflow(t *testing.T) {
	t.Parallel()

	amount, overflow := uint256.FromBig(new(big.Int).Lsh(big.NewInt(1), 128))
	require.False(t, overflow)

	asset := MultiAsset{ID: Concrete(Here), Fun: Fungible{Amount: amount}}
	_, err := Encode(asset)
	assert.ErrorIs(t, err, ErrAmountOverflow)
}

func Test_Encode_nilVariant(t *testing.T) {
	t.Parallel()

	_, err := Encode(Xcm{DepositAsset{Beneficiary: Here}})
	assert.ErrorIs(t, err, ErrNilValue)
}

func Test_MultiAssets_Push(t *testing.T) {
	t.Parallel()

	dot := Concrete(MultiLocation{Parents: 1})
	usdt := Concrete(MultiLocation{Interior: Junctions{PalletInstance(50), NewGeneralIndex(1984)}})

	var assets MultiAssets
	assets.Push(MultiAsset{ID: dot, Fun: NewFungible(10)})
	assets.Push(MultiAsset{ID: usdt, Fun: NewFungible(1)})
	assets.Push(MultiAsset{ID: dot, Fun: NewFungible(5)})
	assets.Push(MultiAsset{ID: Abstract{1}, Fun: NonFungible{Instance: UndefinedInstance{}}})
	assets.Push(MultiAsset{ID: Abstract{1}, Fun: NonFungible{Instance: UndefinedInstance{}}})

	expected := MultiAssets{
		{ID: dot, Fun: NewFungible(15)},
		{ID: usdt, Fun: NewFungible(1)},
		{ID: Abstract{1}, Fun: NonFungible{Instance: UndefinedInstance{}}},
		{ID: Abstract{1}, Fun: NonFungible{Instance: UndefinedInstance{}}},
	}
	assert.Equal(t, expected, assets)
}

func Test_Xcm_Walk(t *testing.T) {
	t.Parallel()

	program := Xcm{
		ClearOrigin{},
		SetErrorHandler{Trap(1), SetAppendix{RefundSurplus{}}},
		ClearError{},
	}

	var depths []int
	program.Walk(func(depth int, _ Instruction) {
		depths = append(depths, depth)
	})

	assert.Equal(t, []int{0, 0, 1, 1, 2, 0}, depths)
	assert.Equal(t, 6, program.Count())
}

func Test_Xcm_String(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		program Xcm
		s       string
	}{
		"empty_program": {
			s: "Xcm",
		},
		"flat_program": {
			program: Xcm{ClearOrigin{}, Trap(1)},
			s: `Xcm
├── ClearOrigin
└── Trap`,
		},
		"nested_program": {
			program: Xcm{
				ClearOrigin{},
				SetErrorHandler{Trap(1), SetAppendix{RefundSurplus{}}},
				ClearError{},
			},
			s: `Xcm
├── ClearOrigin
├── SetErrorHandler
|   ├── Trap
|   └── SetAppendix
|       └── RefundSurplus
└── ClearError`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := testCase.program.String()

			assert.Equal(t, testCase.s, s)
		})
	}
}

func Test_VersionedXcm_Hash(t *testing.T) {
	t.Parallel()

	program := NewVersionedXcm(Xcm{ClearOrigin{}})
	hash, err := program.Hash()
	require.NoError(t, err)

	encoded, err := Encode(program)
	require.NoError(t, err)
	assert.Equal(t, blake2b.Sum256(encoded), hash)
}

func Test_MultiLocation_String(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		location MultiLocation
		s        string
	}{
		"here": {
			location: Here,
			s:        "Here",
		},
		"grand_parent": {
			location: MultiLocation{Parents: 2},
			s:        "../..",
		},
		"reserve_asset": {
			location: MultiLocation{
				Parents:  1,
				Interior: Junctions{Parachain(1000), PalletInstance(50), NewGeneralIndex(1)},
			},
			s: "../Parachain(1000)/PalletInstance(50)/GeneralIndex(1)",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.s, testCase.location.String())
		})
	}
}
