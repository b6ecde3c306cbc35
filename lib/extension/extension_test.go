// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package extension

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hbulgarini/test-xcmv3/pkg/xcm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errTest = errors.New("test error")

	// VersionedXcm V3 [ClearOrigin]
	clearOriginProgram = xcm.NewVersionedXcm(xcm.Xcm{xcm.ClearOrigin{}})
	clearOriginBytes   = []byte{3, 4, 10}
	// VersionedMultiLocation V3 ../Parachain(1000)
	siblingDest      = xcm.NewVersionedMultiLocation(xcm.NewParachainLocation(1000))
	siblingDestBytes = []byte{3, 1, 1, 0, 0xa1, 0x0f}
)

func Test_FuncID_String(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		funcID FuncID
		s      string
	}{
		"prepare_execute": {funcID: PrepareExecuteID, s: "prepare_execute"},
		"execute":         {funcID: ExecuteID, s: "execute"},
		"prepare_send":    {funcID: PrepareSendID, s: "prepare_send"},
		"send":            {funcID: SendID, s: "send"},
		"new_query":       {funcID: NewQueryID, s: "new_query"},
		"take_response":   {funcID: TakeResponseID, s: "take_response"},
		"unknown":         {funcID: 0x00020000, s: "func(0x00020000)"},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.s, testCase.funcID.String())
		})
	}
}

func Test_StatusToError(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		status     uint32
		errWrapped error
		fatal      bool
		errMessage string
	}{
		"ok": {
			status: 0,
		},
		"no_response": {
			status:     1,
			errWrapped: ErrNoResponse,
			errMessage: "no response",
		},
		"unknown_status": {
			status:     2,
			errWrapped: ErrUnknownStatusCode,
			fatal:      true,
			errMessage: "fatal take_response: unknown status code: 2",
		},
		"max_status": {
			status:     0xFFFFFFFF,
			errWrapped: ErrUnknownStatusCode,
			fatal:      true,
			errMessage: "fatal take_response: unknown status code: 4294967295",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := StatusToError(TakeResponseID, testCase.status)

			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Equal(t, testCase.fatal, IsFatal(err))
			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

func Test_Extension_PrepareExecute(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		status     uint32
		output     []byte
		callErr    error
		weight     uint64
		errWrapped error
		fatal      bool
	}{
		"success": {
			output: []byte{42, 0, 0, 0, 0, 0, 0, 0},
			weight: 42,
		},
		"status_ignored": {
			status: 5,
			output: []byte{1, 0, 0, 0, 0, 0, 0, 0},
			weight: 1,
		},
		"host_error": {
			callErr:    errTest,
			errWrapped: errTest,
			fatal:      true,
		},
		"short_output": {
			output: []byte{1, 2},
			fatal:  true,
		},
		"trailing_output": {
			output:     []byte{1, 0, 0, 0, 0, 0, 0, 0, 9},
			errWrapped: xcm.ErrTrailingBytes,
			fatal:      true,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			host := NewMockChainExtension(ctrl)
			host.EXPECT().Call(PrepareExecuteID, clearOriginBytes).
				Return(testCase.status, testCase.output, testCase.callErr)

			weight, err := New(host).PrepareExecute(clearOriginProgram)

			assert.Equal(t, testCase.weight, weight)
			assert.Equal(t, testCase.fatal, IsFatal(err))
			if !testCase.fatal {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if testCase.errWrapped != nil {
				assert.ErrorIs(t, err, testCase.errWrapped)
			}
		})
	}
}

func Test_Extension_Execute(t *testing.T) {
	t.Parallel()

	t.Run("status_ignored", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		host := NewMockChainExtension(ctrl)
		host.EXPECT().Call(ExecuteID, nil).Return(uint32(3), nil, nil)

		err := New(host).Execute()

		assert.NoError(t, err)
	})

	t.Run("host_error", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		host := NewMockChainExtension(ctrl)
		host.EXPECT().Call(ExecuteID, nil).Return(uint32(0), nil, errTest)

		err := New(host).Execute()

		assert.ErrorIs(t, err, errTest)
		assert.True(t, IsFatal(err))
		assert.EqualError(t, err, "fatal execute: test error")
	})
}

func Test_Extension_PrepareSend(t *testing.T) {
	t.Parallel()

	expectedInput := append(append([]byte{}, siblingDestBytes...), clearOriginBytes...)

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		// V3 Concrete(Here) Fungible(100)
		output := []byte{3, 0, 0, 0, 0, 0x91, 0x01}
		host := NewMockChainExtension(ctrl)
		host.EXPECT().Call(PrepareSendID, expectedInput).Return(uint32(0), output, nil)

		fee, err := New(host).PrepareSend(siblingDest, clearOriginProgram)

		require.NoError(t, err)
		expectedFee := xcm.NewVersionedMultiAsset(xcm.MultiAsset{
			ID:  xcm.Concrete(xcm.Here),
			Fun: xcm.NewFungible(100),
		})
		assert.Equal(t, expectedFee, fee)
	})

	t.Run("bad_fee", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		host := NewMockChainExtension(ctrl)
		host.EXPECT().Call(PrepareSendID, expectedInput).Return(uint32(0), []byte{2}, nil)

		fee, err := New(host).PrepareSend(siblingDest, clearOriginProgram)

		assert.ErrorIs(t, err, xcm.ErrUnsupportedVersion)
		assert.True(t, IsFatal(err))
		assert.Equal(t, xcm.VersionedMultiAsset{}, fee)
	})

	t.Run("encoding_error", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		host := NewMockChainExtension(ctrl)
		invalidProgram := xcm.NewVersionedXcm(xcm.Xcm{nil})

		_, err := New(host).PrepareSend(siblingDest, invalidProgram)

		assert.ErrorIs(t, err, xcm.ErrNilValue)
		assert.False(t, IsFatal(err))
	})
}

func Test_Extension_Send(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	host := NewMockChainExtension(ctrl)
	host.EXPECT().Call(SendID, nil).Return(uint32(0xFF), []byte{1, 2, 3}, nil)

	err := New(host).Send()

	assert.NoError(t, err)
}

func Test_Extension_NewQuery(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		host := NewMockChainExtension(ctrl)
		host.EXPECT().Call(NewQueryID, nil).
			Return(uint32(0), []byte{0x39, 0x05, 0, 0, 0, 0, 0, 0}, nil)

		queryID, err := New(host).NewQuery()

		require.NoError(t, err)
		assert.Equal(t, uint64(1337), queryID)
	})

	t.Run("empty_output", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		host := NewMockChainExtension(ctrl)
		host.EXPECT().Call(NewQueryID, nil).Return(uint32(0), nil, nil)

		_, err := New(host).NewQuery()

		assert.True(t, IsFatal(err))
	})
}

func Test_Extension_TakeResponse(t *testing.T) {
	t.Parallel()

	queryIDInput := []byte{7, 0, 0, 0, 0, 0, 0, 0}

	testCases := map[string]struct {
		status     uint32
		output     []byte
		callErr    error
		response   xcm.VersionedResponse
		errWrapped error
		fatal      bool
	}{
		"version_response": {
			output:   []byte{3, 3, 3, 0, 0, 0},
			response: xcm.NewVersionedResponse(xcm.VersionResponse(3)),
		},
		"null_response": {
			output:   []byte{3, 0},
			response: xcm.NewVersionedResponse(xcm.NullResponse{}),
		},
		"no_response_output_not_decoded": {
			status:     1,
			output:     []byte{0xde, 0xad},
			errWrapped: ErrNoResponse,
		},
		"unknown_status": {
			status:     2,
			output:     []byte{3, 0},
			errWrapped: ErrUnknownStatusCode,
			fatal:      true,
		},
		"host_error": {
			callErr:    errTest,
			errWrapped: errTest,
			fatal:      true,
		},
		"undecodable_response": {
			output:     []byte{3, 4},
			errWrapped: xcm.ErrUnknownResponse,
			fatal:      true,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			host := NewMockChainExtension(ctrl)
			host.EXPECT().Call(TakeResponseID, queryIDInput).
				Return(testCase.status, testCase.output, testCase.callErr)

			response, err := New(host).TakeResponse(7)

			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Equal(t, testCase.fatal, IsFatal(err))
			assert.Equal(t, testCase.response, response)
		})
	}
}
