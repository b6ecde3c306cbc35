// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadFile(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		content    string
		config     *Config
		errMessage string
	}{
		"empty_file": {
			config: Default(),
		},
		"partial_host": {
			content: "[host]\nbyte-fee = 5\n",
			config: &Config{
				Global: GlobalConfig{LogLvl: DefaultLogLevel},
				Host: HostConfig{
					UnitWeight: DefaultUnitWeight,
					BaseFee:    DefaultBaseFee,
					ByteFee:    5,
				},
			},
		},
		"all_values": {
			content: "[global]\nlog = \"dbug\"\n\n[host]\nunit-weight = 10\nbase-fee = 20\nbyte-fee = 30\n",
			config: &Config{
				Global: GlobalConfig{LogLvl: "dbug"},
				Host: HostConfig{
					UnitWeight: 10,
					BaseFee:    20,
					ByteFee:    30,
				},
			},
		},
		"malformed": {
			content:    "[host\n",
			errMessage: "decoding configuration file",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "config.toml")
			err := os.WriteFile(path, []byte(testCase.content), 0600)
			require.NoError(t, err)

			cfg, err := LoadFile(path)

			if testCase.errMessage != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), testCase.errMessage)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.config, cfg)
		})
	}
}

func Test_LoadFile_missing(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, cfg)
}

func Test_Export(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		host HostConfig
	}{
		"custom_byte_fee": {
			host: HostConfig{
				UnitWeight: DefaultUnitWeight,
				BaseFee:    DefaultBaseFee,
				ByteFee:    7,
			},
		},
		"zero_values": {},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "config.toml")
			cfg := Default()
			cfg.Host = testCase.host

			err := Export(cfg, path)
			require.NoError(t, err)

			loaded, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}
