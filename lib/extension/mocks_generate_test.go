// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package extension

//go:generate mockgen -destination=mock_chain_extension_test.go -package $GOPACKAGE . ChainExtension
//go:generate mockgen -destination=mocks/xcm.go -package mocks . XCM
