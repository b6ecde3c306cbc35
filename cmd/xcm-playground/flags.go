// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

// Global flags
var (
	// ConfigFlag TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// LogFlag global log level
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
)

// Command flags
var (
	// AccountFlag beneficiary of the reserve transfer
	AccountFlag = cli.StringFlag{
		Name:  "account",
		Usage: "Hex encoded 32 bytes beneficiary account, eg. --account 0xd43593c7...",
	}
	// ParaIDFlag destination parachain
	ParaIDFlag = cli.Uint64Flag{
		Name:  "para-id",
		Usage: "Destination parachain id",
	}
	// CallFlag encoded call to dispatch
	CallFlag = cli.StringFlag{
		Name:  "call",
		Usage: "Hex encoded call to dispatch on the destination",
	}
	// WeightFlag reference time limit of the call
	WeightFlag = cli.Uint64Flag{
		Name:  "weight",
		Usage: "Maximum reference time the call may consume",
	}
	// OutFlag path of the exported configuration file
	OutFlag = cli.StringFlag{
		Name:  "out",
		Usage: "Path of the TOML configuration file to write",
	}
	// RespondVersionFlag records a version response before taking it
	RespondVersionFlag = cli.UintFlag{
		Name:  "respond-version",
		Usage: "Answer the query with the given XCM version before taking the response",
	}
)

// GlobalFlags are flags accepted by every command.
var GlobalFlags = []cli.Flag{
	ConfigFlag,
	LogFlag,
}
