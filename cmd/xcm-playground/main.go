// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"os"

	"github.com/hbulgarini/test-xcmv3/internal/log"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

var (
	reserveTransferCommand = cli.Command{
		Action:    reserveTransferAction,
		Name:      "reserve-transfer",
		Usage:     "Relay the reserve asset to an account on the destination parachain",
		ArgsUsage: "",
		Flags:     []cli.Flag{AccountFlag},
		Description: "The reserve-transfer command executes the reserve transfer program locally.\n" +
			"\tUsage: xcm-playground reserve-transfer --account 0x<32 bytes>",
	}
	transactCommand = cli.Command{
		Action:    transactAction,
		Name:      "transact",
		Usage:     "Send an encoded call to a sibling parachain",
		ArgsUsage: "",
		Flags:     []cli.Flag{ParaIDFlag, CallFlag, WeightFlag},
		Description: "The transact command sends a single Transact instruction.\n" +
			"\tUsage: xcm-playground transact --para-id 2000 --call 0xdeadbeef --weight 5000000000",
	}
	queryCommand = cli.Command{
		Action:    queryAction,
		Name:      "query",
		Usage:     "Allocate a query and take its response",
		ArgsUsage: "",
		Flags:     []cli.Flag{RespondVersionFlag},
		Description: "The query command allocates a query id and takes its response.\n" +
			"\tWith --respond-version the host answers the query with a version response first.",
	}
	exportConfigCommand = cli.Command{
		Action:    exportConfigAction,
		Name:      "export-config",
		Usage:     "Write the effective configuration to a TOML file",
		ArgsUsage: "",
		Flags:     []cli.Flag{OutFlag},
		Description: "The export-config command writes the configuration in use, defaults and\n" +
			"\t--config file merged, to the file given.\n" +
			"\tUsage: xcm-playground --config in.toml export-config --out out.toml",
	}
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "xcm-playground"
	app.Usage = "Assemble XCM v3 programs and dispatch them through the XCM chain extension"
	app.Version = "0.1.0"
	app.Flags = GlobalFlags
	app.Commands = []cli.Command{
		reserveTransferCommand,
		transactCommand,
		queryCommand,
		exportConfigCommand,
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Critical(err.Error())
		os.Exit(1)
	}
}
