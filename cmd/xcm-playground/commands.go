// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/hbulgarini/test-xcmv3/config"
	"github.com/hbulgarini/test-xcmv3/internal/host"
	"github.com/hbulgarini/test-xcmv3/lib/contracts/playground"
	"github.com/hbulgarini/test-xcmv3/lib/contracts/transact"
	"github.com/hbulgarini/test-xcmv3/lib/extension"
	"github.com/hbulgarini/test-xcmv3/pkg/xcm"
	"github.com/urfave/cli"
)

var (
	errAccountLength     = errors.New("account must be 32 bytes")
	errParaIDTooLarge    = errors.New("parachain id does not fit in 32 bits")
	errVersionTooLarge   = errors.New("version does not fit in 32 bits")
	errNothingDispatched = errors.New("no program was dispatched")
	errOutputRequired    = errors.New("output file path is required")
)

func reserveTransferAction(ctx *cli.Context) error {
	h, err := setup(ctx)
	if err != nil {
		return err
	}

	raw, err := hexutil.Decode(ctx.String(AccountFlag.Name))
	if err != nil {
		return fmt.Errorf("decoding account: %w", err)
	}
	if len(raw) != 32 {
		return fmt.Errorf("%w: got %d bytes", errAccountLength, len(raw))
	}
	var account [32]byte
	copy(account[:], raw)

	contract := playground.Default(extension.New(h))
	if err = contract.SendMessage(account); err != nil {
		return fmt.Errorf("sending reserve transfer: %w", err)
	}

	return printDispatched(ctx, h)
}

func transactAction(ctx *cli.Context) error {
	h, err := setup(ctx)
	if err != nil {
		return err
	}

	paraID := ctx.Uint64(ParaIDFlag.Name)
	if paraID > math.MaxUint32 {
		return fmt.Errorf("%w: %d", errParaIDTooLarge, paraID)
	}

	call, err := hexutil.Decode(ctx.String(CallFlag.Name))
	if err != nil {
		return fmt.Errorf("decoding call: %w", err)
	}
	weight := ctx.Uint64(WeightFlag.Name)

	contract := transact.Default(extension.New(h))
	if err = contract.SendMessage(uint32(paraID), call, weight); err != nil {
		return fmt.Errorf("sending transact: %w", err)
	}

	return printDispatched(ctx, h)
}

func queryAction(ctx *cli.Context) error {
	h, err := setup(ctx)
	if err != nil {
		return err
	}

	ext := extension.New(h)
	queryID, err := ext.NewQuery()
	if err != nil {
		return fmt.Errorf("allocating query: %w", err)
	}
	fmt.Fprintf(ctx.App.Writer, "query: %d\n", queryID)

	if ctx.IsSet(RespondVersionFlag.Name) {
		version := ctx.Uint(RespondVersionFlag.Name)
		if uint64(version) > math.MaxUint32 {
			return fmt.Errorf("%w: %d", errVersionTooLarge, version)
		}
		response := xcm.NewVersionedResponse(xcm.VersionResponse(uint32(version)))
		if err = h.RecordResponse(queryID, response); err != nil {
			return fmt.Errorf("recording response: %w", err)
		}
	}

	response, err := ext.TakeResponse(queryID)
	if errors.Is(err, extension.ErrNoResponse) {
		fmt.Fprintln(ctx.App.Writer, "response: none")
		return nil
	} else if err != nil {
		return fmt.Errorf("taking response: %w", err)
	}

	encoded, err := xcm.Encode(response)
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	fmt.Fprintf(ctx.App.Writer, "response: %s\n", hexutil.Encode(encoded))
	return nil
}

func exportConfigAction(ctx *cli.Context) error {
	path := ctx.String(OutFlag.Name)
	if path == "" {
		return errOutputRequired
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if _, err = setupLogger(ctx, cfg); err != nil {
		return fmt.Errorf("setting up logger: %w", err)
	}
	if ctx.GlobalIsSet(LogFlag.Name) {
		cfg.Global.LogLvl = ctx.GlobalString(LogFlag.Name)
	}

	if err = config.Export(cfg, path); err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "exported: %s\n", path)
	return nil
}

func printDispatched(ctx *cli.Context, h *host.Host) error {
	journal := h.Journal()
	if len(journal) == 0 {
		return errNothingDispatched
	}
	entry := journal[len(journal)-1]

	encoded, err := xcm.Encode(entry.Program)
	if err != nil {
		return fmt.Errorf("encoding program: %w", err)
	}

	fmt.Fprintf(ctx.App.Writer, "%s: %s\n", entry.Kind, hexutil.Encode(entry.Hash[:]))
	if entry.Dest != nil {
		fmt.Fprintf(ctx.App.Writer, "dest: %s\n", entry.Dest.V3)
	}
	if entry.Fee != nil {
		var encodedFee []byte
		encodedFee, err = xcm.Encode(*entry.Fee)
		if err != nil {
			return fmt.Errorf("encoding fee: %w", err)
		}
		fmt.Fprintf(ctx.App.Writer, "fee: %s\n", hexutil.Encode(encodedFee))
	}
	fmt.Fprintf(ctx.App.Writer, "program: %s\n", hexutil.Encode(encoded))
	fmt.Fprintln(ctx.App.Writer, entry.Program.V3)
	return nil
}
