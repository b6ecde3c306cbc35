// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hbulgarini/test-xcmv3/config"
	"github.com/hbulgarini/test-xcmv3/internal/host"
	"github.com/hbulgarini/test-xcmv3/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli"
)

// loadConfig loads the configuration file given with --config,
// or the default configuration otherwise.
func loadConfig(ctx *cli.Context) (cfg *config.Config, err error) {
	path := ctx.GlobalString(ConfigFlag.Name)
	if path == "" {
		return config.Default(), nil
	}

	logger.Debug("loading toml configuration from " + path + "...")
	return config.LoadFile(path)
}

// setupLogger sets up the global logger level, the --log flag
// taking precedence over the configuration file.
func setupLogger(ctx *cli.Context, cfg *config.Config) (level log.Level, err error) {
	levelString := cfg.Global.LogLvl
	if ctx.GlobalIsSet(LogFlag.Name) {
		levelString = ctx.GlobalString(LogFlag.Name)
	}

	if lvlToInt, err := strconv.Atoi(levelString); err == nil {
		level = log.Level(lvlToInt)
	} else if level, err = log.ParseLevel(levelString); err != nil {
		return 0, err
	}

	log.Patch(
		log.SetWriter(os.Stderr),
		log.SetLevel(level),
	)
	return level, nil
}

// setup loads the configuration, sets up logging and
// returns a development host configured from it.
func setup(ctx *cli.Context) (*host.Host, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	if _, err = setupLogger(ctx, cfg); err != nil {
		return nil, fmt.Errorf("setting up logger: %w", err)
	}

	hostConfig := host.Config{
		UnitWeight: cfg.Host.UnitWeight,
		BaseFee:    cfg.Host.BaseFee,
		ByteFee:    cfg.Host.ByteFee,
	}
	return host.New(hostConfig, prometheus.NewRegistry()), nil
}
