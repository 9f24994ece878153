// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/datemath"
	"cloudeng.io/logging/ctxlog"
)

// Config represents the yaml configuration file, eg:
//
//	location: America/New_York
//	layout: ddd, mmm d yyyy HH:MM
//	interval: week
//	step: 2
//	logging:
//	  level: 2
//	  format: json
type Config struct {
	Location string                `yaml:"location"`
	Layout   string                `yaml:"layout"`
	Interval *datemath.Interval    `yaml:"interval"`
	Step     int                   `yaml:"step"`
	Logging  cmdutil.LoggingConfig `yaml:"logging"`
}

// settings are the result of merging the config file and flags.
type settings struct {
	location *time.Location
	layout   string
	interval datemath.Interval
	step     int
	logging  cmdutil.LoggingConfig
}

func loadConfig(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if len(filename) == 0 {
		return cfg, nil
	}
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func resolveSettings(ctx context.Context, gf GlobalFlags) (settings, error) {
	cfg, err := loadConfig(ctx, gf.Config)
	if err != nil {
		return settings{}, err
	}
	s := settings{
		layout:   datemath.ISOLayout,
		interval: datemath.Day,
		step:     max(1, cfg.Step),
		logging:  cfg.Logging,
	}
	if cfg.Interval != nil {
		s.interval = *cfg.Interval
	}
	if len(cfg.Layout) > 0 {
		s.layout = cfg.Layout
	}
	if len(gf.Layout) > 0 {
		s.layout = gf.Layout
	}

	name := cfg.Location
	if len(gf.Location) > 0 {
		name = gf.Location
	}
	s.location = time.Local
	if len(name) > 0 {
		if s.location, err = time.LoadLocation(name); err != nil {
			return settings{}, fmt.Errorf("location: %w", err)
		}
	}

	lf := cmdutil.LoggingFlags{
		Level:  cfg.Logging.Level,
		File:   cfg.Logging.File,
		Format: cfg.Logging.Format,
	}
	if gf.LogLevel > 0 {
		lf.Level = gf.LogLevel
	}
	if len(gf.LogFile) > 0 {
		lf.File = gf.LogFile
	}
	if len(gf.LogFormat) > 0 {
		lf.Format = gf.LogFormat
	}
	if len(lf.Format) == 0 {
		lf.Format = "text"
	}
	if err := flags.OneOf(lf.Format).Validate("text", "json"); err != nil {
		return settings{}, err
	}
	lf.SourceCode = cfg.Logging.SourceCode
	s.logging = lf.LoggingConfig()
	return s, nil
}

func withLogger(ctx context.Context, logger *slog.Logger, s settings) context.Context {
	ctx = ctxlog.WithLogger(ctx, logger)
	ctx = ctxlog.WithAttributes(ctx, "location", s.location.String())
	ctxlog.Debug(ctx, "settings", "layout", s.layout, "interval", s.interval.String(), "step", s.step)
	return ctx
}
