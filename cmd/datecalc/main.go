// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command datecalc provides command line access to the calendar
// arithmetic implemented by cloudeng.io/datemath.
package main

import (
	"context"
	"io"
	"os"
	_ "time/tzdata"

	"cloudeng.io/cmdutil/subcmd"
)

const commands = `name: datecalc
summary: calendar arithmetic on ISO-8601 dates and times
commands:
  - name: floor
    summary: round dates down to the nearest interval
    arguments:
      - <date>
      - ...
  - name: ceil
    summary: round dates up to the nearest interval
    arguments:
      - <date>
      - ...
  - name: add
    summary: add n units to a date
    arguments:
      - <unit>
      - <n>
      - <date>
  - name: diff
    summary: count the whole units between two dates
    arguments:
      - <unit>
      - <date1>
      - <date2>
  - name: range
    summary: list the interval boundaries on or after date1 and before date2
    arguments:
      - <date1>
      - <date2>
  - name: format
    summary: format a date using a template of tokens such as yyyy-mm-dd
    arguments:
      - <template>
      - <date>
  - name: validate
    summary: check that strings represent valid calendar dates
    arguments:
      - <date-string>
      - ...
  - name: isoweek
    summary: display the ISO-8601 week date for dates
    arguments:
      - <date>
      - ...
  - name: intervals
    summary: list the supported intervals and units
`

// GlobalFlags are common to all commands. Non-empty values override
// those read from the config file.
type GlobalFlags struct {
	Config    string `subcmd:"config,,'yaml configuration file'"`
	Location  string `subcmd:"location,,'IANA location used to interpret and display dates, defaults to the local time zone'"`
	Layout    string `subcmd:"layout,,'template used to display dates'"`
	LogLevel  int    `subcmd:"log-level,0,'logging level: 0=error, 1=warn, 2=info, 3=debug'"`
	LogFile   string `subcmd:"log-file,,'log file path. If not specified logs are written to stderr, if set to - logs are written to stdout'"`
	LogFormat string `subcmd:"log-format,,'log format: text or json'"`
}

type noFlags struct{}

type intervalFlags struct {
	Interval string `subcmd:"interval,,'interval to round to, defaults to day'"`
}

type rangeFlags struct {
	Interval string `subcmd:"interval,,'interval to step through, defaults to day'"`
	Step     int    `subcmd:"step,0,'number of intervals between each value, defaults to 1'"`
}

// app holds the state shared by all commands. The settings are resolved
// from flags and config by main before any command is run.
type app struct {
	out      io.Writer
	globals  GlobalFlags
	settings settings
}

func newCommandSet(a *app) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(commands)
	cmdSet.Set("floor").MustRunnerAndFlags(a.floor,
		subcmd.MustRegisteredFlagSet(&intervalFlags{}))
	cmdSet.Set("ceil").MustRunnerAndFlags(a.ceil,
		subcmd.MustRegisteredFlagSet(&intervalFlags{}))
	cmdSet.Set("add").MustRunnerAndFlags(a.add,
		subcmd.MustRegisteredFlagSet(&noFlags{}))
	cmdSet.Set("diff").MustRunnerAndFlags(a.diff,
		subcmd.MustRegisteredFlagSet(&noFlags{}))
	cmdSet.Set("range").MustRunnerAndFlags(a.rangeCmd,
		subcmd.MustRegisteredFlagSet(&rangeFlags{}))
	cmdSet.Set("format").MustRunnerAndFlags(a.format,
		subcmd.MustRegisteredFlagSet(&noFlags{}))
	cmdSet.Set("validate").MustRunnerAndFlags(a.validate,
		subcmd.MustRegisteredFlagSet(&noFlags{}))
	cmdSet.Set("isoweek").MustRunnerAndFlags(a.isoweek,
		subcmd.MustRegisteredFlagSet(&noFlags{}))
	cmdSet.Set("intervals").MustRunnerAndFlags(a.intervals,
		subcmd.MustRegisteredFlagSet(&noFlags{}))

	globals := subcmd.NewFlagSet()
	globals.MustRegisterFlagStruct(&a.globals, nil, nil)
	cmdSet.WithGlobalFlags(globals)
	cmdSet.WithMain(a.main)
	return cmdSet
}

// main is run after the flags have been parsed and before the selected
// command.
func (a *app) main(ctx context.Context, runner func(context.Context) error) error {
	s, err := resolveSettings(ctx, a.globals)
	if err != nil {
		return err
	}
	logger, err := s.logging.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()
	a.settings = s
	ctx = withLogger(ctx, logger.Logger, s)
	return runner(ctx)
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet(&app{out: os.Stdout}))
}
