// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"cloudeng.io/datemath"
	"cloudeng.io/errors"
)

func run(args ...string) (string, error) {
	out := &strings.Builder{}
	cmdSet := newCommandSet(&app{out: out})
	err := cmdSet.DispatchWithArgs(context.Background(), "datecalc", args...)
	return out.String(), err
}

func TestCommands(t *testing.T) {
	ny := "--location=America/New_York"
	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{ny, "floor", "--interval=week", "2014-06-08T16:59:55.555"},
			"2014-06-02T00:00:00.000-04:00\n"},
		{[]string{ny, "floor", "2014-06-08T16:59:55.555", "2014-01-08T16:59:55.555"},
			"2014-06-08T00:00:00.000-04:00\n2014-01-08T00:00:00.000-05:00\n"},
		{[]string{ny, "ceil", "--interval=quarter", "2014-06-08T16:59:55.555"},
			"2014-07-01T00:00:00.000-04:00\n"},
		{[]string{ny, "add", "hour", "1", "2014-03-09T01:00"},
			"2014-03-09T03:00:00.000-04:00\n"},
		{[]string{ny, "add", "month", "-3", "2014-06-08T16:59"},
			"2014-03-08T16:59:00.000-04:00\n"},
		{[]string{ny, "diff", "hour", "2014-03-09", "2014-03-10"}, "23\n"},
		{[]string{ny, "diff", "day", "2014-03-09", "2014-03-10"}, "1\n"},
		{[]string{ny, "diff", "year", "2018-06-08T16:59:55.554", "2014-06-08T16:59:55.555"}, "-3\n"},
		{[]string{ny, "--layout=yyyy-mm-dd", "range", "--interval=monday", "--step=2", "2014-06-01", "2014-07-01"},
			"2014-06-02\n2014-06-16\n2014-06-30\n"},
		{[]string{ny, "--layout=HH:MM", "range", "--interval=hour", "--step=4", "2014-05-31T23:45", "2014-06-01T12:00"},
			"00:00\n04:00\n08:00\n"},
		{[]string{ny, "format", "ddd, mmm d, yyyy [at] h:MMaa", "2012-09-27T22:56"},
			"Thu, Sep 27, 2012 at 10:56pm\n"},
		{[]string{ny, "format", "O", "2012-09-27T22:56Z"}, "-0400\n"},
		{[]string{"validate", "2004-02-29", "1/1/2000"},
			"2004-02-29: ok\n1/1/2000: ok\n"},
		{[]string{ny, "isoweek", "2016-01-01", "2018-12-31"},
			"2016-01-01: 2015-W53-5\n2018-12-31: 2019-W01-1\n"},
	} {
		got, err := run(tc.args...)
		if err != nil {
			t.Errorf("%v: %v", tc.args, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v: got %q, want %q", tc.args, got, tc.want)
		}
	}
}

func TestIntervalsCommand(t *testing.T) {
	out, err := run("intervals")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if got, want := len(lines), len(datemath.Intervals()); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, want := range []string{"ms\tunit", "year\tunit", "monday\tinterval", "quarter\tinterval"} {
		if !strings.Contains(out, want+"\n") {
			t.Errorf("%q does not contain %q", out, want)
		}
	}
}

func TestCommandErrors(t *testing.T) {
	assertError := func(target error, args ...string) {
		_, err := run(args...)
		if err == nil || (target != nil && !errors.Is(err, target)) {
			_, _, line, _ := runtime.Caller(1)
			t.Errorf("line %v: %v: unexpected or missing error: %v", line, args, err)
		}
	}
	assertError(datemath.ErrUnknownInterval, "floor", "--interval=fortnight", "2014-06-08")
	assertError(datemath.ErrUnknownInterval, "add", "quarter", "1", "2014-06-08")
	assertError(datemath.ErrUnknownInterval, "diff", "monday", "2014-06-08", "2014-06-09")
	assertError(datemath.ErrInvalidArgument, "add", "day", "one", "2014-06-08")
	assertError(datemath.ErrInvalidArgument, "diff", "day", "2014-06-08", "yesterday")
	assertError(datemath.ErrInvalidArgument, "isoweek", "2014-06-08", "not-a-date")
	assertError(nil, "--location=Nowhere/Special", "floor", "2014-06-08")
	assertError(nil, "--log-format=xml", "intervals")
	assertError(nil, "add", "day", "1")

	// Valid dates are still displayed when others are invalid.
	out, err := run("validate", "2004-02-29", "1900-02-29", "2/30/2000")
	if !errors.Is(err, datemath.ErrInvalidArgument) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if got, want := out, "2004-02-29: ok\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	for _, s := range []string{"1900-02-29", "2/30/2000"} {
		if err == nil || !strings.Contains(err.Error(), s) {
			t.Errorf("%v: missing from %v", s, err)
		}
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "datecalc.log")
	config := filepath.Join(dir, "config.yaml")
	yml := `location: America/New_York
layout: yyyy-mm-dd
interval: month
step: 2
logging:
  level: 3
  format: json
  file: ` + logFile + "\n"
	if err := os.WriteFile(config, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run("--config="+config, "range", "2014-01-15", "2014-07-01")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := out, "2014-02-01\n2014-04-01\n2014-06-01\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	logged, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"msg":"range"`, `"count":3`, `"location":"America/New_York"`} {
		if !strings.Contains(string(logged), want) {
			t.Errorf("%s does not contain %s", logged, want)
		}
	}

	// Flags override the config file.
	out, err = run("--config="+config, "--layout=yyyy-mm-dd HH:MM P", "range", "--interval=quarter", "--step=1", "2014-01-15", "2014-07-01")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := out, "2014-04-01 00:00 -04:00\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	out, err = run("--config="+config, "floor", "2014-06-08T16:59")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := out, "2014-06-01\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	for _, bad := range []string{
		"location: America/New_York\nunknown: field\n",
		"interval: fortnight\n",
		"logging:\n  format: xml\n",
	} {
		if err := os.WriteFile(config, []byte(bad), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := run("--config="+config, "intervals"); err == nil {
			t.Errorf("%q: expected an error", bad)
		}
	}
}
