// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cloudeng.io/datemath"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// parseDate parses an ISO-8601 date in the configured location, the
// special value "now" refers to the current time.
func (a *app) parseDate(arg string) (datemath.Instant, error) {
	if arg == "now" {
		return datemath.At(time.Now().In(a.settings.location)), nil
	}
	d := datemath.ParseInLocation(arg, a.settings.location)
	if !d.Valid() {
		return d, fmt.Errorf("%q: failed to parse date: %w", arg, datemath.ErrInvalidArgument)
	}
	return d, nil
}

func (a *app) interval(name string) (datemath.Interval, error) {
	if len(name) == 0 {
		return a.settings.interval, nil
	}
	return datemath.ParseInterval(name)
}

func (a *app) print(d datemath.Instant) error {
	s, err := datemath.Format(a.settings.layout, d)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, s)
	return err
}

type roundFunc func(datemath.Interval, datemath.Instant) (datemath.Instant, error)

func (a *app) round(ctx context.Context, fn roundFunc, values any, args []string) error {
	iv, err := a.interval(values.(*intervalFlags).Interval)
	if err != nil {
		return err
	}
	errs := &errors.M{}
	for _, arg := range args {
		d, err := a.parseDate(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		r, err := fn(iv, d)
		if err != nil {
			errs.Append(err)
			continue
		}
		ctxlog.Debug(ctx, "rounded", "interval", iv.String(), "from", d.String(), "to", r.String())
		errs.Append(a.print(r))
	}
	return errs.Err()
}

func (a *app) floor(ctx context.Context, values any, args []string) error {
	return a.round(ctx, datemath.Floor, values, args)
}

func (a *app) ceil(ctx context.Context, values any, args []string) error {
	return a.round(ctx, datemath.Ceil, values, args)
}

func (a *app) add(_ context.Context, _ any, args []string) error {
	unit, err := datemath.ParseUnit(args[0])
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%q: not an integer: %w", args[1], datemath.ErrInvalidArgument)
	}
	d, err := a.parseDate(args[2])
	if err != nil {
		return err
	}
	r, err := datemath.Add(unit, n, d)
	if err != nil {
		return err
	}
	return a.print(r)
}

func (a *app) diff(_ context.Context, _ any, args []string) error {
	unit, err := datemath.ParseUnit(args[0])
	if err != nil {
		return err
	}
	d1, err := a.parseDate(args[1])
	if err != nil {
		return err
	}
	d2, err := a.parseDate(args[2])
	if err != nil {
		return err
	}
	n, err := datemath.Diff(unit, d1, d2)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, n)
	return err
}

func (a *app) rangeCmd(ctx context.Context, values any, args []string) error {
	fv := values.(*rangeFlags)
	iv, err := a.interval(fv.Interval)
	if err != nil {
		return err
	}
	step := a.settings.step
	if fv.Step > 0 {
		step = fv.Step
	}
	d1, err := a.parseDate(args[0])
	if err != nil {
		return err
	}
	d2, err := a.parseDate(args[1])
	if err != nil {
		return err
	}
	seq, err := datemath.Range(iv, d1, d2, step)
	if err != nil {
		return err
	}
	n := 0
	for d := range seq {
		if err := a.print(d); err != nil {
			return err
		}
		n++
	}
	ctxlog.Info(ctx, "range", "interval", iv.String(), "step", step, "count", n)
	return nil
}

func (a *app) format(_ context.Context, _ any, args []string) error {
	d, err := a.parseDate(args[1])
	if err != nil {
		return err
	}
	s, err := datemath.Format(args[0], d)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, s)
	return err
}

func (a *app) validate(_ context.Context, _ any, args []string) error {
	errs := &errors.M{}
	for _, arg := range args {
		if !datemath.IsDateString(arg) {
			errs.Append(fmt.Errorf("%q: not a valid date: %w", arg, datemath.ErrInvalidArgument))
			continue
		}
		fmt.Fprintf(a.out, "%s: ok\n", arg)
	}
	return errs.Err()
}

func (a *app) isoweek(_ context.Context, _ any, args []string) error {
	errs := &errors.M{}
	for _, arg := range args {
		d, err := a.parseDate(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		fmt.Fprintf(a.out, "%s: %d-W%02d-%d\n", arg, datemath.ISOYear(d), datemath.ISOWeek(d), datemath.ISOWeekday(d))
	}
	return errs.Err()
}

func (a *app) intervals(_ context.Context, _ any, _ []string) error {
	for _, iv := range datemath.Intervals() {
		kind := "interval"
		if iv.IsUnit() {
			kind = "unit"
		}
		fmt.Fprintf(a.out, "%s\t%s\n", iv, kind)
	}
	return nil
}
