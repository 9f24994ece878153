// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datemath

import (
	"fmt"
	"time"
)

func checkInterval(op string, iv Interval) error {
	if !iv.valid() {
		return fmt.Errorf("%s: interval %v: %w", op, iv, ErrUnknownInterval)
	}
	return nil
}

func checkUnit(op string, unit Interval) error {
	if !unit.valid() || !unit.IsUnit() {
		return fmt.Errorf("%s: unit %v: %w", op, unit, ErrUnknownInterval)
	}
	return nil
}

func checkInstant(op, name string, d Instant) error {
	if !d.valid {
		return fmt.Errorf("%s: %s: %w", op, name, ErrInvalidArgument)
	}
	return nil
}

func floor(iv Interval, t time.Time) time.Time {
	def := intervals[iv]
	t = truncate(t, def.part)
	for !def.aligned(t) {
		t = shift(t, def.part, -1)
	}
	return t
}

// Floor returns d rounded down to the nearest iv. Every calendar field
// finer than iv is set to its lowest value, and for weekdays, weeks and
// quarters the result is then moved back to the most recent matching
// weekday or quarter start.
func Floor(iv Interval, d Instant) (Instant, error) {
	if err := checkInterval("floor", iv); err != nil {
		return Invalid(), err
	}
	if err := checkInstant("floor", "date", d); err != nil {
		return Invalid(), err
	}
	return At(floor(iv, d.t)), nil
}

// Ceil returns d rounded up to the nearest iv. An Instant that is
// already aligned to iv is returned unchanged.
func Ceil(iv Interval, d Instant) (Instant, error) {
	if err := checkInterval("ceil", iv); err != nil {
		return Invalid(), err
	}
	if err := checkInstant("ceil", "date", d); err != nil {
		return Invalid(), err
	}
	return At(ceil(iv, d.t)), nil
}

func ceil(iv Interval, t time.Time) time.Time {
	f := floor(iv, t)
	if f.Equal(t) {
		return f
	}
	def := intervals[iv]
	return shift(f, def.part, def.coefficient)
}

// Add returns d with n units added. Units of an hour or less are added
// as elapsed time, whereas days, weeks, months and years are added to the
// corresponding calendar field with any overflow carried into coarser
// fields, eg. adding a month to Jan 31 yields Mar 3 (or Mar 2 in a leap
// year).
func Add(unit Interval, n int, d Instant) (Instant, error) {
	if err := checkUnit("add", unit); err != nil {
		return Invalid(), err
	}
	if err := checkInstant("add", "date", d); err != nil {
		return Invalid(), err
	}
	return At(add(unit, n, d.t)), nil
}

func add(unit Interval, n int, t time.Time) time.Time {
	def := intervals[unit]
	return shift(t, def.part, n*def.coefficient)
}
