// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datemath

import (
	"fmt"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Interval represents one of a closed set of calendar intervals. The
// first eight (Millisecond to Year) are also units and may be used with
// Add and Diff; the remainder may only be used for rounding and ranges.
type Interval uint8

const (
	Millisecond Interval = iota
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
	Quarter
	numIntervals
)

// target identifies the value a rounded Interval must be aligned to.
type target uint8

const (
	noTarget target = iota
	weekdayTarget
	monthTarget
)

type intervalDef struct {
	name        string
	part        part
	coefficient int // number of parts that make up one interval.
	target      target
	values      []int // weekday (0 = Sunday) or month (1-based) values.
	unit        Interval
	unitCoeff   int // number of units used to step through a range.
}

var intervals = [numIntervals]intervalDef{
	Millisecond: {name: "ms", part: partMillisecond, coefficient: 1, unit: Millisecond, unitCoeff: 1},
	Second:      {name: "second", part: partSecond, coefficient: 1, unit: Second, unitCoeff: 1},
	Minute:      {name: "minute", part: partMinute, coefficient: 1, unit: Minute, unitCoeff: 1},
	Hour:        {name: "hour", part: partHour, coefficient: 1, unit: Hour, unitCoeff: 1},
	Day:         {name: "day", part: partDay, coefficient: 1, unit: Day, unitCoeff: 1},
	Week:        {name: "week", part: partDay, coefficient: 7, target: weekdayTarget, values: []int{1}, unit: Week, unitCoeff: 1},
	Month:       {name: "month", part: partMonth, coefficient: 1, unit: Month, unitCoeff: 1},
	Year:        {name: "year", part: partYear, coefficient: 1, unit: Year, unitCoeff: 1},
	Monday:      {name: "monday", part: partDay, coefficient: 7, target: weekdayTarget, values: []int{1}, unit: Week, unitCoeff: 1},
	Tuesday:     {name: "tuesday", part: partDay, coefficient: 7, target: weekdayTarget, values: []int{2}, unit: Week, unitCoeff: 1},
	Wednesday:   {name: "wednesday", part: partDay, coefficient: 7, target: weekdayTarget, values: []int{3}, unit: Week, unitCoeff: 1},
	Thursday:    {name: "thursday", part: partDay, coefficient: 7, target: weekdayTarget, values: []int{4}, unit: Week, unitCoeff: 1},
	Friday:      {name: "friday", part: partDay, coefficient: 7, target: weekdayTarget, values: []int{5}, unit: Week, unitCoeff: 1},
	Saturday:    {name: "saturday", part: partDay, coefficient: 7, target: weekdayTarget, values: []int{6}, unit: Week, unitCoeff: 1},
	Sunday:      {name: "sunday", part: partDay, coefficient: 7, target: weekdayTarget, values: []int{0}, unit: Week, unitCoeff: 1},
	Quarter:     {name: "quarter", part: partMonth, coefficient: 3, target: monthTarget, values: []int{1, 4, 7, 10}, unit: Month, unitCoeff: 3},
}

var intervalNames = func() map[string]Interval {
	m := make(map[string]Interval, numIntervals)
	for i, def := range intervals {
		m[def.name] = Interval(i)
	}
	return m
}()

// ParseInterval returns the Interval with the specified name. Names are
// case sensitive.
func ParseInterval(name string) (Interval, error) {
	iv, ok := intervalNames[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownInterval)
	}
	return iv, nil
}

// ParseUnit is like ParseInterval but only accepts units.
func ParseUnit(name string) (Interval, error) {
	iv, err := ParseInterval(name)
	if err != nil {
		return 0, err
	}
	if !iv.IsUnit() {
		return 0, fmt.Errorf("%q is not a unit: %w", name, ErrUnknownInterval)
	}
	return iv, nil
}

// Intervals returns all of the supported Intervals.
func Intervals() []Interval {
	r := make([]Interval, numIntervals)
	for i := range r {
		r[i] = Interval(i)
	}
	return r
}

// Units returns the Intervals that are also units.
func Units() []Interval {
	return slices.DeleteFunc(Intervals(), func(iv Interval) bool { return !iv.IsUnit() })
}

func (iv Interval) valid() bool {
	return iv < numIntervals
}

// IsUnit returns true if iv may be used with Add and Diff.
func (iv Interval) IsUnit() bool {
	return iv <= Year
}

// String implements fmt.Stringer.
func (iv Interval) String() string {
	if !iv.valid() {
		return fmt.Sprintf("Interval(%d)", uint8(iv))
	}
	return intervals[iv].name
}

// MarshalText implements encoding.TextMarshaler.
func (iv Interval) MarshalText() ([]byte, error) {
	if !iv.valid() {
		return nil, fmt.Errorf("%v: %w", iv, ErrUnknownInterval)
	}
	return []byte(iv.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (iv *Interval) UnmarshalText(text []byte) error {
	v, err := ParseInterval(string(text))
	if err != nil {
		return err
	}
	*iv = v
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (iv *Interval) UnmarshalYAML(node *yaml.Node) error {
	return iv.UnmarshalText([]byte(node.Value))
}

// Set implements flag.Value.
func (iv *Interval) Set(v string) error {
	return iv.UnmarshalText([]byte(v))
}

func (def intervalDef) aligned(t time.Time) bool {
	switch def.target {
	case weekdayTarget:
		return slices.Contains(def.values, int(t.Weekday()))
	case monthTarget:
		return slices.Contains(def.values, int(t.Month()))
	}
	return true
}
