// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datemath

import "time"

// part is a rung on the ladder of calendar fields, ordered from the finest
// to the coarsest.
type part uint8

const (
	partMillisecond part = iota
	partSecond
	partMinute
	partHour
	partDay
	partMonth
	partYear
)

// fields holds the calendar fields of a time in a given location. Month
// is 1-based as per time.Month.
type fields struct {
	year, month, day, hour, minute, second, ms int
}

func fieldsOf(t time.Time) fields {
	return fields{
		year:   t.Year(),
		month:  int(t.Month()),
		day:    t.Day(),
		hour:   t.Hour(),
		minute: t.Minute(),
		second: t.Second(),
		ms:     t.Nanosecond() / int(time.Millisecond),
	}
}

func (f fields) time(loc *time.Location) time.Time {
	return time.Date(f.year, time.Month(f.month), f.day, f.hour, f.minute, f.second, f.ms*int(time.Millisecond), loc)
}

type partDef struct {
	floor int           // value that represents a 'zeroed' field.
	size  time.Duration // zero for parts whose length varies.
	get   func(*fields) int
	set   func(*fields, int)
}

var parts = [...]partDef{
	partMillisecond: {
		size: time.Millisecond,
		get:  func(f *fields) int { return f.ms },
		set:  func(f *fields, v int) { f.ms = v },
	},
	partSecond: {
		size: time.Second,
		get:  func(f *fields) int { return f.second },
		set:  func(f *fields, v int) { f.second = v },
	},
	partMinute: {
		size: time.Minute,
		get:  func(f *fields) int { return f.minute },
		set:  func(f *fields, v int) { f.minute = v },
	},
	partHour: {
		size: time.Hour,
		get:  func(f *fields) int { return f.hour },
		set:  func(f *fields, v int) { f.hour = v },
	},
	partDay: {
		floor: 1,
		get:   func(f *fields) int { return f.day },
		set:   func(f *fields, v int) { f.day = v },
	},
	partMonth: {
		floor: 1,
		get:   func(f *fields) int { return f.month },
		set:   func(f *fields, v int) { f.month = v },
	},
	partYear: {
		get: func(f *fields) int { return f.year },
		set: func(f *fields, v int) { f.year = v },
	},
}

// truncate sets every part finer than p to its floor value. Parts up to
// an hour are removed as elapsed time so that the result keeps t's offset
// when the wall clock time occurs twice.
func truncate(t time.Time, p part) time.Time {
	f := fieldsOf(t)
	if p <= partHour {
		var d time.Duration
		for i := partMillisecond; i < p; i++ {
			d += time.Duration(parts[i].get(&f)) * parts[i].size
		}
		return t.Add(-d)
	}
	for i := partMillisecond; i < p; i++ {
		parts[i].set(&f, parts[i].floor)
	}
	return f.time(t.Location())
}

// shift adds n to part p of t. Fixed length parts are added as elapsed
// time, the others are added to the calendar field and normalised by
// time.Date.
func shift(t time.Time, p part, n int) time.Time {
	def := parts[p]
	if def.size > 0 {
		return t.Add(time.Duration(n) * def.size)
	}
	f := fieldsOf(t)
	def.set(&f, def.get(&f)+n)
	return f.time(t.Location())
}

// compareFrom compares a and b field by field starting at part p and
// working down to milliseconds.
func compareFrom(p part, a, b fields) int {
	for i := int(p); i >= int(partMillisecond); i-- {
		x, y := parts[i].get(&a), parts[i].get(&b)
		switch {
		case x > y:
			return 1
		case x < y:
			return -1
		}
	}
	return 0
}
