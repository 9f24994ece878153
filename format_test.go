// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datemath_test

import (
	"fmt"
	"testing"
	"time"

	"cloudeng.io/datemath"
)

func TestFormat(t *testing.T) {
	when := datemath.Date(2012, 9, 27, 22, 56, 0, 555, newYork)
	for _, tc := range []struct {
		template string
		when     datemath.Instant
		want     string
	}{
		{"ddd, mmm d, yyyy", date(2012, 9, 27), "Thu, Sep 27, 2012"},
		{"yyyy yy mmmm mmm mm m dddd ddd dd d S q o ww w N", when,
			"2012 12 September Sep 09 9 Thursday Thu 27 27 th 3 2012 39 39 4"},
		{"HH H hh h MM M ss s l AA A aa a", when,
			"22 22 10 10 56 56 00 0 555 PM P pm p"},
		{"HH H hh h MM M ss s l AA A aa a", datemath.Date(2012, 1, 2, 0, 5, 9, 7, newYork),
			"00 0 12 12 05 5 09 9 007 AM A am a"},
		{"hh:MM aa", datemath.Date(2012, 1, 2, 12, 0, 0, 0, newYork), "12:00 pm"},
		{"[yyyy]: yyyy", date(1985, 1, 1), "yyyy: 1985"},
		{"[[mm]] mm", date(1985, 1, 1), "[mm] 01"},
		{"O P", when, "-0400 -04:00"},
		{"O P", date(2012, 1, 27), "-0500 -05:00"},
		{"O P", datemath.Date(2012, 1, 27, 0, 0, 0, 0, time.UTC), "+0000 +00:00"},
		{"O P", datemath.Date(2012, 1, 27, 0, 0, 0, 0, time.FixedZone("IST", 330*60)), "+0530 +05:30"},
		{"O P", datemath.Date(2012, 1, 27, 0, 0, 0, 0, time.FixedZone("NST", -210*60)), "-0330 -03:30"},
		{"mmmm dddd", date(2014, 12, 7), "December Sunday"},
		{"q", date(2014, 1, 1), "1"},
		{"q", date(2014, 4, 1), "2"},
		{"q", date(2014, 12, 31), "4"},
		{"yy", date(2000, 1, 1), "00"},
		{"-- / -- : !", when, "-- / -- : !"},
	} {
		got, err := datemath.Format(tc.template, tc.when)
		if err != nil {
			t.Errorf("%v: %v", tc.template, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v: got %q, want %q", tc.template, got, tc.want)
		}
	}

	if _, err := datemath.Format("yyyy", datemath.Invalid()); !errorIs(err, datemath.ErrInvalidArgument) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestOrdinalSuffix(t *testing.T) {
	for day, suffix := range map[int]string{
		1: "st", 2: "nd", 3: "rd", 4: "th", 10: "th",
		11: "th", 12: "th", 13: "th", 14: "th",
		20: "th", 21: "st", 22: "nd", 23: "rd", 24: "th",
		30: "th", 31: "st",
	} {
		got, err := datemath.Format("dS", date(2014, 1, day))
		if err != nil {
			t.Fatal(err)
		}
		if want := fmt.Sprintf("%d%s", day, suffix); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestISOWeek(t *testing.T) {
	for _, tc := range []struct {
		when          datemath.Instant
		year, week, n int
	}{
		{date(2012, 9, 27), 2012, 39, 4},
		{date(2012, 1, 1), 2011, 52, 7},
		{date(2012, 1, 2), 2012, 1, 1},
		{datemath.Date(2012, 1, 8, 23, 0, 0, 0, newYork), 2012, 1, 7},
		{date(2012, 1, 9), 2012, 2, 1},
		{date(2015, 1, 1), 2015, 1, 4},
		{date(2015, 12, 31), 2015, 53, 4},
		{date(2016, 1, 1), 2015, 53, 5},
		{date(2016, 1, 3), 2015, 53, 7},
		{date(2016, 1, 4), 2016, 1, 1},
		{date(2018, 1, 1), 2018, 1, 1},
		{date(2018, 12, 31), 2019, 1, 1},
		{date(2020, 12, 31), 2020, 53, 4},
		{date(2021, 1, 3), 2020, 53, 7},
		{date(2021, 1, 4), 2021, 1, 1},
		// The week of the spring daylight saving transition.
		{datemath.Date(2014, 3, 9, 23, 59, 59, 999, newYork), 2014, 10, 7},
		{date(2014, 3, 10), 2014, 11, 1},
	} {
		if got, want := datemath.ISOYear(tc.when), tc.year; got != want {
			t.Errorf("%v: year: got %v, want %v", tc.when, got, want)
		}
		if got, want := datemath.ISOWeek(tc.when), tc.week; got != want {
			t.Errorf("%v: week: got %v, want %v", tc.when, got, want)
		}
		if got, want := datemath.ISOWeekday(tc.when), tc.n; got != want {
			t.Errorf("%v: weekday: got %v, want %v", tc.when, got, want)
		}
	}
}

func TestCustomWeek(t *testing.T) {
	// Weeks start on Sunday and week 1 starts on the first Sunday of the year.
	for _, tc := range []struct {
		when       datemath.Instant
		year, week int
	}{
		{date(2012, 1, 1), 2012, 1},
		{date(2012, 1, 7), 2012, 1},
		{date(2012, 1, 8), 2012, 2},
		{date(2014, 12, 31), 2014, 52},
		{date(2015, 1, 3), 2014, 52},
		{date(2015, 1, 4), 2015, 1},
	} {
		if got, want := datemath.CustomYear(time.Sunday, time.Sunday, tc.when), tc.year; got != want {
			t.Errorf("%v: year: got %v, want %v", tc.when, got, want)
		}
		if got, want := datemath.CustomWeek(time.Sunday, time.Sunday, tc.when), tc.week; got != want {
			t.Errorf("%v: week: got %v, want %v", tc.when, got, want)
		}
	}
	if got, want := datemath.CustomWeekday(time.Sunday, date(2015, 1, 3)), 6; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestISOWeekMatchesTime(t *testing.T) {
	seq, err := datemath.Range(datemath.Day, date(2010, 1, 1), date(2030, 1, 1), 1)
	if err != nil {
		t.Fatal(err)
	}
	for d := range seq {
		// Late in the day so that any error in counting whole days shows up.
		d, _ = datemath.Add(datemath.Hour, 23, d)
		year, week := d.Time().ISOWeek()
		if got, want := datemath.ISOYear(d), year; got != want {
			t.Fatalf("%v: year: got %v, want %v", d, got, want)
		}
		if got, want := datemath.ISOWeek(d), week; got != want {
			t.Fatalf("%v: week: got %v, want %v", d, got, want)
		}
	}
}
