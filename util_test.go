// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datemath_test

import (
	"time"
	_ "time/tzdata"

	"cloudeng.io/datemath"
	"cloudeng.io/errors"
)

// newYork is used as the local location for all tests so that daylight
// saving transitions (2014-03-09 and 2014-11-02) are deterministic.
var newYork = func() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
	return loc
}()

func parse(s string) datemath.Instant {
	d := datemath.ParseInLocation(s, newYork)
	if !d.Valid() {
		panic("failed to parse: " + s)
	}
	return d
}

func date(y int, m time.Month, d int) datemath.Instant {
	return datemath.Date(y, m, d, 0, 0, 0, 0, newYork)
}

func parseAll(dates ...string) []datemath.Instant {
	r := make([]datemath.Instant, len(dates))
	for i, d := range dates {
		r[i] = parse(d)
	}
	return r
}

func equalInstants(a, b []datemath.Instant) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func errorIs(err, target error) bool {
	return err != nil && errors.Is(err, target)
}

// fallBack returns the Instant at the specified UTC time on 2014-11-02,
// displayed in New York. Between 05:00 and 06:00 UTC the wall clock reads
// 01:xx EDT, and between 06:00 and 07:00 UTC it reads 01:xx EST again.
func fallBack(hour, minute, second int) datemath.Instant {
	t := time.Date(2014, 11, 2, hour, minute, second, 0, time.UTC)
	return datemath.FromUnixMilli(t.UnixMilli(), newYork)
}
