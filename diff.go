// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datemath

import "time"

const msPerDay = int64(24 * time.Hour / time.Millisecond)

// Diff returns the number of whole units from d1 to d2. The result is
// positive if d2 is after d1 and negative if it is before, partial units
// are discarded in the direction of d1.
//
// Units of an hour or less count elapsed time. Days and weeks count
// elapsed time corrected for any change in UTC offset between d1 and d2,
// so that a day that spans a daylight saving transition still counts as
// one day. Months and years count calendar months, excluding a final
// month that has not yet been completed. Calendar fields are evaluated
// in d1's location.
func Diff(unit Interval, d1, d2 Instant) (int64, error) {
	if err := checkUnit("diff", unit); err != nil {
		return 0, err
	}
	if err := checkInstant("diff", "date1", d1); err != nil {
		return 0, err
	}
	if err := checkInstant("diff", "date2", d2); err != nil {
		return 0, err
	}
	t1 := d1.t
	t2 := d2.t.In(t1.Location())
	forward := t1.Before(t2)
	def := intervals[unit]
	switch {
	case def.part < partDay:
		ms := t2.UnixMilli() - t1.UnixMilli()
		return divToward(ms, parts[def.part].size.Milliseconds(), forward), nil
	case def.part == partDay:
		return divToward(elapsedDays(t1, t2), msPerDay*int64(def.coefficient), forward), nil
	}
	months := diffMonths(t1, t2)
	if unit == Year {
		return divToward(months, 12, forward), nil
	}
	return divToward(months, 1, forward), nil
}

// elapsedDays returns the milliseconds between t1 and t2 adjusted so that
// every calendar day is exactly 24 hours long.
func elapsedDays(t1, t2 time.Time) int64 {
	_, o1 := t1.Zone()
	_, o2 := t2.Zone()
	return t2.UnixMilli() - t1.UnixMilli() + int64(o2-o1)*1000
}

func diffMonths(t1, t2 time.Time) int64 {
	f1, f2 := fieldsOf(t1), fieldsOf(t2)
	remainder := compareFrom(partDay, f2, f1)
	months := int64(f2.year-f1.year)*12 + int64(f2.month-f1.month)
	// Drop an incomplete final month, ie. one where the day and time of
	// day of t2 have not yet caught up with those of t1.
	if sign(-months) == remainder {
		months += int64(remainder)
	}
	return months
}

func sign(n int64) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// divToward divides n by d rounding towards negative infinity if forward
// is true, and towards positive infinity otherwise.
func divToward(n, d int64, forward bool) int64 {
	q, r := n/d, n%d
	if r == 0 {
		return q
	}
	if forward && (r < 0) != (d < 0) {
		return q - 1
	}
	if !forward && (r < 0) == (d < 0) {
		return q + 1
	}
	return q
}
