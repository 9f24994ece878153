// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datemath

import (
	"fmt"
	"time"
)

// Instant represents a point in time with millisecond precision. The zero
// value is the Invalid Instant. Instants are immutable.
type Instant struct {
	t     time.Time
	valid bool
}

// Invalid returns the Invalid Instant.
func Invalid() Instant {
	return Instant{}
}

// At returns the Instant for t, truncated to millisecond precision and
// retaining t's location.
func At(t time.Time) Instant {
	return Instant{t: t.Truncate(time.Millisecond), valid: true}
}

// Date returns the Instant for the specified calendar fields in loc. As
// for time.Date, values outside of their usual ranges are normalised,
// eg. a month of 13 refers to January of the following year. A nil loc
// is treated as time.Local.
func Date(year int, month time.Month, day, hour, minute, second, ms int, loc *time.Location) Instant {
	if loc == nil {
		loc = time.Local
	}
	return At(time.Date(year, month, day, hour, minute, second, ms*int(time.Millisecond), loc))
}

// FromUnixMilli returns the Instant for the specified number of
// milliseconds since the Unix epoch, presented in loc.
func FromUnixMilli(ms int64, loc *time.Location) Instant {
	if loc == nil {
		loc = time.Local
	}
	return At(time.UnixMilli(ms).In(loc))
}

// Valid returns true if i is not the Invalid Instant.
func (i Instant) Valid() bool {
	return i.valid
}

// Time returns the time.Time for i. The zero time.Time is returned for
// the Invalid Instant.
func (i Instant) Time() time.Time {
	return i.t
}

// Location returns the location i is presented in.
func (i Instant) Location() *time.Location {
	return i.t.Location()
}

// In returns i presented in loc.
func (i Instant) In(loc *time.Location) Instant {
	if !i.valid {
		return i
	}
	return Instant{t: i.t.In(loc), valid: true}
}

func (i Instant) Year() int { return i.t.Year() }
func (i Instant) Month() time.Month { return i.t.Month() }
func (i Instant) Day() int { return i.t.Day() }
func (i Instant) Hour() int { return i.t.Hour() }
func (i Instant) Minute() int { return i.t.Minute() }
func (i Instant) Second() int { return i.t.Second() }
func (i Instant) Millisecond() int { return i.t.Nanosecond() / int(time.Millisecond) }
func (i Instant) Weekday() time.Weekday { return i.t.Weekday() }
func (i Instant) UnixMilli() int64 { return i.t.UnixMilli() }
func (i Instant) Sub(o Instant) time.Duration { return i.t.Sub(o.t) }

// OffsetMinutes returns the offset of i's location from UTC, in minutes
// east of UTC, at i.
func (i Instant) OffsetMinutes() int {
	_, off := i.t.Zone()
	return off / 60
}

// Equal returns true if i and o represent the same point in time. It
// always returns false if either is Invalid.
func (i Instant) Equal(o Instant) bool {
	return i.valid && o.valid && i.t.Equal(o.t)
}

// Before returns true if i is before o. It always returns false if either
// is Invalid.
func (i Instant) Before(o Instant) bool {
	return i.valid && o.valid && i.t.Before(o.t)
}

// After returns true if i is after o. It always returns false if either
// is Invalid.
func (i Instant) After(o Instant) bool {
	return i.valid && o.valid && i.t.After(o.t)
}

// Compare returns -1, 0 or +1 as per time.Time.Compare. Invalid Instants
// sort before all valid ones.
func (i Instant) Compare(o Instant) int {
	switch {
	case !i.valid && !o.valid:
		return 0
	case !i.valid:
		return -1
	case !o.valid:
		return 1
	}
	return i.t.Compare(o.t)
}

// String implements fmt.Stringer using the layout yyyy-mm-ddTHH:MM:ss.lP.
func (i Instant) String() string {
	if !i.valid {
		return "Invalid Instant"
	}
	return format(ISOLayout, i)
}

// ToUTC returns d presented in UTC, ie. with calendar fields that are
// those of d in UTC and a zero offset.
func ToUTC(d Instant) (Instant, error) {
	if !d.valid {
		return Invalid(), fmt.Errorf("to utc: date: %w", ErrInvalidArgument)
	}
	return d.In(time.UTC), nil
}
