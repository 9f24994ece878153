// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var isoRe = regexp.MustCompile(`(\d{4})-?(\d\d)-?(\d\d)?T?(\d\d)?:?(\d\d)?:?(\d\d)?(\.\d+)?(Z)?([+\-]\d\d)?:?(\d\d)?`)

const (
	isoYear = iota + 1
	isoMonth
	isoDay
	isoHour
	isoMinute
	isoSecond
	isoFraction
	isoZulu
	isoOffsetHours
	isoOffsetMinutes
)

// Parse parses an ISO-8601 like date/time string. Strings without an
// explicit offset are interpreted in time.Local. See ParseInLocation.
func Parse(s string) Instant {
	return ParseInLocation(s, time.Local)
}

// ParseInLocation parses s, which must contain a date of the form
// yyyy-mm[-dd] (the separators are optional) followed optionally by a
// time of the form Thh:mm:ss[.fff] (again, the separators are optional)
// and an offset of Z or ±hh[:mm]. Missing fields default to the start of
// the month or day. If no offset is specified the date and time are
// interpreted in loc, otherwise the offset is used. The returned Instant
// is presented in loc. The Invalid Instant is returned if s cannot be
// parsed.
func ParseInLocation(s string, loc *time.Location) Instant {
	if loc == nil {
		loc = time.Local
	}
	m := isoRe.FindStringSubmatch(s)
	if m == nil {
		return Invalid()
	}
	num := func(i, def int) int {
		if len(m[i]) == 0 {
			return def
		}
		n, _ := strconv.Atoi(m[i])
		return n
	}
	f := fields{
		year:   num(isoYear, 0),
		month:  num(isoMonth, 0),
		day:    num(isoDay, 1),
		hour:   num(isoHour, 0),
		minute: num(isoMinute, 0),
		second: num(isoSecond, 0),
		ms:     fractionToMillis(m[isoFraction]),
	}
	var t time.Time
	switch {
	case len(m[isoZulu]) > 0:
		t = f.time(time.UTC)
	case len(m[isoOffsetHours]) > 0 || len(m[isoOffsetMinutes]) > 0:
		t = f.time(time.UTC).Add(-time.Duration(offsetMinutes(m[isoOffsetHours], m[isoOffsetMinutes])) * time.Minute)
	default:
		// time.Date resolves the offset in effect at the wall clock time
		// rather than at the same wall clock time in UTC.
		t = f.time(loc)
	}
	return At(t.In(loc))
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Instant {
	i := Parse(s)
	if !i.Valid() {
		panic("datemath: failed to parse " + strconv.Quote(s))
	}
	return i
}

// fractionToMillis converts a fraction of the form .ddd... to milliseconds
// using the first three digits only.
func fractionToMillis(frac string) int {
	if len(frac) < 2 {
		return 0
	}
	digits := frac[1:]
	if len(digits) > 3 {
		digits = digits[:3]
	}
	digits += strings.Repeat("0", 3-len(digits))
	n, _ := strconv.Atoi(digits)
	return n
}

func offsetMinutes(hours, minutes string) int {
	sign := 1
	if strings.HasPrefix(hours, "-") {
		sign = -1
	}
	h, m := 0, 0
	if len(hours) > 0 {
		h, _ = strconv.Atoi(hours[1:])
	}
	if len(minutes) > 0 {
		m, _ = strconv.Atoi(minutes)
	}
	return sign * (h*60 + m)
}
