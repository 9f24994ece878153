// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datemath

import (
	"regexp"
	"strconv"

	"cloudeng.io/datetime"
)

// IsInstant returns true if v is an Instant, or a non-nil pointer to one,
// that is valid. If acceptInvalid is true then the Invalid Instant is also
// accepted.
func IsInstant(v any, acceptInvalid bool) bool {
	switch i := v.(type) {
	case Instant:
		return i.valid || acceptInvalid
	case *Instant:
		return i != nil && (i.valid || acceptInvalid)
	}
	return false
}

type ymdFormat struct {
	re      *regexp.Regexp
	y, m, d int
}

var dateStringFormats = []ymdFormat{
	{re: regexp.MustCompile(`^(\d{4})-([012]\d)-([0123]\d)$`), y: 1, m: 2, d: 3},
	{re: regexp.MustCompile(`^(\d{4})([012]\d)([0123]\d)$`), y: 1, m: 2, d: 3},
	{re: regexp.MustCompile(`^([01]?\d)/([0123]?\d)/(\d{4})$`), y: 3, m: 1, d: 2},
}

func (f ymdFormat) extract(s string) (year, month, day int, ok bool) {
	m := f.re.FindStringSubmatch(s)
	if m == nil {
		return
	}
	// The expressions only match digits so these conversions cannot fail.
	year, _ = strconv.Atoi(m[f.y])
	month, _ = strconv.Atoi(m[f.m])
	day, _ = strconv.Atoi(m[f.d])
	return year, month, day, true
}

// IsDateString returns true if s represents a valid calendar date in one
// of the formats yyyy-mm-dd, yyyymmdd or m/d/yyyy.
func IsDateString(s string) bool {
	for _, f := range dateStringFormats {
		if y, m, d, ok := f.extract(s); ok {
			return isValidYMD(y, m, d)
		}
	}
	return false
}

func isValidYMD(year, month, day int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= int(datetime.DaysInMonth(year, datetime.Month(month)))
}
