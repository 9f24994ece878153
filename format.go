// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datemath

import (
	"fmt"
	"regexp"
	"strconv"
)

// ISOLayout is the Format template used by Instant.String.
const ISOLayout = "yyyy-mm-ddTHH:MM:ss.lP"

var (
	weekdayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	monthNames   = []string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}

	tokenRe = regexp.MustCompile(`yy(?:yy)?|m{1,4}|d{1,4}|ww?|HH?|hh?|MM?|ss?|AA?|aa?|[SqNolOP]|\[.*?\]`)
)

func pad(n, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}

func ordinalSuffix(n int) string {
	nn := n % 100
	if nn >= 20 {
		nn %= 10
	}
	return [...]string{"th", "st", "nd", "rd", "th"}[min(nn, 4)]
}

func twoDigitYear(year int) string {
	s := strconv.Itoa(year)
	if len(s) <= 2 {
		return ""
	}
	return s[2:min(len(s), 6)]
}

func hour12(h int) int {
	if h%12 == 0 {
		return 12
	}
	return h % 12
}

func meridiem(d Instant, am, pm string) string {
	if d.Hour() < 12 {
		return am
	}
	return pm
}

func isoOffset(minutes int, sep string) string {
	sign := "+"
	if minutes < 0 {
		sign, minutes = "-", -minutes
	}
	return sign + pad(minutes/60, 2) + sep + pad(minutes%60, 2)
}

var formatters = map[string]func(Instant) string{
	// date
	"yyyy": func(d Instant) string { return strconv.Itoa(d.Year()) },
	"yy":   func(d Instant) string { return twoDigitYear(d.Year()) },
	"mmmm": func(d Instant) string { return monthNames[d.Month()-1] },
	"mmm":  func(d Instant) string { return monthNames[d.Month()-1][:3] },
	"mm":   func(d Instant) string { return pad(int(d.Month()), 2) },
	"m":    func(d Instant) string { return strconv.Itoa(int(d.Month())) },
	"dddd": func(d Instant) string { return weekdayNames[d.Weekday()] },
	"ddd":  func(d Instant) string { return weekdayNames[d.Weekday()][:3] },
	"dd":   func(d Instant) string { return pad(d.Day(), 2) },
	"d":    func(d Instant) string { return strconv.Itoa(d.Day()) },
	"S":    func(d Instant) string { return ordinalSuffix(d.Day()) },
	"q":    func(d Instant) string { return strconv.Itoa((int(d.Month())-1)/3 + 1) },
	"o":    func(d Instant) string { return strconv.Itoa(ISOYear(d)) },
	"ww":   func(d Instant) string { return pad(ISOWeek(d), 2) },
	"w":    func(d Instant) string { return strconv.Itoa(ISOWeek(d)) },
	"N":    func(d Instant) string { return strconv.Itoa(ISOWeekday(d)) },
	// time
	"HH": func(d Instant) string { return pad(d.Hour(), 2) },
	"H":  func(d Instant) string { return strconv.Itoa(d.Hour()) },
	"hh": func(d Instant) string { return pad(hour12(d.Hour()), 2) },
	"h":  func(d Instant) string { return strconv.Itoa(hour12(d.Hour())) },
	"MM": func(d Instant) string { return pad(d.Minute(), 2) },
	"M":  func(d Instant) string { return strconv.Itoa(d.Minute()) },
	"ss": func(d Instant) string { return pad(d.Second(), 2) },
	"s":  func(d Instant) string { return strconv.Itoa(d.Second()) },
	"l":  func(d Instant) string { return pad(d.Millisecond(), 3) },
	"AA": func(d Instant) string { return meridiem(d, "AM", "PM") },
	"A":  func(d Instant) string { return meridiem(d, "A", "P") },
	"aa": func(d Instant) string { return meridiem(d, "am", "pm") },
	"a":  func(d Instant) string { return meridiem(d, "a", "p") },
	"O":  func(d Instant) string { return isoOffset(d.OffsetMinutes(), "") },
	"P":  func(d Instant) string { return isoOffset(d.OffsetMinutes(), ":") },
}

// Format returns a textual representation of d according to template.
// The following tokens are replaced, all other text is copied unchanged.
//
//	yyyy  year
//	yy    year, 2 digits
//	mmmm  month name
//	mmm   month name, 3 character abbreviation
//	mm    month number, padded
//	m     month number
//	dddd  weekday name
//	ddd   weekday name, 3 character abbreviation
//	dd    day of month, padded
//	d     day of month
//	S     ordinal suffix for the day of month (st, nd, rd, th)
//	q     quarter
//	o     ISO week-numbering year
//	ww    ISO week number (01-53), padded
//	w     ISO week number (1-53)
//	N     ISO weekday number (1-7)
//	HH    hours (0-23), padded
//	H     hours (0-23)
//	hh    hours (1-12), padded
//	h     hours (1-12)
//	MM    minutes, padded
//	M     minutes
//	ss    seconds, padded
//	s     seconds
//	l     milliseconds, padded
//	AA    AM|PM
//	A     A|P
//	aa    am|pm
//	a     a|p
//	O     UTC offset, ±hhmm
//	P     UTC offset, ±hh:mm
//
// Text enclosed in square brackets is copied without the brackets and
// without token replacement, eg. "[yyyy]" yields "yyyy".
func Format(template string, d Instant) (string, error) {
	if err := checkInstant("format", "date", d); err != nil {
		return "", err
	}
	return format(template, d), nil
}

func format(template string, d Instant) string {
	return tokenRe.ReplaceAllStringFunc(template, func(token string) string {
		if fn, ok := formatters[token]; ok {
			return fn(d)
		}
		return token[1 : len(token)-1]
	})
}
