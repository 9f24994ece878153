// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datemath

import "time"

// Week numbering schemes are parameterised by the first day of the week
// and by the weekday whose first occurrence in a calendar year falls in
// week 1 of that year. ISO-8601 uses Monday and Thursday respectively.
// The results of these functions are undefined for the Invalid Instant.

// CustomWeekday returns the 0-based position of d's weekday within a week
// that starts on firstDayOfWeek.
func CustomWeekday(firstDayOfWeek time.Weekday, d Instant) int {
	return customWeekday(firstDayOfWeek, d.Weekday())
}

func customWeekday(firstDayOfWeek, wd time.Weekday) int {
	return (int(wd) + 7 - int(firstDayOfWeek)) % 7
}

// civilDate returns midnight UTC for d's calendar date so that day
// arithmetic is not affected by changes in UTC offset.
func civilDate(d Instant) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// CustomYear returns the week-numbering year that d falls in.
func CustomYear(firstDayOfWeek, week1Weekday time.Weekday, d Instant) int {
	adjust := int(week1Weekday) - int(firstDayOfWeek)
	return civilDate(d).AddDate(0, 0, adjust-CustomWeekday(firstDayOfWeek, d)).Year()
}

// CustomWeek returns the week number, starting at 1, of d within its
// week-numbering year.
func CustomWeek(firstDayOfWeek, week1Weekday time.Weekday, d Instant) int {
	adjust := int(week1Weekday) - int(firstDayOfWeek)
	jan1 := time.Date(CustomYear(firstDayOfWeek, week1Weekday, d), time.January, 1, 0, 0, 0, 0, time.UTC)
	jan1Weekday := customWeekday(firstDayOfWeek, jan1.Weekday())
	days := int(civilDate(d).Sub(jan1) / (24 * time.Hour))
	week := (days + jan1Weekday + 1 + 6) / 7
	if jan1Weekday > adjust {
		// Jan 1 belongs to the last week of the previous year.
		week--
	}
	return week
}

// ISOWeekday returns the ISO-8601 weekday of d, 1 for Monday through to 7
// for Sunday.
func ISOWeekday(d Instant) int {
	return CustomWeekday(time.Monday, d) + 1
}

// ISOYear returns the ISO-8601 week-numbering year of d.
func ISOYear(d Instant) int {
	return CustomYear(time.Monday, time.Thursday, d)
}

// ISOWeek returns the ISO-8601 week number of d.
func ISOWeek(d Instant) int {
	return CustomWeek(time.Monday, time.Thursday, d)
}
