// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datemath provides validation, parsing, formatting and interval
// based arithmetic for points in time with millisecond precision.
//
// All calendar computations are performed in the *time.Location of the
// Instant being operated on, or, for operations on two Instants, in the
// location of the first. Parse interprets strings without an explicit
// offset in time.Local, ParseInLocation allows the location to be
// supplied explicitly.
//
// Arithmetic is expressed in terms of a closed set of Intervals:
//
//	units:     ms, second, minute, hour, day, week, month, year
//	intervals: the units plus monday ... sunday and quarter
//
// Floor and Ceil round to any Interval, Add and Diff accept units only
// and Range yields every aligned Interval boundary between two Instants.
//
// Operations never modify their arguments. An Instant that failed to parse
// is Invalid and is rejected with ErrInvalidArgument by all operations other
// than the IsInstant predicate.
package datemath
