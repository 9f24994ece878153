// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datemath

import (
	"cloudeng.io/errors"
)

var (
	// ErrUnknownInterval is returned when an Interval is not one of the
	// recognised, closed set of intervals or when an Interval that is not
	// a unit is supplied to an operation that requires a unit.
	ErrUnknownInterval = errors.New("unrecognised interval")

	// ErrInvalidArgument is returned when an argument has an invalid value,
	// such as an Invalid Instant.
	ErrInvalidArgument = errors.New("invalid argument")
)
