// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datemath

import "iter"

// Range returns an iterator over every step'th iv boundary that is on or
// after d1 and before d2. The first value yielded is Ceil(iv, d1) and
// subsequent values are obtained by adding step multiples of the unit
// that underlies iv, ie. week for weekdays and three months for quarters.
// A step of less than 1 is treated as 1. The iterator may be used any
// number of times.
func Range(iv Interval, d1, d2 Instant, step int) (iter.Seq[Instant], error) {
	if err := checkInterval("range", iv); err != nil {
		return nil, err
	}
	if err := checkInstant("range", "date1", d1); err != nil {
		return nil, err
	}
	if err := checkInstant("range", "date2", d2); err != nil {
		return nil, err
	}
	step = max(1, step)
	def := intervals[iv]
	n := def.unitCoeff * step
	end := d2.t
	return func(yield func(Instant) bool) {
		for t := ceil(iv, d1.t); t.Before(end); t = add(def.unit, n, t) {
			if !yield(At(t)) {
				return
			}
		}
	}, nil
}
