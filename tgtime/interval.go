/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package tgtime

import (
	"strconv"
	"strings"
	"time"
)

/*
Interval is a parsed step used by window arithmetic. Non-aligned
intervals are a raw millisecond delta; aligned intervals (month/year
terms present) must be advanced with calendar arithmetic in UTC.
*/
type Interval struct {
	Millis  int64 // raw millisecond delta (meaningful when !Aligned, or as the non-calendar remainder when Aligned)
	Months  int   // calendar months to add (years are folded in as 12*years)
	Aligned bool  // true if this interval requires calendar addition
}

/*
ParseInterval parses a duration expression made of one or more
whitespace- or comma-separated "<n> <unit>" terms, e.g. "1 day, 12 hours"
or "2 weeks". Negative terms are rejected.
*/
func ParseInterval(s string) (Interval, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Interval{}, &ErrParseTime{Input: s}
	}

	terms := splitTerms(s)
	if len(terms) == 0 {
		return Interval{}, &ErrParseTime{Input: s}
	}

	var iv Interval

	for _, term := range terms {
		m := durationTermRe.FindStringSubmatch(term)
		if m == nil {
			return Interval{}, &ErrParseTime{Input: s}
		}

		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return Interval{}, &ErrParseTime{Input: s}
		}
		if n < 0 {
			return Interval{}, &ErrParseTime{Input: s}
		}

		unit := singularUnit(m[2])

		switch unit {
		case "month":
			iv.Months += int(n)
			iv.Aligned = true
		case "year":
			iv.Months += int(n) * 12
			iv.Aligned = true
		default:
			iv.Millis += n * unitMillis[unit]
		}
	}

	return iv, nil
}

/*
Add advances t by this interval. Non-aligned intervals are raw addition.
Aligned intervals (carrying month/year terms) perform calendar addition
in UTC, then add any remaining raw millisecond component. Saturates at
math.MaxInt64 instead of overflowing.
*/
func (iv Interval) Add(t int64) int64 {
	const maxInt64 = int64(1<<63 - 1)

	if !iv.Aligned {
		return saturatingAdd(t, iv.Millis)
	}

	base := time.UnixMilli(t).UTC()
	advanced := base.AddDate(0, iv.Months, 0)
	result := advanced.UnixMilli()

	if iv.Millis != 0 {
		result = saturatingAdd(result, iv.Millis)
	}

	if result < t {
		// calendar arithmetic should never move time backwards for a
		// non-negative interval; guard against overflow wraparound
		return maxInt64
	}

	return result
}

/*
Sub is the inverse of Add: it moves t backwards by this interval. For
aligned intervals this subtracts calendar months before the raw
millisecond remainder; composing Add then Sub on a month/year interval
is not guaranteed to round-trip exactly across months of differing
length (e.g. 2020-01-31 + 1 month - 1 month lands on 2020-02-02, not
2020-01-31),
the same caveat time.Time.AddDate carries.
*/
func (iv Interval) Sub(t int64) int64 {
	if !iv.Aligned {
		return saturatingAdd(t, -iv.Millis)
	}

	base := time.UnixMilli(t).UTC()
	reduced := base.AddDate(0, -iv.Months, 0)
	result := reduced.UnixMilli()

	if iv.Millis != 0 {
		result = saturatingAdd(result, -iv.Millis)
	}

	return result
}

func saturatingAdd(a, b int64) int64 {
	const maxInt64 = int64(1<<63 - 1)

	if b > 0 && a > maxInt64-b {
		return maxInt64
	}
	if b < 0 && a < -maxInt64+(-b) {
		return -maxInt64
	}
	return a + b
}

/*
IsZero reports whether the interval carries no step at all.
*/
func (iv Interval) IsZero() bool {
	return iv.Millis == 0 && iv.Months == 0
}
