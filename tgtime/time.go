/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package tgtime parses the time and interval literals accepted by the graph
store and the view algebra, and provides calendar-aware interval
arithmetic.

Time is always an int64 in caller-defined but uniform units (typically
milliseconds since epoch). Three literal shapes are accepted:

  - a plain integer ("1700000000000")
  - an ISO-like timestamp, space or "T" separated, with optional
    fractional seconds ("2020-06-06 00:00:00.500")
  - a duration expression summing unit terms ("1 day, 2 hours")

ParseInterval additionally marks month/year terms as calendar-aligned,
which changes how Add() advances a time value.
*/
package tgtime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/krotik/common/timeutil"
)

/*
ErrParseTime is returned when a time or interval literal cannot be parsed.
*/
type ErrParseTime struct {
	Input string
}

func (e *ErrParseTime) Error() string {
	return fmt.Sprintf("tgtime: could not parse time value: %q", e.Input)
}

var isoLayouts = []string{
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

/*
ParseTime parses a time literal using the three accepted shapes: a plain
integer, an ISO-like timestamp, or a duration expression (interpreted as
an offset from zero). Callers that need a caller-supplied parser instead
should not use this function.
*/
func ParseTime(s string) (int64, error) {
	s = strings.TrimSpace(s)

	if s == "" {
		return 0, &ErrParseTime{Input: s}
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli(), nil
		}
	}

	if iv, err := ParseInterval(s); err == nil {
		return iv.Millis, nil
	}

	return 0, &ErrParseTime{Input: s}
}

/*
FormatTime renders a millisecond time value as a human readable string
in the given IANA location (e.g. "UTC", "Europe/Lisbon").
*/
func FormatTime(t int64, loc string) (string, error) {
	return timeutil.TimestampString(strconv.FormatInt(t, 10), loc)
}

var durationTermRe = regexp.MustCompile(`(?i)^\s*(-?\d+)\s*(nanoseconds?|microseconds?|milliseconds?|seconds?|minutes?|hours?|days?|weeks?|months?|years?)\s*$`)

var unitMillis = map[string]int64{
	"nanosecond":  0, // sub-millisecond; rounded to zero contribution
	"microsecond": 0,
	"millisecond": 1,
	"second":      1000,
	"minute":      60 * 1000,
	"hour":        60 * 60 * 1000,
	"day":         24 * 60 * 60 * 1000,
	"week":        7 * 24 * 60 * 60 * 1000,
}

/*
singularUnit strips a trailing "s" so "days"/"day" map to the same key.
*/
func singularUnit(unit string) string {
	unit = strings.ToLower(unit)
	if strings.HasSuffix(unit, "s") {
		return strings.TrimSuffix(unit, "s")
	}
	return unit
}

/*
splitTerms splits a duration expression on whitespace and/or commas into
individual "<n> <unit>" terms.
*/
func splitTerms(s string) []string {
	s = strings.ReplaceAll(s, ",", " ")
	fields := strings.Fields(s)

	var terms []string
	for i := 0; i < len(fields); i++ {
		if i+1 < len(fields) {
			if _, err := strconv.ParseInt(fields[i], 10, 64); err == nil {
				terms = append(terms, fields[i]+" "+fields[i+1])
				i++
				continue
			}
		}
	}
	return terms
}
