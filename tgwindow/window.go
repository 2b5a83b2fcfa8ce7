/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package tgwindow produces sequences of tgview.View windows — rolling
and expanding — over a base view's effective time bounds, including
calendar-aligned steps.
*/
package tgwindow

import (
	"github.com/krotik/tempograph/tgtime"
	"github.com/krotik/tempograph/tgview"
)

/*
Rolling produces successive windows [cursor-window, cursor) for cursor
= start+step, start+2*step, ... while cursor-step < end, where [start,
end) is the base view's effective bounds. If step is the zero interval,
it defaults to window (non-overlapping tiling). An undefined base
bound yields an empty (nil) result, not an error.
*/
func Rolling(base tgview.View, window, step tgtime.Interval) []tgview.View {
	start, end, ok := base.Bounds()
	if !ok {
		return nil
	}
	if step.IsZero() {
		step = window
	}

	var out []tgview.View
	prev := start
	for prev < end {
		cursor := step.Add(prev)
		winStart := window.Sub(cursor)
		out = append(out, base.Window(winStart, cursor))
		prev = cursor
	}
	return out
}

/*
Expanding produces successive windows [start, start+k*step) for
k=1,2,... while start+(k-1)*step < end. The final window's end may
exceed end. An undefined base bound yields an empty (nil) result.
*/
func Expanding(base tgview.View, step tgtime.Interval) []tgview.View {
	start, end, ok := base.Bounds()
	if !ok {
		return nil
	}

	var out []tgview.View
	cursor := start
	for cursor < end {
		next := step.Add(cursor)
		out = append(out, base.Window(start, next))
		cursor = next
	}
	return out
}

/*
TimeIndex maps a produced window to a single representative time:
the midpoint when center is true, else end-1. Returns false if the
view has no defined bounds.
*/
func TimeIndex(v tgview.View, center bool) (int64, bool) {
	start, end, ok := v.Bounds()
	if !ok {
		return 0, false
	}
	if center {
		return start + (end-start)/2, true
	}
	return end - 1, true
}
