package calendar

import "time"

// Event time-edit and drag-to-create rules shared by the day and week grids.

const (
	// snapMinutes is the drag-to-create snap interval.
	snapMinutes = 30
	// minEventGap is how far the end time is pushed past a start time that
	// would otherwise collide with it.
	minEventGap = 15 * time.Minute
)

// TimeAt converts a vertical position inside a day column into a concrete
// time on that day. offset and height are in the same unit (pixels); the
// column spans 24 hours. The result snaps to the nearest 30-minute boundary;
// a snap of 60 minutes rolls into the next hour, and the hour is capped
// at 23.
func TimeAt(day time.Time, offset, height float64) time.Time {
	if height <= 0 {
		return StartOfDay(day)
	}
	frac := offset / height
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	totalMinutes := frac * 24 * 60
	hour := int(totalMinutes) / 60
	minute := int(totalMinutes) % 60

	// Snap to the nearest half hour.
	snapped := ((minute + snapMinutes/2) / snapMinutes) * snapMinutes
	if snapped == 60 {
		hour++
		snapped = 0
	}
	if hour > 23 {
		hour = 23
	}

	d := StartOfDay(day)
	return d.Add(time.Duration(hour)*time.Hour + time.Duration(snapped)*time.Minute)
}

// OrderedSpan returns the drag span in chronological order, swapping the
// endpoints when the pointer was released before the drag start.
func OrderedSpan(a, b time.Time) (start, end time.Time) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}

// AdjustStart applies a new start time to an event span. If the existing end
// is at or before the new start, the end is advanced to start+15m so the
// span never collapses or inverts. A nil end stays nil.
func AdjustStart(end *time.Time, newStart time.Time) (time.Time, *time.Time) {
	if end != nil && !end.After(newStart) {
		moved := newStart.Add(minEventGap)
		return newStart, &moved
	}
	return newStart, end
}

// AdjustEnd validates a new end time against the current start. Ends at or
// before the start are rejected: ok is false and the caller keeps the
// existing end.
func AdjustEnd(start, newEnd time.Time) (time.Time, bool) {
	if !newEnd.After(start) {
		return time.Time{}, false
	}
	return newEnd, true
}
