// Package calendar implements the scheduling math behind the calendar
// views: day bucketing, view navigation, the month grid, and the
// time-editing rules for events.
package calendar

import (
	"fmt"
	"time"

	"github.com/CODINGDONG1211/Lifestyleapp/models"
)

// View identifies a calendar view granularity.
type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// ParseView validates a view name from the API.
func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewDay, ViewWeek, ViewMonth:
		return View(s), nil
	}
	return "", fmt.Errorf("unknown calendar view %q", s)
}

// SameDay reports whether a and b fall on the same calendar day,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfDay truncates t to midnight of its calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// EventsOnDay filters events whose start falls on the same calendar day as
// day. Insertion order is preserved; consuming views re-sort if they need to.
func EventsOnDay(events []models.Event, day time.Time) []models.Event {
	out := []models.Event{}
	for _, e := range events {
		if SameDay(e.Date, day) {
			out = append(out, e)
		}
	}
	return out
}

// Navigate steps current by direction (+1 or -1) at the view's granularity:
// one day, one week, or one month.
//
// Month steps use AddDate, so stepping from a month-end date into a shorter
// month rolls into the following month (Jan 31 +1 month = Mar 2/3). This
// matches the observed app behavior; see DESIGN.md for the decision record.
func Navigate(view View, current time.Time, direction int) time.Time {
	if direction > 0 {
		direction = 1
	} else if direction < 0 {
		direction = -1
	}
	switch view {
	case ViewWeek:
		return current.AddDate(0, 0, 7*direction)
	case ViewMonth:
		return current.AddDate(0, direction, 0)
	default:
		return current.AddDate(0, 0, direction)
	}
}

// Today returns the anchor date for the "today" jump: the current moment,
// which every view uses to reset its selected day.
func Today(now time.Time) time.Time {
	return now
}

// MinuteOffset returns the minute of day of t, in [0, 1440). Day and week
// grids divide this by 1440 to place an event vertically.
func MinuteOffset(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// GridDay is one cell of a month grid.
type GridDay struct {
	Date         time.Time `json:"date"`
	OutsideMonth bool      `json:"outsideMonth"`
}

// MonthGrid returns the complete-week grid for the month containing t:
// from the Sunday on or before the 1st through the Saturday on or after the
// last day. The result length is always a multiple of 7, and days outside
// the month are flagged.
func MonthGrid(t time.Time) []GridDay {
	y, m, _ := t.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)

	start := StartOfWeek(first)
	end := last.AddDate(0, 0, 6-int(last.Weekday()))

	var grid []GridDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		grid = append(grid, GridDay{
			Date:         d,
			OutsideMonth: d.Month() != m,
		})
	}
	return grid
}
