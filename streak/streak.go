// Package streak computes habit streaks from completion days.
package streak

import "time"

// DayFormat is the calendar-day layout used for completion days.
const DayFormat = "2006-01-02"

// Day truncates t to its calendar-day string.
func Day(t time.Time) string {
	return t.Format(DayFormat)
}

// ValidDay reports whether s is a well-formed calendar-day string.
func ValidDay(s string) bool {
	_, err := time.Parse(DayFormat, s)
	return err == nil
}

// Compute returns the current streak for a habit: the number of consecutive
// completed calendar days ending at and including today. If today is not
// completed the streak is 0, regardless of earlier days.
//
// The value is always recomputed from the full set; there is no incremental
// bookkeeping to drift out of sync.
func Compute(completedDays []string, today string) int {
	done := make(map[string]bool, len(completedDays))
	for _, d := range completedDays {
		done[d] = true
	}

	if !done[today] {
		return 0
	}

	t, err := time.Parse(DayFormat, today)
	if err != nil {
		return 0
	}

	count := 1
	for {
		t = t.AddDate(0, 0, -1)
		if !done[t.Format(DayFormat)] {
			break
		}
		count++
	}
	return count
}

// Toggle adds day to completedDays if absent, removes it if present, and
// returns the new set together with the streak recomputed for today. The
// two results must be stored together so the derived streak never disagrees
// with the days it was computed from.
func Toggle(completedDays []string, day, today string) ([]string, int) {
	out := make([]string, 0, len(completedDays)+1)
	found := false
	for _, d := range completedDays {
		if d == day {
			found = true
			continue
		}
		out = append(out, d)
	}
	if !found {
		out = append(out, day)
	}
	return out, Compute(out, today)
}
