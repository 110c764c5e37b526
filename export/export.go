// Package export renders workouts as CSV downloads and events as external
// calendar deep links.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/CODINGDONG1211/Lifestyleapp/models"
)

// WorkoutCSV renders a workout as a delimited table: a header row followed
// by one row per exercise in the workout's original order.
func WorkoutCSV(w models.Workout) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write([]string{"Exercise", "Sets", "Reps", "Weight"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, ex := range w.Exercises {
		row := []string{
			ex.Name,
			strconv.Itoa(ex.Sets),
			strconv.Itoa(ex.Reps),
			strconv.FormatFloat(ex.Weight, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// WorkoutFileName builds the download name for a workout export:
// the workout name with spaces collapsed to dashes, an underscore, and the
// date as "Mon-Jan-2".
func WorkoutFileName(w models.Workout) string {
	name := strings.Join(strings.Fields(w.Name), "-")
	return fmt.Sprintf("%s_%s.csv", name, w.Date.Format("Mon-Jan-2"))
}

// calendarTimeFormat is the UTC timestamp layout Google Calendar expects in
// its render URL.
const calendarTimeFormat = "20060102T150405Z"

// CalendarLink builds a Google Calendar "quick add" deep link for a single
// event. When the event has no end time, the end defaults to one hour after
// the start.
func CalendarLink(e models.Event) string {
	start := e.Date.UTC()
	end := start.Add(time.Hour)
	if e.EndTime != nil {
		end = e.EndTime.UTC()
	}

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", e.Title)
	if e.Description != "" {
		q.Set("details", e.Description)
	}
	q.Set("dates", start.Format(calendarTimeFormat)+"/"+end.Format(calendarTimeFormat))

	return "https://calendar.google.com/calendar/render?" + q.Encode()
}
