package streak

import (
	"testing"
	"time"
)

func day(t time.Time) string { return t.Format(DayFormat) }

// Consecutive runs ending today of length N+1 produce streak N+1.
func TestCompute_ConsecutiveRun(t *testing.T) {
	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	for n := 0; n <= 10; n++ {
		var days []string
		for i := 0; i <= n; i++ {
			days = append(days, day(today.AddDate(0, 0, -i)))
		}

		got := Compute(days, day(today))
		if got != n+1 {
			t.Errorf("run of %d days: expected streak %d, got %d", n+1, n+1, got)
		}
	}
}

func TestCompute_TodayMissing(t *testing.T) {
	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	days := []string{
		day(today.AddDate(0, 0, -1)),
		day(today.AddDate(0, 0, -2)),
		day(today.AddDate(0, 0, -3)),
	}

	if got := Compute(days, day(today)); got != 0 {
		t.Errorf("expected streak 0 when today is missing, got %d", got)
	}
}

func TestCompute_GapBreaksStreak(t *testing.T) {
	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	// Today and yesterday done, then a gap, then two more days.
	days := []string{
		day(today),
		day(today.AddDate(0, 0, -1)),
		day(today.AddDate(0, 0, -3)),
		day(today.AddDate(0, 0, -4)),
	}

	if got := Compute(days, day(today)); got != 2 {
		t.Errorf("expected streak 2 at first gap, got %d", got)
	}
}

func TestCompute_EmptySet(t *testing.T) {
	if got := Compute(nil, "2025-03-15"); got != 0 {
		t.Errorf("expected streak 0 for empty set, got %d", got)
	}
}

// Month boundaries must not break day arithmetic.
func TestCompute_AcrossMonthBoundary(t *testing.T) {
	days := []string{"2025-03-01", "2025-02-28", "2025-02-27"}
	if got := Compute(days, "2025-03-01"); got != 3 {
		t.Errorf("expected streak 3 across month boundary, got %d", got)
	}
}

func TestToggle_RoundTripRestoresStreak(t *testing.T) {
	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	days := []string{day(today), day(today.AddDate(0, 0, -1)), day(today.AddDate(0, 0, -2))}
	before := Compute(days, day(today))

	target := day(today.AddDate(0, 0, -1))
	toggled, _ := Toggle(days, target, day(today))
	restored, after := Toggle(toggled, target, day(today))

	if after != before {
		t.Errorf("expected streak %d after toggle round trip, got %d", before, after)
	}
	if len(restored) != len(days) {
		t.Errorf("expected %d days after round trip, got %d", len(days), len(restored))
	}
}

// Scenario from the habit tracker: add habit, toggle today, extend backward,
// then toggle today off again.
func TestToggle_Scenario(t *testing.T) {
	today := time.Now()
	var days []string

	if got := Compute(days, day(today)); got != 0 {
		t.Fatalf("new habit: expected streak 0, got %d", got)
	}

	days, s := Toggle(days, day(today), day(today))
	if s != 1 {
		t.Fatalf("after toggling today: expected streak 1, got %d", s)
	}

	for i := 1; i <= 4; i++ {
		days, s = Toggle(days, day(today.AddDate(0, 0, -i)), day(today))
	}
	if s != 5 {
		t.Fatalf("after filling 4 preceding days: expected streak 5, got %d", s)
	}

	_, s = Toggle(days, day(today), day(today))
	if s != 0 {
		t.Fatalf("after toggling today off: expected streak 0, got %d", s)
	}
}

func TestToggle_RemovesDuplicateFree(t *testing.T) {
	days := []string{"2025-03-15"}
	toggled, _ := Toggle(days, "2025-03-15", "2025-03-15")
	if len(toggled) != 0 {
		t.Errorf("expected day removed, got %v", toggled)
	}
}
