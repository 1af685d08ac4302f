package stats

import "time"

// Range is an inclusive, whole-day aligned aggregation window
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ResolveRange normalizes a possibly partial from/to pair into an inclusive
// day-aligned range. A missing "to" means now, a missing "from" means
// defaultSpanDays calendar days back from the end (inclusive counting, so
// a 7 day default spans end-6 .. end). The caller injects now, there is no
// ambient clock in here.
//
// An inverted range (from after to) is not rejected: aggregation over it
// simply finds no rows, which mirrors how the api always behaved.
func ResolveRange(from, to *time.Time, defaultSpanDays int, now time.Time) Range {
	end := now
	if to != nil {
		end = *to
	}

	start := end.AddDate(0, 0, -(defaultSpanDays - 1))
	if from != nil {
		start = *from
	}

	return Range{
		Start: startOfDay(start),
		End:   endOfDay(end),
	}
}

// DayKey is the aggregation bucket key of an instant: its UTC calendar date
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999999999, t.Location())
}
