// Package daterange resolves symbolic time-range tokens into concrete
// inclusive calendar windows.
package daterange

import "time"

type Range string

const (
	RangeDay    Range = "day"
	RangeWeek   Range = "week"
	RangeMonth  Range = "month"
	RangeYear   Range = "year"
	RangeCustom Range = "custom"
)

// Window is an inclusive [Start, End] pair. Start <= End always holds
// after resolution.
type Window struct {
	Start time.Time
	End   time.Time
}

// FilterDates returns the window bounds truncated to calendar-date
// granularity in YYYY-MM-DD form, the format the store filter expects.
func (w Window) FilterDates() (string, string) {
	return w.Start.Format("2006-01-02"), w.End.Format("2006-01-02")
}

// Resolve maps a range token to a concrete window. The reference date
// defaults to now when nil. Weeks start on Monday. A custom range needs
// both bounds; when either is missing it falls back to the month policy,
// as does an unrecognized token.
func Resolve(r Range, ref, end *time.Time) Window {
	now := time.Now()
	reference := now
	if ref != nil {
		reference = *ref
	}

	switch r {
	case RangeDay:
		return Window{Start: startOfDay(reference), End: endOfDay(reference)}
	case RangeWeek:
		offset := (int(reference.Weekday()) + 6) % 7 // days since Monday
		monday := reference.AddDate(0, 0, -offset)
		return Window{Start: startOfDay(monday), End: endOfDay(monday.AddDate(0, 0, 6))}
	case RangeYear:
		start := time.Date(reference.Year(), time.January, 1, 0, 0, 0, 0, reference.Location())
		return Window{Start: start, End: endOfDay(time.Date(reference.Year(), time.December, 31, 0, 0, 0, 0, reference.Location()))}
	case RangeCustom:
		if ref != nil && end != nil {
			s, e := *ref, *end
			if e.Before(s) {
				s, e = e, s
			}
			return Window{Start: startOfDay(s), End: endOfDay(e)}
		}
		return monthWindow(reference)
	case RangeMonth:
		return monthWindow(reference)
	default:
		return monthWindow(reference)
	}
}

func monthWindow(reference time.Time) Window {
	start := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
	lastDay := start.AddDate(0, 1, -1)
	return Window{Start: start, End: endOfDay(lastDay)}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
