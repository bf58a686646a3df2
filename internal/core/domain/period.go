package domain

import "time"

// PeriodSelector is the symbolic name of a dashboard period.
type PeriodSelector string

const (
	PeriodToday  PeriodSelector = "today"
	PeriodWeek   PeriodSelector = "week"
	PeriodMonth  PeriodSelector = "month"
	PeriodCustom PeriodSelector = "custom"
)

// Period is a resolved closed interval [Start, End] of instants.
// It is derived per request, never persisted.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

const customDateLayout = "2006-01-02"

// ResolvePeriod converts a symbolic selector plus optional custom calendar
// bounds into an absolute interval. Unrecognized selectors and custom
// requests with a missing or unparseable bound degrade to the month default,
// never to an error.
func ResolvePeriod(selector PeriodSelector, customStart, customEnd string, now time.Time, weekStart time.Weekday) Period {
	switch selector {
	case PeriodToday:
		return Period{
			Start: startOfDay(now),
			End:   endOfDay(now),
		}
	case PeriodWeek:
		// Most recent weekStart day on or before today.
		offset := (int(now.Weekday()) - int(weekStart) + 7) % 7
		first := now.AddDate(0, 0, -offset)
		return Period{
			Start: startOfDay(first),
			End:   endOfDay(first.AddDate(0, 0, 6)),
		}
	case PeriodCustom:
		if customStart == "" || customEnd == "" {
			return monthPeriod(now)
		}
		start, errStart := time.ParseInLocation(customDateLayout, customStart, now.Location())
		end, errEnd := time.ParseInLocation(customDateLayout, customEnd, now.Location())
		if errStart != nil || errEnd != nil {
			return monthPeriod(now)
		}
		return Period{
			Start: startOfDay(start),
			End:   endOfDay(end),
		}
	default:
		return monthPeriod(now)
	}
}

func monthPeriod(now time.Time) Period {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	// Day zero of the next month is the last calendar day of this one.
	last := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location())
	return Period{
		Start: first,
		End:   endOfDay(last),
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}
