package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
)

// Wednesday, 2025-06-18 15:04:05 UTC.
var refNow = time.Date(2025, 6, 18, 15, 4, 5, 0, time.UTC)

func TestResolvePeriod_Today(t *testing.T) {
	p := domain.ResolvePeriod(domain.PeriodToday, "", "", refNow, time.Sunday)

	assert.Equal(t, time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2025, 6, 18, 23, 59, 59, 999999999, time.UTC), p.End)
}

func TestResolvePeriod_Week(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		weekStart time.Weekday
		wantStart time.Time
	}{
		{
			name:      "wednesday with sunday start",
			now:       refNow,
			weekStart: time.Sunday,
			wantStart: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "wednesday with monday start",
			now:       refNow,
			weekStart: time.Monday,
			wantStart: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "on the week start day itself",
			now:       time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC), // a Sunday
			weekStart: time.Sunday,
			wantStart: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "week spanning a month boundary",
			now:       time.Date(2025, 7, 2, 9, 0, 0, 0, time.UTC), // a Wednesday
			weekStart: time.Sunday,
			wantStart: time.Date(2025, 6, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.ResolvePeriod(domain.PeriodWeek, "", "", tt.now, tt.weekStart)

			assert.Equal(t, tt.wantStart, p.Start)
			wantEnd := tt.wantStart.AddDate(0, 0, 6)
			assert.Equal(t, time.Date(wantEnd.Year(), wantEnd.Month(), wantEnd.Day(), 23, 59, 59, 999999999, time.UTC), p.End)
		})
	}
}

func TestResolvePeriod_Month(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "thirty day month",
			now:       refNow,
			wantStart: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 6, 30, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "february in a leap year",
			now:       time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "december stays in its own year",
			now:       time.Date(2025, 12, 25, 12, 0, 0, 0, time.UTC),
			wantStart: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 12, 31, 23, 59, 59, 999999999, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.ResolvePeriod(domain.PeriodMonth, "", "", tt.now, time.Sunday)

			assert.Equal(t, tt.wantStart, p.Start)
			assert.Equal(t, tt.wantEnd, p.End)
		})
	}
}

func TestResolvePeriod_Custom(t *testing.T) {
	p := domain.ResolvePeriod(domain.PeriodCustom, "2025-03-10", "2025-03-20", refNow, time.Sunday)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2025, 3, 20, 23, 59, 59, 999999999, time.UTC), p.End)
}

func TestResolvePeriod_FallsBackToMonth(t *testing.T) {
	month := domain.ResolvePeriod(domain.PeriodMonth, "", "", refNow, time.Sunday)

	tests := []struct {
		name        string
		selector    domain.PeriodSelector
		customStart string
		customEnd   string
	}{
		{name: "unknown selector", selector: "fortnight"},
		{name: "empty selector", selector: ""},
		{name: "custom missing start", selector: domain.PeriodCustom, customEnd: "2025-03-20"},
		{name: "custom missing end", selector: domain.PeriodCustom, customStart: "2025-03-10"},
		{name: "custom unparseable start", selector: domain.PeriodCustom, customStart: "10/03/2025", customEnd: "2025-03-20"},
		{name: "custom unparseable end", selector: domain.PeriodCustom, customStart: "2025-03-10", customEnd: "not-a-date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.ResolvePeriod(tt.selector, tt.customStart, tt.customEnd, refNow, time.Sunday)

			assert.Equal(t, month, p)
		})
	}
}

func TestResolvePeriod_StartNeverAfterEnd(t *testing.T) {
	selectors := []domain.PeriodSelector{domain.PeriodToday, domain.PeriodWeek, domain.PeriodMonth, domain.PeriodCustom, "bogus"}

	for _, sel := range selectors {
		p := domain.ResolvePeriod(sel, "2025-01-01", "2025-01-02", refNow, time.Sunday)
		assert.False(t, p.Start.After(p.End), "selector %q produced start after end", sel)
	}
}
