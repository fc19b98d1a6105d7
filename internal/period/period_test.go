package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromTime(t *testing.T) {
	tests := []struct {
		name          string
		now           time.Time
		expectQuarter int
		expectYear    int
		expectStart   time.Time
		expectEnd     time.Time
	}{
		{
			name:          "Meio do Q2",
			now:           time.Date(2025, 5, 15, 10, 30, 0, 0, time.UTC),
			expectQuarter: 2,
			expectYear:    2025,
			expectStart:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			expectEnd:     time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Primeiro dia do ano cai no Q1",
			now:           time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			expectQuarter: 1,
			expectYear:    2025,
			expectStart:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			expectEnd:     time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Último dia do ano cai no Q4",
			now:           time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
			expectQuarter: 4,
			expectYear:    2025,
			expectStart:   time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
			expectEnd:     time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Q1 de ano bissexto termina em 31 de março",
			now:           time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC),
			expectQuarter: 1,
			expectYear:    2024,
			expectStart:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expectEnd:     time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Q3 termina em 30 de setembro",
			now:           time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			expectQuarter: 3,
			expectYear:    2025,
			expectStart:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			expectEnd:     time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := FromTime(tt.now)

			assert.Equal(t, tt.expectQuarter, q.Quarter)
			assert.Equal(t, tt.expectYear, q.Year)
			assert.Equal(t, tt.expectStart, q.Start)
			assert.Equal(t, tt.expectEnd, q.End)
		})
	}
}

func TestQuarterPrevious(t *testing.T) {
	t.Run("Q2 volta para o Q1 do mesmo ano", func(t *testing.T) {
		prev := ForQuarter(2, 2025).Previous()

		assert.Equal(t, 1, prev.Quarter)
		assert.Equal(t, 2025, prev.Year)
	})

	t.Run("Q1 volta para o Q4 do ano anterior", func(t *testing.T) {
		prev := ForQuarter(1, 2025).Previous()

		assert.Equal(t, 4, prev.Quarter)
		assert.Equal(t, 2024, prev.Year)
		assert.Equal(t, time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC), prev.Start)
		assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), prev.End)
	})
}

func TestQuarterSameQuarterLastYear(t *testing.T) {
	lastYear := ForQuarter(2, 2025).SameQuarterLastYear()

	assert.Equal(t, 2, lastYear.Quarter)
	assert.Equal(t, 2024, lastYear.Year)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), lastYear.Start)
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), lastYear.End)
}

func TestQuarterMonths(t *testing.T) {
	tests := []struct {
		name    string
		quarter int
		year    int
		expect  []string
	}{
		{
			name:    "Q1",
			quarter: 1,
			year:    2025,
			expect:  []string{"2025-01", "2025-02", "2025-03"},
		},
		{
			name:    "Q4",
			quarter: 4,
			year:    2025,
			expect:  []string{"2025-10", "2025-11", "2025-12"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, ForQuarter(tt.quarter, tt.year).Months())
		})
	}
}

func TestStartOfMonth(t *testing.T) {
	start := StartOfMonth(time.Date(2025, 5, 28, 17, 45, 3, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), start)
}
