package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stanpulse/pkg/contracts/domain"
)

func TestRoleCounterCount(t *testing.T) {
	counter, err := NewRoleCounter("")
	require.NoError(t, err)

	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{"empty", "", 0},
		{"whitespace only", "   ", 0},
		{"literal zero", "0", 0},
		{"single entry", "홍길동(ETRI)", 1},
		{"comma separated", "A, B", 2},
		{"mixed comma and newline", "A, B\nC", 3},
		{"repeated delimiters", "A,,\n\nB", 2},
		{"trailing delimiter", "A, B,", 2},
		{"entries needing trim", "  A ,  B  ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, counter.Count(tt.value))
		})
	}
}

func TestRoleCounterIdempotentOnCleanText(t *testing.T) {
	counter, err := NewRoleCounter("")
	require.NoError(t, err)

	clean := "의장(홍길동), 부의장(김철수)"
	assert.Equal(t, counter.Count(clean), counter.Count(clean))
	assert.Equal(t, 2, counter.Count(clean))
}

func TestNewRoleCounterInvalidPattern(t *testing.T) {
	_, err := NewRoleCounter("[")
	assert.Error(t, err)
}

func TestDeriveRoleCounts(t *testing.T) {
	counter, err := NewRoleCounter("")
	require.NoError(t, err)

	records := []domain.ActivityRecord{
		{Contributors: "A, B", Editors: "0", Chairs: "의장(홍길동)\n부의장(김철수)"},
	}
	DeriveRoleCounts(records, counter)

	assert.Equal(t, 2, records[0].ContributorCount)
	assert.Equal(t, 0, records[0].EditorCount)
	assert.Equal(t, 2, records[0].ChairCount)
}

func TestExpandStatus(t *testing.T) {
	records := []domain.ActivityRecord{
		{Status: "제정"},
		{Status: "계획"},
		{Status: "보류"}, // outside the enumeration
		{Status: ""},
	}
	ExpandStatus(records)

	t.Run("matching label sets exactly one indicator", func(t *testing.T) {
		assert.Equal(t, 1, records[0].Indicator(domain.StatusCompleted))
		assert.Equal(t, 1, records[1].Indicator(domain.StatusPlanned))
	})

	t.Run("unknown label yields all-zero indicators", func(t *testing.T) {
		for _, m := range domain.StatusMappings {
			assert.Equal(t, 0, records[2].Indicator(m.Tag))
			assert.Equal(t, 0, records[3].Indicator(m.Tag))
		}
	})

	t.Run("at most one indicator per record", func(t *testing.T) {
		for _, rec := range records {
			sum := 0
			for _, m := range domain.StatusMappings {
				v := rec.Indicator(m.Tag)
				assert.Contains(t, []int{0, 1}, v)
				sum += v
			}
			assert.LessOrEqual(t, sum, 1)
		}
	})
}

func TestFormatYear(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"integral year", "2025", "'25"},
		{"integral year with float form", "2025.0", "'25"},
		{"century boundary", "2000", "'00"},
		{"single-digit remainder", "2003", "'03"},
		{"non-integral passes through", "25.5", "25.5"},
		{"non-numeric passes through", "'25", "'25"},
		{"missing passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatYear(tt.value))
		})
	}
}

func TestFormatYears(t *testing.T) {
	records := []domain.ActivityRecord{{StartYear: "2024", EndYear: "진행중"}}
	FormatYears(records)
	assert.Equal(t, "'24", records[0].StartYear)
	assert.Equal(t, "진행중", records[0].EndYear)
}
