package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stanpulse/pkg/contracts/domain"
)

func TestSanitize(t *testing.T) {
	records := []domain.ActivityRecord{
		{Organization: "  ETRI ", Division: "미디어본부", Sequence: "3"},
		{Organization: "ETRI", Division: "미디어본부", Sequence: ""},
		{Organization: "ETRI", Division: "", Sequence: "1"},
		{Organization: "ETRI", Division: "네트워크본부", Sequence: "신규"},
		{Organization: "ETRI", Division: "네트워크본부", Sequence: "new"},
		{Organization: "ETRI", Division: "네트워크본부", Sequence: "2.5"},
		{Organization: "ETRI", Division: "네트워크본부", Sequence: "미정"},
	}

	result := Sanitize(records)

	require.Len(t, result.Records, 5)
	assert.Equal(t, 1, result.MissingDivision)
	assert.Equal(t, 1, result.BadSequence)
	assert.Equal(t, 2, result.Dropped())

	t.Run("organization trimmed", func(t *testing.T) {
		assert.Equal(t, "ETRI", result.Records[0].Organization)
	})

	t.Run("missing sequence becomes zero", func(t *testing.T) {
		assert.Equal(t, "0", result.Records[1].Sequence)
	})

	t.Run("row order preserved among survivors", func(t *testing.T) {
		sequences := make([]string, len(result.Records))
		for i, r := range result.Records {
			sequences[i] = r.Sequence
		}
		assert.Equal(t, []string{"3", "0", "신규", "new", "2.5"}, sequences)
	})

	t.Run("all survivors have a division", func(t *testing.T) {
		for _, r := range result.Records {
			assert.NotEmpty(t, r.Division)
		}
	})
}

func TestSanitizeEmptyInput(t *testing.T) {
	result := Sanitize(nil)
	assert.Empty(t, result.Records)
	assert.Zero(t, result.Dropped())
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, isNumeric("0"))
	assert.True(t, isNumeric("12"))
	assert.True(t, isNumeric("3.5"))
	assert.True(t, isNumeric("-1"))
	assert.False(t, isNumeric("차수"))
	assert.False(t, isNumeric(""))
	assert.False(t, isNumeric("1차"))
}
