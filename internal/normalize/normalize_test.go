package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		wantErr  bool
	}{
		{name: "plain_decimal", input: "50.00", expected: 50.0},
		{name: "integer", input: "1200", expected: 1200.0},
		{name: "comma_decimal", input: "49,90", expected: 49.9},
		{name: "brazilian_thousands", input: "1.234,56", expected: 1234.56},
		{name: "us_thousands", input: "1,234.56", expected: 1234.56},
		{name: "surrounding_spaces", input: "  75.50  ", expected: 75.5},
		{name: "empty", input: "", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-10.00", wantErr: true},
		{name: "not_a_number", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Amount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestDay(t *testing.T) {
	ts := time.Date(2026, 3, 15, 18, 42, 7, 123, time.FixedZone("BRT", -3*3600))
	got := Day(ts)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, 15, got.Day())
}

func TestMonthStart(t *testing.T) {
	ts := time.Date(2026, 3, 15, 18, 42, 7, 0, time.UTC)
	got := MonthStart(ts)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestTags(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "lowercased", input: []string{"Food", "TRAVEL"}, expected: []string{"food", "travel"}},
		{name: "trimmed", input: []string{" rent ", "rent"}, expected: []string{"rent"}},
		{name: "empty_dropped", input: []string{"", "a", "  "}, expected: []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tags(tt.input))
		})
	}

	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, Tags(nil))
	})
}

func TestJoinSplitTags(t *testing.T) {
	joined := JoinTags([]string{"Food", "travel", "food"})
	assert.Equal(t, "food,travel", joined)

	assert.Equal(t, []string{"food", "travel"}, SplitTags(joined))
	assert.Nil(t, SplitTags(""))
}
