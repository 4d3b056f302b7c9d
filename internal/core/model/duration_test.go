package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		value    time.Duration
		expected string
	}{
		{0, "0 minutes"},
		{59 * time.Second, "0 minutes"},
		{time.Minute, "1 minute"},
		{2 * time.Minute, "2 minutes"},
		{45 * time.Minute, "45 minutes"},
		{time.Hour, "1 hour"},
		{3 * time.Hour, "3 hours"},
		{3*time.Hour + 2*time.Minute, "3:02"},
		{time.Hour + 30*time.Minute, "1:30"},
		{8*time.Hour + 10*time.Minute, "8:10"},
		{-time.Minute, "0 minutes"},
	}

	for _, testCase := range cases {
		assert.Equal(t, testCase.expected, FormatDuration(testCase.value), "format %v", testCase.value)
	}
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		value    string
		expected time.Duration
	}{
		{"1:00", time.Hour},
		{"1 hour", time.Hour},
		{"2 hours", 2 * time.Hour},
		{"2h", 2 * time.Hour},
		{"2 minutes", 2 * time.Minute},
		{"1 minute", time.Minute},
		{"45m", 45 * time.Minute},
		{"4:01", 4*time.Hour + time.Minute},
		{"0 minutes", 0},
		{"1.5h", 90 * time.Minute},
		{" 2 : 30 ", 2*time.Hour + 30*time.Minute},
	}

	for _, testCase := range cases {
		parsed, err := ParseDuration(testCase.value)
		require.NoError(t, err, "parse %q", testCase.value)
		assert.Equal(t, testCase.expected, parsed, "parse %q", testCase.value)
	}
}

func TestParseDurationRejectsMalformedInput(t *testing.T) {
	for _, value := range []string{"", "12", "banana", "2 days", "h", "x:10", "1:yy", "1h30m"} {
		_, err := ParseDuration(value)
		assert.Error(t, err, "parse %q", value)
	}
}

func TestParseDurationErrorNamesInput(t *testing.T) {
	_, err := ParseDuration("soonish")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "soonish")
}

// Formatting discards sub-minute precision, so a parse of a formatted value
// may differ from the original by up to a minute, but re-encoding must be
// stable.
func TestFormatParseStability(t *testing.T) {
	values := []time.Duration{
		0,
		42 * time.Second,
		time.Minute,
		17*time.Minute + 30*time.Second,
		time.Hour,
		3*time.Hour + 2*time.Minute + 59*time.Second,
		8 * time.Hour,
		26*time.Hour + 5*time.Minute,
	}

	for _, value := range values {
		encoded := FormatDuration(value)
		decoded, err := ParseDuration(encoded)
		require.NoError(t, err, "reparse %q", encoded)
		assert.Equal(t, encoded, FormatDuration(decoded), "re-encode %q", encoded)
		assert.Less(t, (value - decoded).Abs(), time.Minute, "drift for %v", value)
	}
}
