package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatDuration renders a duration as a short human-readable string:
// "0 minutes", "1 hour", "45 minutes", or "8:30" when both hours and
// minutes are present. Seconds are truncated to whole minutes.
func FormatDuration(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	totalMinutes := int64(value / time.Minute)
	hours := totalMinutes / 60
	minutes := totalMinutes - hours*60

	switch {
	case hours == 0 && minutes == 0:
		return "0 minutes"
	case minutes == 0 && hours == 1:
		return "1 hour"
	case minutes == 0:
		return fmt.Sprintf("%d hours", hours)
	case hours == 0 && minutes == 1:
		return "1 minute"
	case hours == 0:
		return fmt.Sprintf("%d minutes", minutes)
	default:
		return fmt.Sprintf("%d:%02d", hours, minutes)
	}
}

// ParseDuration reads the formats produced by FormatDuration plus the
// short suffix forms: "8:30", "2h", "2 hours", "1 hour", "45m",
// "45 minutes", "1 minute". Numeric components may be fractional.
func ParseDuration(value string) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)

	var hours, minutes float64
	if h, m, found := strings.Cut(trimmed, ":"); found {
		var err error
		hours, err = parseComponent(value, h)
		if err != nil {
			return 0, err
		}
		minutes, err = parseComponent(value, m)
		if err != nil {
			return 0, err
		}
	} else if h, ok := cutAnySuffix(trimmed, "h", "hours", "hour"); ok {
		var err error
		hours, err = parseComponent(value, h)
		if err != nil {
			return 0, err
		}
	} else if m, ok := cutAnySuffix(trimmed, "m", "minutes", "minute"); ok {
		var err error
		minutes, err = parseComponent(value, m)
		if err != nil {
			return 0, err
		}
	} else {
		return 0, fmt.Errorf("parse duration %q: expected \"H:MM\", \"<n>h\" or \"<n>m\"", value)
	}

	seconds := math.Round((hours*60 + minutes) * 60)
	return time.Duration(seconds) * time.Second, nil
}

func parseComponent(whole, component string) (float64, error) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(component), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %q is not a number", whole, strings.TrimSpace(component))
	}
	return parsed, nil
}

func cutAnySuffix(value string, suffixes ...string) (string, bool) {
	for _, suffix := range suffixes {
		if rest, ok := strings.CutSuffix(value, suffix); ok {
			return rest, true
		}
	}
	return "", false
}
