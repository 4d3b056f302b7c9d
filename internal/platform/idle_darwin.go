//go:build darwin

package platform

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

type idleProvider struct{}

func newIdleProvider() IdleProvider {
	return &idleProvider{}
}

// IdleDuration queries IOHIDSystem via ioreg; HIDIdleTime is reported in
// nanoseconds.
func (provider *idleProvider) IdleDuration() (time.Duration, error) {
	output, err := exec.Command("ioreg", "-c", "IOHIDSystem", "-d", "4").Output()
	if err != nil {
		return 0, fmt.Errorf("ioreg: %w", err)
	}
	idleNanos, err := parseHIDIdleTime(output)
	if err != nil {
		return 0, fmt.Errorf("parse ioreg output: %w", err)
	}
	if idleNanos < 0 {
		idleNanos = 0
	}
	return time.Duration(idleNanos), nil
}

func parseHIDIdleTime(output []byte) (int64, error) {
	for _, line := range bytes.Split(output, []byte("\n")) {
		text := string(bytes.TrimSpace(line))
		if !strings.Contains(text, "HIDIdleTime") {
			continue
		}
		_, rawValue, found := strings.Cut(text, "=")
		if !found {
			continue
		}
		value := strings.TrimSpace(strings.Trim(strings.TrimSpace(rawValue), `"`))
		idleNanos, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse idle nanoseconds: %w", err)
		}
		return idleNanos, nil
	}
	return 0, fmt.Errorf("HIDIdleTime not present")
}
