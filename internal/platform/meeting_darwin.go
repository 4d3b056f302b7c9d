//go:build darwin

package platform

import (
	"bytes"
	"os/exec"
)

type meetingDetector struct{}

func newMeetingDetector() MeetingDetector {
	return &meetingDetector{}
}

// InMeeting checks pmset power assertions for one held by Google Chrome,
// which is what an active Meet call looks like.
func (detector *meetingDetector) InMeeting() bool {
	output, err := exec.Command("pmset", "-g").Output()
	if err != nil {
		return false
	}
	return bytes.Contains(output, []byte("Google Chrome"))
}
