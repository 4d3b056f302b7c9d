//go:build !darwin

package platform

type meetingDetector struct{}

func newMeetingDetector() MeetingDetector {
	return &meetingDetector{}
}

func (detector *meetingDetector) InMeeting() bool {
	return false
}
