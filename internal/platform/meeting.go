package platform

// MeetingDetector reports whether the user appears to be in a video call.
// Detection is best-effort: any failure reads as "not in a meeting".
type MeetingDetector interface {
	InMeeting() bool
}

// NewMeetingDetector returns a platform-specific meeting detector.
func NewMeetingDetector() MeetingDetector {
	return newMeetingDetector()
}
