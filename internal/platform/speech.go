package platform

// Speaker announces prompts out loud. Speech is best-effort: when no
// backend exists the returned speaker does nothing, and scheduling is
// unaffected either way.
type Speaker interface {
	Speak(text string) error
}

type noopSpeaker struct{}

func (noopSpeaker) Speak(string) error { return nil }

// NewSpeaker returns a platform-specific speech backend, or a no-op
// speaker when none is available.
func NewSpeaker() Speaker {
	return newSpeaker()
}
