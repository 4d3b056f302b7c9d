//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
)

type speaker struct{}

func newSpeaker() Speaker {
	if _, err := exec.LookPath("say"); err != nil {
		return noopSpeaker{}
	}
	return &speaker{}
}

func (s *speaker) Speak(text string) error {
	if err := exec.Command("say", text).Run(); err != nil {
		return fmt.Errorf("say: %w", err)
	}
	return nil
}
