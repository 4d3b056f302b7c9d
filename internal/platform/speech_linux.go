//go:build linux

package platform

import (
	"fmt"
	"os/exec"
)

type speaker struct {
	binaryPath string
}

func newSpeaker() Speaker {
	for _, candidate := range []string{"spd-say", "espeak"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return &speaker{binaryPath: path}
		}
	}
	return noopSpeaker{}
}

func (s *speaker) Speak(text string) error {
	if err := exec.Command(s.binaryPath, text).Run(); err != nil {
		return fmt.Errorf("speak: %w", err)
	}
	return nil
}
