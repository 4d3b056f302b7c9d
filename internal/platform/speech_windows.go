//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

type speaker struct{}

func newSpeaker() Speaker {
	if _, err := exec.LookPath("powershell"); err != nil {
		return noopSpeaker{}
	}
	return &speaker{}
}

func (s *speaker) Speak(text string) error {
	escaped := strings.ReplaceAll(text, "'", "''")
	script := fmt.Sprintf(
		"Add-Type -AssemblyName System.Speech; (New-Object System.Speech.Synthesis.SpeechSynthesizer).Speak('%s')",
		escaped,
	)
	if err := exec.Command("powershell", "-NoProfile", "-Command", script).Run(); err != nil {
		return fmt.Errorf("powershell speech: %w", err)
	}
	return nil
}
