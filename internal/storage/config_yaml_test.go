package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"deskbreak/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFilePersistsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	config, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), config)

	// The defaults should now be on disk for the user to edit.
	_, err = os.Stat(configPath)
	require.NoError(t, err)

	reloaded, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config, reloaded)
}

func TestConfigRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	config := model.Config{
		MaxIdleTimeWhileWorking:  12 * time.Minute,
		Workday:                  7*time.Hour + 30*time.Minute,
		DayResetsAfter:           6 * time.Hour,
		JustStarted:              5 * time.Minute,
		GoodChunkOfWork:          25 * time.Minute,
		MinimumTimeBetweenBreaks: 4 * time.Minute,
		WhenToEmphasizeBreak:     3 * time.Minute,
		WhenToLockScreen:         15 * time.Minute,
		Breaks: []model.Break{
			model.NewBreak("Stretch", 2*time.Hour),
			model.NewBreak("Go outside", 4*time.Hour+30*time.Minute),
		},
	}

	require.NoError(t, SaveConfig(configPath, config))

	loaded, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestSavedConfigIsHumanReadable(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveConfig(configPath, model.DefaultConfig()))

	rawData, err := os.ReadFile(configPath)
	require.NoError(t, err)
	content := string(rawData)
	assert.Contains(t, content, "workday: 8 hours")
	assert.Contains(t, content, "max_idle_time_while_working: 10 minutes")
	assert.Contains(t, content, "after: 3 hours")
	assert.Contains(t, content, "4:01")
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("workday: 9 hours\n"), 0o644))

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, 9*time.Hour, config.Workday)
	assert.Equal(t, 10*time.Minute, config.MaxIdleTimeWhileWorking)
	assert.Len(t, config.Breaks, 2)
}

func TestLoadConfigReplacesBreaksWholesale(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	fileContent := "breaks:\n  - prompt: Water\n    after: 30 minutes\n"
	require.NoError(t, os.WriteFile(configPath, []byte(fileContent), 0o644))

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	require.Len(t, config.Breaks, 1)
	assert.Equal(t, "Water", config.Breaks[0].Prompt)
	assert.Equal(t, 30*time.Minute, config.Breaks[0].After)
}

func TestLoadConfigBadDurationNamesFieldAndPath(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("workday: banana\n"), 0o644))

	_, err := LoadConfig(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), configPath)
	assert.Contains(t, err.Error(), "workday")
	assert.Contains(t, err.Error(), "banana")
}

func TestLoadConfigBadBreakDuration(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	fileContent := "breaks:\n  - prompt: Water\n    after: whenever\n"
	require.NoError(t, os.WriteFile(configPath, []byte(fileContent), 0o644))

	_, err := LoadConfig(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "breaks[0].after")
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("workday: [unclosed\n"), 0o644))

	_, err := LoadConfig(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), configPath)
}
