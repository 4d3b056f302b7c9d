package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"deskbreak/internal/core/model"

	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

// yamlConfig mirrors model.Config on disk. Thresholds are stored as
// human-readable duration strings ("10 minutes", "8 hours", "4:01").
type yamlConfig struct {
	MaxIdleTimeWhileWorking  string      `yaml:"max_idle_time_while_working"`
	Workday                  string      `yaml:"workday"`
	DayResetsAfter           string      `yaml:"day_resets_after"`
	JustStarted              string      `yaml:"just_started"`
	GoodChunkOfWork          string      `yaml:"good_chunk_of_work"`
	MinimumTimeBetweenBreaks string      `yaml:"minimum_time_between_breaks"`
	WhenToEmphasizeBreak     string      `yaml:"when_to_emphasize_break"`
	WhenToLockScreen         string      `yaml:"when_to_lock_screen"`
	Breaks                   []yamlBreak `yaml:"breaks"`
}

type yamlBreak struct {
	Prompt string `yaml:"prompt"`
	After  string `yaml:"after"`
}

// DefaultConfigPath returns the per-user config location.
func DefaultConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, configFileName), nil
}

// LoadConfig reads the scheduling config from YAML. A missing file is not
// an error: defaults are returned and persisted for the user to edit. A
// file that exists but cannot be read or parsed is an error naming the
// path and the reason.
func LoadConfig(configPath string) (model.Config, error) {
	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := model.DefaultConfig()
			// Persisting the defaults is best-effort: a read-only
			// config dir should not stop the monitor.
			_ = SaveConfig(configPath, config)
			return config, nil
		}
		return model.Config{}, fmt.Errorf("read config file %s: %w", configPath, err)
	}

	var fileData yamlConfig
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return model.Config{}, fmt.Errorf("parse config file %s: %w", configPath, err)
	}

	config, err := fileData.toConfig()
	if err != nil {
		return model.Config{}, fmt.Errorf("parse config file %s: %w", configPath, err)
	}
	return config, nil
}

// SaveConfig writes the scheduling config to YAML.
func SaveConfig(configPath string, config model.Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlConfig{
		MaxIdleTimeWhileWorking:  model.FormatDuration(config.MaxIdleTimeWhileWorking),
		Workday:                  model.FormatDuration(config.Workday),
		DayResetsAfter:           model.FormatDuration(config.DayResetsAfter),
		JustStarted:              model.FormatDuration(config.JustStarted),
		GoodChunkOfWork:          model.FormatDuration(config.GoodChunkOfWork),
		MinimumTimeBetweenBreaks: model.FormatDuration(config.MinimumTimeBetweenBreaks),
		WhenToEmphasizeBreak:     model.FormatDuration(config.WhenToEmphasizeBreak),
		WhenToLockScreen:         model.FormatDuration(config.WhenToLockScreen),
	}
	for _, rule := range config.Breaks {
		fileData.Breaks = append(fileData.Breaks, yamlBreak{
			Prompt: rule.Prompt,
			After:  model.FormatDuration(rule.After),
		})
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// toConfig converts the file representation, starting from defaults so
// omitted fields keep their built-in values.
func (fileData yamlConfig) toConfig() (model.Config, error) {
	config := model.DefaultConfig()

	fields := []struct {
		name   string
		raw    string
		target *time.Duration
	}{
		{"max_idle_time_while_working", fileData.MaxIdleTimeWhileWorking, &config.MaxIdleTimeWhileWorking},
		{"workday", fileData.Workday, &config.Workday},
		{"day_resets_after", fileData.DayResetsAfter, &config.DayResetsAfter},
		{"just_started", fileData.JustStarted, &config.JustStarted},
		{"good_chunk_of_work", fileData.GoodChunkOfWork, &config.GoodChunkOfWork},
		{"minimum_time_between_breaks", fileData.MinimumTimeBetweenBreaks, &config.MinimumTimeBetweenBreaks},
		{"when_to_emphasize_break", fileData.WhenToEmphasizeBreak, &config.WhenToEmphasizeBreak},
		{"when_to_lock_screen", fileData.WhenToLockScreen, &config.WhenToLockScreen},
	}
	for _, field := range fields {
		if field.raw == "" {
			continue
		}
		parsed, err := model.ParseDuration(field.raw)
		if err != nil {
			return model.Config{}, fmt.Errorf("field %s: %w", field.name, err)
		}
		*field.target = parsed
	}

	if fileData.Breaks != nil {
		config.Breaks = nil
		for i, rule := range fileData.Breaks {
			after, err := model.ParseDuration(rule.After)
			if err != nil {
				return model.Config{}, fmt.Errorf("breaks[%d].after: %w", i, err)
			}
			config.Breaks = append(config.Breaks, model.NewBreak(rule.Prompt, after))
		}
	}

	return config, nil
}
