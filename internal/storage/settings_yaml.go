package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"taka8rie/internal/core/countdown"
	"taka8rie/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	Language    string `yaml:"language"`
	TestMode    bool   `yaml:"test_mode"`
	Autostart   bool   `yaml:"autostart"`
	Fullscreen  bool   `yaml:"fullscreen"`
	TargetMonth int    `yaml:"target_month"`
	TargetDay   int    `yaml:"target_day"`
	TimeZone    string `yaml:"time_zone"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// LoadSettingsFile reads user preferences from the YAML file at configPath.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettingsFile writes user preferences to the YAML file at configPath.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		Language:    settings.Language,
		TestMode:    settings.TestMode,
		Autostart:   settings.Autostart,
		Fullscreen:  settings.Fullscreen,
		TargetMonth: int(settings.TargetMonth),
		TargetDay:   settings.TargetDay,
		TimeZone:    settings.TimeZone,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	month := time.Month(fileData.TargetMonth)
	if countdown.ValidateTarget(month, fileData.TargetDay) == nil {
		settings.TargetMonth = month
		settings.TargetDay = fileData.TargetDay
	}

	if fileData.TimeZone != "" {
		if _, err := countdown.ResolveZone(fileData.TimeZone); err == nil {
			settings.TimeZone = fileData.TimeZone
		}
	}

	settings.Language = fileData.Language
	settings.TestMode = fileData.TestMode
	settings.Autostart = fileData.Autostart
	settings.Fullscreen = fileData.Fullscreen
}
