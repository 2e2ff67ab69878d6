package config

import (
	"fmt"

	"taka8rie/internal/core/countdown"
	"taka8rie/internal/core/model"
	"taka8rie/internal/ui/preferences"
)

// ResolveLanguage returns the language to request: the flag or env override,
// then the saved choice, then the host locale.
func (cfg *Config) ResolveLanguage(settings preferences.Settings, hostLocale func() string) string {
	if cfg.Language != "" {
		return cfg.Language
	}
	if settings.Language != preferences.LanguageAuto {
		return settings.Language
	}
	if hostLocale == nil {
		return ""
	}
	return hostLocale()
}

// Countdown converts settings to the engine config. Invalid settings fall back to
// the default target and the error is returned alongside. A test-mode flag or env
// value overrides the saved one.
func (cfg *Config) Countdown(settings preferences.Settings) (model.CountdownConfig, error) {
	countdownConfig, err := settings.CountdownConfig()
	if err != nil {
		err = fmt.Errorf("invalid countdown settings: %w", err)
		countdownConfig = countdown.DefaultConfig()
		countdownConfig.ForceArrived = settings.TestMode
	}
	if cfg.TestModeSet {
		countdownConfig.ForceArrived = cfg.TestMode
	}
	return countdownConfig, err
}
