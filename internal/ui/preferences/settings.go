package preferences

import (
	"time"

	"taka8rie/internal/core/countdown"
	"taka8rie/internal/core/model"
)

// LanguageAuto follows the host locale.
const LanguageAuto = ""

// Settings defines editable user preferences.
type Settings struct {
	Language   string
	TestMode   bool
	Autostart  bool
	Fullscreen bool

	TargetMonth time.Month
	TargetDay   int
	TimeZone    string
}

// DefaultSettings returns default settings for the countdown.
func DefaultSettings() Settings {
	return Settings{
		Language:    LanguageAuto,
		TestMode:    false,
		Autostart:   false,
		Fullscreen:  false,
		TargetMonth: time.February,
		TargetDay:   27,
		TimeZone:    "Asia/Tokyo",
	}
}

// CountdownConfig converts settings to CountdownConfig.
func (settings Settings) CountdownConfig() (model.CountdownConfig, error) {
	location, err := countdown.ResolveZone(settings.TimeZone)
	if err != nil {
		return model.CountdownConfig{}, err
	}
	if err := countdown.ValidateTarget(settings.TargetMonth, settings.TargetDay); err != nil {
		return model.CountdownConfig{}, err
	}
	return model.CountdownConfig{
		Month:        settings.TargetMonth,
		Day:          settings.TargetDay,
		Location:     location,
		ForceArrived: settings.TestMode,
	}, nil
}
