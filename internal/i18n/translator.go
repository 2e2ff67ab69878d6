package i18n

import (
	"fmt"
	"strconv"
	"strings"

	"taka8rie/internal/core/countdown"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

const (
	messagePrefix  = "prefix"
	messageWeeks   = "weeks"
	messageDays    = "days"
	messageHours   = "hours"
	messageMinutes = "minutes"
	messageSeconds = "seconds"
	messageArrived = "arrived"
	messageFailure = "failure"
)

// Translator renders countdown text in one language.
type Translator struct {
	tag       language.Tag
	localizer *goi18n.Localizer
	arrived   string
	failure   string
}

func newTranslator(bundle *goi18n.Bundle, tag language.Tag) (*Translator, error) {
	translator := &Translator{
		tag:       tag,
		localizer: goi18n.NewLocalizer(bundle, tag.String()),
	}

	var err error
	if translator.arrived, err = translator.localize(messageArrived, nil); err != nil {
		return nil, err
	}
	if translator.failure, err = translator.localize(messageFailure, nil); err != nil {
		return nil, err
	}
	return translator, nil
}

// Language returns the resolved language tag.
func (translator *Translator) Language() string {
	return translator.tag.String()
}

// Countdown renders the prefix followed by each unit value and its word.
func (translator *Translator) Countdown(remaining countdown.Breakdown) (string, error) {
	prefix, err := translator.localize(messagePrefix, nil)
	if err != nil {
		return "", err
	}

	units := []struct {
		id    string
		value int64
	}{
		{messageWeeks, remaining.Weeks},
		{messageDays, remaining.Days},
		{messageHours, remaining.Hours},
		{messageMinutes, remaining.Minutes},
		{messageSeconds, remaining.Seconds},
	}

	parts := make([]string, 0, 1+2*len(units))
	parts = append(parts, prefix)
	for _, unit := range units {
		word, err := translator.localize(unit.id, unit.value)
		if err != nil {
			return "", err
		}
		parts = append(parts, strconv.FormatInt(unit.value, 10), word)
	}
	return strings.Join(parts, " "), nil
}

// Arrived returns the celebration message.
func (translator *Translator) Arrived() string {
	return translator.arrived
}

// Failure returns the error message.
func (translator *Translator) Failure() string {
	return translator.failure
}

// Text returns the message for id, or fallback when the language has none.
func (translator *Translator) Text(id, fallback string) string {
	text, err := translator.localize(id, nil)
	if err != nil || text == "" {
		return fallback
	}
	return text
}

func (translator *Translator) localize(id string, count any) (string, error) {
	config := &goi18n.LocalizeConfig{MessageID: id}
	if count != nil {
		config.PluralCount = count
	}
	text, err := translator.localizer.Localize(config)
	if err != nil {
		return "", fmt.Errorf("localize %s (%s): %w", id, translator.tag, err)
	}
	return text, nil
}
