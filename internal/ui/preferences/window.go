package preferences

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const autoLanguageOption = "auto"

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	onCancel   func()
	language   *widget.Select
	testMode   *widget.Check
	autostart  *widget.Check
	fullscreen *widget.Check
	month      *widget.Entry
	day        *widget.Entry
	timeZone   *widget.Entry
	status     *widget.Label

	generalLabel  *widget.Label
	languageLabel *widget.Label
	targetLabel   *widget.Label
	monthLabel    *widget.Label
	dayLabel      *widget.Label
	timeZoneLabel *widget.Label
	saveButton    *widget.Button
	cancelButton  *widget.Button
}

// New creates a preferences window. languages lists the selectable language tags.
func New(app fyne.App, settings Settings, languages []string, labels Labels, onSave func(Settings)) *Window {
	window := app.NewWindow(labels.Title)

	options := append([]string{autoLanguageOption}, languages...)
	language := widget.NewSelect(options, nil)

	testMode := widget.NewCheck(labels.TestMode, nil)
	autostart := widget.NewCheck(labels.Autostart, nil)
	fullscreen := widget.NewCheck(labels.Fullscreen, nil)

	month := widget.NewEntry()
	day := widget.NewEntry()
	timeZone := widget.NewEntry()
	timeZone.SetPlaceHolder("Asia/Tokyo")

	status := widget.NewLabel("")
	status.Importance = widget.DangerImportance

	generalLabel := widget.NewLabelWithStyle(labels.General, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	languageLabel := widget.NewLabel(labels.Language)
	targetLabel := widget.NewLabelWithStyle(labels.Target, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	monthLabel := widget.NewLabel(labels.Month)
	dayLabel := widget.NewLabel(labels.Day)
	timeZoneLabel := widget.NewLabel(labels.TimeZone)

	form := container.NewVBox(
		generalLabel,
		container.NewHBox(languageLabel, language),
		testMode,
		autostart,
		fullscreen,
		targetLabel,
		container.NewHBox(monthLabel, month, dayLabel, day),
		container.NewHBox(timeZoneLabel, timeZone),
		status,
	)

	saveButton := widget.NewButton(labels.Save, nil)
	cancelButton := widget.NewButton(labels.Cancel, nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 380))

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		language:   language,
		testMode:   testMode,
		autostart:  autostart,
		fullscreen: fullscreen,
		month:      month,
		day:        day,
		timeZone:   timeZone,
		status:     status,

		generalLabel:  generalLabel,
		languageLabel: languageLabel,
		targetLabel:   targetLabel,
		monthLabel:    monthLabel,
		dayLabel:      dayLabel,
		timeZoneLabel: timeZoneLabel,
		saveButton:    saveButton,
		cancelButton:  cancelButton,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		window.Hide()
		if prefs.onCancel != nil {
			prefs.onCancel()
		}
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// SetOnCancel sets the cancel handler.
func (prefs *Window) SetOnCancel(handler func()) {
	prefs.onCancel = handler
}

// SetLabels replaces the captions, e.g. after a language change.
func (prefs *Window) SetLabels(labels Labels) {
	prefs.window.SetTitle(labels.Title)
	prefs.generalLabel.SetText(labels.General)
	prefs.languageLabel.SetText(labels.Language)
	prefs.targetLabel.SetText(labels.Target)
	prefs.monthLabel.SetText(labels.Month)
	prefs.dayLabel.SetText(labels.Day)
	prefs.timeZoneLabel.SetText(labels.TimeZone)
	prefs.testMode.Text = labels.TestMode
	prefs.testMode.Refresh()
	prefs.autostart.Text = labels.Autostart
	prefs.autostart.Refresh()
	prefs.fullscreen.Text = labels.Fullscreen
	prefs.fullscreen.Refresh()
	prefs.saveButton.SetText(labels.Save)
	prefs.cancelButton.SetText(labels.Cancel)
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	if settings.Language == LanguageAuto {
		prefs.language.SetSelected(autoLanguageOption)
	} else {
		prefs.language.SetSelected(settings.Language)
	}
	prefs.testMode.SetChecked(settings.TestMode)
	prefs.autostart.SetChecked(settings.Autostart)
	prefs.fullscreen.SetChecked(settings.Fullscreen)
	prefs.month.SetText(strconv.Itoa(int(settings.TargetMonth)))
	prefs.day.SetText(strconv.Itoa(settings.TargetDay))
	prefs.timeZone.SetText(settings.TimeZone)
	prefs.status.SetText("")
}

// Settings returns the last saved values.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	settings.Language = prefs.language.Selected
	if settings.Language == autoLanguageOption {
		settings.Language = LanguageAuto
	}
	settings.TestMode = prefs.testMode.Checked
	settings.Autostart = prefs.autostart.Checked
	settings.Fullscreen = prefs.fullscreen.Checked

	if month, ok := parsePositiveInt(prefs.month.Text); ok {
		settings.TargetMonth = time.Month(month)
	}
	if day, ok := parsePositiveInt(prefs.day.Text); ok {
		settings.TargetDay = day
	}
	settings.TimeZone = prefs.timeZone.Text

	if _, err := settings.CountdownConfig(); err != nil {
		prefs.status.SetText(err.Error())
		return
	}

	prefs.settings = settings
	prefs.status.SetText("")
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
