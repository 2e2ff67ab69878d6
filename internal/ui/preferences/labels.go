package preferences

// Labels holds the window captions.
type Labels struct {
	Title      string
	General    string
	Language   string
	TestMode   string
	Autostart  string
	Fullscreen string
	Target     string
	Month      string
	Day        string
	TimeZone   string
	Save       string
	Cancel     string
}

// Localizer looks up interface text by message id.
type Localizer interface {
	Text(id, fallback string) string
}

// DefaultLabels returns English captions.
func DefaultLabels() Labels {
	return Labels{
		Title:      "taka8rie Settings",
		General:    "General",
		Language:   "Language",
		TestMode:   "Always show the celebration",
		Autostart:  "Start with the system",
		Fullscreen: "Fullscreen countdown",
		Target:     "Target",
		Month:      "Month",
		Day:        "Day",
		TimeZone:   "Time zone",
		Save:       "Save",
		Cancel:     "Cancel",
	}
}

// LocalizedLabels fills the captions from localizer, keeping English for missing ones.
func LocalizedLabels(localizer Localizer) Labels {
	labels := DefaultLabels()
	labels.Title = localizer.Text("prefs_title", labels.Title)
	labels.General = localizer.Text("prefs_general", labels.General)
	labels.Language = localizer.Text("prefs_language", labels.Language)
	labels.TestMode = localizer.Text("prefs_test_mode", labels.TestMode)
	labels.Autostart = localizer.Text("prefs_autostart", labels.Autostart)
	labels.Fullscreen = localizer.Text("prefs_fullscreen", labels.Fullscreen)
	labels.Target = localizer.Text("prefs_target", labels.Target)
	labels.Month = localizer.Text("prefs_month", labels.Month)
	labels.Day = localizer.Text("prefs_day", labels.Day)
	labels.TimeZone = localizer.Text("prefs_time_zone", labels.TimeZone)
	labels.Save = localizer.Text("prefs_save", labels.Save)
	labels.Cancel = localizer.Text("prefs_cancel", labels.Cancel)
	return labels
}
