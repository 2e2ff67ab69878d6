package tray

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnPreferences func()
	OnQuit        func()
}

// Labels holds the menu captions.
type Labels struct {
	Title       string
	Show        string
	Preferences string
	Quit        string
}

// DefaultLabels returns English captions.
func DefaultLabels() Labels {
	return Labels{
		Title:       "taka8rie",
		Show:        "Show countdown",
		Preferences: "Preferences",
		Quit:        "Quit",
	}
}

// Localizer looks up interface text by message id.
type Localizer interface {
	Text(id, fallback string) string
}

// LocalizedLabels fills the captions from localizer, keeping English for missing ones.
func LocalizedLabels(localizer Localizer) Labels {
	labels := DefaultLabels()
	labels.Show = localizer.Text("tray_show", labels.Show)
	labels.Preferences = localizer.Text("tray_preferences", labels.Preferences)
	labels.Quit = localizer.Text("tray_quit", labels.Quit)
	return labels
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	labels     Labels
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	status     string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, labels Labels, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		labels:    labels,
		callbacks: callbacks,
		status:    "…",
	}

	manager.statusItem = fyne.NewMenuItem(manager.status, nil)
	manager.statusItem.Disabled = true
	manager.refreshMenu()

	return manager
}

// SetStatus updates the status line, usually the current countdown text.
func (manager *Manager) SetStatus(status string) {
	if status == manager.status {
		return
	}
	manager.status = status
	manager.statusItem.Label = status
	manager.refreshMenu()
}

// SetLabels replaces the menu captions, e.g. after a language change.
func (manager *Manager) SetLabels(labels Labels) {
	manager.labels = labels
	manager.refreshMenu()
}

// Status returns the status line.
func (manager *Manager) Status() string {
	return manager.status
}

// Menu builds the tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu(manager.labels.Title,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(manager.labels.Show, func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		fyne.NewMenuItem(manager.labels.Preferences, func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem(manager.labels.Quit, func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}
