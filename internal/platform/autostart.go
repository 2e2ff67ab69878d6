package platform

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrEmptyAutostart indicates an autostart entry without a name or executable.
var ErrEmptyAutostart = errors.New("autostart entry incomplete")

// AutostartEntry describes how the application is launched at login.
type AutostartEntry struct {
	AppName  string
	ExecPath string
	Args     []string
}

// Validate checks that the entry can be registered.
func (entry AutostartEntry) Validate() error {
	if strings.TrimSpace(entry.AppName) == "" {
		return fmt.Errorf("%w: app name is empty", ErrEmptyAutostart)
	}
	if strings.TrimSpace(entry.ExecPath) == "" {
		return fmt.Errorf("%w: exec path is empty", ErrEmptyAutostart)
	}
	return nil
}

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)
	EnableAutostart(entry AutostartEntry) error
	DisableAutostart(appName string) error
	AutostartEnabled(appName string) (bool, error)
}

type platformService struct{}

// NewService returns a platform-specific implementation.
func NewService() Service {
	return &platformService{}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

// SetAutostart enables or disables the entry.
func SetAutostart(service Service, entry AutostartEntry, enabled bool) error {
	if enabled {
		return service.EnableAutostart(entry)
	}
	return service.DisableAutostart(entry.AppName)
}

// slug lowercases appName and replaces spaces, for file names and labels.
func slug(appName string) string {
	name := strings.ToLower(strings.TrimSpace(appName))
	if name == "" {
		name = "taka8rie"
	}
	return strings.ReplaceAll(name, " ", "-")
}

// commandLine joins the executable and its arguments, quoting any part with spaces.
func commandLine(entry AutostartEntry) string {
	parts := make([]string, 0, 1+len(entry.Args))
	for _, part := range append([]string{entry.ExecPath}, entry.Args...) {
		part = strings.Trim(part, `"`)
		if strings.ContainsAny(part, " \t") {
			part = `"` + part + `"`
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}
