//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (service *platformService) EnableAutostart(entry AutostartEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}

	output, err := exec.Command("reg", "add", registryRunKey,
		"/v", entry.AppName, "/t", "REG_SZ", "/d", windowsCommandLine(entry), "/f").CombinedOutput()
	if err != nil {
		return fmt.Errorf("enable autostart: reg add failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

func (service *platformService) DisableAutostart(appName string) error {
	if strings.TrimSpace(appName) == "" {
		return fmt.Errorf("disable autostart: %w: app name is empty", ErrEmptyAutostart)
	}

	output, err := exec.Command("reg", "delete", registryRunKey, "/v", appName, "/f").CombinedOutput()
	if err != nil {
		return fmt.Errorf("disable autostart: reg delete failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

func (service *platformService) AutostartEnabled(appName string) (bool, error) {
	if strings.TrimSpace(appName) == "" {
		return false, fmt.Errorf("query autostart: %w: app name is empty", ErrEmptyAutostart)
	}

	// reg query exits non-zero when the value is absent.
	if err := exec.Command("reg", "query", registryRunKey, "/v", appName).Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return false, nil
		}
		return false, fmt.Errorf("query autostart: %w", err)
	}
	return true, nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}

// windowsCommandLine always quotes the executable, which the Run key requires for paths with spaces.
func windowsCommandLine(entry AutostartEntry) string {
	command := fmt.Sprintf(`"%s"`, strings.Trim(entry.ExecPath, `"`))
	if len(entry.Args) == 0 {
		return command
	}
	return command + " " + commandLine(AutostartEntry{ExecPath: entry.Args[0], Args: entry.Args[1:]})
}
