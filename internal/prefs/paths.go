package prefs

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "slant"

// ConfigDir returns the platform-specific config directory.
// Unix: $XDG_CONFIG_HOME/slant or ~/.config/slant
// Windows: %APPDATA%\slant
func ConfigDir() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	default:
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			base = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(base, appName), nil
}

// PrefsPath returns the path of the TOML preferences file.
func PrefsPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "prefs.toml"), nil
}

// MonitorConfigPath returns the default path of the slant.conf monitor
// configuration, unless the preferences override it.
func MonitorConfigPath(p *Prefs) (string, error) {
	if p != nil && p.ConfigPath != "" {
		return p.ConfigPath, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "slant.conf"), nil
}

// EnsureDirs creates the config directory if it does not exist.
func EnsureDirs() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}
