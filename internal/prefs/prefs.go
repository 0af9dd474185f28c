// Package prefs holds the user preferences kept outside the monitor
// configuration language: theme, SNMP credentials, and the default
// location of the slant.conf file.
package prefs

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Prefs are the TOML-encoded application preferences.
type Prefs struct {
	Theme       string `toml:"theme"`
	ConfigPath  string `toml:"config_path"`
	Community   string `toml:"community"`
	SNMPVersion string `toml:"snmp_version"`
	SNMPPort    int    `toml:"snmp_port"`
}

// Default returns the preferences used when no prefs file exists.
func Default() *Prefs {
	return &Prefs{
		Theme:       "solarized-dark",
		Community:   "public",
		SNMPVersion: "2c",
		SNMPPort:    161,
	}
}

// Load reads preferences from path, falling back to defaults when the
// file does not exist.
func Load(path string) (*Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, p); err != nil {
		return nil, err
	}
	if p.SNMPPort == 0 {
		p.SNMPPort = 161
	}
	return p, nil
}

// Save writes preferences to path.
func Save(p *Prefs, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(p)
}
