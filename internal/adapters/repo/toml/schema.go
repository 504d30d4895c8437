package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Devices []deviceSchema `toml:"devices"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported devices schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type deviceSchema struct {
	Host          string `toml:"host"`
	Port          int    `toml:"port"`
	Hostname      string `toml:"hostname,omitempty"`
	Name          string `toml:"name,omitempty"`
	Source        string `toml:"source"`
	WiFiConnected bool   `toml:"wifi_connected"`
	LastSeen      string `toml:"last_seen"`
}
