package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default game configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Rules: RulesConfig{
			Oddities:         true,
			WalkOff:          false,
			ExtraInningsFrom: 10,
		},
		Manager: ManagerConfig{
			Style:      StyleBalanced,
			Aggression: 0.5,
		},
		Sim: SimConfig{
			Seed:   0,
			PaceMS: 600,
		},
		Log: LogConfig{
			Level: "warn",
		},
		Storage: StorageConfig{
			Path: "~/.baseball/results.db",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGameYAML
}
