// Package config provides YAML-based configuration loading for the
// simulator, with environment variable overrides.
package config

import (
	"strings"
	"time"
)

// GameConfig contains all configuration for a simulated game.
type GameConfig struct {
	Rules   RulesConfig   `yaml:"rules"`
	Manager ManagerConfig `yaml:"manager"`
	Sim     SimConfig     `yaml:"sim"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
}

// RulesConfig selects optional rules.
type RulesConfig struct {
	Oddities         bool `yaml:"oddities" env:"BASEBALL_ODDITIES"`
	WalkOff          bool `yaml:"walk_off" env:"BASEBALL_WALK_OFF"`
	ExtraInningsFrom int  `yaml:"extra_innings_from"`
}

// ManagerConfig tunes the automatic manager.
type ManagerConfig struct {
	Style      ManagerStyle `yaml:"style" env:"BASEBALL_MANAGER_STYLE"`
	Aggression float64      `yaml:"aggression" env:"BASEBALL_AGGRESSION"` // 0.0 = always swing, 1.0 = run at every chance
}

// SimConfig controls how games are run.
type SimConfig struct {
	Seed   int64  `yaml:"seed" env:"BASEBALL_SEED"` // 0 = seed from the clock
	PaceMS int    `yaml:"pace_ms"`                  // Watcher auto-advance interval
	Teams  string `yaml:"teams" env:"BASEBALL_TEAMS"`
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `yaml:"level" env:"BASEBALL_LOG_LEVEL"`
}

// StorageConfig locates the results database.
type StorageConfig struct {
	Path string `yaml:"path" env:"BASEBALL_DB"`
}

// Pace returns the watcher auto-advance interval.
func (s SimConfig) Pace() time.Duration {
	if s.PaceMS <= 0 {
		return 0
	}
	return time.Duration(s.PaceMS) * time.Millisecond
}

// ManagerStyle is a named aggression level.
type ManagerStyle string

const (
	StylePassive    ManagerStyle = "passive"
	StyleBalanced   ManagerStyle = "balanced"
	StyleAggressive ManagerStyle = "aggressive"
	StyleCustom     ManagerStyle = "custom"
)

// AggressionForStyle returns the aggression for a style.
func AggressionForStyle(style ManagerStyle) float64 {
	switch style {
	case StylePassive:
		return 0.0
	case StyleBalanced:
		return 0.5
	case StyleAggressive:
		return 0.9
	default:
		return 0.5
	}
}

// ApplyStyle sets the manager style. A custom style keeps the configured
// aggression.
func ApplyStyle(cfg *GameConfig, style ManagerStyle) {
	cfg.Manager.Style = style
	if style != StyleCustom {
		cfg.Manager.Aggression = AggressionForStyle(style)
	}
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "fatal": true}

// Normalize clamps out-of-range values to usable ones.
func (c *GameConfig) Normalize() {
	if c.Rules.ExtraInningsFrom < 2 {
		c.Rules.ExtraInningsFrom = 10
	}
	c.Manager.Aggression = clampF(c.Manager.Aggression, 0.0, 1.0)
	if c.Manager.Style == "" {
		c.Manager.Style = StyleCustom
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if !validLevels[c.Log.Level] {
		c.Log.Level = "warn"
	}
	if c.Sim.PaceMS < 0 {
		c.Sim.PaceMS = 0
	}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
