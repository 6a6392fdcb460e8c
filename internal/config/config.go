// Package config provides YAML-based game configuration loading and
// difficulty management for the space garbage game.
package config

import "time"

// Config contains every tunable of the game.
type Config struct {
	Timing     TimingConfig     `yaml:"timing"`
	Field      FieldConfig      `yaml:"field"`
	Stars      StarsConfig      `yaml:"stars"`
	Ship       ShipConfig       `yaml:"ship"`
	Debris     DebrisConfig     `yaml:"debris"`
	Weapon     WeaponConfig     `yaml:"weapon"`
	History    HistoryConfig    `yaml:"history"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TimingConfig defines the fixed tick and the year clock.
type TimingConfig struct {
	FrameDelayMS int `yaml:"frame_delay_ms"`
	TicksPerYear int `yaml:"ticks_per_year"`
	StartYear    int `yaml:"start_year"`
}

// FrameDelay returns the wall-clock delay between frames.
func (t TimingConfig) FrameDelay() time.Duration {
	return time.Duration(t.FrameDelayMS) * time.Millisecond
}

// FieldConfig defines the playfield.
type FieldConfig struct {
	Border int `yaml:"border"`
}

// StarsConfig defines the star field.
type StarsConfig struct {
	Symbols       string        `yaml:"symbols"`
	Phases        []PhaseConfig `yaml:"phases"`
	MaxStartDelay int           `yaml:"max_start_delay"`
	// A field of area A gets between A/SparseDivisor and A/DenseDivisor stars.
	SparseDivisor int `yaml:"sparse_divisor"`
	DenseDivisor  int `yaml:"dense_divisor"`
}

// PhaseConfig is one step of the blink cycle.
type PhaseConfig struct {
	Attr  string `yaml:"attr"` // normal, dim or bold
	Ticks int    `yaml:"ticks"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Acceleration int `yaml:"acceleration"`
	FrameHold    int `yaml:"frame_hold"` // ticks each animation frame is shown
}

// DebrisConfig defines falling debris. Each piece falls at
// min_speed + uniform(0, speed_jitter) rows per tick.
type DebrisConfig struct {
	MinSpeed    float64 `yaml:"min_speed"`
	SpeedJitter float64 `yaml:"speed_jitter"`
}

// WeaponConfig defines the plasma gun.
type WeaponConfig struct {
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	UnlockYear      int     `yaml:"unlock_year"`
}

// HistoryConfig defines the milestone phrases shown by the year label.
type HistoryConfig struct {
	FlashTicks int            `yaml:"flash_ticks"`
	Phrases    map[int]string `yaml:"phrases"`
}

// DifficultyConfig defines the debris spawn cadence per era.
type DifficultyConfig struct {
	Bands []Band `yaml:"bands"`
}

// Band applies from year From until the next band starts.
// Cadence is the number of ticks between debris spawns.
type Band struct {
	From    int `yaml:"from"`
	Cadence int `yaml:"cadence"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// YearShiftForPreset returns how many years every band is moved for a preset.
// Positive values delay the eras.
func YearShiftForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyHard:
		return -5
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	if name == "" {
		return DifficultyNormal, true
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}
