package config

import (
	_ "embed"
)

//go:embed defaults/spacegarbage.yaml
var defaultYAML []byte

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Timing: TimingConfig{
			FrameDelayMS: 100,
			TicksPerYear: 15,
			StartYear:    1957,
		},
		Field: FieldConfig{
			Border: 1,
		},
		Stars: StarsConfig{
			Symbols: "+*.:",
			Phases: []PhaseConfig{
				{Attr: "dim", Ticks: 20},
				{Attr: "normal", Ticks: 3},
				{Attr: "bold", Ticks: 5},
				{Attr: "normal", Ticks: 3},
			},
			MaxStartDelay: 50,
			SparseDivisor: 20,
			DenseDivisor:  10,
		},
		Ship: ShipConfig{
			Acceleration: 1,
			FrameHold:    1,
		},
		Debris: DebrisConfig{
			MinSpeed:    0.01,
			SpeedJitter: 1.0,
		},
		Weapon: WeaponConfig{
			ProjectileSpeed: 0.3,
			UnlockYear:      2020,
		},
		History: HistoryConfig{
			FlashTicks: 10,
			Phrases: map[int]string{
				1957: "First Sputnik",
				1961: "Gagarin flew!",
				1969: "Armstrong got on the moon!",
				1971: "First orbital space station Salute-1",
				1981: "Flight of the Shuttle Columbia",
				1998: "ISS start building",
				2011: "Messenger launch to Mercury",
				2020: "Take the plasma gun! Shoot the garbage!",
			},
		},
		Difficulty: DifficultyConfig{
			Bands: []Band{
				{From: 1961, Cadence: 20},
				{From: 1969, Cadence: 14},
				{From: 1981, Cadence: 10},
				{From: 1995, Cadence: 8},
				{From: 2010, Cadence: 6},
				{From: 2020, Cadence: 2},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
