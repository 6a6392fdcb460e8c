package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "spacegarbage.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.spacegarbage/config.yaml -> ./configs/spacegarbage.yaml -> embedded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, p := range []string{userConfigPath(), filepath.Join("configs", FileName)} {
		if p == "" {
			continue
		}
		if data, err := os.ReadFile(p); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	// Phrases replace the defaults instead of merging into them.
	cfg.History.Phrases = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.History.Phrases == nil {
		cfg.History.Phrases = Default().History.Phrases
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spacegarbage", "config.yaml")
}

// Validate reports the first problem that would make the game misbehave.
func (c Config) Validate() error {
	var errs []error

	if c.Timing.FrameDelayMS <= 0 {
		errs = append(errs, errors.New("timing.frame_delay_ms must be positive"))
	}
	if c.Timing.TicksPerYear <= 0 {
		errs = append(errs, errors.New("timing.ticks_per_year must be positive"))
	}
	if c.Field.Border < 0 {
		errs = append(errs, errors.New("field.border must not be negative"))
	}
	if c.Stars.Symbols == "" {
		errs = append(errs, errors.New("stars.symbols must not be empty"))
	}
	if len(c.Stars.Phases) == 0 {
		errs = append(errs, errors.New("stars.phases must not be empty"))
	}
	for i, p := range c.Stars.Phases {
		if p.Ticks <= 0 {
			errs = append(errs, fmt.Errorf("stars.phases[%d].ticks must be positive", i))
		}
		if !validAttr(p.Attr) {
			errs = append(errs, fmt.Errorf("stars.phases[%d].attr %q is not normal, dim or bold", i, p.Attr))
		}
	}
	if c.Stars.MaxStartDelay < 0 {
		errs = append(errs, errors.New("stars.max_start_delay must not be negative"))
	}
	if c.Stars.DenseDivisor <= 0 || c.Stars.SparseDivisor < c.Stars.DenseDivisor {
		errs = append(errs, errors.New("stars: need 0 < dense_divisor <= sparse_divisor"))
	}
	if c.Ship.FrameHold <= 0 {
		errs = append(errs, errors.New("ship.frame_hold must be positive"))
	}
	if c.Debris.MinSpeed <= 0 || c.Debris.SpeedJitter < 0 {
		errs = append(errs, errors.New("debris: min_speed must be positive and speed_jitter not negative"))
	}
	if c.Weapon.ProjectileSpeed <= 0 {
		errs = append(errs, errors.New("weapon.projectile_speed must be positive"))
	}
	if c.History.FlashTicks < 0 {
		errs = append(errs, errors.New("history.flash_ticks must not be negative"))
	}
	for i, b := range c.Difficulty.Bands {
		if b.Cadence <= 0 {
			errs = append(errs, fmt.Errorf("difficulty.bands[%d].cadence must be positive", i))
		}
		if i > 0 && b.From <= c.Difficulty.Bands[i-1].From {
			errs = append(errs, fmt.Errorf("difficulty.bands[%d].from must be after %d", i, c.Difficulty.Bands[i-1].From))
		}
	}

	return errors.Join(errs...)
}

func validAttr(name string) bool {
	switch name {
	case "normal", "dim", "bold":
		return true
	}
	return false
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	bands := cfg.Difficulty.Bands
	if IsFixedPreset(preset) {
		// Progression disabled: the first era lasts forever.
		if len(bands) > 1 {
			cfg.Difficulty.Bands = []Band{bands[0]}
		}
		return
	}

	shift := YearShiftForPreset(preset)
	if shift == 0 {
		return
	}
	shifted := make([]Band, len(bands))
	for i, b := range bands {
		shifted[i] = Band{From: b.From + shift, Cadence: b.Cadence}
	}
	cfg.Difficulty.Bands = shifted
}
