package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded YAML differs from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("timing:\n  ticks_per_year: 5\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.Timing.TicksPerYear != 5 {
		t.Errorf("TicksPerYear = %d, expected 5", cfg.Timing.TicksPerYear)
	}
	if cfg.Timing.FrameDelayMS != 100 || cfg.Timing.StartYear != 1957 {
		t.Errorf("unset timing keys lost their defaults: %+v", cfg.Timing)
	}
	if len(cfg.History.Phrases) != len(Default().History.Phrases) {
		t.Errorf("phrases should default when absent, got %d", len(cfg.History.Phrases))
	}
}

func TestParsePhrasesReplace(t *testing.T) {
	cfg, err := Parse([]byte("history:\n  phrases:\n    1960: \"Hello\"\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(cfg.History.Phrases) != 1 || cfg.History.Phrases[1960] != "Hello" {
		t.Errorf("Phrases = %v, expected only 1960", cfg.History.Phrases)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"zero ticks per year", func(c *Config) { c.Timing.TicksPerYear = 0 }, "ticks_per_year"},
		{"zero frame delay", func(c *Config) { c.Timing.FrameDelayMS = 0 }, "frame_delay_ms"},
		{"negative border", func(c *Config) { c.Field.Border = -1 }, "border"},
		{"bad attr", func(c *Config) { c.Stars.Phases[0].Attr = "blink" }, "blink"},
		{"zero phase", func(c *Config) { c.Stars.Phases[1].Ticks = 0 }, "phases[1]"},
		{"no symbols", func(c *Config) { c.Stars.Symbols = "" }, "symbols"},
		{"inverted density", func(c *Config) { c.Stars.SparseDivisor = 5 }, "divisor"},
		{"zero cadence", func(c *Config) { c.Difficulty.Bands[2].Cadence = 0 }, "bands[2].cadence"},
		{"unsorted bands", func(c *Config) { c.Difficulty.Bands[3].From = 1970 }, "bands[3].from"},
		{"zero projectile speed", func(c *Config) { c.Weapon.ProjectileSpeed = 0 }, "projectile_speed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() expected error")
			}
			if !strings.Contains(err.Error(), tc.errSub) {
				t.Errorf("Validate() = %v, expected mention of %q", err, tc.errSub)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("weapon:\n  unlock_year: 1990\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Weapon.UnlockYear != 1990 {
		t.Errorf("UnlockYear = %d, expected 1990", cfg.Weapon.UnlockYear)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("timing:\n  ticks_per_year: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of an invalid custom file should fail")
	}

	garbage := filepath.Join(dir, "garbage.yaml")
	if err := os.WriteFile(garbage, []byte("timing: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(garbage); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestCadenceBands(t *testing.T) {
	d := NewDifficultyManager(Default().Difficulty, 2020)

	tests := []struct {
		year    int
		ticks   int
		enabled bool
	}{
		{1900, 0, false},
		{1957, 0, false},
		{1960, 0, false},
		{1961, 20, true},
		{1968, 20, true},
		{1969, 14, true},
		{1980, 14, true},
		{1981, 10, true},
		{1995, 8, true},
		{2009, 8, true},
		{2010, 6, true},
		{2019, 6, true},
		{2020, 2, true},
		{2100, 2, true},
	}

	for _, tc := range tests {
		ticks, enabled := d.Cadence(tc.year)
		if ticks != tc.ticks || enabled != tc.enabled {
			t.Errorf("Cadence(%d) = (%d, %v), expected (%d, %v)", tc.year, ticks, enabled, tc.ticks, tc.enabled)
		}
	}
}

func TestCadenceMonotonicAndTotal(t *testing.T) {
	d := NewDifficultyManager(Default().Difficulty, 2020)

	prev := 0
	seenEnabled := false
	for year := 1900; year <= 2100; year++ {
		ticks, enabled := d.Cadence(year)
		if !enabled {
			if seenEnabled {
				t.Fatalf("spawning disabled again in %d", year)
			}
			continue
		}
		if ticks <= 0 {
			t.Fatalf("Cadence(%d) = %d, expected positive", year, ticks)
		}
		if seenEnabled && ticks > prev {
			t.Fatalf("cadence increased from %d to %d in %d", prev, ticks, year)
		}
		seenEnabled = true
		prev = ticks
	}
}

func TestFireAllowed(t *testing.T) {
	d := NewDifficultyManager(Default().Difficulty, 2020)

	for year, want := range map[int]bool{1957: false, 2019: false, 2020: true, 2050: true} {
		if got := d.FireAllowed(year); got != want {
			t.Errorf("FireAllowed(%d) = %v, expected %v", year, got, want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		firstFrom int
		bands     int
	}{
		{DifficultyNormal, 1961, 6},
		{DifficultyEasy, 1966, 6},
		{DifficultyHard, 1956, 6},
		{DifficultyFixed, 1961, 1},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)
			if len(cfg.Difficulty.Bands) != tc.bands {
				t.Fatalf("len(Bands) = %d, expected %d", len(cfg.Difficulty.Bands), tc.bands)
			}
			if cfg.Difficulty.Bands[0].From != tc.firstFrom {
				t.Errorf("Bands[0].From = %d, expected %d", cfg.Difficulty.Bands[0].From, tc.firstFrom)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}

	// Presets must not alias the defaults
	cfg := Default()
	ApplyPreset(&cfg, DifficultyEasy)
	if Default().Difficulty.Bands[0].From != 1961 {
		t.Error("ApplyPreset modified shared defaults")
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = (%q, %v)", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(\"hard\") = (%q, %v)", p, ok)
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset(\"insane\") should fail")
	}
}
