package config

// DifficultyManager maps the simulated year to debris spawn cadence and
// decides when the plasma gun becomes available.
type DifficultyManager struct {
	bands      []Band
	unlockYear int
}

// NewDifficultyManager creates a new difficulty manager. Bands must be sorted
// by year, as Validate enforces.
func NewDifficultyManager(cfg DifficultyConfig, unlockYear int) *DifficultyManager {
	bands := make([]Band, len(cfg.Bands))
	copy(bands, cfg.Bands)
	return &DifficultyManager{
		bands:      bands,
		unlockYear: unlockYear,
	}
}

// Cadence returns the number of ticks between debris spawns for a year.
// enabled is false before the first band starts.
func (d *DifficultyManager) Cadence(year int) (ticks int, enabled bool) {
	for i := len(d.bands) - 1; i >= 0; i-- {
		if year >= d.bands[i].From {
			return d.bands[i].Cadence, true
		}
	}
	return 0, false
}

// FireAllowed reports whether the player may shoot in the given year.
func (d *DifficultyManager) FireAllowed(year int) bool {
	return year >= d.unlockYear
}

// UnlockYear returns the first year firing is allowed.
func (d *DifficultyManager) UnlockYear() int {
	return d.unlockYear
}
