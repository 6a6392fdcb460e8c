// Package anim contains the animation tasks run by the engine scheduler.
//
// Each task keeps its resume point as explicit state: the phase it is in and
// how many ticks it still has to wait. Tasks draw by writing art onto the
// shared screen and erase by redrawing the same art in negative mode.
package anim

import (
	"math/rand"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
)

// Phase is one step of a star's blink cycle.
type Phase struct {
	Attr  core.Attr
	Ticks int
}

// PhasesFromConfig converts configured phases. Unknown attributes fall back
// to normal; Validate rejects them before this point.
func PhasesFromConfig(cfg []config.PhaseConfig) []Phase {
	phases := make([]Phase, 0, len(cfg))
	for _, p := range cfg {
		attr, _ := core.ParseAttr(p.Attr)
		phases = append(phases, Phase{Attr: attr, Ticks: max(p.Ticks, 1)})
	}
	return phases
}

// Star blinks a single glyph forever.
type Star struct {
	Row, Col int
	Glyph    rune

	phases []Phase
	next   int
	wait   int
}

// NewStar creates a star that stays dark for delay ticks before its first
// phase.
func NewStar(row, col int, glyph rune, delay int, phases []Phase) *Star {
	return &Star{
		Row:    row,
		Col:    col,
		Glyph:  glyph,
		phases: phases,
		wait:   max(delay, 0),
	}
}

// Step implements engine.Task. A star never completes.
func (s *Star) Step(w *engine.World) engine.Status {
	if len(s.phases) == 0 {
		return engine.Running
	}
	if s.wait > 0 {
		s.wait--
		return engine.Running
	}

	p := s.phases[s.next]
	w.Screen.SetCell(s.Col, s.Row, core.Cell{Rune: s.Glyph, Attr: p.Attr})
	s.wait = p.Ticks - 1
	s.next = (s.next + 1) % len(s.phases)
	return engine.Running
}

// GenerateStars scatters stars over the interior of field. A field with
// interior area A gets between A/SparseDivisor and A/DenseDivisor stars on
// distinct cells, each with a random glyph and start delay.
func GenerateStars(rng *rand.Rand, field core.Rect, border int, cfg config.StarsConfig) []*Star {
	minX, maxX := field.X+border, field.Right()-border
	minY, maxY := field.Y+border, field.Bottom()-border
	if maxX < minX || maxY < minY || cfg.Symbols == "" {
		return nil
	}

	w, h := maxX-minX+1, maxY-minY+1
	area := w * h
	lo := area / max(cfg.SparseDivisor, 1)
	hi := area / max(cfg.DenseDivisor, 1)
	count := min(lo+rng.Intn(max(hi-lo, 0)+1), area)

	glyphs := []rune(cfg.Symbols)
	phases := PhasesFromConfig(cfg.Phases)
	seen := make(map[[2]int]bool, count)
	stars := make([]*Star, 0, count)

	for len(stars) < count {
		x := minX + rng.Intn(w)
		y := minY + rng.Intn(h)
		if seen[[2]int{x, y}] {
			continue
		}
		seen[[2]int{x, y}] = true

		glyph := glyphs[rng.Intn(len(glyphs))]
		delay := rng.Intn(cfg.MaxStartDelay + 1)
		stars = append(stars, NewStar(y, x, glyph, delay, phases))
	}
	return stars
}
