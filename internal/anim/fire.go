package anim

import (
	"math"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
)

// FireControl launches a projectile every tick the ship is firing.
// The scheduler only raises Ship.Firing once the gun is unlocked.
type FireControl struct{}

// NewFireControl creates the fire task.
func NewFireControl() *FireControl {
	return &FireControl{}
}

// Step implements engine.Task. FireControl never completes.
func (FireControl) Step(w *engine.World) engine.Status {
	ship := w.Ship
	if ship == nil || !ship.Alive || !ship.Firing {
		return engine.Running
	}
	w.Spawn(NewProjectile(float64(ship.Y-1), ship.X+ship.W/2, w.Config.Weapon.ProjectileSpeed))
	return engine.Running
}

type projectileState int

const (
	muzzleFlash projectileState = iota
	muzzleGlow
	flying
)

// Projectile shows a short muzzle flash, then travels up until it leaves the
// playfield or hits an obstacle, which it flags as destroyed.
type Projectile struct {
	row   float64
	col   int
	speed float64
	state projectileState

	drawn    bool
	drawnRow int
}

// NewProjectile creates a projectile at (row, col) moving up speed rows per tick.
func NewProjectile(row float64, col int, speed float64) *Projectile {
	return &Projectile{row: row, col: col, speed: speed}
}

// Bounds implements core.BoundingBox.
func (p *Projectile) Bounds() core.Rect {
	return core.NewRect(p.col, int(math.Round(p.row)), 1, 1)
}

// Step implements engine.Task.
func (p *Projectile) Step(w *engine.World) engine.Status {
	if p.drawn {
		w.Screen.SetCell(p.col, p.drawnRow, core.Cell{Rune: ' '})
		p.drawn = false
	}

	switch p.state {
	case muzzleFlash:
		p.draw(w, '*')
		p.state = muzzleGlow
		return engine.Running
	case muzzleGlow:
		p.draw(w, 'O')
		p.state = flying
		return engine.Running
	}

	p.row -= p.speed
	field := w.Field()
	r := int(math.Round(p.row))
	if r <= field.Y || r >= field.Bottom() || p.col <= field.X || p.col >= field.Right() {
		return engine.Done
	}

	if id, hit := w.Obstacles.Hit(p); hit {
		w.Obstacles.MarkDestroyed(id)
		return engine.Done
	}

	p.draw(w, '|')
	return engine.Running
}

func (p *Projectile) draw(w *engine.World, glyph rune) {
	p.drawnRow = int(math.Round(p.row))
	w.Screen.SetCell(p.col, p.drawnRow, core.Cell{Rune: glyph})
	p.drawn = true
}
