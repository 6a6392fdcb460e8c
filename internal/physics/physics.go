// Package physics integrates player input into ship motion.
//
// Motion is inertial: each pressed direction adds a fixed acceleration to the
// velocity and nothing ever slows the ship down again.
package physics

import "github.com/vovakirdan/space-garbage/internal/core"

// DefaultAccel is the velocity change per tick for a pressed direction.
const DefaultAccel = 1

// Body is anything the integrator can move.
type Body interface {
	Position() (x, y int)
	Velocity() (vx, vy int)
	Move(x, y, vx, vy int)
}

// UpdateVelocity applies one tick of directional input.
// An axis without input keeps its velocity.
func UpdateVelocity(dy, dx, vx, vy, accel int) (int, int) {
	vx += core.Clamp(dx, -1, 1) * accel
	vy += core.Clamp(dy, -1, 1) * accel
	return vx, vy
}

// ClampPosition keeps a sprite of the given size inside the bordered field.
// On each axis the allowed range is [border, extent-border-size]; if the sprite
// does not fit the lower bound wins.
func ClampPosition(x, y int, field core.Rect, border, spriteW, spriteH int) (int, int) {
	x = core.Clamp(x, field.X+border, field.X+field.W-border-spriteW)
	y = core.Clamp(y, field.Y+border, field.Y+field.H-border-spriteH)
	return x, y
}

// Integrator moves a body one tick at a time.
type Integrator struct {
	Accel  int
	Border int
}

// NewIntegrator returns an integrator with the given acceleration and border.
func NewIntegrator(accel, border int) Integrator {
	return Integrator{Accel: accel, Border: border}
}

// Apply updates velocity from the controls, advances the position and clamps
// it into field.
func (in Integrator) Apply(b Body, c core.Controls, field core.Rect, spriteW, spriteH int) {
	vx, vy := b.Velocity()
	vx, vy = UpdateVelocity(c.DY, c.DX, vx, vy, in.Accel)

	x, y := b.Position()
	x, y = ClampPosition(x+vx, y+vy, field, in.Border, spriteW, spriteH)
	b.Move(x, y, vx, vy)
}
