package core

// Controls is the player's intent for a single simulation tick.
// DY and DX are each one of -1, 0 or 1, giving the nine possible directions.
type Controls struct {
	DY   int  // -1 up, 1 down
	DX   int  // -1 left, 1 right
	Fire bool // fire control is held
}

// Idle reports whether no control is active.
func (c Controls) Idle() bool {
	return c.DY == 0 && c.DX == 0 && !c.Fire
}

// Press records a directional key. The last key pressed on an axis wins,
// matching how a terminal delivers a burst of key repeats within one tick.
func (c *Controls) Press(dy, dx int) {
	if dy != 0 {
		c.DY = Clamp(dy, -1, 1)
	}
	if dx != 0 {
		c.DX = Clamp(dx, -1, 1)
	}
}

// Clear resets the controls for the next tick.
func (c *Controls) Clear() {
	*c = Controls{}
}

// InputSource is a non-blocking source of controls.
// Poll returns the latest intent; intents shorter than one tick are lost.
type InputSource interface {
	Poll() Controls
}
