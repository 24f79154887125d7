package input

// PointerTracker turns absolute cursor positions into accumulated deltas.
// The first sample after a reset only sets the baseline, so locking the
// pointer does not produce a jump.
type PointerTracker struct {
	lastX, lastY float64
	hasLast      bool

	dx, dy float64
}

// Move records an absolute cursor position.
func (p *PointerTracker) Move(x, y float64) {
	if p.hasLast {
		p.dx += x - p.lastX
		p.dy += y - p.lastY
	}
	p.lastX, p.lastY = x, y
	p.hasLast = true
}

// Reset drops the baseline and any pending motion.
func (p *PointerTracker) Reset() {
	*p = PointerTracker{}
}

// Take returns the accumulated motion and clears it. Positive dy means the
// cursor moved down the screen.
func (p *PointerTracker) Take() (dx, dy float32) {
	dx, dy = float32(p.dx), float32(p.dy)
	p.dx, p.dy = 0, 0
	return dx, dy
}
