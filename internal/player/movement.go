package player

// MoveKeys is the set of movement keys held during a frame.
type MoveKeys uint8

const (
	MoveForward MoveKeys = 1 << iota
	MoveBackward
	MoveLeft
	MoveRight
)

// Has reports whether every key in k2 is held.
func (k MoveKeys) Has(k2 MoveKeys) bool {
	return k&k2 == k2
}

// With returns the set with k2 added.
func (k MoveKeys) With(k2 MoveKeys) MoveKeys {
	return k | k2
}

// ProcessKeyboard moves the camera for the held keys. Forward and backward
// follow the full view direction, so looking up while moving forward climbs.
func (c *Camera) ProcessKeyboard(keys MoveKeys, delta float32) {
	if keys == 0 || delta <= 0 {
		return
	}
	velocity := c.Speed * delta
	if keys.Has(MoveForward) {
		c.Position = c.Position.Add(c.front.Mul(velocity))
	}
	if keys.Has(MoveBackward) {
		c.Position = c.Position.Sub(c.front.Mul(velocity))
	}
	if keys.Has(MoveLeft) {
		c.Position = c.Position.Sub(c.right.Mul(velocity))
	}
	if keys.Has(MoveRight) {
		c.Position = c.Position.Add(c.right.Mul(velocity))
	}
}
